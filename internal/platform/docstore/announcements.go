package docstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/espacionido/nido-backend/internal/app/service/announcement"
	"github.com/espacionido/nido-backend/internal/models"
)

type announcementStore struct {
	coll *mongo.Collection
}

func NewAnnouncementStore(db *mongo.Database) announcement.Store {
	return &announcementStore{coll: db.Collection(CollAnnouncements)}
}

func (s *announcementStore) Insert(ctx context.Context, a *models.Announcement) error {
	_, err := s.coll.InsertOne(ctx, a)
	return err
}

func (s *announcementStore) ListActive(ctx context.Context) ([]*models.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	anns := []*models.Announcement{}
	if err := cur.All(ctx, &anns); err != nil {
		return nil, err
	}
	return anns, nil
}

// Delete removes the document permanently, matching the dashboard behavior.
func (s *announcementStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}

type fcmTokenStore struct {
	coll *mongo.Collection
}

func NewFCMTokenStore(db *mongo.Database) announcement.TokenStore {
	return &fcmTokenStore{coll: db.Collection(CollFCMTokens)}
}

func (s *fcmTokenStore) Upsert(ctx context.Context, t *models.FCMToken) error {
	t.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"user_id": t.UserID}, t, opts)
	return err
}

func (s *fcmTokenStore) ListTokens(ctx context.Context) ([]string, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tokens := []string{}
	for cur.Next(ctx) {
		var t models.FCMToken
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		if t.Token != "" {
			tokens = append(tokens, t.Token)
		}
	}
	return tokens, cur.Err()
}
