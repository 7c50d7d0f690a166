package docstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	clientsvc "github.com/espacionido/nido-backend/internal/app/service/client"
	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/pkg/types"
)

type clientStore struct {
	coll *mongo.Collection
}

func NewClientStore(db *mongo.Database) clientsvc.Store {
	return &clientStore{coll: db.Collection(CollClients)}
}

func (s *clientStore) Get(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, clientsvc.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *clientStore) List(ctx context.Context) ([]*models.Client, error) {
	return s.list(ctx, bson.M{})
}

func (s *clientStore) ListActive(ctx context.Context) ([]*models.Client, error) {
	return s.list(ctx, bson.M{"status": types.ClientStatusActive})
}

func (s *clientStore) list(ctx context.Context, filter bson.M) ([]*models.Client, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	clients := []*models.Client{}
	if err := cur.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *clientStore) UpdateStatus(ctx context.Context, id string, status types.ClientStatus) error {
	return s.update(ctx, id, bson.M{"status": status})
}

func (s *clientStore) UpdatePlan(ctx context.Context, id, planID, planName string) error {
	return s.update(ctx, id, bson.M{"plan_id": planID, "plan_name": planName})
}

func (s *clientStore) AdvanceBilling(ctx context.Context, id string, adv *models.BillingAdvance) error {
	return s.update(ctx, id, bson.M{
		"current_period":      adv.CurrentPeriod,
		"next_payment_period": adv.NextPaymentPeriod,
		"billing_anchor":      adv.BillingAnchor,
		"last_payment_date":   adv.LastPaymentDate,
		"payment_status":      adv.PaymentStatus,
	})
}

func (s *clientStore) update(ctx context.Context, id string, set bson.M) error {
	set["updated_at"] = time.Now()
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return clientsvc.ErrClientNotFound
	}
	return nil
}
