package docstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/espacionido/nido-backend/internal/app/service/report"
	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/pkg/types"
)

type reportStore struct {
	coll *mongo.Collection
}

func NewReportStore(db *mongo.Database) report.Store {
	return &reportStore{coll: db.Collection(CollReports)}
}

func (s *reportStore) Insert(ctx context.Context, r *models.Report) error {
	_, err := s.coll.InsertOne(ctx, r)
	return err
}

func (s *reportStore) List(ctx context.Context, status types.ReportStatus) ([]*models.Report, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return s.list(ctx, filter)
}

func (s *reportStore) ListByClient(ctx context.Context, clientID string) ([]*models.Report, error) {
	return s.list(ctx, bson.M{"client_id": clientID})
}

func (s *reportStore) list(ctx context.Context, filter bson.M) ([]*models.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reports := []*models.Report{}
	if err := cur.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *reportStore) UpdateStatus(ctx context.Context, id string, status types.ReportStatus) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return report.ErrReportNotFound
	}
	return nil
}
