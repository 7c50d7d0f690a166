package docstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/espacionido/nido-backend/internal/app/service/payment"
	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/pkg/types"
)

type paymentRequestStore struct {
	coll *mongo.Collection
}

func NewPaymentRequestStore(db *mongo.Database) payment.RequestStore {
	return &paymentRequestStore{coll: db.Collection(CollPaymentRequests)}
}

func (s *paymentRequestStore) Insert(ctx context.Context, req *models.PaymentRequest) error {
	_, err := s.coll.InsertOne(ctx, req)
	return err
}

func (s *paymentRequestStore) Get(ctx context.Context, id string) (*models.PaymentRequest, error) {
	var req models.PaymentRequest
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, payment.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *paymentRequestStore) GetByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*models.PaymentRequest, error) {
	var req models.PaymentRequest
	err := s.coll.FindOne(ctx, bson.M{"gateway_payment_id": gatewayPaymentID}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, payment.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *paymentRequestStore) ListByStatus(ctx context.Context, status types.PaymentRequestStatus) ([]*models.PaymentRequest, error) {
	return s.list(ctx, bson.M{"status": status})
}

func (s *paymentRequestStore) ListByClient(ctx context.Context, clientID string) ([]*models.PaymentRequest, error) {
	return s.list(ctx, bson.M{"client_id": clientID})
}

func (s *paymentRequestStore) list(ctx context.Context, filter bson.M) ([]*models.PaymentRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "request_date", Value: -1}})
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reqs := []*models.PaymentRequest{}
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (s *paymentRequestStore) PendingExists(ctx context.Context, clientID, period string) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{
		"client_id": clientID,
		"period":    period,
		"status":    types.PaymentRequestStatusPending,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ApplyDecision writes the terminal transition. The status filter makes the
// update conditional so two concurrent decisions cannot both win.
func (s *paymentRequestStore) ApplyDecision(ctx context.Context, id string, d *models.PaymentDecision) error {
	set := bson.M{
		"status":       d.Status,
		"processed_at": d.ProcessedAt,
		"processed_by": d.ProcessedBy,
	}
	if d.RejectionReason != "" {
		set["rejection_reason"] = d.RejectionReason
	}
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": types.PaymentRequestStatusPending},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return payment.ErrRequestAlreadyProcessed
	}
	return nil
}

type paymentHistoryStore struct {
	coll *mongo.Collection
}

func NewPaymentHistoryStore(db *mongo.Database) payment.HistoryStore {
	return &paymentHistoryStore{coll: db.Collection(CollPaymentHistory)}
}

func (s *paymentHistoryStore) Append(ctx context.Context, h *models.PaymentHistory) error {
	_, err := s.coll.InsertOne(ctx, h)
	return err
}

func (s *paymentHistoryStore) ListByClient(ctx context.Context, clientID string) ([]*models.PaymentHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "payment_date", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{"client_id": clientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []*models.PaymentHistory{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
