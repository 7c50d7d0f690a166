package docstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
)

// Collection names in the operational document store.
const (
	CollClients         = "clients"
	CollPaymentRequests = "payment_requests"
	CollPaymentHistory  = "payment_history"
	CollReports         = "reports"
	CollAnnouncements   = "announcements"
	CollFCMTokens       = "fcm_tokens"
)

func NewDatabase(lc fx.Lifecycle, l *zap.SugaredLogger, cfg *cfgpkg.Config) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.DocStore.URI).
		SetMaxPoolSize(100).
		SetServerSelectionTimeout(10 * time.Second).
		SetConnectTimeout(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		l.Errorf("failed to connect document store: %v", err)
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		l.Errorf("failed to ping document store: %v", err)
		return nil, err
	}
	l.Infow("connected to document store", "database", cfg.DocStore.Database)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			l.Infow("closing document store connection")
			return client.Disconnect(ctx)
		},
	})
	return client.Database(cfg.DocStore.Database), nil
}

var Module = fx.Options(
	fx.Provide(NewDatabase),
	fx.Provide(NewPaymentRequestStore),
	fx.Provide(NewPaymentHistoryStore),
	fx.Provide(NewClientStore),
	fx.Provide(NewReportStore),
	fx.Provide(NewAnnouncementStore),
	fx.Provide(NewFCMTokenStore),
)
