package printing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/espacionido/nido-backend/internal/models"
	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
	"github.com/espacionido/nido-backend/pkg/logctx"
	"github.com/espacionido/nido-backend/pkg/tool"
	"github.com/espacionido/nido-backend/pkg/types"
)

const (
	MinSheets = 1
	MaxSheets = 100
	MaxPrice  = 1000.0
)

var (
	ErrInvalidSheets     = errors.New("sheets must be an integer between 1 and 100")
	ErrInvalidPrice      = errors.New("price per sheet must be greater than 0 and at most 1000")
	ErrRecordNotFound    = errors.New("print record not found")
	ErrRecordAlreadyPaid = errors.New("print record already paid")
)

type Service struct {
	cfg *cfgpkg.Config
	log *zap.SugaredLogger
	db  *gorm.DB
}

func NewService(cfg *cfgpkg.Config, log *zap.SugaredLogger, db *gorm.DB) *Service {
	return &Service{cfg: cfg, log: log, db: db}
}

// CreateRecord meters a print job at the currently configured price.
func (s *Service) CreateRecord(ctx context.Context, clientID, userID string, sheets int) (*models.PrintRecord, error) {
	if sheets < MinSheets || sheets > MaxSheets {
		return nil, ErrInvalidSheets
	}

	price := s.currentPrice(ctx)
	rec := &models.PrintRecord{
		ID:            tool.GenerateUUIDV7(),
		ClientID:      clientID,
		UserID:        userID,
		Sheets:        sheets,
		PricePerSheet: price,
		TotalPrice:    float64(sheets) * price,
		Status:        types.PrintRecordStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create print record: %w", err)
	}
	return rec, nil
}

// currentPrice reads the settings row, falling back to the configured default
// when the row is missing or the read fails.
func (s *Service) currentPrice(ctx context.Context) float64 {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		logctx.FromCtx(ctx, s.log).Warnw("printing settings read failed, using default price", "err", err)
		return s.cfg.Printing.DefaultPricePerSheet
	}
	return settings.PricePerSheet
}

func (s *Service) ListByClient(ctx context.Context, clientID string) ([]*models.PrintRecord, error) {
	var rows []*models.PrintRecord
	err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}, Desc: true}}}).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list print records: %w", err)
	}
	return rows, nil
}

type ListRecordsRequest struct {
	Status types.PrintRecordStatus
	From   int
	Size   int
}

type ListRecordsResponse struct {
	Items []*models.PrintRecord
	Total int64
}

// ListAll implements the paginated admin listing.
func (s *Service) ListAll(ctx context.Context, req *ListRecordsRequest) (*ListRecordsResponse, error) {
	if req == nil {
		req = &ListRecordsRequest{}
	}
	if req.Size <= 0 {
		req.Size = 50
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.PrintRecord{})
	if req.Status != "" {
		tx = tx.Where("status = ?", req.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count print records: %w", err)
	}

	var rows []*models.PrintRecord
	q := tx.Limit(req.Size).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}, Desc: true}}})
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list print records: %w", err)
	}
	return &ListRecordsResponse{Items: rows, Total: total}, nil
}

// PayRecord marks a single record paid. Paying twice is a conflict and must
// not touch paid_at. The status filter on the update is what makes concurrent
// pay attempts safe; only one writer can move the row out of pending.
func (s *Service) PayRecord(ctx context.Context, id, adminID string) (*models.PrintRecord, error) {
	res := s.db.WithContext(ctx).Model(&models.PrintRecord{}).
		Where("id = ? AND status = ?", id, types.PrintRecordStatusPending).
		Updates(map[string]any{
			"status":  types.PrintRecordStatusPaid,
			"paid_at": time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to pay print record: %w", res.Error)
	}

	var rec models.PrintRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to read print record: %w", err)
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecordAlreadyPaid
	}

	logctx.FromCtx(ctx, s.log).Infow("print record paid", "record_id", id, "admin_id", adminID)
	return &rec, nil
}

// SettleBatch marks every listed pending record paid as a side effect of a
// payment-request approval. Already-paid records are left untouched.
func (s *Service) SettleBatch(ctx context.Context, ids []string, requestID string) error {
	if len(ids) == 0 {
		return nil
	}
	now := time.Now()
	res := s.db.WithContext(ctx).Model(&models.PrintRecord{}).
		Where("id IN ? AND status = ?", ids, types.PrintRecordStatusPending).
		Updates(map[string]any{
			"status":             types.PrintRecordStatusPaid,
			"paid_at":            now,
			"payment_request_id": requestID,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to settle print records: %w", res.Error)
	}
	logctx.FromCtx(ctx, s.log).Infow("print records settled",
		"request_id", requestID, "requested", len(ids), "updated", res.RowsAffected)
	return nil
}

// GetSettings returns the settings row, creating nothing; callers treat a
// missing row as "use default price".
func (s *Service) GetSettings(ctx context.Context) (*models.PrintingSettings, error) {
	var settings models.PrintingSettings
	err := s.db.WithContext(ctx).First(&settings, "id = ?", models.SettingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.PrintingSettings{
			ID:            models.SettingsRowID,
			PricePerSheet: s.cfg.Printing.DefaultPricePerSheet,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read printing settings: %w", err)
	}
	return &settings, nil
}

// UpdateSettings sets the price per sheet, last-writer-wins.
func (s *Service) UpdateSettings(ctx context.Context, price float64, updatedBy string) (*models.PrintingSettings, error) {
	if price <= 0 || price > MaxPrice {
		return nil, ErrInvalidPrice
	}
	settings := &models.PrintingSettings{
		ID:            models.SettingsRowID,
		PricePerSheet: price,
		UpdatedBy:     updatedBy,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"price_per_sheet", "updated_by", "updated_at"}),
		}).
		Create(settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update printing settings: %w", err)
	}
	return settings, nil
}
