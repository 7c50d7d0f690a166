package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/espacionido/nido-backend/internal/app/api/server"
	"github.com/espacionido/nido-backend/internal/app/service/announcement"
	clientsvc "github.com/espacionido/nido-backend/internal/app/service/client"
	"github.com/espacionido/nido-backend/internal/app/service/payment"
	"github.com/espacionido/nido-backend/internal/app/service/printing"
	"github.com/espacionido/nido-backend/internal/app/service/report"
	"github.com/espacionido/nido-backend/internal/platform/cache"
	"github.com/espacionido/nido-backend/internal/platform/db"
	"github.com/espacionido/nido-backend/internal/platform/docstore"
	"github.com/espacionido/nido-backend/internal/platform/gateway"
	"github.com/espacionido/nido-backend/internal/platform/identity"
	"github.com/espacionido/nido-backend/internal/platform/mailer"
	"github.com/espacionido/nido-backend/internal/platform/push"
	"github.com/espacionido/nido-backend/pkg/config"
	"github.com/espacionido/nido-backend/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	docstore.Module,
	cache.Module,
	identity.Module,
	mailer.Module,
	push.Module,
	gateway.Module,
	server.Module,
	clientsvc.Module,
	printing.Module,
	report.Module,
	announcement.Module,
	payment.Module,
)
