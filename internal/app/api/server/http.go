package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/espacionido/nido-backend/docs"
	"github.com/espacionido/nido-backend/internal/app/api/handlers"
	mw "github.com/espacionido/nido-backend/internal/app/api/middleware"
	"github.com/espacionido/nido-backend/internal/app/service/announcement"
	clientsvc "github.com/espacionido/nido-backend/internal/app/service/client"
	"github.com/espacionido/nido-backend/internal/app/service/payment"
	"github.com/espacionido/nido-backend/internal/app/service/printing"
	"github.com/espacionido/nido-backend/internal/app/service/report"
	"github.com/espacionido/nido-backend/internal/platform/gateway"
	"github.com/espacionido/nido-backend/internal/platform/identity"
	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
	metrics "github.com/espacionido/nido-backend/pkg/metrics"
	"github.com/espacionido/nido-backend/pkg/types"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

type routeDeps struct {
	fx.In

	Log           *zap.SugaredLogger
	Cfg           *cfgpkg.Config
	Verifier      identity.Verifier
	Gateway       *gateway.Client
	Payments      *payment.Service
	Printing      *printing.Service
	Reports       *report.Service
	Announcements *announcement.Service
	Clients       *clientsvc.Service
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Prometheus metrics
	if d.Cfg != nil && d.Cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: d.Log,
		})
		p.SetListenAddress(d.Cfg.MetricsAddr)
		p.Use(r)

		d.Log.Infow("metrics started", "addr", d.Cfg.MetricsAddr)
	}

	// Public group: health, swagger, default-settings read
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())
	handlers.RegisterPublicPrintingRoutes(apiV1, d.Printing)

	// Webhook group: authenticated by HMAC signature, not bearer token
	handlers.RegisterWebhookRoutes(apiV1.Group("/webhooks"), d.Payments, d.Gateway, d.Log)

	// Client dashboard APIs
	clientGroup := apiV1.Group("/client")
	clientGroup.Use(mw.Auth(d.Verifier, types.RoleClient))
	handlers.RegisterClientPaymentRoutes(clientGroup, d.Payments)
	handlers.RegisterClientPrintingRoutes(clientGroup, d.Printing)
	handlers.RegisterClientReportRoutes(clientGroup, d.Reports)
	handlers.RegisterClientAnnouncementRoutes(clientGroup, d.Announcements)

	// Admin dashboard APIs
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(mw.Auth(d.Verifier, types.RoleAdmin))
	handlers.RegisterAdminPaymentRoutes(adminGroup, d.Payments)
	handlers.RegisterAdminPrintingRoutes(adminGroup, d.Printing)
	handlers.RegisterAdminReportRoutes(adminGroup, d.Reports)
	handlers.RegisterAdminAnnouncementRoutes(adminGroup, d.Announcements)
	handlers.RegisterAdminClientRoutes(adminGroup, d.Clients)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
