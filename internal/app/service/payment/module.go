package payment

import (
	"go.uber.org/fx"

	clientsvc "github.com/espacionido/nido-backend/internal/app/service/client"
	"github.com/espacionido/nido-backend/internal/app/service/printing"
	"github.com/espacionido/nido-backend/internal/platform/cache"
	"github.com/espacionido/nido-backend/internal/platform/gateway"
)

// Module binds the platform implementations to the service's interfaces.
var Module = fx.Options(
	fx.Provide(func(s *clientsvc.Service) ClientDirectory { return s }),
	fx.Provide(func(s *printing.Service) Settler { return s }),
	fx.Provide(func(c *gateway.Client) Gateway { return c }),
	fx.Provide(func(c *cache.Client) Deduper { return c }),
	fx.Provide(NewService),
)
