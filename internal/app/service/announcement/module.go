package announcement

import (
	"go.uber.org/fx"

	clientsvc "github.com/espacionido/nido-backend/internal/app/service/client"
)

var Module = fx.Options(
	fx.Provide(func(s *clientsvc.Service) ClientLister { return s }),
	fx.Provide(NewService),
)
