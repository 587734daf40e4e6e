package components

import (
	"vet-scheduler/internal/handler"
	"vet-scheduler/internal/handler/api"
	"vet-scheduler/internal/handler/middleware"
	"vet-scheduler/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewCalendarHandler,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimiter,
		NewReadiness,
	),
	fx.Invoke(handler.NewRouter),
)

func NewReadiness(pool *pgxpool.Pool, rl *middleware.RateLimiter) handler.Readiness {
	return handler.Readiness{
		"postgres": handler.ReadyCheck(db.ReadyCheck(pool)),
		"redis":    rl.Ping,
	}
}
