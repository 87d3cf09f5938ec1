package middlewares

import (
	"time"

	"github.com/maypok86/otter/v2"
	"golang.org/x/time/rate"

	"statushub/pkg/logger"
)

// limiterTTL evicts per-client limiters that have been idle for a while.
const limiterTTL = 10 * time.Minute

type Middlewares struct {
	log      logger.Logger
	limiters *otter.Cache[string, *rate.Limiter]
}

func New(log logger.Logger) *Middlewares {
	return &Middlewares{
		log: log,
		limiters: otter.Must(&otter.Options[string, *rate.Limiter]{
			ExpiryCalculator: otter.ExpiryAccessing[string, *rate.Limiter](limiterTTL),
		}),
	}
}
