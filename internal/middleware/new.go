package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"rima-workspace/pkg/log"
)

// limiterTableSize bounds how many client buckets are tracked at once.
// Old clients fall out of the table and start with a fresh bucket.
const limiterTableSize = 1024

type Middleware struct {
	l        log.Logger
	rps      rate.Limit
	burst    int
	limiters *lru.Cache[string, *rate.Limiter]
}

func New(l log.Logger, requestsPerSecond float64, burst int) Middleware {
	limiters, _ := lru.New[string, *rate.Limiter](limiterTableSize)
	return Middleware{
		l:        l,
		rps:      rate.Limit(requestsPerSecond),
		burst:    burst,
		limiters: limiters,
	}
}
