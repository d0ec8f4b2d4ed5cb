package middleware

import (
	"time"

	"errorviews/internal/model"
	"errorviews/internal/resolver"
	"errorviews/pkg/log"
)

type Middleware struct {
	l       log.Logger
	profile model.Profile
	state   resolver.State
	limiter *rateLimiter
	now     func() time.Time
}

func New(l log.Logger, profile model.Profile, state resolver.State, rateLimitPerMin int) Middleware {
	return Middleware{
		l:       l,
		profile: profile,
		state:   state,
		limiter: newRateLimiter(rateLimitPerMin),
		now:     time.Now,
	}
}
