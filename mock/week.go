package mock

import (
	"time"

	"github.com/fwojciec/mensafeed"
)

var _ mensafeed.WeekResolver = (*WeekResolver)(nil)

// WeekResolver is a mock implementation of mensafeed.WeekResolver.
type WeekResolver struct {
	ResolveWeekFn func(info string, now time.Time) (mensafeed.Week, error)
}

func (r *WeekResolver) ResolveWeek(info string, now time.Time) (mensafeed.Week, error) {
	return r.ResolveWeekFn(info, now)
}
