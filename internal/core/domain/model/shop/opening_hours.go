package shop

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// MinutesPerDay is the length of the opening-hours clock.
const MinutesPerDay = 24 * 60

var ErrOpeningHoursIsNotConstructed = errors.New("OpeningHours must be created via NewOpeningHours")

// OpeningHours is a daily window in minutes since midnight, [start, end).
// When end <= start the window wraps past midnight: 22:00-02:00 is
// start=1320, end=120 and covers minutes >= 1320 or < 120.
type OpeningHours struct {
	start int
	end   int
	guard guard.ConstructorGuard
}

func NewOpeningHours(start, end int) (OpeningHours, error) {
	if start < 0 || start > MinutesPerDay {
		return OpeningHours{}, errs.NewValueIsOutOfRangeError("open time start", start, 0, MinutesPerDay)
	}
	if end < 0 || end > MinutesPerDay {
		return OpeningHours{}, errs.NewValueIsOutOfRangeError("open time end", end, 0, MinutesPerDay)
	}
	return OpeningHours{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
}

func (h OpeningHours) Start() int { return h.start }
func (h OpeningHours) End() int   { return h.end }

func (h OpeningHours) Validate() error {
	return h.guard.Validate(ErrOpeningHoursIsNotConstructed)
}

// Contains reports whether minute (0..1439) falls inside the window.
func (h OpeningHours) Contains(minute int) bool {
	if h.end <= h.start {
		return minute >= h.start || minute < h.end
	}
	return minute >= h.start && minute < h.end
}

// MinuteOfDay converts t to minutes since midnight in t's own location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
