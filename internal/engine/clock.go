package engine

import (
	"errors"
	"fmt"
)

// Tick is a second of game time since tip-off.
type Tick uint32

const (
	DefaultQuarterLength Tick = 600
	DefaultQuarters           = 4
)

// Clock holds the game length and does all tick arithmetic. It is a value
// type; the running time of a game is the EndAt of its latest output.
type Clock struct {
	QuarterLength Tick
	Quarters      int
}

// DefaultClock returns four ten-minute quarters.
func DefaultClock() Clock {
	return Clock{QuarterLength: DefaultQuarterLength, Quarters: DefaultQuarters}
}

// Validate checks the clock can describe at least one non-empty quarter.
func (c Clock) Validate() error {
	if c.QuarterLength == 0 {
		return errors.New("clock: quarter length must be positive")
	}
	if c.Quarters <= 0 {
		return errors.New("clock: at least one quarter is required")
	}
	if uint64(c.QuarterLength)*uint64(c.Quarters) > uint64(^Tick(0)) {
		return errors.New("clock: game length overflows tick range")
	}
	return nil
}

// Start is the tip-off tick.
func (c Clock) Start() Tick { return 0 }

// End is the final buzzer.
func (c Clock) End() Tick { return c.QuarterLength * Tick(c.Quarters) }

// Period returns the 1-based quarter containing t. A tick sitting exactly on
// a boundary belongs to the quarter that starts there; the final buzzer
// belongs to the last quarter.
func (c Clock) Period(t Tick) int {
	p := int(t/c.QuarterLength) + 1
	if p > c.Quarters {
		return c.Quarters
	}
	return p
}

// QuarterEnd returns the buzzer of the quarter containing t.
func (c Clock) QuarterEnd(t Tick) Tick {
	end := Tick(c.Period(t)) * c.QuarterLength
	if end > c.End() {
		return c.End()
	}
	return end
}

// AtQuarterEnd reports whether t sits on a buzzer (any quarter end, the final
// buzzer included). Tip-off is not a buzzer.
func (c Clock) AtQuarterEnd(t Tick) bool {
	if t == 0 {
		return false
	}
	return t >= c.End() || t%c.QuarterLength == 0
}

// Plus advances t by n seconds, saturating at the end of t's quarter. It
// never wraps and never passes the final buzzer.
func (c Clock) Plus(t Tick, n int) Tick {
	if n <= 0 {
		return t
	}
	limit := c.QuarterEnd(t)
	if t >= limit {
		return t
	}
	if uint64(t)+uint64(n) >= uint64(limit) {
		return limit
	}
	return t + Tick(n)
}

// Duration returns to-from, or zero when to precedes from.
func (c Clock) Duration(from, to Tick) Tick {
	if to < from {
		return 0
	}
	return to - from
}

// Remaining returns the seconds left in t's quarter.
func (c Clock) Remaining(t Tick) Tick {
	return c.Duration(t, c.QuarterEnd(t))
}

// Expired reports whether t is at or past the final buzzer.
func (c Clock) Expired(t Tick) bool { return t >= c.End() }

// Format renders t as quarter and remaining time, e.g. "Q2 07:31". A buzzer
// tick is shown as 00:00 of the quarter it closes.
func (c Clock) Format(t Tick) string {
	period := c.Period(t)
	remaining := c.Remaining(t)
	if c.AtQuarterEnd(t) {
		period = int((t-1)/c.QuarterLength) + 1
		remaining = 0
	}
	return fmt.Sprintf("Q%d %02d:%02d", period, remaining/60, remaining%60)
}
