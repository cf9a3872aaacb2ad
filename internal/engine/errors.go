package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingParticipant means an action referenced a lineup slot, player or
	// stat entry that does not exist. The tick is not applied.
	ErrMissingParticipant = errors.New("missing participant")

	// ErrInconsistentOutput means an action returned an output that breaks a
	// session invariant (clock or score going backwards, possession not
	// flipping on a turnover). The tick is not applied.
	ErrInconsistentOutput = errors.New("inconsistent action output")

	// ErrGameOver is returned by Step once the final whistle has been handled.
	ErrGameOver = errors.New("game is over")
)

// ConfigurationError reports situations without a registered action. It is
// returned when a Router is built, never mid-game.
type ConfigurationError struct {
	Missing []Situation
}

func (e *ConfigurationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, s := range e.Missing {
		names[i] = s.String()
	}
	return fmt.Sprintf("router: no action registered for %s", strings.Join(names, ", "))
}
