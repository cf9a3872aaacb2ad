package engine

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/courtside/internal/randutil"
)

// plays is indexed like Tactic.playWeights.
var plays = []Situation{PickAndRoll, Isolation, PostUp, OffTheScreen}

// StartOfPossessionAction brings the ball up after a change of hands, an
// offensive rebound or a quarter break, and calls a play according to the
// attacking team's tactic.
type StartOfPossessionAction struct{}

func (StartOfPossessionAction) Execute(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error) {
	team := court.Team(input.Possession)
	m, err := newMatchup(court, input.Possession)
	if err != nil {
		return ActionOutput{}, err
	}
	clock := court.Clock()
	out := next(input)

	var lead string
	switch input.Situation {
	case AfterOffensiveRebound:
		if len(input.Attackers) > 0 && randutil.CoinFlip(rng) {
			slot := input.Attackers[0]
			rebounder, err := m.attacker(slot)
			if err != nil {
				return ActionOutput{}, err
			}
			out.Situation = CloseShot
			out.Attackers = []int{slot}
			out.Defenders = []int{slot}
			out.EndAt = clock.Plus(input.EndAt, randutil.Between(rng, 1, 2))
			out.Description = fmt.Sprintf("%s goes right back up with it.", rebounder.LastName)
			return out, nil
		}
		out.EndAt = clock.Plus(input.EndAt, randutil.Between(rng, 1, 3))
		lead = "They kick it back out to reset."
	case AfterMadeShot:
		out.EndAt = clock.Plus(input.EndAt, randutil.Between(rng, 6, 14))
		lead = fmt.Sprintf("%s inbounds and walks the ball up.", team.Name)
	case Turnover:
		out.EndAt = clock.Plus(input.EndAt, randutil.Between(rng, 3, 8))
		lead = fmt.Sprintf("%s pushes the ball in transition.", team.Name)
	case StartOfQuarter:
		out.EndAt = clock.Plus(input.EndAt, randutil.Between(rng, 2, 5))
		lead = fmt.Sprintf("%s starts the quarter with the ball.", team.Name)
	default:
		out.EndAt = clock.Plus(input.EndAt, randutil.Between(rng, 5, 12))
		lead = fmt.Sprintf("%s brings the ball up.", team.Name)
	}

	idx, err := pick(rng, team.Tactic.playWeights())
	if err != nil {
		return ActionOutput{}, err
	}
	out.Situation = plays[idx]

	var call string
	switch out.Situation {
	case PickAndRoll:
		call = "They call for a screen."
	case Isolation:
		call = "They clear out one side."
	case PostUp:
		call = "They look inside."
	default:
		call = "They run a shooter off a screen."
	}
	out.Description = lead + " " + call
	return out, nil
}
