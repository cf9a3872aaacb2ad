package engine

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/courtside/internal/randutil"
)

var postWeights = []int{0, 0, 1, 3, 4}

// PostUpAction feeds a big man with his back to the basket.
type PostUpAction struct{}

func (PostUpAction) Execute(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error) {
	m, err := newMatchup(court, input.Possession)
	if err != nil {
		return ActionOutput{}, err
	}

	var idx int
	if len(input.Attackers) > 0 {
		idx = input.Attackers[0]
	} else if idx, err = pick(rng, postWeights); err != nil {
		return ActionOutput{}, err
	}

	attacker, err := m.attacker(idx)
	if err != nil {
		return ActionOutput{}, err
	}
	defender, err := m.defender(idx)
	if err != nil {
		return ActionOutput{}, err
	}

	atkRoll, err := m.roll(rng, attacker)
	if err != nil {
		return ActionOutput{}, err
	}
	defRoll, err := m.roll(rng, defender)
	if err != nil {
		return ActionOutput{}, err
	}

	tuning := court.Tuning()
	clock := court.Clock()
	attackerUpdate := tired(attacker, tuning.Fatigue.High)
	defenderUpdate := tired(defender, tuning.Fatigue.High)

	atkResult := atkRoll +
		int(attacker.Technical.PostMoves) +
		int(attacker.Athleticism.Strength)
	defResult := defRoll +
		int(defender.Defense.InteriorDefense) +
		int(defender.Athleticism.Strength)

	var result ActionOutput
	adv, ok := tuning.Tiers.Classify(atkResult - defResult)
	if !ok {
		attackerUpdate.Turnovers = 1
		defenderUpdate.Steals = 1
		result = turnover(input, clock, fmt.Sprintf(
			"%s backs down in the post but %s pokes the ball loose.",
			attacker.LastName, defender.LastName))
	} else {
		result = next(input)
		result.Advantage = adv
		result.Attackers = []int{idx}
		result.Defenders = []int{idx}
		result.EndAt = clock.Plus(input.EndAt, randutil.Between(rng, 3, 6))
		switch adv {
		case Attack:
			result.Situation = CloseShot
			result.Description = fmt.Sprintf(
				"%s seals %s deep in the paint and spins toward the basket.",
				attacker.LastName, defender.LastName)
		case Neutral:
			result.Situation = CloseShot
			result.Description = fmt.Sprintf(
				"%s gets the entry pass and goes to work on %s.",
				attacker.LastName, defender.LastName)
		default:
			result.Situation = MediumShot
			result.Description = fmt.Sprintf(
				"%s holds his ground and %s has to settle for a fadeaway.",
				defender.LastName, attacker.LastName)
		}
	}

	result.AttackStats = StatsMap{attacker.ID: attackerUpdate}
	result.DefenseStats = StatsMap{defender.ID: defenderUpdate}
	return result, nil
}
