package engine

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/courtside/internal/randutil"
)

var isolationWeights = []int{4, 3, 2, 1, 1}

// IsolationAction clears the side for a one-on-one. A pinned attacker slot
// picks the ball handler.
type IsolationAction struct{}

func (IsolationAction) Execute(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error) {
	m, err := newMatchup(court, input.Possession)
	if err != nil {
		return ActionOutput{}, err
	}

	var idx int
	if len(input.Attackers) > 0 {
		idx = input.Attackers[0]
	} else if idx, err = pick(rng, isolationWeights); err != nil {
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
	attackerUpdate := tired(attacker, tuning.Fatigue.Medium)
	defenderUpdate := tired(defender, tuning.Fatigue.Medium)

	atkResult := atkRoll +
		int(attacker.Technical.BallHandling) +
		int(attacker.Athleticism.Quickness)
	defResult := defRoll +
		int(defender.Defense.PerimeterDefense) +
		int(defender.Athleticism.Quickness)

	var result ActionOutput
	adv, ok := tuning.Tiers.Classify(atkResult - defResult)
	if !ok {
		attackerUpdate.Turnovers = 1
		defenderUpdate.Steals = 1
		result = turnover(input, clock, fmt.Sprintf(
			"%s tries to take %s off the dribble but loses the handle. %s picks %s's pocket.",
			attacker.LastName, defender.LastName, defender.LastName, attacker.LastName))
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
				"%s isolates against %s, blows past %s and attacks the rim.",
				attacker.LastName, defender.LastName, defender.LastName)
		case Neutral:
			result.Situation = MediumShot
			result.Description = fmt.Sprintf(
				"%s works %s with a couple of crossovers and pulls up from mid-range.",
				attacker.LastName, defender.LastName)
		default:
			result.Situation = LongShot
			result.Description = fmt.Sprintf(
				"%s cannot shake %s and is forced into a step-back from deep.",
				attacker.LastName, defender.LastName)
		}
	}

	result.AttackStats = StatsMap{attacker.ID: attackerUpdate}
	result.DefenseStats = StatsMap{defender.ID: defenderUpdate}
	return result, nil
}
