package engine

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/courtside/internal/randutil"
)

var (
	passerWeights  = []int{5, 2, 1, 0, 0}
	shooterWeights = []int{0, 3, 3, 2, 1}
)

// OffTheScreenAction runs a shooter off a down screen into a catch-and-shoot.
type OffTheScreenAction struct{}

func (OffTheScreenAction) Execute(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error) {
	m, err := newMatchup(court, input.Possession)
	if err != nil {
		return ActionOutput{}, err
	}

	var passIdx int
	if len(input.Attackers) > 0 {
		passIdx = input.Attackers[0]
	} else if passIdx, err = pick(rng, passerWeights); err != nil {
		return ActionOutput{}, err
	}
	weights := append([]int(nil), shooterWeights...)
	if passIdx >= 0 && passIdx < len(weights) {
		weights[passIdx] = 0
	}
	shootIdx, err := pick(rng, weights)
	if err != nil {
		return ActionOutput{}, err
	}

	passer, err := m.attacker(passIdx)
	if err != nil {
		return ActionOutput{}, err
	}
	shooter, err := m.attacker(shootIdx)
	if err != nil {
		return ActionOutput{}, err
	}
	passerDefender, err := m.defender(passIdx)
	if err != nil {
		return ActionOutput{}, err
	}
	shooterDefender, err := m.defender(shootIdx)
	if err != nil {
		return ActionOutput{}, err
	}

	atkRoll, err := m.roll(rng, shooter)
	if err != nil {
		return ActionOutput{}, err
	}
	defRoll, err := m.roll(rng, shooterDefender)
	if err != nil {
		return ActionOutput{}, err
	}

	tuning := court.Tuning()
	clock := court.Clock()
	passerUpdate := tired(passer, tuning.Fatigue.Low)
	shooterUpdate := tired(shooter, tuning.Fatigue.Medium)
	shooterDefenderUpdate := tired(shooterDefender, tuning.Fatigue.Medium)

	atkResult := atkRoll +
		int(passer.Technical.Passing) +
		int(passer.Mental.Vision)/2 +
		int(shooter.Mental.OffBallMovement)
	defResult := defRoll +
		int(shooterDefender.Defense.PerimeterDefense) +
		int(shooterDefender.Athleticism.Quickness)

	var result ActionOutput
	adv, ok := tuning.Tiers.Classify(atkResult - defResult)
	if !ok {
		passerUpdate.Turnovers = 1
		shooterDefenderUpdate.Steals = 1
		result = turnover(input, clock, fmt.Sprintf(
			"%s comes off the screen but %s jumps the passing lane and intercepts %s's pass.",
			shooter.LastName, shooterDefender.LastName, passer.LastName))
	} else {
		result = next(input)
		result.Advantage = adv
		result.Attackers = []int{shootIdx}
		result.Defenders = []int{shootIdx}
		result.AssistFrom = slotPtr(passIdx)
		result.EndAt = clock.Plus(input.EndAt, randutil.Between(rng, 3, 7))
		switch adv {
		case Attack:
			result.Situation = LongShot
			result.Description = fmt.Sprintf(
				"%s runs %s into the screen and catches %s's pass wide open beyond the arc.",
				shooter.LastName, shooterDefender.LastName, passer.LastName)
		case Neutral:
			result.Situation = LongShot
			result.Description = fmt.Sprintf(
				"%s curls off the screen and %s finds him for a catch-and-shoot.",
				shooter.LastName, passer.LastName)
		default:
			result.Situation = MediumShot
			result.Description = fmt.Sprintf(
				"%s fights through the screen, %s takes the pass a step inside the line.",
				shooterDefender.LastName, shooter.LastName)
		}
	}

	attackStats := StatsMap{}
	attackStats.Add(passer.ID, passerUpdate)
	attackStats.Add(shooter.ID, shooterUpdate)
	result.AttackStats = attackStats
	defenseStats := StatsMap{}
	defenseStats.Add(shooterDefender.ID, shooterDefenderUpdate)
	defenseStats.Add(passerDefender.ID, tired(passerDefender, tuning.Fatigue.Low))
	result.DefenseStats = defenseStats
	return result, nil
}
