package engine

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/courtside/internal/randutil"
)

var (
	handlerWeights = []int{6, 1, 2, 0, 0}
	screenWeights  = []int{1, 2, 3, 3, 2}
)

// PickAndRollAction runs a screen for the ball handler. Upstream actions may
// pin the handler (one attacker slot) or handler and target (two slots);
// anything not pinned is drawn by weight. When handler and target coincide
// the handler keeps the ball and looks for a long shot, otherwise the ball
// goes to the roll man.
type PickAndRollAction struct{}

func (PickAndRollAction) Execute(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error) {
	m, err := newMatchup(court, input.Possession)
	if err != nil {
		return ActionOutput{}, err
	}

	var playIdx, targetIdx int
	switch len(input.Attackers) {
	case 0:
		if playIdx, err = pick(rng, handlerWeights); err != nil {
			return ActionOutput{}, err
		}
		if targetIdx, err = pick(rng, screenWeights); err != nil {
			return ActionOutput{}, err
		}
	case 1:
		playIdx = input.Attackers[0]
		if targetIdx, err = pick(rng, screenWeights); err != nil {
			return ActionOutput{}, err
		}
	default:
		playIdx, targetIdx = input.Attackers[0], input.Attackers[1]
	}

	playmaker, err := m.attacker(playIdx)
	if err != nil {
		return ActionOutput{}, err
	}
	playmakerDefender, err := m.defender(playIdx)
	if err != nil {
		return ActionOutput{}, err
	}
	target, err := m.attacker(targetIdx)
	if err != nil {
		return ActionOutput{}, err
	}
	targetDefender, err := m.defender(targetIdx)
	if err != nil {
		return ActionOutput{}, err
	}

	tuning := court.Tuning()
	clock := court.Clock()

	attackStats := StatsMap{}
	defenseStats := StatsMap{}
	playmakerUpdate := tired(playmaker, tuning.Fatigue.Medium)
	playmakerDefenderUpdate := tired(playmakerDefender, tuning.Fatigue.Medium)
	targetDefenderUpdate := tired(targetDefender, tuning.Fatigue.Medium)

	timerIncrease := randutil.Between(rng, 2, 5)
	var result ActionOutput

	if playIdx == targetIdx {
		atkRoll, err := m.roll(rng, playmaker)
		if err != nil {
			return ActionOutput{}, err
		}
		defRoll, err := m.roll(rng, playmakerDefender)
		if err != nil {
			return ActionOutput{}, err
		}
		atkResult := atkRoll +
			int(playmaker.Technical.BallHandling) +
			int(playmaker.Athleticism.Quickness) +
			int(target.Mental.Vision)
		defResult := defRoll +
			int(playmakerDefender.Defense.PerimeterDefense) +
			int(playmakerDefender.Mental.Vision)

		adv, ok := tuning.Tiers.Classify(atkResult - defResult)
		if !ok {
			playmakerUpdate.Turnovers = 1
			playmakerDefenderUpdate.Steals = 1
			result = turnover(input, clock, fmt.Sprintf(
				"%s tries to use the screen but %s snatches the ball from %s.",
				playmaker.LastName, playmakerDefender.LastName, playmaker.LastName))
		} else {
			result = next(input)
			result.Advantage = adv
			result.Attackers = []int{playIdx}
			result.Defenders = []int{playIdx}
			result.Situation = LongShot
			result.EndAt = clock.Plus(input.EndAt, timerIncrease)
			switch adv {
			case Attack:
				result.Description = fmt.Sprintf(
					"%s uses the screen perfectly and is now open for the shot.",
					playmaker.LastName)
			case Neutral:
				result.Description = fmt.Sprintf(
					"They go for the pick'n'roll. %s goes through the screen and manages to get a bit of space to shoot.",
					playmaker.LastName)
			default:
				result.Description = fmt.Sprintf(
					"%s tries to use the screen but %s slides nicely to cover.",
					playmaker.LastName, playmakerDefender.LastName)
			}
		}
	} else {
		atkRoll, err := m.roll(rng, playmaker)
		if err != nil {
			return ActionOutput{}, err
		}
		defRoll, err := m.roll(rng, playmakerDefender)
		if err != nil {
			return ActionOutput{}, err
		}
		atkResult := atkRoll +
			int(playmaker.Technical.BallHandling) +
			int(playmaker.Technical.Passing) +
			int(target.Mental.OffBallMovement)
		defResult := defRoll +
			int(playmakerDefender.Defense.PerimeterDefense) +
			int(targetDefender.Athleticism.Quickness)

		adv, ok := tuning.Tiers.Classify(atkResult - defResult)
		if !ok {
			playmakerUpdate.Turnovers = 1
			playmakerDefenderUpdate.Steals = 1
			result = turnover(input, clock, fmt.Sprintf(
				"They go for the pick'n'roll but the defender reads that perfectly. %s tries to pass to %s but %s blocks the pass.",
				playmaker.LastName, target.LastName, playmakerDefender.LastName))
		} else {
			result = next(input)
			result.Advantage = adv
			result.Attackers = []int{targetIdx}
			result.AssistFrom = slotPtr(playIdx)
			result.EndAt = clock.Plus(input.EndAt, timerIncrease)
			switch adv {
			case Attack:
				// the switch leaves the handler's defender on the roll man
				result.Defenders = []int{playIdx}
				result.Situation = CloseShot
				result.Description = fmt.Sprintf(
					"%s and %s execute the pick'n'roll perfectly! %s is now open for the shot.",
					playmaker.LastName, target.LastName, target.LastName)
			case Neutral:
				result.Defenders = []int{playIdx}
				result.Situation = CloseShot
				result.Description = fmt.Sprintf(
					"They go for the pick'n'roll, nice move. %s passes to %s who is now ready to shoot.",
					playmaker.LastName, target.LastName)
			default:
				result.Defenders = []int{targetIdx}
				result.Situation = MediumShot
				result.Description = fmt.Sprintf(
					"They go for the pick'n'roll. %s passes to %s but %s is all over the shooter.",
					playmaker.LastName, target.LastName, targetDefender.LastName)
			}
		}
	}

	attackStats.Add(playmaker.ID, playmakerUpdate)
	defenseStats.Add(playmakerDefender.ID, playmakerDefenderUpdate)
	if playIdx != targetIdx {
		defenseStats.Add(targetDefender.ID, targetDefenderUpdate)
	}
	result.AttackStats = attackStats
	result.DefenseStats = defenseStats
	return result, nil
}
