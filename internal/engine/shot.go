package engine

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/courtside/internal/randutil"
)

var shooterFallbackWeights = []int{3, 3, 3, 2, 2}

// ShotAction resolves a close, medium or long attempt. Shooter and contesting
// defender come pinned from the previous action; the advantage it earned
// shifts the odds.
type ShotAction struct {
	Range Situation // CloseShot, MediumShot or LongShot
}

func (a ShotAction) points() int {
	if a.Range == LongShot {
		return 3
	}
	return 2
}

func (a ShotAction) skills(shooter, defender *Player, t Tuning) (atk, def, threshold int) {
	switch a.Range {
	case CloseShot:
		return 2 * int(shooter.Offense.CloseRange),
			int(defender.Defense.InteriorDefense) + int(defender.Defense.Block),
			t.Shots.Close
	case MediumShot:
		return 2 * int(shooter.Offense.MediumRange),
			int(defender.Defense.PerimeterDefense) + int(defender.Defense.Block)/2 + int(defender.Athleticism.Quickness)/2,
			t.Shots.Medium
	default:
		return 2 * int(shooter.Offense.LongRange),
			int(defender.Defense.PerimeterDefense) + int(defender.Athleticism.Quickness),
			t.Shots.Long
	}
}

func (a ShotAction) Execute(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error) {
	if a.Range != CloseShot && a.Range != MediumShot && a.Range != LongShot {
		return ActionOutput{}, fmt.Errorf("shot: %s is not a shot range", a.Range)
	}
	m, err := newMatchup(court, input.Possession)
	if err != nil {
		return ActionOutput{}, err
	}

	var shootIdx int
	if len(input.Attackers) > 0 {
		shootIdx = input.Attackers[0]
	} else if shootIdx, err = pick(rng, shooterFallbackWeights); err != nil {
		return ActionOutput{}, err
	}
	defIdx := shootIdx
	if len(input.Defenders) > 0 {
		defIdx = input.Defenders[0]
	}

	shooter, err := m.attacker(shootIdx)
	if err != nil {
		return ActionOutput{}, err
	}
	defender, err := m.defender(defIdx)
	if err != nil {
		return ActionOutput{}, err
	}
	var assister *Player
	if input.AssistFrom != nil && *input.AssistFrom != shootIdx {
		if assister, err = m.attacker(*input.AssistFrom); err != nil {
			return ActionOutput{}, err
		}
	}

	atkRoll, err := m.roll(rng, shooter)
	if err != nil {
		return ActionOutput{}, err
	}
	defRoll, err := m.roll(rng, defender)
	if err != nil {
		return ActionOutput{}, err
	}

	tuning := court.Tuning()
	clock := court.Clock()
	atkSkill, defSkill, threshold := a.skills(shooter, defender, tuning)
	atkResult := atkRoll + atkSkill
	switch input.Advantage {
	case Attack:
		atkResult += tuning.AdvantageBonus
	case Defense:
		atkResult -= tuning.AdvantageBonus
	}
	diff := atkResult - (defRoll + defSkill)

	shooterUpdate := tired(shooter, tuning.Fatigue.Low)
	defenderUpdate := tired(defender, tuning.Fatigue.Low)
	if a.Range == LongShot {
		shooterUpdate.ThreePointAttempts = 1
	} else {
		shooterUpdate.TwoPointAttempts = 1
	}

	attackStats := StatsMap{}
	defenseStats := StatsMap{}
	out := next(input)
	out.EndAt = clock.Plus(input.EndAt, randutil.Between(rng, 1, 3))

	if diff > threshold {
		pts := a.points()
		shooterUpdate.Points = pts
		if a.Range == LongShot {
			shooterUpdate.ThreePointMade = 1
		} else {
			shooterUpdate.TwoPointMade = 1
		}
		for _, p := range m.attackers {
			attackStats.Add(p.ID, GameStats{PlusMinus: pts})
		}
		for _, p := range m.defenders {
			defenseStats.Add(p.ID, GameStats{PlusMinus: -pts})
		}
		if input.Possession == Home {
			out.HomeScore += pts
		} else {
			out.AwayScore += pts
		}
		out.Possession = input.Possession.Flip()
		out.Situation = AfterMadeShot
		out.Description = a.madeDescription(shooter, defender, assister)
		if assister != nil {
			attackStats.Add(assister.ID, GameStats{Assists: 1})
		}
	} else {
		out.Situation = MissedShot
		out.Attackers = []int{shootIdx}
		out.Defenders = []int{defIdx}
		if a.Range != LongShot && diff <= -tuning.BlockMargin {
			defenderUpdate.Blocks = 1
			out.Description = fmt.Sprintf("%s goes up but %s sends it back!", shooter.LastName, defender.LastName)
		} else {
			out.Description = a.missedDescription(shooter, defender)
		}
	}

	attackStats.Add(shooter.ID, shooterUpdate)
	defenseStats.Add(defender.ID, defenderUpdate)
	out.AttackStats = attackStats
	out.DefenseStats = defenseStats
	return out, nil
}

func (a ShotAction) madeDescription(shooter, defender *Player, assister *Player) string {
	var s string
	switch a.Range {
	case CloseShot:
		s = fmt.Sprintf("%s finishes at the rim over %s.", shooter.LastName, defender.LastName)
	case MediumShot:
		s = fmt.Sprintf("%s knocks down the jumper from mid-range.", shooter.LastName)
	default:
		s = fmt.Sprintf("%s drains the three!", shooter.LastName)
	}
	if assister != nil {
		s += fmt.Sprintf(" Assist by %s.", assister.LastName)
	}
	return s
}

func (a ShotAction) missedDescription(shooter, defender *Player) string {
	switch a.Range {
	case CloseShot:
		return fmt.Sprintf("%s's layup rolls off the rim with %s bothering it.", shooter.LastName, defender.LastName)
	case MediumShot:
		return fmt.Sprintf("%s misses the jumper from mid-range.", shooter.LastName)
	default:
		return fmt.Sprintf("%s fires from three... no good.", shooter.LastName)
	}
}
