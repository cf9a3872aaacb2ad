package engine

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/courtside/internal/randutil"
)

func reboundScore(p *Player) int {
	return int(p.Technical.Rebounds) + p.JumpScore()/2
}

func reboundWeights(players []*Player) []int {
	w := make([]int, len(players))
	for i, p := range players {
		w[i] = reboundScore(p) + 1
	}
	return w
}

// ReboundAction fights for a missed shot. Each side boxes out with a
// weighted pick of its players; the defence gets DefensiveReboundBonus.
type ReboundAction struct{}

func (ReboundAction) Execute(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error) {
	m, err := newMatchup(court, input.Possession)
	if err != nil {
		return ActionOutput{}, err
	}
	atkIdx, err := pick(rng, reboundWeights(m.attackers))
	if err != nil {
		return ActionOutput{}, err
	}
	defIdx, err := pick(rng, reboundWeights(m.defenders))
	if err != nil {
		return ActionOutput{}, err
	}
	attacker, err := m.attacker(atkIdx)
	if err != nil {
		return ActionOutput{}, err
	}
	defender, err := m.defender(defIdx)
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
	attackerUpdate := tired(attacker, tuning.Fatigue.Low)
	defenderUpdate := tired(defender, tuning.Fatigue.Low)

	out := next(input)
	out.EndAt = court.Clock().Plus(input.EndAt, randutil.Between(rng, 1, 3))

	atkResult := atkRoll + reboundScore(attacker)
	defResult := defRoll + reboundScore(defender) + tuning.DefensiveReboundBonus
	if atkResult > defResult {
		attackerUpdate.OffensiveRebounds = 1
		out.Situation = AfterOffensiveRebound
		out.Advantage = Attack
		out.Attackers = []int{atkIdx}
		out.Description = fmt.Sprintf("Offensive rebound %s! %s outworks %s on the glass.",
			attacker.LastName, attacker.LastName, defender.LastName)
	} else {
		defenderUpdate.DefensiveRebounds = 1
		out.Possession = input.Possession.Flip()
		out.Situation = AfterDefensiveRebound
		out.Attackers = []int{defIdx}
		out.Description = fmt.Sprintf("%s secures the defensive rebound.", defender.LastName)
	}

	out.AttackStats = StatsMap{attacker.ID: attackerUpdate}
	out.DefenseStats = StatsMap{defender.ID: defenderUpdate}
	return out, nil
}
