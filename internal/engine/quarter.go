package engine

import (
	"fmt"
	rand "math/rand/v2"
)

func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	if n%100 >= 11 && n%100 <= 13 {
		suffix = "th"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func scoreLine(court Court, o ActionOutput) string {
	return fmt.Sprintf("%s %d - %d %s",
		court.Team(Home).Name, o.HomeScore, o.AwayScore, court.Team(Away).Name)
}

// quarterPossession gives the 2nd and 3rd quarters to the side that lost the
// opening tip and the others to the winner.
func quarterPossession(opening Possession, period int) Possession {
	if period == 2 || period == 3 {
		return opening.Flip()
	}
	return opening
}

// EndOfQuarterAction rolls the clock over at a buzzer. It takes no game time.
// The break is a rest event for everyone on court; after the last quarter it
// hands over to the final whistle.
type EndOfQuarterAction struct{}

func (EndOfQuarterAction) Execute(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error) {
	clock := court.Clock()
	ended := clock.Period(input.EndAt)
	if clock.AtQuarterEnd(input.EndAt) {
		ended = int((input.EndAt-1)/clock.QuarterLength) + 1
	}

	out := next(input)
	if clock.Expired(input.EndAt) {
		out.Situation = EndOfGame
		out.Description = fmt.Sprintf("End of the %s quarter. %s.", ordinal(ended), scoreLine(court, input))
		return out, nil
	}

	m, err := newMatchup(court, input.Possession)
	if err != nil {
		return ActionOutput{}, err
	}
	rest := court.Tuning().QuarterRest
	attackStats := StatsMap{}
	defenseStats := StatsMap{}
	for _, p := range m.attackers {
		var s GameStats
		s.Rest(rest)
		attackStats.Add(p.ID, s)
	}
	for _, p := range m.defenders {
		var s GameStats
		s.Rest(rest)
		defenseStats.Add(p.ID, s)
	}

	out.Possession = quarterPossession(court.OpeningPossession(), ended+1)
	out.Situation = StartOfQuarter
	out.AttackStats = attackStats
	out.DefenseStats = defenseStats
	out.Description = fmt.Sprintf("End of the %s quarter. %s. %s will start the %s quarter with the ball.",
		ordinal(ended), scoreLine(court, input), court.Team(out.Possession).Name, ordinal(ended+1))
	return out, nil
}

// EndOfGameAction blows the final whistle. The session is finished once it
// has run.
type EndOfGameAction struct{}

func (EndOfGameAction) Execute(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error) {
	out := next(input)
	out.Situation = EndOfGame
	switch {
	case input.HomeScore > input.AwayScore:
		out.Description = fmt.Sprintf("Final whistle! %s win %d to %d.", court.Team(Home).Name, input.HomeScore, input.AwayScore)
	case input.AwayScore > input.HomeScore:
		out.Description = fmt.Sprintf("Final whistle! %s win %d to %d.", court.Team(Away).Name, input.AwayScore, input.HomeScore)
	default:
		out.Description = fmt.Sprintf("Final whistle! The game ends level at %d.", input.HomeScore)
	}
	return out, nil
}
