package engine

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/courtside/internal/randutil"
)

// JumpBallAction opens the game. Each side sends its best jumper; the higher
// jump score plus roll wins the first possession, a tie goes to a coin flip.
type JumpBallAction struct{}

func bestJumper(players []*Player) *Player {
	var best *Player
	for _, p := range players {
		if best == nil || p.JumpScore() > best.JumpScore() {
			best = p
		}
	}
	return best
}

func (JumpBallAction) Execute(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error) {
	homePlayers, err := court.Team(Home).OnCourt()
	if err != nil {
		return ActionOutput{}, err
	}
	awayPlayers, err := court.Team(Away).OnCourt()
	if err != nil {
		return ActionOutput{}, err
	}
	homeJumper := bestJumper(homePlayers)
	awayJumper := bestJumper(awayPlayers)

	homeStats, ok := court.Stats(homeJumper.ID)
	if !ok {
		return ActionOutput{}, fmt.Errorf("%w: no stats for jumper %s", ErrMissingParticipant, homeJumper.LastName)
	}
	awayStats, ok := court.Stats(awayJumper.ID)
	if !ok {
		return ActionOutput{}, fmt.Errorf("%w: no stats for jumper %s", ErrMissingParticipant, awayJumper.LastName)
	}

	tuning := court.Tuning()
	homeResult := Roll(rng, homeStats.Tiredness, tuning) + homeJumper.JumpScore()
	awayResult := Roll(rng, awayStats.Tiredness, tuning) + awayJumper.JumpScore()

	timerIncrease := randutil.Between(rng, 4, 12)

	out := next(input)
	out.Situation = AfterDefensiveRebound
	out.EndAt = court.Clock().Plus(input.EndAt, timerIncrease)

	switch diff := homeResult - awayResult; {
	case diff > 0:
		out.Possession = Home
		out.Description = fmt.Sprintf(
			"%s and %s prepare for the jump ball. %s wins the jump ball. %s will have the first possession.",
			homeJumper.LastName, awayJumper.LastName, homeJumper.LastName, court.Team(Home).Name)
	case diff < 0:
		out.Possession = Away
		out.Description = fmt.Sprintf(
			"%s and %s prepare for the jump ball. %s wins the jump ball. %s will have the first possession.",
			homeJumper.LastName, awayJumper.LastName, awayJumper.LastName, court.Team(Away).Name)
	default:
		out.Possession = Away
		if randutil.CoinFlip(rng) {
			out.Possession = Home
		}
		out.Description = fmt.Sprintf(
			"%s and %s prepare for the jump ball.\nNobody wins the jump ball, but %s hustles for it.",
			homeJumper.LastName, awayJumper.LastName, court.Team(out.Possession).Name)
	}
	return out, nil
}
