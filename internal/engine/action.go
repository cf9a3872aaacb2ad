package engine

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/courtside/internal/randutil"
)

// ActionOutput is the record every action produces. It is the only channel
// from one action to the next and to observers of the play-by-play.
type ActionOutput struct {
	Possession  Possession
	Situation   Situation
	Advantage   Advantage
	Description string
	StartAt     Tick
	EndAt       Tick
	HomeScore   int
	AwayScore   int
	// Attackers and Defenders are lineup slots. An action may pin the
	// participants of the next one through them.
	Attackers []int
	Defenders []int
	// AssistFrom is the attacking slot that set up the shot, if any.
	AssistFrom   *int
	AttackStats  StatsMap
	DefenseStats StatsMap
}

// Score returns the points of side p.
func (o ActionOutput) Score(p Possession) int {
	if p == Home {
		return o.HomeScore
	}
	return o.AwayScore
}

// Court is the read-only game snapshot actions resolve against.
type Court interface {
	Team(p Possession) *TeamInGame
	// Stats returns a copy of a player's ledger entry.
	Stats(id PlayerID) (GameStats, bool)
	Clock() Clock
	Tuning() Tuning
	// OpeningPossession is the side that won the opening jump ball.
	OpeningPossession() Possession
}

// Action resolves one situation. Implementations must be pure functions of
// their arguments apart from drawing from rng; all effects travel in the
// returned output. An error leaves the game untouched.
type Action interface {
	Execute(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error)
}

// ActionFunc adapts a function to Action.
type ActionFunc func(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error)

func (f ActionFunc) Execute(input ActionOutput, court Court, rng *rand.Rand) (ActionOutput, error) {
	return f(input, court, rng)
}

// Roll is a player's random contribution to a contest: a draw in
// [0, RollMax] minus a penalty proportional to tiredness.
func Roll(rng *rand.Rand, tiredness float32, t Tuning) int {
	return rng.IntN(t.RollMax+1) - int(tiredness/t.FatigueDivisor)
}

// next starts an output that follows input: same possession and score, clock
// picking up where input ended.
func next(input ActionOutput) ActionOutput {
	return ActionOutput{
		Possession: input.Possession,
		StartAt:    input.EndAt,
		EndAt:      input.EndAt,
		HomeScore:  input.HomeScore,
		AwayScore:  input.AwayScore,
	}
}

// matchup is the pair of lineups for one possession.
type matchup struct {
	attackers []*Player
	defenders []*Player
	court     Court
}

func newMatchup(court Court, p Possession) (*matchup, error) {
	atk, err := court.Team(p).OnCourt()
	if err != nil {
		return nil, err
	}
	def, err := court.Team(p.Flip()).OnCourt()
	if err != nil {
		return nil, err
	}
	return &matchup{attackers: atk, defenders: def, court: court}, nil
}

func (m *matchup) attacker(slot int) (*Player, error) {
	if slot < 0 || slot >= len(m.attackers) {
		return nil, fmt.Errorf("%w: attacking slot %d", ErrMissingParticipant, slot)
	}
	return m.attackers[slot], nil
}

func (m *matchup) defender(slot int) (*Player, error) {
	if slot < 0 || slot >= len(m.defenders) {
		return nil, fmt.Errorf("%w: defending slot %d", ErrMissingParticipant, slot)
	}
	return m.defenders[slot], nil
}

func (m *matchup) stats(p *Player) (GameStats, error) {
	s, ok := m.court.Stats(p.ID)
	if !ok {
		return GameStats{}, fmt.Errorf("%w: no stats for %s %s", ErrMissingParticipant, p.FirstName, p.LastName)
	}
	return s, nil
}

// roll draws p's contest contribution.
func (m *matchup) roll(rng *rand.Rand, p *Player) (int, error) {
	s, err := m.stats(p)
	if err != nil {
		return 0, err
	}
	return Roll(rng, s.Tiredness, m.court.Tuning()), nil
}

// pick draws a slot by weight, mapping an empty draw to a missing participant.
func pick(rng *rand.Rand, weights []int) (int, error) {
	idx, err := randutil.Weighted(rng, weights)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMissingParticipant, err)
	}
	return idx, nil
}

// tired returns a delta carrying cost scaled by p's stamina.
func tired(p *Player, cost float32) GameStats {
	var s GameStats
	s.AddTiredness(cost, p.Athleticism.Stamina)
	return s
}

func slotPtr(slot int) *int { return &slot }

// turnover finishes a play the defence broke up: the ball changes hands and
// the clock runs exactly two seconds.
func turnover(input ActionOutput, clock Clock, description string) ActionOutput {
	out := next(input)
	out.Possession = input.Possession.Flip()
	out.Situation = Turnover
	out.Advantage = Defense
	out.Description = description
	out.EndAt = clock.Plus(input.EndAt, 2)
	return out
}
