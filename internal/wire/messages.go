package wire

//go:generate msgp

import (
	"github.com/lox/courtside/internal/engine"
)

// Message types carried in the "type" field of every frame.
const (
	TypePlay   = "play"
	TypeResult = "result"
)

// Play is one action of a game as streamed to feed clients.
type Play struct {
	Type        string `msg:"type"`
	GameID      string `msg:"game_id"`
	Seq         uint32 `msg:"seq"`
	StartAt     uint32 `msg:"start_at"`
	EndAt       uint32 `msg:"end_at"`
	Clock       string `msg:"clock"`
	Situation   string `msg:"situation"`
	Possession  string `msg:"possession"`
	Advantage   string `msg:"advantage"`
	HomeScore   int    `msg:"home_score"`
	AwayScore   int    `msg:"away_score"`
	Description string `msg:"description"`
}

// TeamScore is one side of a Result.
type TeamScore struct {
	Name  string `msg:"name"`
	Score int    `msg:"score"`
}

// Result is the record peers exchange to compare a game: its outcome, its
// play-by-play and the digest of the full action log.
type Result struct {
	Type     string    `msg:"type"`
	GameID   string    `msg:"game_id"`
	Seed     int64     `msg:"seed"`
	Home     TeamScore `msg:"home"`
	Away     TeamScore `msg:"away"`
	Actions  []Play    `msg:"actions"`
	Finished bool      `msg:"finished"`
	Digest   string    `msg:"digest"`
}

// FromOutput converts the seq'th output of a game into a Play.
func FromOutput(gameID string, seq int, clock engine.Clock, out engine.ActionOutput) Play {
	return Play{
		Type:        TypePlay,
		GameID:      gameID,
		Seq:         uint32(seq),
		StartAt:     uint32(out.StartAt),
		EndAt:       uint32(out.EndAt),
		Clock:       clock.Format(out.EndAt),
		Situation:   out.Situation.String(),
		Possession:  out.Possession.String(),
		Advantage:   out.Advantage.String(),
		HomeScore:   out.HomeScore,
		AwayScore:   out.AwayScore,
		Description: out.Description,
	}
}

// FromGame builds the Result of g, digesting its log.
func FromGame(g *engine.Game) (Result, error) {
	log := g.Log()
	digest, err := Digest(log)
	if err != nil {
		return Result{}, err
	}
	home, away := g.Score()
	clock := g.Clock()
	plays := make([]Play, len(log))
	for i, out := range log {
		plays[i] = FromOutput(g.ID(), i, clock, out)
	}
	return Result{
		Type:     TypeResult,
		GameID:   g.ID(),
		Seed:     g.Seed(),
		Home:     TeamScore{Name: g.Team(engine.Home).Name, Score: home},
		Away:     TeamScore{Name: g.Team(engine.Away).Name, Score: away},
		Actions:  plays,
		Finished: g.Finished(),
		Digest:   digest,
	}, nil
}
