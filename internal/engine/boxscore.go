package engine

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// PlayerLine is one row of a box score.
type PlayerLine struct {
	ID    PlayerID
	Name  string
	Stats GameStats
}

// TeamBox is one side of a box score. Starters come first in slot order,
// then the bench by name and id.
type TeamBox struct {
	ID      uuid.UUID
	Name    string
	Score   int
	Players []PlayerLine
	Totals  GameStats
}

// BoxScore is a snapshot of both teams' ledgers.
type BoxScore struct {
	Home TeamBox
	Away TeamBox
}

// BoxScore snapshots the ledger. It can be taken at any point of the game.
func (g *Game) BoxScore() BoxScore {
	home, away := g.Score()
	return BoxScore{
		Home: g.teamBox(g.home, home),
		Away: g.teamBox(g.away, away),
	}
}

func (g *Game) teamBox(team *TeamInGame, score int) TeamBox {
	box := TeamBox{ID: team.ID, Name: team.Name, Score: score}
	for id, p := range team.Players {
		s, ok := g.ledger.Get(id)
		if !ok {
			continue
		}
		box.Players = append(box.Players, PlayerLine{
			ID:    id,
			Name:  p.FirstName + " " + p.LastName,
			Stats: s,
		})
		box.Totals.add(s)
	}
	box.Totals.Position = Bench
	box.Totals.Tiredness = 0
	sort.Slice(box.Players, func(i, j int) bool {
		a, b := box.Players[i].Stats.Position, box.Players[j].Stats.Position
		switch {
		case a == Bench && b == Bench:
			if box.Players[i].Name != box.Players[j].Name {
				return box.Players[i].Name < box.Players[j].Name
			}
			return bytes.Compare(box.Players[i].ID[:], box.Players[j].ID[:]) < 0
		case a == Bench:
			return false
		case b == Bench:
			return true
		default:
			return a < b
		}
	})
	return box
}
