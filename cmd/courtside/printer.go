package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lox/courtside/internal/engine"
)

// playPrinter writes the play-by-play as the game runs.
type playPrinter struct {
	w io.Writer
}

func (p playPrinter) OnAction(g *engine.Game, out engine.ActionOutput) {
	fmt.Fprintf(p.w, "%s  %3d-%-3d  %s\n", g.Clock().Format(out.EndAt), out.HomeScore, out.AwayScore, out.Description)
}

func (p playPrinter) OnGameComplete(g *engine.Game) {}

func printBoxScore(w io.Writer, box engine.BoxScore) {
	for _, team := range []engine.TeamBox{box.Home, box.Away} {
		fmt.Fprintf(w, "\n%s %d\n", team.Name, team.Score)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "PLAYER\tPTS\tFG\t3P\tOREB\tDREB\tAST\tSTL\tBLK\tTO\t+/-\t")
		for _, line := range team.Players {
			writeLine(tw, line.Name, line.Stats)
		}
		writeLine(tw, "TOTAL", team.Totals)
		_ = tw.Flush()
	}
}

func writeLine(w io.Writer, name string, s engine.GameStats) {
	made, attempted := s.FieldGoals()
	fmt.Fprintf(w, "%s\t%d\t%d-%d\t%d-%d\t%d\t%d\t%d\t%d\t%d\t%d\t%+d\t\n",
		name, s.Points, made, attempted, s.ThreePointMade, s.ThreePointAttempts,
		s.OffensiveRebounds, s.DefensiveRebounds, s.Assists, s.Steals, s.Blocks, s.Turnovers, s.PlusMinus)
}
