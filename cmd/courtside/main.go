package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/lox/courtside/cmd/courtside/shared"
	"github.com/rs/zerolog"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Debug    bool `help:"Enable debug logging" env:"COURTSIDE_DEBUG"`
	JSONLogs bool `name:"json-logs" help:"Log JSON to stderr instead of console output" env:"COURTSIDE_JSON_LOGS"`
}

// Logger builds the logger the flags ask for.
func (g *Globals) Logger() zerolog.Logger {
	if g.JSONLogs {
		return shared.SetupStructuredLogger(os.Stderr, g.Debug)
	}
	return shared.SetupLogger(g.Debug)
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play one game and print the play-by-play"`
	Simulate SimulateCmd      `cmd:"" help:"Play many seeded games in parallel and summarise them"`
	Verify   VerifyCmd        `cmd:"" help:"Replay a result file and check its digest"`
	Serve    ServeCmd         `cmd:"" help:"Stream games live over websocket"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("courtside"),
		kong.Description("Deterministic basketball possession engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
