package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/courtside/internal/engine"
	"github.com/lox/courtside/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleFlags() MatchFlags {
	return MatchFlags{
		Rosters:       filepath.Join("..", "..", "examples", "rosters.hcl"),
		Tuning:        filepath.Join("..", "..", "examples", "tuning.hcl"),
		Quarters:      4,
		QuarterLength: 600,
	}
}

func playExample(t *testing.T, seed int64) *engine.Game {
	t.Helper()
	m, err := exampleFlags().load()
	require.NoError(t, err)
	g, err := engine.NewGame(engine.Config{
		ID:     "example",
		Seed:   seed,
		Home:   m.home,
		Away:   m.away,
		Clock:  m.clock,
		Tuning: m.tuning,
	})
	require.NoError(t, err)
	require.NoError(t, g.Run(context.Background()))
	return g
}

func TestExampleTuningIsTheDefault(t *testing.T) {
	m, err := exampleFlags().load()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultTuning(), *m.tuning)
	assert.Equal(t, "Northside Comets", m.home.Name)
	assert.Equal(t, "Lakeport Tides", m.away.Name)
}

func TestLoadRejectsBadClock(t *testing.T) {
	flags := exampleFlags()
	flags.QuarterLength = 0
	_, err := flags.load()
	assert.Error(t, err)

	flags = exampleFlags()
	flags.Quarters = 0
	_, err = flags.load()
	assert.Error(t, err)

	// 2^32+600 would truncate to a valid 600 tick quarter
	wide := uint64(1)<<32 + 600
	flags = exampleFlags()
	flags.QuarterLength = int(wide)
	_, err = flags.load()
	assert.ErrorContains(t, err, "quarter length")
}

func TestResultRoundTripVerifies(t *testing.T) {
	g := playExample(t, 77)
	path := filepath.Join(t.TempDir(), "result.msgp")
	require.NoError(t, writeResult(path, g))

	res, err := readResult(path)
	require.NoError(t, err)
	assert.Equal(t, int64(77), res.Seed)

	teams, err := roster.Load(exampleFlags().Rosters)
	require.NoError(t, err)
	replayed, err := replay(exampleFlags(), teams, res)
	require.NoError(t, err)
	assert.NoError(t, compare(res, replayed))
}

func TestVerifyDetectsTampering(t *testing.T) {
	g := playExample(t, 78)
	path := filepath.Join(t.TempDir(), "result.msgp")
	require.NoError(t, writeResult(path, g))
	res, err := readResult(path)
	require.NoError(t, err)

	teams, err := roster.Load(exampleFlags().Rosters)
	require.NoError(t, err)
	replayed, err := replay(exampleFlags(), teams, res)
	require.NoError(t, err)

	tampered := *res
	tampered.Home.Score++
	assert.ErrorIs(t, compare(&tampered, replayed), ErrMismatch)

	tampered = *res
	tampered.Digest = "00"
	assert.ErrorIs(t, compare(&tampered, replayed), ErrMismatch)

	tampered = *res
	tampered.Seed++
	other, err := replay(exampleFlags(), teams, &tampered)
	require.NoError(t, err)
	assert.ErrorIs(t, compare(res, other), ErrMismatch)
}

func TestReadResultRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk")
	require.NoError(t, os.WriteFile(path, []byte("not msgpack"), 0o644))
	_, err := readResult(path)
	assert.Error(t, err)
}

func TestPrinters(t *testing.T) {
	g := playExample(t, 5)

	var buf bytes.Buffer
	printBoxScore(&buf, g.BoxScore())
	out := buf.String()
	assert.Contains(t, out, "Northside Comets")
	assert.Contains(t, out, "TOTAL")

	buf.Reset()
	p := playPrinter{w: &buf}
	p.OnAction(g, g.Latest())
	assert.Contains(t, buf.String(), "Q4 00:00")
}
