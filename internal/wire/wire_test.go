package wire

import (
	"context"
	"strings"
	"testing"

	"github.com/lox/courtside/internal/engine"
	"github.com/lox/courtside/internal/engine/enginetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestIsDeterministic(t *testing.T) {
	a := enginetest.Game(t, 5)
	b := enginetest.Game(t, 5)
	require.NoError(t, a.Run(context.Background()))
	require.NoError(t, b.Run(context.Background()))

	da, err := Digest(a.Log())
	require.NoError(t, err)
	db, err := Digest(b.Log())
	require.NoError(t, err)
	assert.Equal(t, da, db)
	assert.Len(t, da, 64)
}

func TestDigestDetectsDivergence(t *testing.T) {
	g := enginetest.Game(t, 5)
	require.NoError(t, g.Run(context.Background()))
	log := g.Log()
	base, err := Digest(log)
	require.NoError(t, err)

	other := enginetest.Game(t, 6)
	require.NoError(t, other.Run(context.Background()))
	changed, err := Digest(other.Log())
	require.NoError(t, err)
	assert.NotEqual(t, base, changed)

	log[len(log)/2].Description += "!"
	tampered, err := Digest(log)
	require.NoError(t, err)
	assert.NotEqual(t, base, tampered)
}

func TestDigestEmptyLog(t *testing.T) {
	d1, err := Digest(nil)
	require.NoError(t, err)
	d2, err := Digest([]engine.ActionOutput{})
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestPlayRoundTrip(t *testing.T) {
	g := enginetest.Game(t, 2)
	out, err := g.Step()
	require.NoError(t, err)

	play := FromOutput(g.ID(), 0, engine.DefaultClock(), out)
	assert.Equal(t, "after_defensive_rebound", play.Situation)
	assert.True(t, strings.HasPrefix(play.Clock, "Q1 "), play.Clock)

	data, err := Marshal(&play)
	require.NoError(t, err)

	typ, err := PeekType(data)
	require.NoError(t, err)
	assert.Equal(t, TypePlay, typ)

	var decoded Play
	require.NoError(t, Unmarshal(data, &decoded))
	assert.Equal(t, play, decoded)
}

func TestResultFromGame(t *testing.T) {
	g := enginetest.Game(t, 11)
	require.NoError(t, g.Run(context.Background()))

	res, err := FromGame(g)
	require.NoError(t, err)
	home, away := g.Score()
	assert.Equal(t, home, res.Home.Score)
	assert.Equal(t, away, res.Away.Score)
	assert.Equal(t, "Home", res.Home.Name)
	assert.True(t, res.Finished)
	require.Len(t, res.Actions, len(g.Log()))
	assert.Equal(t, "end_of_game", res.Actions[len(res.Actions)-1].Situation)

	data, err := Marshal(&res)
	require.NoError(t, err)
	msg, err := Decode(data)
	require.NoError(t, err)
	require.IsType(t, &Result{}, msg)
	assert.Equal(t, res, *msg.(*Result))
}

func TestResultBytesMatchStream(t *testing.T) {
	g := enginetest.Game(t, 4)
	require.NoError(t, g.Run(context.Background()))
	res, err := FromGame(g)
	require.NoError(t, err)

	streamed, err := Marshal(&res)
	require.NoError(t, err)
	appended, err := res.MarshalMsg(nil)
	require.NoError(t, err)
	assert.Equal(t, streamed, appended)
	assert.LessOrEqual(t, len(appended), res.Msgsize())

	var decoded Result
	rest, err := decoded.UnmarshalMsg(appended)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, res, decoded)
}

func TestDecodeUnknownType(t *testing.T) {
	data, err := Marshal(&TeamScore{Name: "x", Score: 1})
	require.NoError(t, err)
	_, err = Decode(data)
	assert.ErrorIs(t, err, ErrUnknownMessageType)
}
