package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/lox/courtside/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollFatiguePenalty(t *testing.T) {
	tuning := DefaultTuning()
	rng := randutil.New(1)
	for i := 0; i < 200; i++ {
		r := Roll(rng, 40, tuning)
		assert.GreaterOrEqual(t, r, -10)
		assert.LessOrEqual(t, r, tuning.RollMax-10)
	}
}

func TestJumpBallHigherJumperWins(t *testing.T) {
	home := newTestTeam("home", 20)
	away := newTestTeam("away", 0)
	court := newTestCourt(home, away)
	court.tuning = lowRollTuning()

	for seed := int64(0); seed < 50; seed++ {
		out, err := JumpBallAction{}.Execute(ActionOutput{Situation: JumpBall}, court, randutil.New(seed))
		require.NoError(t, err)

		assert.Equal(t, AfterDefensiveRebound, out.Situation)
		assert.Equal(t, Home, out.Possession)
		assert.Equal(t, Tick(0), out.StartAt)
		assert.GreaterOrEqual(t, out.EndAt, Tick(4))
		assert.LessOrEqual(t, out.EndAt, Tick(12))
	}
}

func TestJumpBallEvenContestIsDeterministic(t *testing.T) {
	court := newTestCourt(newTestTeam("home", 10), newTestTeam("away", 10))

	a, err := JumpBallAction{}.Execute(ActionOutput{Situation: JumpBall}, court, randutil.New(7))
	require.NoError(t, err)
	b, err := JumpBallAction{}.Execute(ActionOutput{Situation: JumpBall}, court, randutil.New(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestJumpBallTieGoesToCoinFlip(t *testing.T) {
	court := newTestCourt(newTestTeam("home", 10), newTestTeam("away", 10))
	court.tuning = lowRollTuning()

	won := map[Possession]int{}
	for seed := int64(0); seed < 200; seed++ {
		out, err := JumpBallAction{}.Execute(ActionOutput{Situation: JumpBall}, court, randutil.New(seed))
		require.NoError(t, err)

		assert.Equal(t, AfterDefensiveRebound, out.Situation)
		assert.GreaterOrEqual(t, out.EndAt, Tick(4))
		assert.LessOrEqual(t, out.EndAt, Tick(12))
		if strings.Contains(out.Description, "Nobody wins the jump ball") {
			won[out.Possession]++
		}
	}
	assert.Positive(t, won[Home], "home never won a tied jump ball")
	assert.Positive(t, won[Away], "away never won a tied jump ball")
}

func TestPickAndRollSamePlayerTurnover(t *testing.T) {
	home := newTestTeam("home", 0)
	away := newTestTeam("away", 20)
	court := newTestCourt(home, away)
	court.tuning = lowRollTuning()

	input := ActionOutput{
		Possession: Home,
		Situation:  PickAndRoll,
		StartAt:    90,
		EndAt:      100,
		HomeScore:  10,
		AwayScore:  8,
		Attackers:  []int{2, 2},
	}
	out, err := PickAndRollAction{}.Execute(input, court, randutil.New(3))
	require.NoError(t, err)

	handler := player(home, 2)
	defender := player(away, 2)
	assert.Equal(t, Turnover, out.Situation)
	assert.Equal(t, Away, out.Possession)
	assert.Equal(t, Tick(100), out.StartAt)
	assert.Equal(t, Tick(102), out.EndAt)
	assert.Equal(t, 10, out.HomeScore)
	assert.Equal(t, 8, out.AwayScore)
	assert.Equal(t, 1, out.AttackStats[handler.ID].Turnovers)
	assert.Equal(t, 1, out.DefenseStats[defender.ID].Steals)

	// one defender covers both roles and is charged once, halved by full stamina
	require.Len(t, out.DefenseStats, 1)
	assert.InDelta(t, court.tuning.Fatigue.Medium/2, out.DefenseStats[defender.ID].Tiredness, 1e-6)
}

func TestPickAndRollPassToOpenRoller(t *testing.T) {
	home := newTestTeam("home", 20)
	away := newTestTeam("away", 0)
	court := newTestCourt(home, away)
	court.tuning = lowRollTuning()

	input := ActionOutput{Possession: Home, Situation: PickAndRoll, EndAt: 50, Attackers: []int{0, 3}}
	out, err := PickAndRollAction{}.Execute(input, court, randutil.New(11))
	require.NoError(t, err)

	assert.Equal(t, CloseShot, out.Situation)
	assert.Equal(t, Attack, out.Advantage)
	assert.Equal(t, Home, out.Possession)
	require.NotNil(t, out.AssistFrom)
	assert.Equal(t, 0, *out.AssistFrom)
	assert.Equal(t, []int{3}, out.Attackers)
	assert.Equal(t, []int{0}, out.Defenders)
	assert.GreaterOrEqual(t, out.EndAt, Tick(52))
	assert.LessOrEqual(t, out.EndAt, Tick(55))

	assert.Contains(t, out.DefenseStats, player(away, 0).ID)
	assert.Contains(t, out.DefenseStats, player(away, 3).ID)
}

func TestPickAndRollDeflectedPass(t *testing.T) {
	home := newTestTeam("home", 0)
	away := newTestTeam("away", 20)
	court := newTestCourt(home, away)
	court.tuning = lowRollTuning()

	input := ActionOutput{Possession: Home, Situation: PickAndRoll, StartAt: 40, EndAt: 50, Attackers: []int{1, 4}}
	out, err := PickAndRollAction{}.Execute(input, court, randutil.New(5))
	require.NoError(t, err)

	handler := player(home, 1)
	handlerDefender := player(away, 1)
	targetDefender := player(away, 4)
	assert.Equal(t, Turnover, out.Situation)
	assert.Equal(t, Away, out.Possession)
	assert.Equal(t, Tick(50), out.StartAt)
	assert.Equal(t, Tick(52), out.EndAt)
	assert.Contains(t, out.Description, "blocks the pass")

	assert.Equal(t, 1, out.AttackStats[handler.ID].Turnovers)
	assert.Equal(t, 1, out.DefenseStats[handlerDefender.ID].Steals)
	require.Contains(t, out.DefenseStats, targetDefender.ID)
	assert.Zero(t, out.DefenseStats[targetDefender.ID].Steals)
	assert.Positive(t, out.DefenseStats[targetDefender.ID].Tiredness)
}

func TestPickAndRollPassDefenceTier(t *testing.T) {
	// 30 against 40 plus rolls in [0, 1] always lands between -20 and 0
	home := newTestTeam("home", 10)
	away := newTestTeam("away", 20)
	court := newTestCourt(home, away)
	court.tuning = lowRollTuning()

	for seed := int64(0); seed < 20; seed++ {
		input := ActionOutput{Possession: Home, Situation: PickAndRoll, EndAt: 50, Attackers: []int{0, 3}}
		out, err := PickAndRollAction{}.Execute(input, court, randutil.New(seed))
		require.NoError(t, err)

		assert.Equal(t, MediumShot, out.Situation)
		assert.Equal(t, Defense, out.Advantage)
		assert.Equal(t, Home, out.Possession)
		assert.Equal(t, []int{3}, out.Attackers)
		assert.Equal(t, []int{3}, out.Defenders)
		require.NotNil(t, out.AssistFrom)
		assert.Equal(t, 0, *out.AssistFrom)
		assert.GreaterOrEqual(t, out.EndAt, Tick(52))
		assert.LessOrEqual(t, out.EndAt, Tick(55))
	}
}

func TestPickAndRollMissingSlot(t *testing.T) {
	court := newTestCourt(newTestTeam("home", 10), newTestTeam("away", 10))

	_, err := PickAndRollAction{}.Execute(ActionOutput{Attackers: []int{7}}, court, randutil.New(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingParticipant))
}

func TestShotMadeCreditsScoreAndAssist(t *testing.T) {
	home := newTestTeam("home", 20)
	away := newTestTeam("away", 0)
	court := newTestCourt(home, away)
	court.tuning = lowRollTuning()

	input := ActionOutput{
		Possession: Home,
		Situation:  LongShot,
		Advantage:  Attack,
		EndAt:      200,
		HomeScore:  20,
		AwayScore:  22,
		Attackers:  []int{0},
		Defenders:  []int{0},
		AssistFrom: slotPtr(1),
	}
	out, err := ShotAction{Range: LongShot}.Execute(input, court, randutil.New(5))
	require.NoError(t, err)

	shooter := player(home, 0)
	assert.Equal(t, AfterMadeShot, out.Situation)
	assert.Equal(t, Away, out.Possession)
	assert.Equal(t, 23, out.HomeScore)
	assert.Equal(t, 22, out.AwayScore)
	assert.Equal(t, 3, out.AttackStats[shooter.ID].Points)
	assert.Equal(t, 1, out.AttackStats[shooter.ID].ThreePointAttempts)
	assert.Equal(t, 1, out.AttackStats[shooter.ID].ThreePointMade)
	assert.Equal(t, 1, out.AttackStats[player(home, 1).ID].Assists)

	for slot := 0; slot < LineupSize; slot++ {
		assert.Equal(t, 3, out.AttackStats[player(home, slot).ID].PlusMinus)
		assert.Equal(t, -3, out.DefenseStats[player(away, slot).ID].PlusMinus)
	}
}

func TestShotBlocked(t *testing.T) {
	home := newTestTeam("home", 0)
	away := newTestTeam("away", 20)
	court := newTestCourt(home, away)
	court.tuning = lowRollTuning()

	input := ActionOutput{Possession: Home, Situation: CloseShot, EndAt: 300, Attackers: []int{4}, Defenders: []int{4}}
	out, err := ShotAction{Range: CloseShot}.Execute(input, court, randutil.New(9))
	require.NoError(t, err)

	assert.Equal(t, MissedShot, out.Situation)
	assert.Equal(t, Home, out.Possession)
	assert.Zero(t, out.HomeScore)
	assert.Equal(t, []int{4}, out.Attackers)
	assert.Equal(t, 1, out.DefenseStats[player(away, 4).ID].Blocks)
	assert.Equal(t, 1, out.AttackStats[player(home, 4).ID].TwoPointAttempts)
	assert.Zero(t, out.AttackStats[player(home, 4).ID].TwoPointMade)
}

func TestShotRejectsNonShotSituation(t *testing.T) {
	court := newTestCourt(newTestTeam("home", 10), newTestTeam("away", 10))
	_, err := ShotAction{Range: PostUp}.Execute(ActionOutput{}, court, randutil.New(1))
	assert.Error(t, err)
}

func TestReboundDefenceSecures(t *testing.T) {
	home := newTestTeam("home", 0)
	away := newTestTeam("away", 20)
	court := newTestCourt(home, away)
	court.tuning = lowRollTuning()

	out, err := ReboundAction{}.Execute(ActionOutput{Possession: Home, Situation: MissedShot, EndAt: 40}, court, randutil.New(2))
	require.NoError(t, err)

	assert.Equal(t, AfterDefensiveRebound, out.Situation)
	assert.Equal(t, Away, out.Possession)
	require.Len(t, out.Attackers, 1)
	rebounder := player(away, out.Attackers[0])
	assert.Equal(t, 1, out.DefenseStats[rebounder.ID].DefensiveRebounds)
}

func TestReboundOffenceCrashesTheGlass(t *testing.T) {
	home := newTestTeam("home", 20)
	away := newTestTeam("away", 0)
	court := newTestCourt(home, away)
	court.tuning = lowRollTuning()

	out, err := ReboundAction{}.Execute(ActionOutput{Possession: Home, Situation: MissedShot, EndAt: 40}, court, randutil.New(2))
	require.NoError(t, err)

	assert.Equal(t, AfterOffensiveRebound, out.Situation)
	assert.Equal(t, Home, out.Possession)
	require.Len(t, out.Attackers, 1)
	assert.Equal(t, 1, out.AttackStats[player(home, out.Attackers[0]).ID].OffensiveRebounds)
}

func TestStartOfPossessionCallsAPlay(t *testing.T) {
	court := newTestCourt(newTestTeam("home", 10), newTestTeam("away", 10))

	for seed := int64(0); seed < 30; seed++ {
		input := ActionOutput{Possession: Away, Situation: StartOfQuarter, StartAt: 600, EndAt: 600}
		out, err := StartOfPossessionAction{}.Execute(input, court, randutil.New(seed))
		require.NoError(t, err)

		assert.Contains(t, plays, out.Situation)
		assert.Equal(t, Away, out.Possession)
		assert.GreaterOrEqual(t, out.EndAt, Tick(602))
		assert.LessOrEqual(t, out.EndAt, Tick(605))
	}
}

func TestStartOfPossessionFollowsTactic(t *testing.T) {
	home := newTestTeam("home", 10)
	home.Tactic = Inside
	court := newTestCourt(home, newTestTeam("away", 10))
	rng := randutil.New(4)

	counts := map[Situation]int{}
	for i := 0; i < 400; i++ {
		out, err := StartOfPossessionAction{}.Execute(ActionOutput{Possession: Home, Situation: AfterMadeShot}, court, rng)
		require.NoError(t, err)
		counts[out.Situation]++
	}
	assert.Greater(t, counts[PostUp], counts[Isolation])
	assert.Greater(t, counts[PostUp], counts[OffTheScreen])
}

func TestIsolationAndPostUpTurnovers(t *testing.T) {
	home := newTestTeam("home", 0)
	away := newTestTeam("away", 20)
	court := newTestCourt(home, away)
	court.tuning = lowRollTuning()
	input := ActionOutput{Possession: Home, EndAt: 10, Attackers: []int{1}}

	for _, action := range []Action{IsolationAction{}, PostUpAction{}, OffTheScreenAction{}} {
		out, err := action.Execute(input, court, randutil.New(8))
		require.NoError(t, err)
		assert.Equal(t, Turnover, out.Situation)
		assert.Equal(t, Away, out.Possession)
		assert.Equal(t, Tick(12), out.EndAt)

		turnovers, steals := 0, 0
		for _, s := range out.AttackStats {
			turnovers += s.Turnovers
		}
		for _, s := range out.DefenseStats {
			steals += s.Steals
		}
		assert.Equal(t, 1, turnovers)
		assert.Equal(t, 1, steals)
	}
}

func TestEndOfQuarterAlternatesPossession(t *testing.T) {
	home := newTestTeam("home", 10)
	away := newTestTeam("away", 10)
	court := newTestCourt(home, away)
	court.opening = Home
	for _, s := range court.ledger {
		s.Tiredness = 25
	}

	tests := []struct {
		at   Tick
		want Possession
	}{
		{600, Away},
		{1200, Away},
		{1800, Home},
	}
	for _, tt := range tests {
		out, err := EndOfQuarterAction{}.Execute(ActionOutput{Possession: Home, Situation: CloseShot, EndAt: tt.at}, court, randutil.New(1))
		require.NoError(t, err)
		assert.Equal(t, StartOfQuarter, out.Situation)
		assert.Equal(t, tt.want, out.Possession, "after %d", tt.at)
		assert.Equal(t, tt.at, out.StartAt)
		assert.Equal(t, tt.at, out.EndAt)

		require.Len(t, out.AttackStats, LineupSize)
		require.Len(t, out.DefenseStats, LineupSize)
		for _, s := range out.AttackStats {
			assert.InDelta(t, -court.tuning.QuarterRest, s.Tiredness, 1e-6)
		}
	}
}

func TestEndOfQuarterAtFinalBuzzer(t *testing.T) {
	court := newTestCourt(newTestTeam("home", 10), newTestTeam("away", 10))

	out, err := EndOfQuarterAction{}.Execute(ActionOutput{Possession: Away, Situation: MissedShot, EndAt: 2400, HomeScore: 80, AwayScore: 77}, court, randutil.New(1))
	require.NoError(t, err)
	assert.Equal(t, EndOfGame, out.Situation)
	assert.Contains(t, out.Description, "4th quarter")
	assert.Empty(t, out.AttackStats)
}

func TestOrdinal(t *testing.T) {
	assert.Equal(t, "1st", ordinal(1))
	assert.Equal(t, "2nd", ordinal(2))
	assert.Equal(t, "3rd", ordinal(3))
	assert.Equal(t, "4th", ordinal(4))
	assert.Equal(t, "11th", ordinal(11))
	assert.Equal(t, "22nd", ordinal(22))
}
