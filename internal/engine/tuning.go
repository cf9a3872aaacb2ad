package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Tiers holds the advantage cut points. A contest result above Attack is an
// attack advantage, above Neutral neutral, above Defense a defensive
// advantage; anything at or below Defense is the turnover branch.
type Tiers struct {
	Attack  int `hcl:"attack,optional"`
	Neutral int `hcl:"neutral,optional"`
	Defense int `hcl:"defense,optional"`
}

// Classify maps a contest result to a tier. ok is false on the turnover
// branch.
func (t Tiers) Classify(diff int) (adv Advantage, ok bool) {
	switch {
	case diff > t.Attack:
		return Attack, true
	case diff > t.Neutral:
		return Neutral, true
	case diff > t.Defense:
		return Defense, true
	default:
		return Defense, false
	}
}

// FatigueCosts are base tiredness costs before stamina scaling.
type FatigueCosts struct {
	Low    float32 `hcl:"low,optional"`
	Medium float32 `hcl:"medium,optional"`
	High   float32 `hcl:"high,optional"`
}

// ShotThresholds are the contest margins a shot must beat to go in.
type ShotThresholds struct {
	Close  int `hcl:"close,optional"`
	Medium int `hcl:"medium,optional"`
	Long   int `hcl:"long,optional"`
}

// Tuning collects the balancing constants. None of them change engine
// logic; they only move the odds.
type Tuning struct {
	// RollMax bounds the random draw of Roll to [0, RollMax].
	RollMax int
	// FatigueDivisor converts tiredness into a roll penalty.
	FatigueDivisor float32
	// AdvantageBonus is added to (or taken from) a shot by the advantage the
	// previous action earned.
	AdvantageBonus int
	// DefensiveReboundBonus favours the defence in rebound contests.
	DefensiveReboundBonus int
	// BlockMargin is how badly a close or medium shot must lose to be blocked.
	BlockMargin int
	// QuarterRest is the tiredness recovered at each quarter break.
	QuarterRest float32

	Tiers   Tiers
	Fatigue FatigueCosts
	Shots   ShotThresholds
}

// DefaultTuning returns the stock balance.
func DefaultTuning() Tuning {
	return Tuning{
		RollMax:               50,
		FatigueDivisor:        4,
		AdvantageBonus:        10,
		DefensiveReboundBonus: 15,
		BlockMargin:           25,
		QuarterRest:           10,
		Tiers:                 Tiers{Attack: 20, Neutral: 0, Defense: -20},
		Fatigue:               FatigueCosts{Low: 0.25, Medium: 0.5, High: 1},
		Shots:                 ShotThresholds{Close: 5, Medium: 12, Long: 17},
	}
}

// Validate rejects tunings that would make the tiers overlap or the roll
// meaningless.
func (t Tuning) Validate() error {
	if t.RollMax <= 0 {
		return errors.New("tuning: roll_max must be positive")
	}
	if t.FatigueDivisor <= 0 {
		return errors.New("tuning: fatigue_divisor must be positive")
	}
	if !(t.Tiers.Attack > t.Tiers.Neutral && t.Tiers.Neutral > t.Tiers.Defense) {
		return fmt.Errorf("tuning: tiers must satisfy attack > neutral > defense, got %d/%d/%d",
			t.Tiers.Attack, t.Tiers.Neutral, t.Tiers.Defense)
	}
	if t.Fatigue.Low < 0 || t.Fatigue.Medium < 0 || t.Fatigue.High < 0 {
		return errors.New("tuning: fatigue costs must not be negative")
	}
	if t.QuarterRest < 0 {
		return errors.New("tuning: quarter_rest must not be negative")
	}
	return nil
}

type tuningFile struct {
	Tuning *tuningBody `hcl:"tuning,block"`
}

// tuningBody mirrors Tuning with pointer blocks so every block is optional.
type tuningBody struct {
	RollMax               int     `hcl:"roll_max,optional"`
	FatigueDivisor        float32 `hcl:"fatigue_divisor,optional"`
	AdvantageBonus        int     `hcl:"advantage_bonus,optional"`
	DefensiveReboundBonus int     `hcl:"defensive_rebound_bonus,optional"`
	BlockMargin           int     `hcl:"block_margin,optional"`
	QuarterRest           float32 `hcl:"quarter_rest,optional"`

	Tiers   *Tiers          `hcl:"tiers,block"`
	Fatigue *FatigueCosts   `hcl:"fatigue,block"`
	Shots   *ShotThresholds `hcl:"shots,block"`
}

func bodyFrom(t Tuning) *tuningBody {
	return &tuningBody{
		RollMax:               t.RollMax,
		FatigueDivisor:        t.FatigueDivisor,
		AdvantageBonus:        t.AdvantageBonus,
		DefensiveReboundBonus: t.DefensiveReboundBonus,
		BlockMargin:           t.BlockMargin,
		QuarterRest:           t.QuarterRest,
		Tiers:                 &t.Tiers,
		Fatigue:               &t.Fatigue,
		Shots:                 &t.Shots,
	}
}

func (b *tuningBody) tuning() Tuning {
	def := DefaultTuning()
	if b.Tiers != nil {
		def.Tiers = *b.Tiers
	}
	if b.Fatigue != nil {
		def.Fatigue = *b.Fatigue
	}
	if b.Shots != nil {
		def.Shots = *b.Shots
	}
	return Tuning{
		RollMax:               b.RollMax,
		FatigueDivisor:        b.FatigueDivisor,
		AdvantageBonus:        b.AdvantageBonus,
		DefensiveReboundBonus: b.DefensiveReboundBonus,
		BlockMargin:           b.BlockMargin,
		QuarterRest:           b.QuarterRest,
		Tiers:                 def.Tiers,
		Fatigue:               def.Fatigue,
		Shots:                 def.Shots,
	}
}

// LoadTuning reads a tuning block from an HCL file. A missing file yields
// DefaultTuning; attributes left out of the file keep their defaults.
func LoadTuning(filename string) (Tuning, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultTuning(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return Tuning{}, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	cfg := tuningFile{Tuning: bodyFrom(DefaultTuning())}
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return Tuning{}, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if cfg.Tuning == nil {
		return DefaultTuning(), nil
	}

	t := cfg.Tuning.tuning()
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}
