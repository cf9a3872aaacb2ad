package engine

// Situation tags what must be resolved next. The set is closed and every
// value must have a handler in the Router.
type Situation uint8

const (
	JumpBall Situation = iota
	AfterDefensiveRebound
	AfterOffensiveRebound
	AfterMadeShot
	Turnover
	StartOfQuarter
	PickAndRoll
	Isolation
	PostUp
	OffTheScreen
	CloseShot
	MediumShot
	LongShot
	MissedShot
	EndOfQuarter
	EndOfGame

	situationCount
)

var situationNames = [situationCount]string{
	JumpBall:              "jump_ball",
	AfterDefensiveRebound: "after_defensive_rebound",
	AfterOffensiveRebound: "after_offensive_rebound",
	AfterMadeShot:         "after_made_shot",
	Turnover:              "turnover",
	StartOfQuarter:        "start_of_quarter",
	PickAndRoll:           "pick_and_roll",
	Isolation:             "isolation",
	PostUp:                "post_up",
	OffTheScreen:          "off_the_screen",
	CloseShot:             "close_shot",
	MediumShot:            "medium_shot",
	LongShot:              "long_shot",
	MissedShot:            "missed_shot",
	EndOfQuarter:          "end_of_quarter",
	EndOfGame:             "end_of_game",
}

func (s Situation) String() string {
	if s < situationCount {
		return situationNames[s]
	}
	return "unknown"
}

// Valid reports whether s is a member of the closed set.
func (s Situation) Valid() bool { return s < situationCount }

// Terminal reports whether handling s finishes the game.
func (s Situation) Terminal() bool { return s == EndOfGame }

// interruptible reports whether the quarter buzzer may cut in before s is
// resolved.
func (s Situation) interruptible() bool {
	switch s {
	case JumpBall, StartOfQuarter, EndOfQuarter, EndOfGame:
		return false
	}
	return true
}

// Situations lists every situation in declaration order.
func Situations() []Situation {
	all := make([]Situation, 0, situationCount)
	for s := Situation(0); s < situationCount; s++ {
		all = append(all, s)
	}
	return all
}

// ParseSituation is the inverse of Situation.String.
func ParseSituation(name string) (Situation, bool) {
	for s, n := range situationNames {
		if n == name {
			return Situation(s), true
		}
	}
	return 0, false
}
