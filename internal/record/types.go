package record

import "time"

// Record is one game written as TOML: header, both box scores and the
// play-by-play as [[play]] tables.
type Record struct {
	GameID        string    `toml:"game_id"`
	Seed          int64     `toml:"seed"`
	Quarters      int       `toml:"quarters"`
	QuarterLength uint32    `toml:"quarter_length"`
	Finished      bool      `toml:"finished"`
	Digest        string    `toml:"digest,omitempty"`
	WrittenAt     time.Time `toml:"written_at"`

	Home  TeamRecord `toml:"home"`
	Away  TeamRecord `toml:"away"`
	Plays []Play     `toml:"play"`
}

// TeamRecord is one side of the box score.
type TeamRecord struct {
	ID      string         `toml:"id"`
	Name    string         `toml:"name"`
	Score   int            `toml:"score"`
	Players []PlayerRecord `toml:"player"`
}

// PlayerRecord is a box score line. Position is -1 for the bench.
type PlayerRecord struct {
	ID                 string  `toml:"id"`
	Name               string  `toml:"name"`
	Position           int     `toml:"position"`
	Points             int     `toml:"points"`
	TwoPointAttempts   int     `toml:"two_point_attempts"`
	TwoPointMade       int     `toml:"two_point_made"`
	ThreePointAttempts int     `toml:"three_point_attempts"`
	ThreePointMade     int     `toml:"three_point_made"`
	OffensiveRebounds  int     `toml:"offensive_rebounds"`
	DefensiveRebounds  int     `toml:"defensive_rebounds"`
	Assists            int     `toml:"assists"`
	Steals             int     `toml:"steals"`
	Blocks             int     `toml:"blocks"`
	Turnovers          int     `toml:"turnovers"`
	PlusMinus          int     `toml:"plus_minus"`
	Tiredness          float64 `toml:"tiredness"`
}

// Play is one line of the play-by-play.
type Play struct {
	Clock       string `toml:"clock"`
	Tick        uint32 `toml:"tick"`
	Situation   string `toml:"situation"`
	Possession  string `toml:"possession"`
	Home        int    `toml:"home"`
	Away        int    `toml:"away"`
	Description string `toml:"description"`
}

// ManagerConfig configures a Manager. Zero values select the defaults.
type ManagerConfig struct {
	BaseDir       string
	FlushInterval time.Duration
	// FlushPlays asks for an early flush once a monitor buffers this many
	// unwritten plays.
	FlushPlays int
	// OnFlush, when set, is told the outcome of every background flush.
	OnFlush func(err error)
}
