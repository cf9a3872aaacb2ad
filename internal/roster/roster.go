// Package roster loads teams from HCL files. It reads rosters only; building
// them is left to whoever writes the file.
package roster

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/courtside/internal/engine"
)

// Namespace seeds the name-derived ids of teams and players that carry no
// explicit id, so the same file always yields the same ids.
var Namespace = uuid.MustParse("3f0c5a1e-7d7b-4d53-9c39-5f4f2a4d8e61")

// File is the top level of a roster file.
type File struct {
	Teams []TeamConfig `hcl:"team,block"`
}

// TeamConfig is a team block. The first five players in block order start.
type TeamConfig struct {
	Name    string         `hcl:"name,label"`
	ID      string         `hcl:"id,optional"`
	Tactic  string         `hcl:"tactic,optional"`
	Players []PlayerConfig `hcl:"player,block"`
}

// PlayerConfig is a player block labelled with first and last name.
type PlayerConfig struct {
	FirstName string  `hcl:"first_name,label"`
	LastName  string  `hcl:"last_name,label"`
	ID        string  `hcl:"id,optional"`
	Height    int     `hcl:"height,optional"`
	Tiredness float64 `hcl:"tiredness,optional"`

	Athleticism *AthleticismConfig `hcl:"athleticism,block"`
	Offense     *OffenseConfig     `hcl:"offense,block"`
	Technical   *TechnicalConfig   `hcl:"technical,block"`
	Defense     *DefenseConfig     `hcl:"defense,block"`
	Mental      *MentalConfig      `hcl:"mental,block"`
}

type AthleticismConfig struct {
	Quickness int `hcl:"quickness,optional"`
	Vertical  int `hcl:"vertical,optional"`
	Strength  int `hcl:"strength,optional"`
	Stamina   int `hcl:"stamina,optional"`
}

type OffenseConfig struct {
	CloseRange  int `hcl:"close_range,optional"`
	MediumRange int `hcl:"medium_range,optional"`
	LongRange   int `hcl:"long_range,optional"`
}

type TechnicalConfig struct {
	BallHandling int `hcl:"ball_handling,optional"`
	Passing      int `hcl:"passing,optional"`
	PostMoves    int `hcl:"post_moves,optional"`
	Rebounds     int `hcl:"rebounds,optional"`
}

type DefenseConfig struct {
	PerimeterDefense int `hcl:"perimeter_defense,optional"`
	InteriorDefense  int `hcl:"interior_defense,optional"`
	Steal            int `hcl:"steal,optional"`
	Block            int `hcl:"block,optional"`
}

type MentalConfig struct {
	Vision          int `hcl:"vision,optional"`
	OffBallMovement int `hcl:"off_ball_movement,optional"`
}

const defaultHeight = 198

// Load reads and converts every team in filename.
func Load(filename string) ([]*engine.TeamInGame, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return Parse(src, filename)
}

// Parse converts HCL source into teams. filename is used in diagnostics.
func Parse(src []byte, filename string) ([]*engine.TeamInGame, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	teams := make([]*engine.TeamInGame, 0, len(cfg.Teams))
	for _, tc := range cfg.Teams {
		team, err := tc.build()
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// Validate checks the file describes playable teams.
func (f *File) Validate() error {
	if len(f.Teams) == 0 {
		return fmt.Errorf("roster has no teams")
	}
	names := make(map[string]bool, len(f.Teams))
	for _, tc := range f.Teams {
		if names[tc.Name] {
			return fmt.Errorf("duplicate team %q", tc.Name)
		}
		names[tc.Name] = true

		if len(tc.Players) < engine.LineupSize {
			return fmt.Errorf("team %q has %d players, need at least %d", tc.Name, len(tc.Players), engine.LineupSize)
		}
		if _, err := engine.ParseTactic(tc.Tactic); err != nil {
			return fmt.Errorf("team %q: %w", tc.Name, err)
		}
		for _, pc := range tc.Players {
			if err := pc.validate(); err != nil {
				return fmt.Errorf("team %q: %w", tc.Name, err)
			}
		}
	}
	return nil
}

func (pc *PlayerConfig) validate() error {
	name := pc.FirstName + " " + pc.LastName
	if pc.Height < 0 || pc.Height > 260 {
		return fmt.Errorf("player %s: height %d out of range", name, pc.Height)
	}
	if pc.Tiredness < 0 || pc.Tiredness > float64(engine.MaxTiredness) {
		return fmt.Errorf("player %s: tiredness %.1f out of range", name, pc.Tiredness)
	}
	for skill, v := range pc.skills() {
		if v < 0 || v > engine.MaxSkill {
			return fmt.Errorf("player %s: %s = %d, must be 0-%d", name, skill, v, engine.MaxSkill)
		}
	}
	return nil
}

func (pc *PlayerConfig) skills() map[string]int {
	s := make(map[string]int)
	if a := pc.Athleticism; a != nil {
		s["quickness"], s["vertical"], s["strength"], s["stamina"] = a.Quickness, a.Vertical, a.Strength, a.Stamina
	}
	if o := pc.Offense; o != nil {
		s["close_range"], s["medium_range"], s["long_range"] = o.CloseRange, o.MediumRange, o.LongRange
	}
	if t := pc.Technical; t != nil {
		s["ball_handling"], s["passing"], s["post_moves"], s["rebounds"] = t.BallHandling, t.Passing, t.PostMoves, t.Rebounds
	}
	if d := pc.Defense; d != nil {
		s["perimeter_defense"], s["interior_defense"], s["steal"], s["block"] = d.PerimeterDefense, d.InteriorDefense, d.Steal, d.Block
	}
	if m := pc.Mental; m != nil {
		s["vision"], s["off_ball_movement"] = m.Vision, m.OffBallMovement
	}
	return s
}

func parseID(raw, name string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.NewSHA1(Namespace, []byte(name)), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: invalid id %q: %w", name, raw, err)
	}
	return id, nil
}

func (tc TeamConfig) build() (*engine.TeamInGame, error) {
	id, err := parseID(tc.ID, tc.Name)
	if err != nil {
		return nil, err
	}
	tactic, err := engine.ParseTactic(tc.Tactic)
	if err != nil {
		return nil, err
	}

	team := &engine.TeamInGame{
		ID:               id,
		Name:             tc.Name,
		Tactic:           tactic,
		Players:          make(map[engine.PlayerID]*engine.Player, len(tc.Players)),
		InitialTiredness: make(map[engine.PlayerID]float32),
	}
	for i, pc := range tc.Players {
		p, err := pc.build(tc.Name)
		if err != nil {
			return nil, err
		}
		if _, dup := team.Players[p.ID]; dup {
			return nil, fmt.Errorf("team %q lists %s %s twice", tc.Name, pc.FirstName, pc.LastName)
		}
		team.Players[p.ID] = p
		if i < engine.LineupSize {
			team.Lineup = append(team.Lineup, p.ID)
		}
		if pc.Tiredness > 0 {
			team.InitialTiredness[p.ID] = float32(pc.Tiredness)
		}
	}
	return team, nil
}

func (pc PlayerConfig) build(team string) (*engine.Player, error) {
	id, err := parseID(pc.ID, team+"/"+pc.FirstName+" "+pc.LastName)
	if err != nil {
		return nil, err
	}
	height := pc.Height
	if height == 0 {
		height = defaultHeight
	}

	p := &engine.Player{
		ID:        id,
		FirstName: pc.FirstName,
		LastName:  pc.LastName,
		Height:    uint16(height),
	}
	if a := pc.Athleticism; a != nil {
		p.Athleticism = engine.Athleticism{
			Quickness: uint8(a.Quickness),
			Vertical:  uint8(a.Vertical),
			Strength:  uint8(a.Strength),
			Stamina:   uint8(a.Stamina),
		}
	}
	if o := pc.Offense; o != nil {
		p.Offense = engine.Offense{
			CloseRange:  uint8(o.CloseRange),
			MediumRange: uint8(o.MediumRange),
			LongRange:   uint8(o.LongRange),
		}
	}
	if t := pc.Technical; t != nil {
		p.Technical = engine.Technical{
			BallHandling: uint8(t.BallHandling),
			Passing:      uint8(t.Passing),
			PostMoves:    uint8(t.PostMoves),
			Rebounds:     uint8(t.Rebounds),
		}
	}
	if d := pc.Defense; d != nil {
		p.Defense = engine.Defense{
			PerimeterDefense: uint8(d.PerimeterDefense),
			InteriorDefense:  uint8(d.InteriorDefense),
			Steal:            uint8(d.Steal),
			Block:            uint8(d.Block),
		}
	}
	if m := pc.Mental; m != nil {
		p.Mental = engine.Mental{
			Vision:          uint8(m.Vision),
			OffBallMovement: uint8(m.OffBallMovement),
		}
	}
	return p, nil
}

// Find returns the team called name, ignoring case.
func Find(teams []*engine.TeamInGame, name string) (*engine.TeamInGame, error) {
	for _, t := range teams {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("no team named %q", name)
}

// Matchup picks home and away by name, or the first two teams when both
// names are empty.
func Matchup(teams []*engine.TeamInGame, home, away string) (*engine.TeamInGame, *engine.TeamInGame, error) {
	if home == "" && away == "" {
		if len(teams) < 2 {
			return nil, nil, fmt.Errorf("roster has %d teams, need two", len(teams))
		}
		return teams[0], teams[1], nil
	}
	h, err := Find(teams, home)
	if err != nil {
		return nil, nil, err
	}
	a, err := Find(teams, away)
	if err != nil {
		return nil, nil, err
	}
	if h == a {
		return nil, nil, fmt.Errorf("team %q cannot play itself", h.Name)
	}
	return h, a, nil
}
