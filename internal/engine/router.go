package engine

// Router maps every Situation to the action that resolves it. The table is a
// fixed array built once; a Router that constructed successfully can route
// any situation.
type Router struct {
	actions [situationCount]Action
}

// NewRouter builds a router from registrations and fails with a
// *ConfigurationError naming every situation left without an action.
func NewRouter(registrations map[Situation]Action) (*Router, error) {
	r := &Router{}
	var missing []Situation
	for _, s := range Situations() {
		a, ok := registrations[s]
		if !ok || a == nil {
			missing = append(missing, s)
			continue
		}
		r.actions[s] = a
	}
	if len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}
	return r, nil
}

// DefaultActions returns the built-in registrations. Callers may replace
// entries before handing the map to NewRouter.
func DefaultActions() map[Situation]Action {
	start := StartOfPossessionAction{}
	return map[Situation]Action{
		JumpBall:              JumpBallAction{},
		AfterDefensiveRebound: start,
		AfterOffensiveRebound: start,
		AfterMadeShot:         start,
		Turnover:              start,
		StartOfQuarter:        start,
		PickAndRoll:           PickAndRollAction{},
		Isolation:             IsolationAction{},
		PostUp:                PostUpAction{},
		OffTheScreen:          OffTheScreenAction{},
		CloseShot:             ShotAction{Range: CloseShot},
		MediumShot:            ShotAction{Range: MediumShot},
		LongShot:              ShotAction{Range: LongShot},
		MissedShot:            ReboundAction{},
		EndOfQuarter:          EndOfQuarterAction{},
		EndOfGame:             EndOfGameAction{},
	}
}

// DefaultRouter routes every situation to the built-in actions.
func DefaultRouter() *Router {
	r, err := NewRouter(DefaultActions())
	if err != nil {
		panic(err)
	}
	return r
}

// Route returns the action for s. ok is false only for values outside the
// closed situation set.
func (r *Router) Route(s Situation) (Action, bool) {
	if !s.Valid() {
		return nil, false
	}
	return r.actions[s], true
}
