package models

// Plan is the persisted aggregate: one profile plus its goals. The store
// owns the only mutable copy; everything else works on values handed out
// by it.
type Plan struct {
	Profile Profile `json:"profile"`
	Goals   []Goal  `json:"goals"`
}

// DefaultPlan returns an empty plan with profile defaults
func DefaultPlan() *Plan {
	return &Plan{
		Profile: DefaultProfile(),
		Goals:   []Goal{},
	}
}

// GoalByID finds a goal by its id, returning false when absent
func (p *Plan) GoalByID(id string) (Goal, bool) {
	for _, g := range p.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}
