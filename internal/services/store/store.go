// Package store owns the mutable Plan aggregate. All mutation goes through
// the PlanStore, which persists to disk on every change; the planner only
// ever sees copies handed out by Plan().
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"goalplan/internal/models"
	"goalplan/internal/services/storage"
)

const planFilename = "plan.json"

// PlanStore loads, serves and persists the plan aggregate
type PlanStore struct {
	vault   *storage.Vault
	dataDir string
	mu      sync.RWMutex
	plan    *models.Plan
}

// New creates a PlanStore over the given data directory
func New(vault *storage.Vault, dataDir string) *PlanStore {
	return &PlanStore{vault: vault, dataDir: dataDir}
}

// path returns the full path of the plan file
func (ps *PlanStore) path() string {
	return filepath.Join(ps.dataDir, planFilename)
}

// Load reads the plan from disk, falling back to defaults when the file
// does not exist yet
func (ps *PlanStore) Load() error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	data, err := ps.vault.ReadFile(ps.path())
	if err != nil {
		// Missing file is a fresh install, not an error
		ps.plan = models.DefaultPlan()
		return nil
	}

	var plan models.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return fmt.Errorf("parse plan file: %w", err)
	}
	if plan.Goals == nil {
		plan.Goals = []models.Goal{}
	}
	if plan.Profile.Debts == nil {
		plan.Profile.Debts = []models.Debt{}
	}
	ps.plan = &plan
	return nil
}

// save persists the current plan; caller must hold the write lock
func (ps *PlanStore) save() error {
	data, err := json.MarshalIndent(ps.plan, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	return ps.vault.WriteFile(ps.path(), data, 0644)
}

// Plan returns a deep copy of the current aggregate
func (ps *PlanStore) Plan() models.Plan {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	out := models.Plan{Profile: ps.plan.Profile}
	out.Profile.Debts = append([]models.Debt{}, ps.plan.Profile.Debts...)
	out.Goals = append([]models.Goal{}, ps.plan.Goals...)
	return out
}

// Profile returns a copy of the current profile
func (ps *PlanStore) Profile() models.Profile {
	return ps.Plan().Profile
}

// Goals returns a copy of the current goal list
func (ps *PlanStore) Goals() []models.Goal {
	return ps.Plan().Goals
}

// Goal returns one goal by id
func (ps *PlanStore) Goal(id string) (models.Goal, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.plan.GoalByID(id)
}

// SetProfile replaces the profile and persists
func (ps *PlanStore) SetProfile(profile models.Profile) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if profile.Debts == nil {
		profile.Debts = []models.Debt{}
	}
	ps.plan.Profile = profile
	return ps.save()
}

// AddGoal assigns a fresh id, appends the goal and persists. The stored
// goal is returned so callers see the assigned id.
func (ps *PlanStore) AddGoal(goal models.Goal) (models.Goal, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	goal.ID = uuid.New().String()
	ps.plan.Goals = append(ps.plan.Goals, goal)
	if err := ps.save(); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// UpdateGoal replaces the goal with the matching id and persists
func (ps *PlanStore) UpdateGoal(goal models.Goal) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	for i, g := range ps.plan.Goals {
		if g.ID == goal.ID {
			ps.plan.Goals[i] = goal
			return ps.save()
		}
	}
	return fmt.Errorf("goal %q not found", goal.ID)
}

// DeleteGoal removes the goal with the matching id and persists
func (ps *PlanStore) DeleteGoal(id string) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	for i, g := range ps.plan.Goals {
		if g.ID == id {
			ps.plan.Goals = append(ps.plan.Goals[:i], ps.plan.Goals[i+1:]...)
			return ps.save()
		}
	}
	return fmt.Errorf("goal %q not found", id)
}
