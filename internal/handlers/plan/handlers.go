// Package plan serves the profile, goal and planning endpoints. Handlers
// validate form input at the boundary, read state through the PlanStore and
// hand typed records to the planner.
package plan

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httputil "goalplan/internal/http"
	"goalplan/internal/models"
	"goalplan/internal/services/export"
	"goalplan/internal/services/marketdata"
	"goalplan/internal/services/planner"
	"goalplan/internal/services/store"
	"goalplan/internal/services/validate"
)

var (
	planStore *store.PlanStore
	catalog   *marketdata.Catalog
)

// Initialize sets up the plan package with required dependencies
func Initialize(ps *store.PlanStore, c *marketdata.Catalog) {
	planStore = ps
	catalog = c
}

func HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, planStore.Profile())
}

func HandlePutProfile(w http.ResponseWriter, r *http.Request) {
	var form validate.ProfileForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		httputil.ErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, errs := validate.ParseProfile(form)
	if errs.Any() {
		httputil.ValidationErrorResponse(w, errs)
		return
	}

	if err := planStore.SetProfile(profile); err != nil {
		log.Printf("Error saving profile: %v", err)
		httputil.ErrorResponse(w, "failed to save profile", http.StatusInternalServerError)
		return
	}
	httputil.JSON(w, http.StatusOK, profile)
}

func HandleListGoals(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, planStore.Goals())
}

func HandleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var form validate.GoalForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		httputil.ErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	goal, errs := validate.ParseGoal(form)
	if errs.Any() {
		httputil.ValidationErrorResponse(w, errs)
		return
	}

	stored, err := planStore.AddGoal(goal)
	if err != nil {
		log.Printf("Error saving goal: %v", err)
		httputil.ErrorResponse(w, "failed to save goal", http.StatusInternalServerError)
		return
	}
	httputil.JSON(w, http.StatusCreated, stored)
}

func HandleGetGoal(w http.ResponseWriter, r *http.Request) {
	goal, ok := planStore.Goal(chi.URLParam(r, "id"))
	if !ok {
		httputil.ErrorResponse(w, "goal not found", http.StatusNotFound)
		return
	}
	httputil.JSON(w, http.StatusOK, goal)
}

func HandleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := planStore.Goal(id); !ok {
		httputil.ErrorResponse(w, "goal not found", http.StatusNotFound)
		return
	}

	var form validate.GoalForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		httputil.ErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}
	form.ID = id

	goal, errs := validate.ParseGoal(form)
	if errs.Any() {
		httputil.ValidationErrorResponse(w, errs)
		return
	}

	if err := planStore.UpdateGoal(goal); err != nil {
		log.Printf("Error updating goal: %v", err)
		httputil.ErrorResponse(w, "failed to update goal", http.StatusInternalServerError)
		return
	}
	httputil.JSON(w, http.StatusOK, goal)
}

func HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := planStore.DeleteGoal(id); err != nil {
		httputil.ErrorResponse(w, "goal not found", http.StatusNotFound)
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func HandleGoalMetrics(w http.ResponseWriter, r *http.Request) {
	goal, ok := planStore.Goal(chi.URLParam(r, "id"))
	if !ok {
		httputil.ErrorResponse(w, "goal not found", http.StatusNotFound)
		return
	}
	httputil.JSON(w, http.StatusOK, planner.ComputeGoalMetrics(goal))
}

func HandleGoalAllocation(w http.ResponseWriter, r *http.Request) {
	goal, ok := planStore.Goal(chi.URLParam(r, "id"))
	if !ok {
		httputil.ErrorResponse(w, "goal not found", http.StatusNotFound)
		return
	}

	profile := planStore.Profile()
	metrics := planner.ComputeGoalMetrics(goal)
	lines := planner.RecommendAllocation(goal, profile, metrics, catalog)
	httputil.JSON(w, http.StatusOK, map[string]interface{}{
		"goal_id":     goal.ID,
		"monthly_sip": metrics.MonthlySIP,
		"lines":       lines,
	})
}

func HandleGoalScenarios(w http.ResponseWriter, r *http.Request) {
	goal, ok := planStore.Goal(chi.URLParam(r, "id"))
	if !ok {
		httputil.ErrorResponse(w, "goal not found", http.StatusNotFound)
		return
	}
	httputil.JSON(w, http.StatusOK, planner.RunAllScenarios(goal))
}

func HandleGoalScenario(w http.ResponseWriter, r *http.Request) {
	goal, ok := planStore.Goal(chi.URLParam(r, "id"))
	if !ok {
		httputil.ErrorResponse(w, "goal not found", http.StatusNotFound)
		return
	}

	kind, err := models.ParseScenarioKind(chi.URLParam(r, "kind"))
	if err != nil {
		httputil.ErrorResponse(w, "unknown scenario kind", http.StatusBadRequest)
		return
	}

	result, err := planner.RunScenario(goal, kind)
	if err != nil {
		httputil.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	httputil.JSON(w, http.StatusOK, result)
}

func HandleFinancialHealth(w http.ResponseWriter, r *http.Request) {
	p := planStore.Plan()
	httputil.JSON(w, http.StatusOK, planner.ComputeHealth(p.Profile, p.Goals))
}

func HandleGoalTemplates(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, models.GoalTemplates())
}

func HandleMarketData(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, catalog)
}

func HandleExport(w http.ResponseWriter, r *http.Request) {
	summary := export.Summary(planStore.Plan(), catalog, time.Now())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=goal-plan.txt")
	w.Write([]byte(summary))
}
