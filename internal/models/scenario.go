package models

import "fmt"

// ScenarioKind selects one of the stress scenarios applied to a goal
type ScenarioKind string

const (
	ScenarioMissedContributions ScenarioKind = "missed-contributions"
	ScenarioReturnShock         ScenarioKind = "return-shock"
	ScenarioShortenedHorizon    ScenarioKind = "shortened-horizon"
	ScenarioInflationShock      ScenarioKind = "inflation-shock"
)

// ParseScenarioKind converts a string to a ScenarioKind, rejecting unknown values
func ParseScenarioKind(s string) (ScenarioKind, error) {
	switch ScenarioKind(s) {
	case ScenarioMissedContributions, ScenarioReturnShock,
		ScenarioShortenedHorizon, ScenarioInflationShock:
		return ScenarioKind(s), nil
	}
	return "", fmt.Errorf("unknown scenario kind %q", s)
}

// AllScenarioKinds lists the scenarios in display order
func AllScenarioKinds() []ScenarioKind {
	return []ScenarioKind{
		ScenarioMissedContributions,
		ScenarioReturnShock,
		ScenarioShortenedHorizon,
		ScenarioInflationShock,
	}
}

// ScenarioResult reports how a stressed assumption moves the required SIP
type ScenarioResult struct {
	Kind        ScenarioKind `json:"kind"`
	Label       string       `json:"label"`
	BaselineSIP float64      `json:"baseline_sip"`
	StressedSIP float64      `json:"stressed_sip"`
	SIPDelta    float64      `json:"sip_delta"` // stressed - baseline, never negative
	Message     string       `json:"message"`
}
