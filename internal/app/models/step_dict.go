package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// PartialStepDict is the set of steps collected so far, keyed by step type.
// It carries no lifecycle marker; completeness is decided by whoever
// consumes it.
type PartialStepDict map[StepType]Step

// StepDict holds exactly one step of each type.
type StepDict struct {
	Contact ContactStep
	Demand  DemandStep
	Summary SummaryStep
}

// With returns a copy of d with step stored under its own type.
func (d PartialStepDict) With(step Step) PartialStepDict {
	next := make(PartialStepDict, len(d)+1)
	for stepType, existing := range d {
		next[stepType] = existing
	}
	next[step.Type()] = step
	return next
}

// UnmarshalJSON accepts {"contact": {...}, "demand": {...}, "summary": {...}}
// where each value is a step envelope. Keys that are not step types are
// ignored, and an envelope without a type takes it from its key.
func (d *PartialStepDict) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	dict := make(PartialStepDict, len(raw))
	for key, value := range raw {
		stepType := StepType(key)
		if !stepType.IsValid() {
			continue
		}

		var envelope stepEnvelope
		if err := json.Unmarshal(value, &envelope); err != nil {
			return fmt.Errorf("step %q: %w", key, err)
		}
		if envelope.Type == "" {
			envelope.Type = stepType
		}
		if envelope.Type != stepType {
			return fmt.Errorf("step %q: envelope type %q does not match its key", key, envelope.Type)
		}

		step, err := decodeStepData(envelope.Type, envelope.Data)
		if err != nil {
			return fmt.Errorf("step %q: %w", key, err)
		}
		dict[stepType] = step
	}

	*d = dict
	return nil
}

// IsValid reports whether t names one of the wizard steps.
func (t StepType) IsValid() bool {
	switch t {
	case StepTypeContact, StepTypeDemand, StepTypeSummary:
		return true
	}
	return false
}
