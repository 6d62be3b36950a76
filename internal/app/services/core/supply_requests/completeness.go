package supplyRequests

import (
	"errors"
	"fmt"
	"necessitous-service/internal/app/models"
	"strings"
)

// ErrPartialRequest is returned when any of the contact, demand or summary
// steps is missing. It is a validation failure and is never retried.
var ErrPartialRequest = errors.New("Partial request")

var requiredSteps = []models.StepType{
	models.StepTypeContact,
	models.StepTypeDemand,
	models.StepTypeSummary,
}

// IsComplete reports whether steps holds the contact, demand and summary
// steps. Only presence is checked.
func IsComplete(steps models.PartialStepDict) bool {
	return len(MissingSteps(steps)) == 0
}

// MissingSteps lists the required step types absent from steps, in wizard order.
func MissingSteps(steps models.PartialStepDict) []models.StepType {
	var missing []models.StepType
	for _, stepType := range requiredSteps {
		if steps[stepType] == nil {
			missing = append(missing, stepType)
		}
	}
	return missing
}

// RequireComplete converts a partial dict into a complete one, or fails
// with ErrPartialRequest.
func RequireComplete(steps models.PartialStepDict) (models.StepDict, error) {
	if missing := MissingSteps(steps); len(missing) > 0 {
		return models.StepDict{}, fmt.Errorf("%w: missing %s", ErrPartialRequest, joinStepTypes(missing))
	}

	contact, contactOK := steps[models.StepTypeContact].(models.ContactStep)
	demand, demandOK := steps[models.StepTypeDemand].(models.DemandStep)
	summary, summaryOK := steps[models.StepTypeSummary].(models.SummaryStep)
	if !contactOK || !demandOK || !summaryOK {
		return models.StepDict{}, fmt.Errorf("%w: step stored under a foreign key", ErrPartialRequest)
	}

	return models.StepDict{
		Contact: contact,
		Demand:  demand,
		Summary: summary,
	}, nil
}

// MissingStepNames is MissingSteps joined for error messages.
func MissingStepNames(steps models.PartialStepDict) string {
	return joinStepTypes(MissingSteps(steps))
}

func joinStepTypes(stepTypes []models.StepType) string {
	names := make([]string, len(stepTypes))
	for i, stepType := range stepTypes {
		names[i] = string(stepType)
	}
	return strings.Join(names, ", ")
}
