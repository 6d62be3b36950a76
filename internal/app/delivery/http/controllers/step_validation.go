package controllers

import (
	"context"
	"errors"
	"necessitous-service/internal/app/models"
	"necessitous-service/internal/pkg/exceptions"
	"necessitous-service/internal/pkg/utils"
	"time"
)

const requestTimeout = 10 * time.Second

// validateStep checks the field rules of a single step's data.
func validateStep(step models.Step) error {
	var err error
	switch s := step.(type) {
	case models.ContactStep:
		err = utils.ValidateStruct(s.Data)
	case models.DemandStep:
		err = utils.ValidateStruct(s.Data)
	case models.SummaryStep:
		err = utils.ValidateStruct(s.Data)
	}
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func validateSteps(steps models.PartialStepDict) error {
	for _, stepType := range []models.StepType{models.StepTypeContact, models.StepTypeDemand, models.StepTypeSummary} {
		step, ok := steps[stepType]
		if !ok {
			continue
		}
		if err := validateStep(step); err != nil {
			return err
		}
	}
	return nil
}

// usecaseError maps a context deadline onto a gateway timeout and passes
// everything else through.
func usecaseError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return err
}
