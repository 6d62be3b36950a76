package requests

import "necessitous-service/internal/app/models"

type StepNavigation struct {
	Type      models.StepType `json:"type" validate:"required"`
	Direction string          `json:"direction" validate:"required,oneof=next prev"`
}
