package responses

import "necessitous-service/internal/app/models"

type SupplyRequestSent struct {
	ID string `json:"id"`
}

type StepNavigation struct {
	Type models.StepType `json:"type"`
	Path models.StepPath `json:"path"`
}

type Draft struct {
	DraftID  string                 `json:"draft_id"`
	Steps    models.PartialStepDict `json:"steps"`
	Complete bool                   `json:"complete"`
}
