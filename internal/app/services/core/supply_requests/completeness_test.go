package supplyRequests

import (
	"testing"

	"necessitous-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsComplete(t *testing.T) {
	contact := models.NewContactStep(validContact())
	demand := models.NewDemandStep(models.DemandData{})
	summary := models.NewSummaryStep(models.SummaryData{})

	tests := []struct {
		name  string
		steps models.PartialStepDict
		want  bool
	}{
		{name: "Empty dict", steps: models.PartialStepDict{}, want: false},
		{name: "Nil dict", steps: nil, want: false},
		{name: "Contact missing", steps: models.PartialStepDict{}.With(demand).With(summary), want: false},
		{name: "Demand missing", steps: models.PartialStepDict{}.With(contact).With(summary), want: false},
		{name: "Summary missing", steps: models.PartialStepDict{}.With(contact).With(demand), want: false},
		{name: "All steps present", steps: models.PartialStepDict{}.With(contact).With(demand).With(summary), want: true},
		{
			name:  "Content is not inspected",
			steps: models.PartialStepDict{}.With(models.NewContactStep(models.ContactData{})).With(demand).With(summary),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsComplete(tt.steps))
		})
	}
}

func TestRequireComplete(t *testing.T) {
	t.Run("Complete dict converts", func(t *testing.T) {
		comment := strPtr("note")
		steps, err := RequireComplete(completeSteps(models.Supplies{}, comment))
		require.NoError(t, err)
		assert.Equal(t, "Szpital Miejski", steps.Contact.Data.Name)
		assert.Equal(t, comment, steps.Summary.Data.Comment)
	})

	t.Run("Missing steps are named in wizard order", func(t *testing.T) {
		steps := models.PartialStepDict{}.With(models.NewDemandStep(models.DemandData{}))
		_, err := RequireComplete(steps)
		require.ErrorIs(t, err, ErrPartialRequest)
		assert.Contains(t, err.Error(), "contact, summary")
		assert.Equal(t, []models.StepType{models.StepTypeContact, models.StepTypeSummary}, MissingSteps(steps))
	})

	t.Run("Step stored under a foreign key", func(t *testing.T) {
		steps := models.PartialStepDict{
			models.StepTypeContact: models.NewSummaryStep(models.SummaryData{}),
			models.StepTypeDemand:  models.NewDemandStep(models.DemandData{}),
			models.StepTypeSummary: models.NewSummaryStep(models.SummaryData{}),
		}
		_, err := RequireComplete(steps)
		assert.ErrorIs(t, err, ErrPartialRequest)
	})
}
