package supplyRequests

import (
	"testing"

	"necessitous-service/internal/app/models"
	"necessitous-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestReduceStructured(t *testing.T) {
	t.Run("All positions with zero quantity drop the category", func(t *testing.T) {
		section := &models.SupplySection[models.MaskPosition]{
			Positions: []models.MaskPosition{{Type: models.UsageTypeDisposable, Quantity: 0, Style: models.MaskStyleSurgical}},
		}
		_, ok := reduceStructured(section, maskPosition)
		assert.False(t, ok)
	})

	t.Run("No positions drop the category", func(t *testing.T) {
		section := &models.SupplySection[models.GlovePosition]{}
		_, ok := reduceStructured(section, glovePosition)
		assert.False(t, ok)
	})

	t.Run("Description does not keep an empty category alive", func(t *testing.T) {
		section := &models.SupplySection[models.GlovePosition]{
			Positions:   []models.GlovePosition{{Material: models.MaterialLatex, Quantity: 0, Size: models.SizeM}},
			Description: strPtr("we need gloves badly"),
		}
		_, ok := reduceStructured(section, glovePosition)
		assert.False(t, ok)
	})

	t.Run("Zero quantity positions are dropped, not zeroed", func(t *testing.T) {
		section := &models.SupplySection[models.GlovePosition]{
			Positions: []models.GlovePosition{
				{Material: models.MaterialLatex, Quantity: 0, Size: models.SizeS},
				{Material: models.MaterialNitrile, Quantity: 5, Size: models.SizeL},
				{Material: models.MaterialVinyl, Quantity: 0, Size: models.SizeM},
			},
		}
		reduced, ok := reduceStructured(section, glovePosition)
		assert.True(t, ok)
		assert.Equal(t, []requests.GlovePosition{{Material: models.MaterialNitrile, Quantity: 5, Size: models.SizeL}}, reduced.Positions)
		assert.Empty(t, reduced.Description)
	})

	t.Run("Description is kept verbatim for a non-empty category", func(t *testing.T) {
		section := &models.SupplySection[models.PrintPosition]{
			Positions:   []models.PrintPosition{{PrintType: models.PrintTypeFaceShield, Quantity: 10}},
			Description: strPtr("  for the ER  "),
		}
		reduced, ok := reduceStructured(section, printPosition)
		assert.True(t, ok)
		assert.Equal(t, "  for the ER  ", reduced.Description)
	})

	t.Run("Mask positions expose the usage type", func(t *testing.T) {
		section := &models.SupplySection[models.MaskPosition]{
			Positions: []models.MaskPosition{{Type: models.UsageTypeReusable, Quantity: 3, Style: models.MaskStyleFFP2}},
		}
		reduced, ok := reduceStructured(section, maskPosition)
		assert.True(t, ok)
		assert.Equal(t, []requests.MaskPosition{{UsageType: models.UsageTypeReusable, Quantity: 3, Style: models.MaskStyleFFP2}}, reduced.Positions)
	})

	t.Run("Custom positions carry their free-text type as description", func(t *testing.T) {
		section := &models.SupplySection[models.CustomPosition]{
			Positions: []models.CustomPosition{{Type: "rice", Quantity: 20}, {Type: "pasta", Quantity: 0}},
		}
		reduced, ok := reduceStructured(section, customPosition)
		assert.True(t, ok)
		assert.Equal(t, []requests.CustomPosition{{Quantity: 20, Description: "rice"}}, reduced.Positions)
	})

	t.Run("Suit material stays optional", func(t *testing.T) {
		section := &models.SupplySection[models.SuitPosition]{
			Positions: []models.SuitPosition{{Quantity: 1, Size: models.SizeXL}},
		}
		reduced, ok := reduceStructured(section, suitPosition)
		assert.True(t, ok)
		assert.Equal(t, []requests.SuitPosition{{Quantity: 1, Size: models.SizeXL}}, reduced.Positions)
	})
}

func TestReduceDescription(t *testing.T) {
	tests := []struct {
		name        string
		description *string
		want        requests.Description
		wantPresent bool
	}{
		{name: "Missing description", description: nil},
		{name: "Empty description", description: strPtr("")},
		{name: "Whitespace only", description: strPtr(" \t\n")},
		{name: "Text is preserved verbatim", description: strPtr(" two psychologists "), want: requests.Description{Description: " two psychologists "}, wantPresent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := reduceDescription(tt.description)
			assert.Equal(t, tt.wantPresent, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryRulesCoverEveryCategory(t *testing.T) {
	keys := make(map[string]bool, len(categoryRules))
	for _, category := range models.SupplyCategories {
		rule, ok := categoryRules[category]
		assert.True(t, ok, "category %s has no rule", category)
		assert.False(t, keys[rule.key], "key %s used twice", rule.key)
		keys[rule.key] = true
	}
	assert.Len(t, categoryRules, len(models.SupplyCategories))
}

func TestCategoryRulesSkipUnsubmittedSections(t *testing.T) {
	empty := models.Supplies{}
	for category, rule := range categoryRules {
		_, ok := rule.reduce(&empty)
		assert.False(t, ok, "category %s should be absent when not submitted", category)
	}
}

func TestMedicalCentre(t *testing.T) {
	got := medicalCentre(validContact())
	assert.Equal(t, requests.MedicalCentre{
		LegalName:       "Szpital Miejski",
		City:            "Gdansk",
		Street:          "Dluga",
		BuildingNumber:  "12",
		ApartmentNumber: "3",
		PostalCode:      "80-001",
		Email:           "kontakt@szpital.pl",
		PhoneNumber:     "+48123456789",
	}, got)
}
