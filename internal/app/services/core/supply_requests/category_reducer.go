package supplyRequests

import (
	"necessitous-service/internal/app/models"
	"necessitous-service/internal/pkg/dto/requests"
	"strings"
)

// categoryRule maps one supply category to its request key and reducer.
// The reducer reports false when the category must be left out of the
// request.
type categoryRule struct {
	key    string
	reduce func(supplies *models.Supplies) (interface{}, bool)
}

var categoryRules = map[models.SupplyCategory]categoryRule{
	models.SupplyCategoryMask: structuredRule(requests.KeyMasks,
		func(s *models.Supplies) *models.SupplySection[models.MaskPosition] { return s.Mask },
		maskPosition),
	models.SupplyCategoryGlove: structuredRule(requests.KeyGloves,
		func(s *models.Supplies) *models.SupplySection[models.GlovePosition] { return s.Glove },
		glovePosition),
	models.SupplyCategoryGrocery: structuredRule(requests.KeyGroceries,
		func(s *models.Supplies) *models.SupplySection[models.CustomPosition] { return s.Grocery },
		customPosition),
	models.SupplyCategoryDisinfectant: structuredRule(requests.KeyDisinfectionMeasures,
		func(s *models.Supplies) *models.SupplySection[models.CustomPosition] { return s.Disinfectant },
		customPosition),
	models.SupplyCategorySuit: structuredRule(requests.KeySuits,
		func(s *models.Supplies) *models.SupplySection[models.SuitPosition] { return s.Suit },
		suitPosition),
	models.SupplyCategoryCleaning: structuredRule(requests.KeyOtherCleaningMaterials,
		func(s *models.Supplies) *models.SupplySection[models.CustomPosition] { return s.Cleaning },
		customPosition),
	models.SupplyCategoryPrint: structuredRule(requests.KeyPrints,
		func(s *models.Supplies) *models.SupplySection[models.PrintPosition] { return s.Print },
		printPosition),
	models.SupplyCategoryPsychologicalSupport: descriptionRule(requests.KeyPsychologicalSupport,
		func(s *models.Supplies) *models.DescriptionSection { return s.PsychologicalSupport }),
	models.SupplyCategorySewingMaterial: descriptionRule(requests.KeySewingSupplies,
		func(s *models.Supplies) *models.DescriptionSection { return s.SewingMaterial }),
	models.SupplyCategoryOther: descriptionRule(requests.KeyOthers,
		func(s *models.Supplies) *models.DescriptionSection { return s.Other }),
	models.SupplyCategoryTransport: descriptionRule(requests.KeyTransport,
		func(s *models.Supplies) *models.DescriptionSection { return s.Transport }),
}

func structuredRule[P models.Position, R any](
	key string,
	section func(*models.Supplies) *models.SupplySection[P],
	reshape func(P) R,
) categoryRule {
	return categoryRule{
		key: key,
		reduce: func(supplies *models.Supplies) (interface{}, bool) {
			submitted := section(supplies)
			if submitted == nil {
				return nil, false
			}
			return reduceStructured(submitted, reshape)
		},
	}
}

func descriptionRule(key string, section func(*models.Supplies) *models.DescriptionSection) categoryRule {
	return categoryRule{
		key: key,
		reduce: func(supplies *models.Supplies) (interface{}, bool) {
			submitted := section(supplies)
			if submitted == nil {
				return nil, false
			}
			return reduceDescription(submitted.Description)
		},
	}
}

// reduceStructured keeps the positions with a positive quantity. Quantity is
// the only emptiness signal: a section whose positions are all zero is
// dropped even when it carries a description.
func reduceStructured[P models.Position, R any](section *models.SupplySection[P], reshape func(P) R) (requests.SupplySection[R], bool) {
	positions := make([]R, 0, len(section.Positions))
	for _, position := range section.Positions {
		if position.RequestedQuantity() > 0 {
			positions = append(positions, reshape(position))
		}
	}
	if len(positions) == 0 {
		return requests.SupplySection[R]{}, false
	}

	reduced := requests.SupplySection[R]{Positions: positions}
	if description, ok := nonBlank(section.Description); ok {
		reduced.Description = description
	}
	return reduced, true
}

func reduceDescription(description *string) (requests.Description, bool) {
	value, ok := nonBlank(description)
	if !ok {
		return requests.Description{}, false
	}
	return requests.Description{Description: value}, true
}

// nonBlank returns the text verbatim unless it is nil, empty or only whitespace.
func nonBlank(text *string) (string, bool) {
	if text == nil || strings.TrimSpace(*text) == "" {
		return "", false
	}
	return *text, true
}

func maskPosition(p models.MaskPosition) requests.MaskPosition {
	return requests.MaskPosition{UsageType: p.Type, Quantity: p.Quantity, Style: p.Style}
}

func glovePosition(p models.GlovePosition) requests.GlovePosition {
	return requests.GlovePosition{Material: p.Material, Quantity: p.Quantity, Size: p.Size}
}

func suitPosition(p models.SuitPosition) requests.SuitPosition {
	return requests.SuitPosition{Material: p.Material, Quantity: p.Quantity, Size: p.Size}
}

func printPosition(p models.PrintPosition) requests.PrintPosition {
	return requests.PrintPosition{PrintType: p.PrintType, Quantity: p.Quantity}
}

func customPosition(p models.CustomPosition) requests.CustomPosition {
	return requests.CustomPosition{Quantity: p.Quantity, Description: p.Type}
}

func medicalCentre(contact models.ContactData) requests.MedicalCentre {
	return requests.MedicalCentre{
		LegalName:       contact.Name,
		City:            contact.City,
		Street:          contact.Street,
		BuildingNumber:  contact.Building,
		ApartmentNumber: contact.Apartment,
		PostalCode:      contact.PostalCode,
		Email:           contact.Email,
		PhoneNumber:     contact.Phone,
	}
}
