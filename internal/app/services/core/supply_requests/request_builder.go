package supplyRequests

import (
	"necessitous-service/internal/app/models"
	"necessitous-service/internal/pkg/dto/requests"
)

// field is one request key with its computed value, present or not.
type field struct {
	key     string
	value   interface{}
	present bool
}

type requestBuilder struct {
	categories []models.SupplyCategory
	rules      map[models.SupplyCategory]categoryRule
}

var defaultRequestBuilder = requestBuilder{
	categories: models.SupplyCategories,
	rules:      categoryRules,
}

// Build turns the collected wizard steps into the sparse request payload.
// It fails only when a step is missing; after that every section is either
// present or left out.
func Build(steps models.PartialStepDict) (requests.SupplyRequest, error) {
	return defaultRequestBuilder.build(steps)
}

func (b requestBuilder) build(partial models.PartialStepDict) (requests.SupplyRequest, error) {
	steps, err := RequireComplete(partial)
	if err != nil {
		return nil, err
	}

	fields := make([]field, 0, len(b.categories)+2)
	fields = append(fields, field{
		key:     requests.KeyMedicalCentre,
		value:   medicalCentre(steps.Contact.Data),
		present: true,
	})

	comment, ok := reduceDescription(steps.Summary.Data.Comment)
	fields = append(fields, field{key: requests.KeyAdditionalComment, value: comment, present: ok})

	supplies := steps.Demand.Data.Supplies
	for _, category := range b.categories {
		rule := b.rules[category]
		if !supplies.Has(category) {
			fields = append(fields, field{key: rule.key})
			continue
		}
		value, ok := rule.reduce(&supplies)
		fields = append(fields, field{key: rule.key, value: value, present: ok})
	}

	return compact(fields), nil
}

// compact keeps only the present fields.
func compact(fields []field) requests.SupplyRequest {
	request := make(requests.SupplyRequest, len(fields))
	for _, f := range fields {
		if f.present {
			request[f.key] = f.value
		}
	}
	return request
}
