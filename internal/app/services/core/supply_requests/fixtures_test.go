package supplyRequests

import "necessitous-service/internal/app/models"

func strPtr(s string) *string { return &s }

func validContact() models.ContactData {
	return models.ContactData{
		Name:       "Szpital Miejski",
		City:       "Gdansk",
		Street:     "Dluga",
		Building:   "12",
		Apartment:  "3",
		PostalCode: "80-001",
		Email:      "kontakt@szpital.pl",
		Phone:      "+48123456789",
	}
}

func completeSteps(supplies models.Supplies, comment *string) models.PartialStepDict {
	return models.PartialStepDict{}.
		With(models.NewContactStep(validContact())).
		With(models.NewDemandStep(models.DemandData{Supplies: supplies})).
		With(models.NewSummaryStep(models.SummaryData{Comment: comment}))
}
