package requests

import "necessitous-service/internal/app/models"

// SupplyRequest is the sparse payload posted to the backend. A key is set
// only when its section was supplied and carries something worth sending;
// absent sections are never encoded as null or empty values.
type SupplyRequest map[string]interface{}

const (
	KeyMedicalCentre          = "medicalCentre"
	KeyAdditionalComment      = "additionalComment"
	KeyMasks                  = "masks"
	KeyGloves                 = "gloves"
	KeyGroceries              = "groceries"
	KeyDisinfectionMeasures   = "disinfectionMeasures"
	KeySuits                  = "suits"
	KeyOtherCleaningMaterials = "otherCleaningMaterials"
	KeyPsychologicalSupport   = "psychologicalSupport"
	KeySewingSupplies         = "sewingSupplies"
	KeyOthers                 = "others"
	KeyPrints                 = "prints"
	KeyTransport              = "transport"
)

// SupplyRequestKeys lists every key a SupplyRequest may carry.
var SupplyRequestKeys = []string{
	KeyMedicalCentre,
	KeyMasks,
	KeyGloves,
	KeyGroceries,
	KeyDisinfectionMeasures,
	KeySuits,
	KeyOtherCleaningMaterials,
	KeyPsychologicalSupport,
	KeySewingSupplies,
	KeyOthers,
	KeyAdditionalComment,
	KeyPrints,
	KeyTransport,
}

type MedicalCentre struct {
	LegalName       string `json:"legalName"`
	City            string `json:"city"`
	Street          string `json:"street"`
	BuildingNumber  string `json:"buildingNumber"`
	ApartmentNumber string `json:"apartmentNumber,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
}

// SupplySection is a structured category: the requested positions plus an
// optional description of the whole section.
type SupplySection[P any] struct {
	Description string `json:"description,omitempty"`
	Positions   []P    `json:"positions"`
}

// Description is the value of description-only categories and of the
// additional comment.
type Description struct {
	Description string `json:"description"`
}

type MaskPosition struct {
	UsageType models.UsageType `json:"usageType"`
	Quantity  int              `json:"quantity"`
	Style     models.MaskStyle `json:"style"`
}

type GlovePosition struct {
	Material models.Material `json:"material"`
	Quantity int             `json:"quantity"`
	Size     models.Size     `json:"size"`
}

type SuitPosition struct {
	Material models.Material `json:"material,omitempty"`
	Quantity int             `json:"quantity"`
	Size     models.Size     `json:"size"`
}

type PrintPosition struct {
	PrintType models.PrintType `json:"printType"`
	Quantity  int              `json:"quantity"`
}

type CustomPosition struct {
	Quantity    int    `json:"quantity"`
	Description string `json:"description,omitempty"`
}

type (
	Masks                  = SupplySection[MaskPosition]
	Gloves                 = SupplySection[GlovePosition]
	Suits                  = SupplySection[SuitPosition]
	Prints                 = SupplySection[PrintPosition]
	Groceries              = SupplySection[CustomPosition]
	DisinfectionMeasures   = SupplySection[CustomPosition]
	OtherCleaningMaterials = SupplySection[CustomPosition]
)
