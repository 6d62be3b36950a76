package models

// SupplyCategory names one kind of requested material.
type SupplyCategory string

const (
	SupplyCategoryMask                 SupplyCategory = "Mask"
	SupplyCategoryGlove                SupplyCategory = "Glove"
	SupplyCategoryGrocery              SupplyCategory = "Grocery"
	SupplyCategoryDisinfectant         SupplyCategory = "Disinfectant"
	SupplyCategorySuit                 SupplyCategory = "Suit"
	SupplyCategoryCleaning             SupplyCategory = "Cleaning"
	SupplyCategoryPsychologicalSupport SupplyCategory = "PsychologicalSupport"
	SupplyCategorySewingMaterial       SupplyCategory = "SewingMaterial"
	SupplyCategoryPrint                SupplyCategory = "Print"
	SupplyCategoryOther                SupplyCategory = "Other"
	SupplyCategoryTransport            SupplyCategory = "Transport"
)

var SupplyCategories = []SupplyCategory{
	SupplyCategoryMask,
	SupplyCategoryGlove,
	SupplyCategoryGrocery,
	SupplyCategoryDisinfectant,
	SupplyCategorySuit,
	SupplyCategoryCleaning,
	SupplyCategoryPsychologicalSupport,
	SupplyCategorySewingMaterial,
	SupplyCategoryPrint,
	SupplyCategoryOther,
	SupplyCategoryTransport,
}

type UsageType string

const (
	UsageTypeDisposable UsageType = "disposable"
	UsageTypeReusable   UsageType = "reusable"
)

type MaskStyle string

const (
	MaskStyleSurgical MaskStyle = "surgical"
	MaskStyleFFP2     MaskStyle = "ffp2"
	MaskStyleFFP3     MaskStyle = "ffp3"
	MaskStyleCloth    MaskStyle = "cloth"
)

type Material string

const (
	MaterialLatex         Material = "latex"
	MaterialNitrile       Material = "nitrile"
	MaterialVinyl         Material = "vinyl"
	MaterialPolypropylene Material = "polypropylene"
	MaterialOther         Material = "other"
)

type Size string

const (
	SizeXS        Size = "XS"
	SizeS         Size = "S"
	SizeM         Size = "M"
	SizeL         Size = "L"
	SizeXL        Size = "XL"
	SizeUniversal Size = "universal"
)

type PrintType string

const (
	PrintTypeFaceShield PrintType = "faceShield"
	PrintTypeMaskFrame  PrintType = "maskFrame"
	PrintTypeEarSaver   PrintType = "earSaver"
	PrintTypeOther      PrintType = "other"
)

// Position is a line item of a structured category. A position whose
// requested quantity is zero is treated as not requested.
type Position interface {
	RequestedQuantity() int
}

type MaskPosition struct {
	Type     UsageType `json:"type" validate:"required,oneof=disposable reusable"`
	Quantity int       `json:"quantity" validate:"min=0"`
	Style    MaskStyle `json:"style" validate:"required,oneof=surgical ffp2 ffp3 cloth"`
}

func (p MaskPosition) RequestedQuantity() int { return p.Quantity }

type GlovePosition struct {
	Material Material `json:"material" validate:"required,oneof=latex nitrile vinyl polypropylene other"`
	Quantity int      `json:"quantity" validate:"min=0"`
	Size     Size     `json:"size" validate:"required,oneof=XS S M L XL universal"`
}

func (p GlovePosition) RequestedQuantity() int { return p.Quantity }

type SuitPosition struct {
	Material Material `json:"material,omitempty" validate:"omitempty,oneof=latex nitrile vinyl polypropylene other"`
	Quantity int      `json:"quantity" validate:"min=0"`
	Size     Size     `json:"size" validate:"required,oneof=XS S M L XL universal"`
}

func (p SuitPosition) RequestedQuantity() int { return p.Quantity }

type PrintPosition struct {
	PrintType PrintType `json:"printType" validate:"required,oneof=faceShield maskFrame earSaver other"`
	Quantity  int       `json:"quantity" validate:"min=0"`
}

func (p PrintPosition) RequestedQuantity() int { return p.Quantity }

// CustomPosition is a free-entry line of the Grocery, Disinfectant and
// Cleaning categories; Type is the user's own name for the item.
type CustomPosition struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

func (p CustomPosition) RequestedQuantity() int { return p.Quantity }

type SupplySection[P Position] struct {
	Positions   []P     `json:"positions" validate:"dive"`
	Description *string `json:"description,omitempty"`
}

// DescriptionSection is a category described only by free text.
type DescriptionSection struct {
	Description *string `json:"description,omitempty"`
}

// Supplies holds the submitted section of each category; a nil field means
// the user supplied nothing for that category.
type Supplies struct {
	Mask                 *SupplySection[MaskPosition]   `json:"Mask,omitempty"`
	Glove                *SupplySection[GlovePosition]  `json:"Glove,omitempty"`
	Grocery              *SupplySection[CustomPosition] `json:"Grocery,omitempty"`
	Disinfectant         *SupplySection[CustomPosition] `json:"Disinfectant,omitempty"`
	Suit                 *SupplySection[SuitPosition]   `json:"Suit,omitempty"`
	Cleaning             *SupplySection[CustomPosition] `json:"Cleaning,omitempty"`
	PsychologicalSupport *DescriptionSection            `json:"PsychologicalSupport,omitempty"`
	SewingMaterial       *DescriptionSection            `json:"SewingMaterial,omitempty"`
	Print                *SupplySection[PrintPosition]  `json:"Print,omitempty"`
	Other                *DescriptionSection            `json:"Other,omitempty"`
	Transport            *DescriptionSection            `json:"Transport,omitempty"`
}

// Has reports whether the section for category was submitted at all.
func (s *Supplies) Has(category SupplyCategory) bool {
	switch category {
	case SupplyCategoryMask:
		return s.Mask != nil
	case SupplyCategoryGlove:
		return s.Glove != nil
	case SupplyCategoryGrocery:
		return s.Grocery != nil
	case SupplyCategoryDisinfectant:
		return s.Disinfectant != nil
	case SupplyCategorySuit:
		return s.Suit != nil
	case SupplyCategoryCleaning:
		return s.Cleaning != nil
	case SupplyCategoryPsychologicalSupport:
		return s.PsychologicalSupport != nil
	case SupplyCategorySewingMaterial:
		return s.SewingMaterial != nil
	case SupplyCategoryPrint:
		return s.Print != nil
	case SupplyCategoryOther:
		return s.Other != nil
	case SupplyCategoryTransport:
		return s.Transport != nil
	}
	return false
}
