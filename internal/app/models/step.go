package models

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

type StepType string

const (
	StepTypeContact StepType = "contact"
	StepTypeDemand  StepType = "demand"
	StepTypeSummary StepType = "summary"
)

// StepPath is the wizard position of a step.
type StepPath string

const (
	StepPathContact StepPath = "1"
	StepPathDemand  StepPath = "2"
	StepPathSummary StepPath = "3"
)

var (
	// ErrImpossibleState reports navigation past either end of the wizard.
	// It is a programming fault, never a user input problem.
	ErrImpossibleState = errors.New("impossible state")
	ErrUnknownStepType = errors.New("unknown step type")
)

// UnknownStepTypeError carries the step type that could not be decoded.
type UnknownStepTypeError struct {
	Type StepType
}

func (e *UnknownStepTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownStepType, e.Type)
}

func (e *UnknownStepTypeError) Unwrap() error {
	return ErrUnknownStepType
}

// Step is one wizard screen's worth of data: ContactStep, DemandStep or
// SummaryStep.
type Step interface {
	Type() StepType
	Path() StepPath
}

type ContactData struct {
	Name       string `json:"name" validate:"required,not_blank"`
	City       string `json:"city" validate:"required,not_blank"`
	Street     string `json:"street" validate:"required,not_blank"`
	Building   string `json:"building" validate:"required,not_blank"`
	Apartment  string `json:"apartment,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,not_blank"`
}

type DemandData struct {
	Supplies Supplies `json:"supplies"`
}

type SummaryData struct {
	Comment *string `json:"comment,omitempty"`
}

type ContactStep struct {
	Data ContactData
}

type DemandStep struct {
	Data DemandData
}

type SummaryStep struct {
	Data SummaryData
}

func NewContactStep(data ContactData) ContactStep { return ContactStep{Data: data} }
func NewDemandStep(data DemandData) DemandStep    { return DemandStep{Data: data} }
func NewSummaryStep(data SummaryData) SummaryStep { return SummaryStep{Data: data} }

func (ContactStep) Type() StepType { return StepTypeContact }
func (ContactStep) Path() StepPath { return StepPathContact }
func (DemandStep) Type() StepType  { return StepTypeDemand }
func (DemandStep) Path() StepPath  { return StepPathDemand }
func (SummaryStep) Type() StepType { return StepTypeSummary }
func (SummaryStep) Path() StepPath { return StepPathSummary }

// NextPath returns the path of the step following stepType.
func NextPath(stepType StepType) (StepPath, error) {
	switch stepType {
	case StepTypeContact:
		return StepPathDemand, nil
	case StepTypeDemand:
		return StepPathSummary, nil
	default:
		return "", fmt.Errorf("%w: no step after %q", ErrImpossibleState, stepType)
	}
}

// PrevPath returns the path of the step preceding stepType.
func PrevPath(stepType StepType) (StepPath, error) {
	switch stepType {
	case StepTypeDemand:
		return StepPathContact, nil
	case StepTypeSummary:
		return StepPathDemand, nil
	default:
		return "", fmt.Errorf("%w: no step before %q", ErrImpossibleState, stepType)
	}
}

type stepEnvelope struct {
	Type StepType        `json:"type"`
	Path StepPath        `json:"path"`
	Data json.RawMessage `json:"data"`
}

func marshalStep(step Step, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(stepEnvelope{Type: step.Type(), Path: step.Path(), Data: raw})
}

func (s ContactStep) MarshalJSON() ([]byte, error) { return marshalStep(s, s.Data) }
func (s DemandStep) MarshalJSON() ([]byte, error)  { return marshalStep(s, s.Data) }
func (s SummaryStep) MarshalJSON() ([]byte, error) { return marshalStep(s, s.Data) }

// DecodeStep reads a {type, path, data} envelope. The path is derived from
// the type, so a path sent by the client is ignored.
func DecodeStep(raw []byte) (Step, error) {
	var envelope stepEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	return decodeStepData(envelope.Type, envelope.Data)
}

func decodeStepData(stepType StepType, data json.RawMessage) (Step, error) {
	if len(data) == 0 || string(data) == "null" {
		data = json.RawMessage("{}")
	}

	switch stepType {
	case StepTypeContact:
		var contact ContactData
		if err := json.Unmarshal(data, &contact); err != nil {
			return nil, err
		}
		return NewContactStep(contact), nil
	case StepTypeDemand:
		var demand DemandData
		if err := json.Unmarshal(data, &demand); err != nil {
			return nil, err
		}
		return NewDemandStep(demand), nil
	case StepTypeSummary:
		var summary SummaryData
		if err := json.Unmarshal(data, &summary); err != nil {
			return nil, err
		}
		return NewSummaryStep(summary), nil
	default:
		return nil, &UnknownStepTypeError{Type: stepType}
	}
}
