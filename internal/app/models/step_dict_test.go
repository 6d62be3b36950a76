package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartialStepDictUnmarshalJSON(t *testing.T) {
	t.Run("Decodes every known step", func(t *testing.T) {
		var dict PartialStepDict
		err := json.Unmarshal([]byte(`{
			"contact": {"type":"contact","data":{"name":"Clinic"}},
			"demand": {"type":"demand","data":{"supplies":{}}},
			"summary": {"data":{"comment":"hi"}}
		}`), &dict)
		require.NoError(t, err)

		assert.Len(t, dict, 3)
		assert.IsType(t, ContactStep{}, dict[StepTypeContact])
		assert.IsType(t, DemandStep{}, dict[StepTypeDemand])
		summary := dict[StepTypeSummary].(SummaryStep)
		require.NotNil(t, summary.Data.Comment)
		assert.Equal(t, "hi", *summary.Data.Comment)
	})

	t.Run("Ignores unrelated keys", func(t *testing.T) {
		var dict PartialStepDict
		err := json.Unmarshal([]byte(`{"contact":{"data":{}},"payment":{"data":{}}}`), &dict)
		require.NoError(t, err)
		assert.Len(t, dict, 1)
	})

	t.Run("Rejects an envelope stored under another step's key", func(t *testing.T) {
		var dict PartialStepDict
		err := json.Unmarshal([]byte(`{"contact":{"type":"demand","data":{}}}`), &dict)
		assert.Error(t, err)
	})
}

func TestPartialStepDictWith(t *testing.T) {
	empty := PartialStepDict{}
	withContact := empty.With(NewContactStep(ContactData{Name: "Clinic"}))

	assert.Len(t, empty, 0, "With must not mutate the receiver")
	assert.Len(t, withContact, 1)
	assert.Equal(t, StepTypeContact, withContact[StepTypeContact].Type())
}

func TestPartialStepDictRoundTrip(t *testing.T) {
	dict := PartialStepDict{}.
		With(NewContactStep(ContactData{Name: "Clinic", Email: "a@b.pl"})).
		With(NewSummaryStep(SummaryData{}))

	raw, err := json.Marshal(dict)
	require.NoError(t, err)

	var decoded PartialStepDict
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, dict, decoded)
}
