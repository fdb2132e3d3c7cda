package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestDocumentRoundTrip(t *testing.T) {
	doc := &Document{
		Taxa: []*Taxon{
			{
				ID:             "1",
				ScientificName: "Carabidae",
				VernacularName: &LocalizedText{No: strptr("løpebiller"), En: strptr("ground beetles")},
				Children: []*Taxon{
					{ID: "2", ScientificName: "Carabus"},
					{ID: "3", ScientificName: "Cicindela"},
				},
			},
		},
		Characters: []*Character{
			{
				ID:    "c1",
				Title: LocalizedText{En: strptr("Elytra color")},
				Type:  TypeExclusive,
				States: States{Alternatives: []*State{
					{ID: "s1", Title: &LocalizedText{En: strptr("black")}},
					{ID: "s2", Title: &LocalizedText{En: strptr("green")}},
				}},
				LogicalPremise: Premise{
					{{CharacterID: "c2", StateID: "s9"}, {CharacterID: "c2", StateID: "s8"}},
				},
			},
			{
				ID:    "c2",
				Title: LocalizedText{En: strptr("Body length")},
				Type:  TypeNumerical,
				States: States{Numeric: &NumericState{
					ID: "s9", Unit: &LocalizedText{En: strptr("mm")}, Min: 1, Max: 40, StepSize: 0.5,
				}},
			},
		},
		Statements: []*Statement{
			{ID: "st1", TaxonID: "2", CharacterID: "c1", State: "s1", Frequency: 1},
		},
	}

	raw, err := doc.Encode()
	require.NoError(t, err)

	decoded, err := DecodeDocument(raw)
	require.NoError(t, err)

	assert.Equal(t, doc, decoded)
	// Ordering of children and states survives the trip.
	assert.Equal(t, "2", decoded.Taxa[0].Children[0].ID)
	assert.Equal(t, "3", decoded.Taxa[0].Children[1].ID)
	assert.Equal(t, "s1", decoded.Characters[0].States.Alternatives[0].ID)
}

func TestStatesWireShape(t *testing.T) {
	multistate := Character{ID: "c1", Type: TypeMultistate, States: States{
		Alternatives: []*State{{ID: "s1"}},
	}}
	numerical := Character{ID: "c2", Type: TypeNumerical, States: States{
		Numeric: &NumericState{ID: "s9", Min: 0, Max: 1, StepSize: 0.1},
	}}

	multiRaw, err := json.Marshal(multistate)
	require.NoError(t, err)
	assert.Contains(t, string(multiRaw), `"states":[{`)

	numRaw, err := json.Marshal(numerical)
	require.NoError(t, err)
	assert.Contains(t, string(numRaw), `"states":{`)
}

func TestDecodeEmptyDocument(t *testing.T) {
	doc, err := DecodeDocument(nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Taxa)
	assert.Empty(t, doc.Characters)
}

func TestMediaBundleRoundTrip(t *testing.T) {
	bundle := &MediaBundle{
		MediaElements: []MediaElement{{ID: "10", License: "CC BY 4.0", Creators: []string{"p1"}}},
		Persons:       []Person{{ID: "p1", Name: "Ada Lovelace"}},
	}

	raw, err := bundle.Encode()
	require.NoError(t, err)

	decoded, err := DecodeMediaBundle(raw)
	require.NoError(t, err)
	assert.Equal(t, bundle, decoded)
}
