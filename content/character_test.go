package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func premiseDoc(premise Premise) *Document {
	return &Document{
		Characters: []*Character{
			{ID: "1", Type: TypeExclusive, States: States{Alternatives: []*State{
				{ID: "a"}, {ID: "b"},
			}}},
			{ID: "2", Type: TypeExclusive, LogicalPremise: premise},
		},
	}
}

func TestPruneStatePremisesDropsClause(t *testing.T) {
	doc := premiseDoc(Premise{
		{{CharacterID: "1", StateID: "a"}, {CharacterID: "1", StateID: "b"}},
		{{CharacterID: "3", StateID: "x"}, {CharacterID: "3", StateID: "y"}},
	})

	PruneStatePremises(doc, map[string]struct{}{"a": {}})

	// The first disjunction shrank to one clause and was dropped, leaving a
	// single disjunction overall, which clears the premise entirely.
	assert.Nil(t, doc.Characters[1].LogicalPremise)
}

func TestPruneStatePremisesKeepsMultipleDisjunctions(t *testing.T) {
	doc := premiseDoc(Premise{
		{{CharacterID: "1", StateID: "a"}, {CharacterID: "1", StateID: "b"}, {CharacterID: "1", StateID: "c"}},
		{{CharacterID: "3", StateID: "x"}, {CharacterID: "3", StateID: "y"}},
		{{CharacterID: "4", StateID: "p"}, {CharacterID: "4", StateID: "q"}},
	})

	PruneStatePremises(doc, map[string]struct{}{"a": {}})

	premise := doc.Characters[1].LogicalPremise
	require.Len(t, premise, 3)
	assert.Len(t, premise[0], 2)
}

func TestPruneStatePremisesSingleDisjunctionClears(t *testing.T) {
	doc := premiseDoc(Premise{
		{{CharacterID: "1", StateID: "a"}, {CharacterID: "1", StateID: "b"}},
	})

	PruneStatePremises(doc, map[string]struct{}{"a": {}})

	assert.Nil(t, doc.Characters[1].LogicalPremise)
}

// State removal collapses a premise down to nil once a single disjunction
// remains; character removal does not. The asymmetry is intentional, matching
// the observed behavior of the editor, so both directions are pinned here.
func TestPremisePruningAsymmetry(t *testing.T) {
	makePremise := func() Premise {
		return Premise{
			{{CharacterID: "1", StateID: "a"}, {CharacterID: "1", StateID: "b"}},
			{{CharacterID: "9", StateID: "x"}, {CharacterID: "9", StateID: "y"}},
		}
	}

	byState := premiseDoc(makePremise())
	PruneStatePremises(byState, map[string]struct{}{"a": {}, "b": {}})
	assert.Nil(t, byState.Characters[1].LogicalPremise,
		"state removal collapses at one remaining disjunction")

	byCharacter := premiseDoc(makePremise())
	PruneCharacterPremises(byCharacter, "1")
	require.Len(t, byCharacter.Characters[1].LogicalPremise, 1,
		"character removal keeps a lone remaining disjunction")
	assert.Equal(t, "9", byCharacter.Characters[1].LogicalPremise[0][0].CharacterID)
}

func TestPruneCharacterPremisesClearsWhenEmpty(t *testing.T) {
	doc := premiseDoc(Premise{
		{{CharacterID: "1", StateID: "a"}, {CharacterID: "1", StateID: "b"}},
	})

	PruneCharacterPremises(doc, "1")

	assert.Nil(t, doc.Characters[1].LogicalPremise)
}

// The max comparison triggers the purge when the EXISTING max exceeds the new
// one. That direction is what the editor has always done; this test documents
// the exact condition.
func TestNumericRangePurgeCondition(t *testing.T) {
	base := func() *NumericState {
		return &NumericState{ID: "n", Min: 0, Max: 10, StepSize: 1}
	}

	tests := []struct {
		name    string
		mutate  func(n *NumericState)
		expects bool
	}{
		{"unchanged", func(n *NumericState) {}, false},
		{"step size changed", func(n *NumericState) { n.StepSize = 2 }, true},
		{"min lowered", func(n *NumericState) { n.Min = -5 }, true},
		{"min raised", func(n *NumericState) { n.Min = 5 }, false},
		{"max lowered triggers purge", func(n *NumericState) { n.Max = 5 }, true},
		{"max raised does not", func(n *NumericState) { n.Max = 20 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			updated := base()
			tc.mutate(updated)
			assert.Equal(t, tc.expects, NumericRangePurgeNeeded(base(), updated))
		})
	}
}

func TestRemovedStateIDs(t *testing.T) {
	old := []*State{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	updated := []*State{{ID: "b"}}

	removed := RemovedStateIDs(old, updated)

	assert.Len(t, removed, 2)
	assert.Contains(t, removed, "a")
	assert.Contains(t, removed, "c")
}

func TestCleanStatements(t *testing.T) {
	doc := &Document{
		Statements: []*Statement{
			{ID: "s1", State: "a"},
			{ID: "s2", State: "b"},
			{ID: "s3", State: "z"},
		},
	}
	old := States{Alternatives: []*State{{ID: "a"}, {ID: "b"}}}
	updated := States{Alternatives: []*State{{ID: "b"}}}

	changed := CleanStatements(doc, old, updated)

	assert.True(t, changed)
	require.Len(t, doc.Statements, 2)
	assert.Equal(t, "s2", doc.Statements[0].ID)
	assert.Equal(t, "s3", doc.Statements[1].ID)
}

func TestCleanStatementsNoopWhenStatesEqual(t *testing.T) {
	doc := &Document{Statements: []*Statement{{ID: "s1", State: "a"}}}
	states := States{Alternatives: []*State{{ID: "a"}}}

	assert.False(t, CleanStatements(doc, states, states))
	assert.Len(t, doc.Statements, 1)
}

func TestNormalizeStatePrunesEmptyText(t *testing.T) {
	empty := ""
	s := NormalizeState(&State{
		ID:          "a",
		Title:       &LocalizedText{No: &empty},
		Description: &LocalizedText{},
	})

	assert.Nil(t, s.Title)
	assert.Nil(t, s.Description)
}
