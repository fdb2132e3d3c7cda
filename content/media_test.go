package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachMediaAppendsEverywhere(t *testing.T) {
	taxon := &Taxon{ID: "1", Media: []string{"10"}}
	bundle := &MediaBundle{}

	AttachMedia(&taxon.Media, bundle, MediaElement{ID: "11", License: "CC BY 4.0"}, []string{"Ada Lovelace"})

	assert.Equal(t, []string{"10", "11"}, taxon.Media)
	require.Len(t, bundle.MediaElements, 1)
	require.Len(t, bundle.Persons, 1)
	assert.Equal(t, "Ada Lovelace", bundle.Persons[0].Name)
	assert.Equal(t, []string{bundle.Persons[0].ID}, bundle.MediaElements[0].Creators)
}

func TestAttachMediaDeduplicatesPersons(t *testing.T) {
	taxon := &Taxon{ID: "1"}
	bundle := &MediaBundle{}

	AttachMedia(&taxon.Media, bundle, MediaElement{ID: "11"}, []string{"Ada Lovelace"})
	AttachMedia(&taxon.Media, bundle, MediaElement{ID: "12"}, []string{"ada lovelace"})
	AttachMedia(&taxon.Media, bundle, MediaElement{ID: "13"}, []string{"ADA  LOVELACE"})

	require.Len(t, bundle.Persons, 1)
	for _, el := range bundle.MediaElements {
		assert.Equal(t, []string{bundle.Persons[0].ID}, el.Creators)
	}
}

func TestDetachMediaIsSymmetric(t *testing.T) {
	taxon := &Taxon{ID: "1", Media: []string{"10", "11", "12"}}
	bundle := &MediaBundle{
		MediaElements: []MediaElement{{ID: "10"}, {ID: "11"}, {ID: "12"}},
		Persons:       []Person{{ID: "p1", Name: "Ada Lovelace"}},
	}

	DetachMedia(&taxon.Media, bundle, []string{"10", "12"})

	assert.Equal(t, []string{"11"}, taxon.Media)
	require.Len(t, bundle.MediaElements, 1)
	assert.Equal(t, "11", bundle.MediaElements[0].ID)
	// Persons are never pruned on detach.
	assert.Len(t, bundle.Persons, 1)
}

func TestDetachMediaLeavesOtherIDsUntouched(t *testing.T) {
	taxon := &Taxon{ID: "1", Media: []string{"10", "11"}}
	bundle := &MediaBundle{MediaElements: []MediaElement{{ID: "10"}, {ID: "11"}}}

	DetachMedia(&taxon.Media, bundle, []string{"99"})

	assert.Equal(t, []string{"10", "11"}, taxon.Media)
	assert.Len(t, bundle.MediaElements, 2)
}

func TestRemoveOrphanElements(t *testing.T) {
	doc := &Document{
		Taxa: []*Taxon{
			{ID: "1", Media: []string{"10"}, Children: []*Taxon{
				{ID: "2", Media: []string{"11"}},
			}},
		},
		Characters: []*Character{
			{ID: "c1", Type: TypeExclusive, States: States{Alternatives: []*State{
				{ID: "s1", Media: []string{"12"}},
			}}},
		},
	}
	bundle := &MediaBundle{MediaElements: []MediaElement{
		{ID: "10"}, {ID: "11"}, {ID: "12"}, {ID: "13"}, {ID: "14"},
	}}

	removed := RemoveOrphanElements(doc, bundle)

	assert.ElementsMatch(t, []string{"13", "14"}, removed)
	assert.Len(t, bundle.MediaElements, 3)
}
