package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Document {
	return &Document{
		Taxa: []*Taxon{
			{
				ID:             "1",
				ScientificName: "Carabidae",
				Children: []*Taxon{
					{ID: "2", ScientificName: "Carabus"},
					{ID: "3", ScientificName: "Cicindela"},
				},
			},
			{ID: "4", ScientificName: "Dytiscidae"},
		},
	}
}

func TestFind(t *testing.T) {
	ix := NewTreeIndex(sampleTree())

	assert.Equal(t, "Carabus", ix.Find("2").ScientificName)
	assert.Nil(t, ix.Find("99"))
}

func TestParentID(t *testing.T) {
	ix := NewTreeIndex(sampleTree())

	assert.Equal(t, "1", ix.ParentID("2"))
	assert.Equal(t, RootParent, ix.ParentID("1"))
	assert.Equal(t, "", ix.ParentID("99"))
}

func TestFindByNameIsCaseInsensitive(t *testing.T) {
	ix := NewTreeIndex(sampleTree())

	found := ix.FindByName("CARABUS", "")
	require.NotNil(t, found)
	assert.Equal(t, "2", found.ID)
}

func TestFindByNameExcludesSelf(t *testing.T) {
	ix := NewTreeIndex(sampleTree())

	// Renaming taxon 2 to its own name must not report a collision.
	assert.Nil(t, ix.FindByName("carabus", "2"))
	// But a collision with a different node still surfaces.
	assert.NotNil(t, ix.FindByName("cicindela", "2"))
}

func TestFindByNameFirstMatchDecides(t *testing.T) {
	// Two nodes carry the same name; the first one found depth-first is the
	// ignored node, so the name counts as unused even though a duplicate
	// exists deeper in the tree.
	ix := NewTreeIndex(&Document{
		Taxa: []*Taxon{
			{
				ID:             "1",
				ScientificName: "Carabus",
				Children: []*Taxon{
					{ID: "2", ScientificName: "Carabus"},
				},
			},
		},
	})

	assert.Nil(t, ix.FindByName("carabus", "1"))

	found := ix.FindByName("carabus", "2")
	require.NotNil(t, found)
	assert.Equal(t, "1", found.ID)
}

func TestAddToParent(t *testing.T) {
	doc := sampleTree()
	ix := NewTreeIndex(doc)

	ix.AddToParent(&Taxon{ID: "5", ScientificName: "Nebria"}, "2")

	carabus := ix.Find("2")
	require.Len(t, carabus.Children, 1)
	assert.Equal(t, "5", carabus.Children[0].ID)
	assert.Equal(t, "2", ix.ParentID("5"))
}

func TestAddToParentMissingParentIsNoop(t *testing.T) {
	doc := sampleTree()
	ix := NewTreeIndex(doc)

	ix.AddToParent(&Taxon{ID: "5", ScientificName: "Nebria"}, "404")

	assert.Nil(t, ix.Find("5"))
	assert.Len(t, doc.Taxa, 2)
}

func TestReparentMovesNodeExactlyOnce(t *testing.T) {
	doc := sampleTree()
	ix := NewTreeIndex(doc)

	ix.Reparent(ix.Find("2"), "4")

	assert.Len(t, ix.Find("1").Children, 1)
	require.Len(t, ix.Find("4").Children, 1)
	assert.Equal(t, "2", ix.Find("4").Children[0].ID)
	assert.Equal(t, "4", ix.ParentID("2"))
}

func TestReparentToRootSentinel(t *testing.T) {
	doc := sampleTree()
	ix := NewTreeIndex(doc)

	ix.Reparent(ix.Find("2"), RootParent)

	assert.Len(t, doc.Taxa, 3)
	assert.Equal(t, "2", doc.Taxa[2].ID)
	for _, root := range doc.Taxa {
		for _, child := range root.Children {
			assert.NotEqual(t, "2", child.ID)
		}
	}
}

func TestReparentToCurrentParentIsNoop(t *testing.T) {
	doc := sampleTree()
	ix := NewTreeIndex(doc)

	ix.Reparent(ix.Find("2"), "1")

	require.Len(t, ix.Find("1").Children, 2)
	assert.Equal(t, "2", ix.Find("1").Children[0].ID)
	assert.Equal(t, "3", ix.Find("1").Children[1].ID)
}

func TestReparentCarriesSubtree(t *testing.T) {
	doc := sampleTree()
	ix := NewTreeIndex(doc)
	ix.AddToParent(&Taxon{ID: "5", ScientificName: "Nebria"}, "2")

	ix.Reparent(ix.Find("2"), "4")

	assert.Equal(t, "2", ix.ParentID("5"))
	assert.Equal(t, "4", ix.ParentID("2"))
}

func TestRemoveRootNode(t *testing.T) {
	doc := sampleTree()
	ix := NewTreeIndex(doc)

	ix.Remove(ix.Find("4"))

	assert.Len(t, doc.Taxa, 1)
	assert.Nil(t, ix.Find("4"))
}
