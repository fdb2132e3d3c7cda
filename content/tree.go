package content

import "strings"

// TreeIndex is a per-operation index over a document's taxon tree: one map
// from id to node and parent, built once before a mutation. Parent identity
// is never written into the stored nodes.
type TreeIndex struct {
	doc     *Document
	parents map[string]*Taxon
	nodes   map[string]*Taxon
}

func NewTreeIndex(doc *Document) *TreeIndex {
	ix := &TreeIndex{
		doc:     doc,
		parents: make(map[string]*Taxon),
		nodes:   make(map[string]*Taxon),
	}
	var walk func(nodes []*Taxon, parent *Taxon)
	walk = func(nodes []*Taxon, parent *Taxon) {
		for _, n := range nodes {
			ix.nodes[n.ID] = n
			if parent != nil {
				ix.parents[n.ID] = parent
			}
			walk(n.Children, n)
		}
	}
	walk(doc.Taxa, nil)
	return ix
}

// Find returns the taxon with the given id, or nil.
func (ix *TreeIndex) Find(id string) *Taxon {
	return ix.nodes[id]
}

// ParentID returns the parent id of a node, RootParent for top-level nodes,
// and the empty string when the node is not in the tree.
func (ix *TreeIndex) ParentID(id string) string {
	if _, ok := ix.nodes[id]; !ok {
		return ""
	}
	if p, ok := ix.parents[id]; ok {
		return p.ID
	}
	return RootParent
}

// FindByName locates a taxon by case-insensitive scientific name, depth
// first. The first match decides: when it is the ignored node the name counts
// as unused, without searching deeper. This lets a rename check uniqueness
// while excluding the node itself.
func (ix *TreeIndex) FindByName(name, ignoreID string) *Taxon {
	target := strings.ToLower(name)
	var search func(nodes []*Taxon) *Taxon
	search = func(nodes []*Taxon) *Taxon {
		for _, n := range nodes {
			if strings.ToLower(n.ScientificName) == target {
				return n
			}
			if found := search(n.Children); found != nil {
				return found
			}
		}
		return nil
	}
	found := search(ix.doc.Taxa)
	if found == nil || found.ID == ignoreID {
		return nil
	}
	return found
}

// AddToParent appends a node under the given parent, or at the tree root when
// parentID is RootParent. A missing parent is a silent no-op; callers
// validate the parent before mutating.
func (ix *TreeIndex) AddToParent(node *Taxon, parentID string) {
	if parentID == RootParent || parentID == "" {
		ix.doc.Taxa = append(ix.doc.Taxa, node)
		ix.register(node, nil)
		return
	}
	parent := ix.nodes[parentID]
	if parent == nil {
		return
	}
	parent.Children = append(parent.Children, node)
	ix.register(node, parent)
}

func (ix *TreeIndex) register(node *Taxon, parent *Taxon) {
	ix.nodes[node.ID] = node
	if parent != nil {
		ix.parents[node.ID] = parent
	} else {
		delete(ix.parents, node.ID)
	}
	var walk func(nodes []*Taxon, p *Taxon)
	walk = func(nodes []*Taxon, p *Taxon) {
		for _, n := range nodes {
			ix.nodes[n.ID] = n
			ix.parents[n.ID] = p
			walk(n.Children, n)
		}
	}
	walk(node.Children, node)
}

// Remove splices a node (with its subtree) out of its containing list.
func (ix *TreeIndex) Remove(node *Taxon) {
	if parent, ok := ix.parents[node.ID]; ok {
		parent.Children = spliceByID(parent.Children, node.ID)
	} else {
		ix.doc.Taxa = spliceByID(ix.doc.Taxa, node.ID)
	}
	delete(ix.parents, node.ID)
	delete(ix.nodes, node.ID)
}

// Reparent moves a node under a new parent, or to the tree root when
// newParentID is RootParent. Moving a node to its current parent leaves the
// tree untouched.
func (ix *TreeIndex) Reparent(node *Taxon, newParentID string) {
	if ix.ParentID(node.ID) == newParentID {
		return
	}
	ix.Remove(node)
	ix.AddToParent(node, newParentID)
}

func spliceByID(nodes []*Taxon, id string) []*Taxon {
	out := nodes[:0]
	for _, n := range nodes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}
