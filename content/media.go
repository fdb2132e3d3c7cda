package content

import (
	"strings"

	"github.com/google/uuid"
)

// personKey is the dedup key for creator records: lowercased with all
// whitespace stripped.
func personKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// upsertPerson finds an existing person by dedup key or appends a new one,
// returning its id.
func (m *MediaBundle) upsertPerson(name string) string {
	key := personKey(name)
	for _, p := range m.Persons {
		if personKey(p.Name) == key {
			return p.ID
		}
	}
	person := Person{ID: uuid.NewString(), Name: name}
	m.Persons = append(m.Persons, person)
	return person.ID
}

// AttachMedia links a media element to an entity: the element id is appended
// to the entity's media list, the element to the bundle's ledger, and each
// creator name is deduplicated into the persons ledger.
func AttachMedia(entityMedia *[]string, bundle *MediaBundle, element MediaElement, creators []string) {
	for _, name := range creators {
		if strings.TrimSpace(name) == "" {
			continue
		}
		element.Creators = append(element.Creators, bundle.upsertPerson(name))
	}
	element.Title = element.Title.Normalize()
	bundle.MediaElements = append(bundle.MediaElements, element)
	*entityMedia = append(*entityMedia, element.ID)
}

// DetachMedia removes the given media ids from the entity's list and the
// bundle's ledger symmetrically. Persons are never pruned, even when no
// element references them anymore.
func DetachMedia(entityMedia *[]string, bundle *MediaBundle, ids []string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	keptIDs := (*entityMedia)[:0]
	for _, id := range *entityMedia {
		if _, gone := drop[id]; !gone {
			keptIDs = append(keptIDs, id)
		}
	}
	*entityMedia = keptIDs

	keptElements := bundle.MediaElements[:0]
	for _, el := range bundle.MediaElements {
		if _, gone := drop[el.ID]; !gone {
			keptElements = append(keptElements, el)
		}
	}
	bundle.MediaElements = keptElements
}

// RemoveOrphanElements drops ledger entries no document node references
// anymore, returning the ids that were removed. Used when taxa or characters
// disappear and their media would otherwise leak.
func RemoveOrphanElements(doc *Document, bundle *MediaBundle) []string {
	referenced := make(map[string]struct{})
	var walkTaxa func(nodes []*Taxon)
	walkTaxa = func(nodes []*Taxon) {
		for _, t := range nodes {
			for _, id := range t.Media {
				referenced[id] = struct{}{}
			}
			walkTaxa(t.Children)
		}
	}
	walkTaxa(doc.Taxa)
	for _, c := range doc.Characters {
		for _, id := range c.Media {
			referenced[id] = struct{}{}
		}
		for _, s := range c.States.Alternatives {
			for _, id := range s.Media {
				referenced[id] = struct{}{}
			}
		}
	}

	var removed []string
	kept := bundle.MediaElements[:0]
	for _, el := range bundle.MediaElements {
		if _, ok := referenced[el.ID]; ok {
			kept = append(kept, el)
		} else {
			removed = append(removed, el.ID)
		}
	}
	bundle.MediaElements = kept
	return removed
}
