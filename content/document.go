// Package content implements the revision content model: the typed view of
// the json document embedded in a revision row, together with the editing
// rules that operate on it. Everything in this package is pure in-memory data
// transformation; persistence happens at the service boundary.
package content

import (
	"bytes"
	"encoding/json"
)

// All ids inside a document are strings even though they are backed by
// integer rows: the nested structure is serialized json, not relational data.

// RootParent is the sentinel parent id meaning "top level of the taxon tree".
const RootParent = "0"

// Character kinds as they appear on the wire.
const (
	TypeExclusive  = "exclusive"
	TypeMultistate = "multistate"
	TypeNumerical  = "numerical"
)

type LocalizedText struct {
	No *string `json:"no,omitempty"`
	En *string `json:"en,omitempty"`
}

// Empty reports whether both translations are absent or blank.
func (t *LocalizedText) Empty() bool {
	if t == nil {
		return true
	}
	return (t.No == nil || *t.No == "") && (t.En == nil || *t.En == "")
}

// Normalize returns nil for an empty text so that empty objects never get
// serialized into the document.
func (t *LocalizedText) Normalize() *LocalizedText {
	if t.Empty() {
		return nil
	}
	return t
}

type Taxon struct {
	ID             string         `json:"id"`
	ScientificName string         `json:"scientificName"`
	VernacularName *LocalizedText `json:"vernacularName,omitempty"`
	Description    *LocalizedText `json:"description,omitempty"`
	Media          []string       `json:"media,omitempty"`
	Children       []*Taxon       `json:"children,omitempty"`
}

type State struct {
	ID          string         `json:"id"`
	Title       *LocalizedText `json:"title,omitempty"`
	Description *LocalizedText `json:"description,omitempty"`
	Media       []string       `json:"media,omitempty"`
}

type NumericState struct {
	ID       string         `json:"id"`
	Unit     *LocalizedText `json:"unit,omitempty"`
	Min      float64        `json:"min"`
	Max      float64        `json:"max"`
	StepSize float64        `json:"stepSize"`
}

type PremiseClause struct {
	CharacterID string `json:"characterId"`
	StateID     string `json:"stateId"`
}

// Premise is a conjunction of disjunctions: each inner slice lists the
// alternative clauses of one disjunction.
type Premise [][]PremiseClause

// States is the tagged union behind a character's "states" field: an ordered
// list of alternatives for exclusive/multistate characters, a single range
// object for numerical ones. The wire shape (array vs object) is preserved.
type States struct {
	Alternatives []*State
	Numeric      *NumericState
}

func (s States) MarshalJSON() ([]byte, error) {
	if s.Numeric != nil {
		return json.Marshal(s.Numeric)
	}
	if s.Alternatives == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Alternatives)
}

func (s *States) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(data, &s.Alternatives)
	}
	s.Numeric = &NumericState{}
	return json.Unmarshal(data, s.Numeric)
}

type Character struct {
	ID             string         `json:"id"`
	Title          LocalizedText  `json:"title"`
	Description    *LocalizedText `json:"description,omitempty"`
	Type           string         `json:"type"`
	States         States         `json:"states"`
	Media          []string       `json:"media,omitempty"`
	LogicalPremise Premise        `json:"logicalPremise,omitempty"`
}

// Statement is a fact tying a taxon to one state of a character.
type Statement struct {
	ID          string  `json:"id"`
	TaxonID     string  `json:"taxon,omitempty"`
	CharacterID string  `json:"character,omitempty"`
	State       string  `json:"state"`
	Frequency   float64 `json:"frequency,omitempty"`
}

// Document is the content blob of one revision.
type Document struct {
	Taxa       []*Taxon     `json:"taxa"`
	Characters []*Character `json:"characters"`
	Statements []*Statement `json:"statements,omitempty"`
}

type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MediaElement struct {
	ID       string         `json:"id"`
	Title    *LocalizedText `json:"title,omitempty"`
	License  string         `json:"license,omitempty"`
	Creators []string       `json:"creators,omitempty"`
}

// MediaBundle is the media blob of one revision: the elements referenced from
// document nodes plus the shared persons ledger their creators point into.
type MediaBundle struct {
	MediaElements []MediaElement `json:"mediaElements"`
	Persons       []Person       `json:"persons"`
}

func DecodeDocument(raw []byte) (*Document, error) {
	doc := &Document{}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Document) Encode() ([]byte, error) {
	return json.Marshal(d)
}

func DecodeMediaBundle(raw []byte) (*MediaBundle, error) {
	bundle := &MediaBundle{}
	if len(raw) == 0 {
		return bundle, nil
	}
	if err := json.Unmarshal(raw, bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (m *MediaBundle) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// FindCharacter returns the character with the given id, or nil.
func (d *Document) FindCharacter(id string) *Character {
	for _, c := range d.Characters {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FindState returns the state with the given id on an exclusive/multistate
// character, or nil.
func (c *Character) FindState(id string) *State {
	for _, s := range c.States.Alternatives {
		if s.ID == id {
			return s
		}
	}
	return nil
}
