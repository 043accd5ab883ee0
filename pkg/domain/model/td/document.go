package td

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

// ExtensionKey is the vendor-extension member of a Thing Description under
// which the hazard extension fragment is embedded.
const ExtensionKey = "sho:hazards"

// Document wraps a raw Thing Description JSON object. Only the members this
// module cares about (id, title, the affordance maps and the hazard
// extension) are interpreted; all other members are preserved byte for byte.
type Document struct {
	thing  *Thing
	fields map[string]json.RawMessage
}

type schemaWire struct {
	Type    string   `json:"type,omitempty"`
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`
	Enum    []any    `json:"enum,omitempty"`
}

type propertyWire struct {
	schemaWire
}

type actionWire struct {
	Input *schemaWire `json:"input,omitempty"`
}

type eventWire struct {
	Data *schemaWire `json:"data,omitempty"`
}

func (s schemaWire) toSchema() DataSchema {
	return DataSchema{
		Type:    s.Type,
		Minimum: s.Minimum,
		Maximum: s.Maximum,
		Enum:    s.Enum,
	}
}

// Parse decodes a Thing Description JSON object into a Document
func Parse(data []byte) (*Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, goerr.Wrap(err, "failed to parse thing description")
	}

	thing := &Thing{
		Properties: map[string]Affordance{},
		Actions:    map[string]Affordance{},
		Events:     map[string]Affordance{},
	}

	if raw, ok := fields["id"]; ok {
		if err := json.Unmarshal(raw, &thing.ID); err != nil {
			return nil, goerr.Wrap(err, "invalid thing id")
		}
	}
	if raw, ok := fields["title"]; ok {
		if err := json.Unmarshal(raw, &thing.Title); err != nil {
			return nil, goerr.Wrap(err, "invalid thing title")
		}
	}

	if raw, ok := fields["properties"]; ok {
		var props map[string]propertyWire
		if err := json.Unmarshal(raw, &props); err != nil {
			return nil, goerr.Wrap(err, "invalid properties")
		}
		for name, p := range props {
			thing.Properties[name] = Affordance{
				Kind:   types.AffordanceProperty,
				Schema: p.toSchema(),
			}
		}
	}

	if raw, ok := fields["actions"]; ok {
		var actions map[string]actionWire
		if err := json.Unmarshal(raw, &actions); err != nil {
			return nil, goerr.Wrap(err, "invalid actions")
		}
		for name, a := range actions {
			aff := Affordance{Kind: types.AffordanceAction}
			if a.Input != nil {
				aff.Schema = a.Input.toSchema()
			}
			thing.Actions[name] = aff
		}
	}

	if raw, ok := fields["events"]; ok {
		var events map[string]eventWire
		if err := json.Unmarshal(raw, &events); err != nil {
			return nil, goerr.Wrap(err, "invalid events")
		}
		for name, e := range events {
			aff := Affordance{Kind: types.AffordanceEvent}
			if e.Data != nil {
				aff.Schema = e.Data.toSchema()
			}
			thing.Events[name] = aff
		}
	}

	return &Document{thing: thing, fields: fields}, nil
}

// Thing returns the decoded affordance view of the document
func (d *Document) Thing() *Thing {
	return d.thing
}

// Extension returns the raw hazard extension fragment if the document
// carries one.
func (d *Document) Extension() (json.RawMessage, bool) {
	raw, ok := d.fields[ExtensionKey]
	return raw, ok
}

// SetExtension replaces the hazard extension fragment of the document
func (d *Document) SetExtension(raw json.RawMessage) {
	d.fields[ExtensionKey] = raw
}

// SetID sets the thing id on both the decoded view and the raw document
func (d *Document) SetID(id string) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return goerr.Wrap(err, "failed to encode thing id")
	}
	d.fields["id"] = raw
	d.thing.ID = id
	return nil
}

// Encode serializes the document back to JSON. Member order follows Go's
// deterministic map key ordering.
func (d *Document) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(d.fields, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode thing description")
	}
	return data, nil
}
