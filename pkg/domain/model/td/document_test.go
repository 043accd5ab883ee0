package td_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/tdhazard/pkg/domain/model/td"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

const lampTD = `{
  "@context": "https://www.w3.org/2022/wot/td/v1.1",
  "id": "urn:dev:ops:32473-lamp",
  "title": "Smart Lamp",
  "securityDefinitions": {"nosec_sc": {"scheme": "nosec"}},
  "security": "nosec_sc",
  "properties": {
    "brightness": {"type": "integer", "minimum": 0, "maximum": 100},
    "on": {"type": "boolean"},
    "mode": {"type": "string", "enum": ["off", "eco", "boost"]}
  },
  "actions": {
    "fade": {"input": {"type": "number", "minimum": 0, "maximum": 100}},
    "toggle": {}
  },
  "events": {
    "overheated": {"data": {"type": "number"}}
  }
}`

func TestParse(t *testing.T) {
	doc, err := td.Parse([]byte(lampTD))
	gt.NoError(t, err).Required()

	thing := doc.Thing()
	gt.Value(t, thing.ID).Equal("urn:dev:ops:32473-lamp")
	gt.Value(t, thing.Title).Equal("Smart Lamp")
	gt.Value(t, len(thing.Properties)).Equal(3)
	gt.Value(t, len(thing.Actions)).Equal(2)
	gt.Value(t, len(thing.Events)).Equal(1)

	brightness, ok := thing.Affordance("brightness")
	gt.Value(t, ok).Equal(true)
	gt.Value(t, brightness.Kind).Equal(types.AffordanceProperty)
	gt.Value(t, brightness.Schema.Type).Equal("integer")
	gt.Value(t, brightness.Schema.IsNumeric()).Equal(true)
	gt.Value(t, brightness.Schema.IsBounded()).Equal(true)
	gt.Value(t, *brightness.Schema.Minimum).Equal(0)
	gt.Value(t, *brightness.Schema.Maximum).Equal(100)

	fade, ok := thing.Affordance("fade")
	gt.Value(t, ok).Equal(true)
	gt.Value(t, fade.Kind).Equal(types.AffordanceAction)
	gt.Value(t, fade.Schema.Type).Equal("number")

	toggle, ok := thing.Affordance("toggle")
	gt.Value(t, ok).Equal(true)
	gt.Value(t, toggle.Schema.Type).Equal("")
	gt.Value(t, toggle.Schema.IsNumeric()).Equal(false)

	overheated, ok := thing.Affordance("overheated")
	gt.Value(t, ok).Equal(true)
	gt.Value(t, overheated.Kind).Equal(types.AffordanceEvent)
	gt.Value(t, overheated.Schema.IsBounded()).Equal(false)

	mode, ok := thing.Affordance("mode")
	gt.Value(t, ok).Equal(true)
	gt.Array(t, mode.Schema.Enum).Length(3)

	_, ok = thing.Affordance("volume")
	gt.Value(t, ok).Equal(false)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "not json"},
		{"json array", "[1,2,3]"},
		{"non-string id", `{"id": 42}`},
		{"non-object properties", `{"properties": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := td.Parse([]byte(tt.input))
			gt.Error(t, err)
		})
	}
}

func TestDocumentExtension(t *testing.T) {
	doc, err := td.Parse([]byte(lampTD))
	gt.NoError(t, err).Required()

	_, ok := doc.Extension()
	gt.Value(t, ok).Equal(false)

	fragment := json.RawMessage(`{"brightness":[{"hazardId":"sho:FireHazard","risk":{"level":{"label":"low"}}}]}`)
	doc.SetExtension(fragment)

	got, ok := doc.Extension()
	gt.Value(t, ok).Equal(true)
	gt.Value(t, string(got)).Equal(string(fragment))
}

func TestDocumentRoundTrip(t *testing.T) {
	doc, err := td.Parse([]byte(lampTD))
	gt.NoError(t, err).Required()

	doc.SetExtension(json.RawMessage(`{}`))

	out, err := doc.Encode()
	gt.NoError(t, err).Required()

	// Every member of the input survives re-encoding, including ones the
	// module does not interpret.
	var in, reencoded map[string]json.RawMessage
	gt.NoError(t, json.Unmarshal([]byte(lampTD), &in)).Required()
	gt.NoError(t, json.Unmarshal(out, &reencoded)).Required()

	for key := range in {
		if _, ok := reencoded[key]; !ok {
			t.Errorf("member %q lost during round trip", key)
		}
	}
	if _, ok := reencoded[td.ExtensionKey]; !ok {
		t.Errorf("extension member %q missing from output", td.ExtensionKey)
	}
}

func TestDocumentSetID(t *testing.T) {
	doc, err := td.Parse([]byte(`{"title": "Anonymous Device"}`))
	gt.NoError(t, err).Required()
	gt.Value(t, doc.Thing().ID).Equal("")

	gt.NoError(t, doc.SetID("urn:uuid:00000000-0000-0000-0000-000000000000")).Required()
	gt.Value(t, doc.Thing().ID).Equal("urn:uuid:00000000-0000-0000-0000-000000000000")

	out, err := doc.Encode()
	gt.NoError(t, err).Required()

	var fields map[string]any
	gt.NoError(t, json.Unmarshal(out, &fields)).Required()
	gt.Value(t, fields["id"]).Equal(any("urn:uuid:00000000-0000-0000-0000-000000000000"))
}
