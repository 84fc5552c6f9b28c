package style

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// JSONSchemaExtend describes the enum-like fields as strings, matching their
// text encoding.
func (Style) JSONSchemaExtend(schema *jsonschema.Schema) {
	if schema.Properties == nil {
		return
	}
	schema.Properties.Set("direction", &jsonschema.Schema{
		Type:        "string",
		Enum:        []any{"ltr", "rtl"},
		Default:     "ltr",
		Description: "Which end of the value is kept when truncating.",
	})
	schema.Properties.Set("align", &jsonschema.Schema{
		Type:        "string",
		Enum:        []any{"", "left", "right", "center"},
		Description: "Position of the kept text within width.",
	})
	schema.Properties.Set("fill", &jsonschema.Schema{
		Type:        "string",
		MaxLength:   ptr(uint64(1)),
		Description: "Single padding character; empty means a space.",
	})
}

// Schema returns the JSON schema of a style document.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
	}
	b, err := json.MarshalIndent(r.Reflect(&Style{}), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal style schema: %w", err)
	}
	return b, nil
}

func ptr[T any](v T) *T {
	return &v
}
