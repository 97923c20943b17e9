// Package hints parses the optional client-side pre-classification payload.
// Browsers running their own OCR may suggest a bill type per document before
// the server has seen any bytes; the suggestions are advisory only and the
// pipeline always re-derives the type itself.
package hints

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/bollettelab/bollette-tracker/constants"
)

// Hint is one client-suggested classification.
type Hint struct {
	BillType   string  `json:"bill_type"`
	Confidence float64 `json:"confidence,omitempty"`
}

var hintSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":                 "object",
		"required":             []any{"bill_type"},
		"additionalProperties": false,
		"properties": map[string]any{
			"bill_type": map[string]any{
				"type": "string",
			},
			"confidence": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
		},
	},
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// Parse validates the raw hint payload and maps it onto canonical bill types,
// one per document. The returned slice has exactly docCount entries: missing
// hints and unrecognized labels fold into UNKNOWN. An empty payload is fine.
func Parse(raw []byte, docCount int) ([]constants.BillType, error) {
	out := make([]constants.BillType, docCount)
	for i := range out {
		out[i] = constants.BillTypeUnknown
	}
	if len(raw) == 0 {
		return out, nil
	}

	if err := validateJSONAgainstSchema(hintSchema, raw); err != nil {
		return nil, err
	}
	var parsed []Hint
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal hints: %w", err)
	}
	if len(parsed) > docCount {
		return nil, fmt.Errorf("got %d hints for %d documents", len(parsed), docCount)
	}

	for i, h := range parsed {
		bt, _ := constants.CanonicalizeBillType(h.BillType)
		out[i] = bt
	}
	return out, nil
}
