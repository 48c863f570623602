package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// datasetSchema constrains only the required top-level shape of an import
// payload. Individual cards are validated leniently afterwards: malformed
// cards are dropped, not rejected.
var datasetSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"datasetId": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"title": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"description": map[string]any{"type": "string"},
		"tags": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"cards": map[string]any{"type": "array"},
	},
	"required": []any{"datasetId", "title", "cards"},
}

var (
	compileSchemaOnce sync.Once
	compiledSchema    *jsonschema.Schema
	compileSchemaErr  error
)

func compiledDatasetSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		defBytes, err := json.Marshal(datasetSchema)
		if err != nil {
			compileSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://dataset.json", defParsed); err != nil {
			compileSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaErr = c.Compile("schema://dataset.json")
	})
	return compiledSchema, compileSchemaErr
}

// datasetImport is the validated, coerced import payload.
type datasetImport struct {
	DatasetID   string   `json:"datasetId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Cards       []Card
}

// rawDataset defers card decoding so a malformed card skips that card
// only, never the whole payload.
type rawDataset struct {
	DatasetID   string            `json:"datasetId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Tags        []string          `json:"tags"`
	Cards       []json.RawMessage `json:"cards"`
}

// parseDataset validates and coerces an import payload. Returns
// ErrValidation for unparseable JSON or a failing top-level schema.
// Cards with no question or no answers are silently dropped; missing card
// ids default to their 1-based position, missing timestamps to nowIso.
func parseDataset(raw []byte, nowIso string) (*datasetImport, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrValidation{Msg: "unparseable JSON", Err: err}
	}

	schema, err := compiledDatasetSchema()
	if err != nil {
		return nil, fmt.Errorf("compile dataset schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrValidation{Msg: "datasetId, title and cards are required", Err: err}
	}

	var rd rawDataset
	if err := json.Unmarshal(raw, &rd); err != nil {
		return nil, &ErrValidation{Msg: "unexpected field types", Err: err}
	}

	out := &datasetImport{
		DatasetID:   rd.DatasetID,
		Title:       rd.Title,
		Description: rd.Description,
		Tags:        rd.Tags,
	}
	for i, rc := range rd.Cards {
		var c Card
		if err := json.Unmarshal(rc, &c); err != nil {
			continue
		}
		if c.Question == "" || len(c.Answers) == 0 {
			continue
		}
		if c.ID == "" {
			c.ID = fmt.Sprintf("card-%d", i+1)
		}
		if c.CreatedAt == "" {
			c.CreatedAt = nowIso
		}
		if c.UpdatedAt == "" {
			c.UpdatedAt = nowIso
		}
		out.Cards = append(out.Cards, c)
	}
	return out, nil
}
