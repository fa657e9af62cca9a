package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// categoriesSchemaDef constrains the persisted skill category map:
// an object whose values are non-empty arrays of strings.
var categoriesSchemaDef = map[string]any{
	"type":          "object",
	"minProperties": 1,
	"additionalProperties": map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    map[string]any{"type": "string"},
	},
}

var (
	categoriesSchemaOnce sync.Once
	categoriesSchema     *jsonschema.Schema
	categoriesSchemaErr  error
)

// validateCategories checks a raw categories JSON blob read from the
// database against the schema. Compilation happens once per process.
func validateCategories(raw string) error {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return fmt.Errorf("invalid categories JSON: %w", err)
	}

	compiled, err := compiledCategoriesSchema()
	if err != nil {
		return fmt.Errorf("compile categories schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("categories schema validation failed: %w", err)
	}
	return nil
}

func compiledCategoriesSchema() (*jsonschema.Schema, error) {
	categoriesSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(categoriesSchemaDef)
		if err != nil {
			categoriesSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			categoriesSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://candidate-categories.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			categoriesSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}

		categoriesSchema, categoriesSchemaErr = c.Compile(schemaURL)
	})
	return categoriesSchema, categoriesSchemaErr
}
