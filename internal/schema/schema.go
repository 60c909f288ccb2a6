// Package schema validates serialized analysis documents against the
// embedded output contract before they are emitted.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const documentSchemaPath = "schemas/document.json"

var documentSchema = mustCompile(documentSchemaPath)

func mustCompile(path string) *jsonschema.Schema {
	data, err := schemaFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("embedded schema missing: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(path, bytes.NewReader(data)); err != nil {
		panic(fmt.Sprintf("embedded schema unreadable: %v", err))
	}
	schema, err := compiler.Compile(path)
	if err != nil {
		panic(fmt.Sprintf("embedded schema invalid: %v", err))
	}
	return schema
}

// ValidateDocument checks a serialized analysis document against the
// output schema. The input must be JSON; YAML output is validated from
// its JSON form before conversion.
func ValidateDocument(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("output is not valid JSON: %w", err)
	}
	if err := documentSchema.Validate(v); err != nil {
		return fmt.Errorf("output does not match document schema: %w", err)
	}
	return nil
}
