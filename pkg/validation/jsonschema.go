package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	_ "github.com/santhosh-tekuri/jsonschema/v5/httploader"
)

// ObjectSchema accepts any JSON object. Task payloads are opaque, so this is
// the only structural requirement the service enforces on them.
const ObjectSchema = `{"type":"object"}`

// ValidateJSONWithSchema validates a JSON data string against a JSON schema string.
func ValidateJSONWithSchema(schemaJSON string, dataJSON string) error {
	if schemaJSON == "" {
		return nil
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}
	sch, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile JSON schema: %w. Schema: %s", err, schemaJSON)
	}

	var data interface{}
	if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
		return fmt.Errorf("failed to unmarshal JSON data: %w. Data: %s", err, dataJSON)
	}

	if err := sch.Validate(data); err != nil {
		validationErr, ok := err.(*jsonschema.ValidationError)
		if ok {
			return fmt.Errorf("JSON data failed validation against schema: %v", validationErr)
		}
		return fmt.Errorf("JSON data failed validation (unexpected error type): %w", err)
	}
	return nil
}

// ValidateJSONObject checks that the data is a well-formed JSON object.
func ValidateJSONObject(dataJSON string) error {
	return ValidateJSONWithSchema(ObjectSchema, dataJSON)
}
