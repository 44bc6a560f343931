package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateJSONWithSchema_Valid(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": { "locations": {"type": "array"}, "vehicle_type": {"type": "string"} },
		"required": ["locations"]
	}`
	assert.NoError(t, ValidateJSONWithSchema(schema, `{"locations": ["A", "B"], "vehicle_type": "truck"}`))
	assert.NoError(t, ValidateJSONWithSchema(schema, `{"locations": []}`))
}

func TestValidateJSONWithSchema_Invalid(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": { "locations": {"type": "array"} },
		"required": ["locations"]
	}`
	err := ValidateJSONWithSchema(schema, `{}`)
	assert.Error(t, err)
	if err != nil {
		assert.Contains(t, err.Error(), "missing properties: 'locations'")
	}

	err = ValidateJSONWithSchema(schema, `{"locations": "not-a-list"}`)
	assert.Error(t, err)
	if err != nil {
		assert.Contains(t, err.Error(), "expected array, but got string")
	}
}

func TestValidateJSONWithSchema_EmptySchema(t *testing.T) {
	assert.NoError(t, ValidateJSONWithSchema("", `{"anything": true}`))
}

func TestValidateJSONWithSchema_InvalidSchema(t *testing.T) {
	err := ValidateJSONWithSchema(`{"type": "object", "properties": {"name": {"type": "str"}}}`, `{"name": "Test"}`)
	assert.Error(t, err)
	if err != nil {
		assert.Contains(t, err.Error(), "failed to compile JSON schema")
	}
}

func TestValidateJSONObject(t *testing.T) {
	assert.NoError(t, ValidateJSONObject(`{}`))
	assert.NoError(t, ValidateJSONObject(`{"locations": ["A"]}`))

	assert.Error(t, ValidateJSONObject(`[1, 2, 3]`))
	assert.Error(t, ValidateJSONObject(`"a string"`))
	assert.Error(t, ValidateJSONObject(`42`))
	assert.Error(t, ValidateJSONObject(``))
}
