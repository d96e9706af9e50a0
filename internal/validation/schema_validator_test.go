package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func testValidator() SchemaValidator {
	return NewSchemaValidator(fstest.MapFS{
		"schemas/person.schema.json": {Data: []byte(personSchema)},
	})
}

func TestValidateBytes(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{"valid data", `{"name": "Ivy", "age": 30}`, ""},
		{"optional field omitted", `{"name": "Ivy"}`, ""},
		{"missing required field", `{"age": 25}`, "required"},
		{"wrong type", `{"name": "Ivy", "age": "thirty"}`, "/age"},
		{"below minimum", `{"name": "Ivy", "age": -1}`, "minimum"},
		{"not json", `{"name": `, "invalid JSON"},
	}

	v := testValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.schema.json")
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaViolation)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestValidateValue_DecodedDocument(t *testing.T) {
	v := testValidator()

	assert.NoError(t, v.ValidateValue(map[string]interface{}{"name": "Fern", "age": 3}, "person.schema.json"))
	assert.ErrorIs(t, v.ValidateValue(map[string]interface{}{"age": 3}, "person.schema.json"), ErrSchemaViolation)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := testValidator().ValidateBytes([]byte(`{}`), "missing.schema.json")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSchemaViolation)
}

func TestDefault_CatalogSchema(t *testing.T) {
	v := Default()

	valid := `{
		"version": "1",
		"plants": [{"id": "sprout", "name": "Sprout", "rarity": "basic", "base_growth": "15s", "base_yield_rate": 480}],
		"upgrades": [
			{"id": "g", "kind": "growth_speed", "name": "G", "base_cost": 1, "max_level": 1, "cost_multiplier": 2, "effect_per_level": 1},
			{"id": "y", "kind": "yield_multiplier", "name": "Y", "base_cost": 1, "max_level": 1, "cost_multiplier": 2, "effect_per_level": 1},
			{"id": "p", "kind": "plot_capacity", "name": "P", "base_cost": 1, "max_level": 1, "cost_multiplier": 2, "effect_per_level": 1},
			{"id": "h", "kind": "auto_harvest", "name": "H", "base_cost": 1, "max_level": 1, "cost_multiplier": 2, "effect_per_level": 1},
			{"id": "o", "kind": "offline_efficiency", "name": "O", "base_cost": 1, "max_level": 1, "cost_multiplier": 2, "effect_per_level": 1}
		]
	}`
	assert.NoError(t, v.ValidateBytes([]byte(valid), CatalogSchema))

	err := v.ValidateBytes([]byte(`{"version": "1", "plants": [{"id": "Bad Id"}], "upgrades": [], "extra": true}`), CatalogSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/plants/0")
}
