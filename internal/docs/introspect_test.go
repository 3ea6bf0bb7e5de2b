package docs_test

import (
	"encoding/json"
	"strings"
	"testing"

	"go-leave/internal/application"
	"go-leave/internal/benefit"
	"go-leave/internal/docs"
	"go-leave/internal/employee"

	"github.com/stretchr/testify/assert"
)

type introspectedSchema struct {
	Type       string                      `json:"type"`
	Properties map[string]docs.FieldSchema `json:"properties"`
}

func schemasJSON(t *testing.T, models ...any) (string, map[string]introspectedSchema) {
	t.Helper()

	raw, err := json.Marshal(docs.Introspect(models...))
	assert.NoError(t, err)

	var parsed map[string]introspectedSchema
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	return string(raw), parsed
}

func TestIntrospect(t *testing.T) {
	t.Run("documents every employee field with its json name", func(t *testing.T) {
		_, parsed := schemasJSON(t, employee.Employee{})

		schema := parsed["Employee"]
		assert.Equal(t, "object", schema.Type)
		assert.Equal(t, "number", schema.Properties["id"].Type)
		assert.Equal(t, "string", schema.Properties["firstName"].Type)
		assert.Equal(t, "string", schema.Properties["lastName"].Type)
		assert.Equal(t, "string", schema.Properties["date_of_birth"].Type)
		assert.Equal(t, "string", schema.Properties["secret"].Type)
	})

	t.Run("preserves struct field order in properties", func(t *testing.T) {
		raw, _ := schemasJSON(t, employee.Employee{})

		order := []string{`"id"`, `"firstName"`, `"lastName"`, `"date_of_birth"`, `"secret"`}
		last := -1
		for _, key := range order {
			idx := strings.Index(raw, key)
			assert.Greater(t, idx, last, "expected %s after previous property", key)
			last = idx
		}
	})

	t.Run("maps application fields including the relation", func(t *testing.T) {
		_, parsed := schemasJSON(t, application.Application{})

		schema := parsed["Application"]
		assert.Equal(t, "number", schema.Properties["id"].Type)
		assert.Equal(t, "string", schema.Properties["leave_start_date"].Type)
		assert.Equal(t, "string", schema.Properties["leave_end_date"].Type)
		assert.Equal(t, "number", schema.Properties["employeeId"].Type)
		assert.Equal(t, "employee", schema.Properties["employee"].Type)
	})

	t.Run("documents multiple entities in argument order", func(t *testing.T) {
		raw, parsed := schemasJSON(t, benefit.Benefit{}, employee.Employee{})

		assert.Contains(t, parsed, "Benefit")
		assert.Contains(t, parsed, "Employee")
		assert.Less(t, strings.Index(raw, `"Benefit"`), strings.Index(raw, `"Employee"`))
	})

	t.Run("dereferences pointer models", func(t *testing.T) {
		_, parsed := schemasJSON(t, &benefit.Benefit{})
		assert.Contains(t, parsed, "Benefit")
	})

	t.Run("produces an empty object for no models", func(t *testing.T) {
		raw, err := json.Marshal(docs.Introspect())
		assert.NoError(t, err)
		assert.Equal(t, "{}", string(raw))
	})
}
