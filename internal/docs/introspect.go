package docs

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"time"
)

// OrderedMap is a JSON object that marshals its keys in insertion order.
// Schema properties mirror struct field order, which a plain map would lose.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]any)}
}

func (m *OrderedMap) Set(key string, value any) *OrderedMap {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

func (m *OrderedMap) Len() int {
	return len(m.keys)
}

func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type FieldSchema struct {
	Type string `json:"type"`
}

type EntitySchema struct {
	Type       string      `json:"type"`
	Properties *OrderedMap `json:"properties"`
}

var timeType = reflect.TypeOf(time.Time{})

// Introspect walks the given entity structs and produces one object schema
// per entity, each property annotated with its documentation type: integer
// fields become "number", timestamps "string", and any other type its
// lower-cased name. An empty model list yields an empty set.
func Introspect(models ...any) *OrderedMap {
	schemas := NewOrderedMap()

	for _, model := range models {
		t := reflect.TypeOf(model)
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			continue
		}

		props := NewOrderedMap()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name := documentedFieldName(field)
			if name == "" {
				continue
			}
			props.Set(name, FieldSchema{Type: docType(field.Type)})
		}

		schemas.Set(t.Name(), EntitySchema{
			Type:       "object",
			Properties: props,
		})
	}

	return schemas
}

func documentedFieldName(field reflect.StructField) string {
	tag := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if tag == "-" {
		return ""
	}
	if tag != "" {
		return tag
	}
	return strings.ToLower(field.Name[:1]) + field.Name[1:]
}

func docType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}

	if t == timeType {
		return "string"
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "number"
	default:
		return strings.ToLower(t.Name())
	}
}
