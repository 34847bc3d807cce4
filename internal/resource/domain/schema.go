// Package domain declares the schema vocabulary shared by every resource
// collection: field descriptors, the flat document representation, and the
// helpers the mapper uses to shape inbound payloads.
package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// FieldType names the primitive carried by a schema field. The type is
// declarative: create copies values verbatim and never coerces or rejects.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
)

// Field describes one declared field of a collection's documents.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
}

// Schema declares the document shape of one collection.
type Schema struct {
	// Name is the plural collection name and doubles as the URL segment.
	Name string
	// Singular is the lowercase resource noun used in response texts.
	Singular string
	Fields   []Field
}

// FieldNames returns the declared field names in declaration order.
func (s Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// RequiredMessage renders the fixed guidance text returned when a create
// request fails, naming every required field of the collection.
func (s Schema) RequiredMessage() string {
	required := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return fmt.Sprintf("%s should contain %s", capitalize(s.Singular), strings.Join(required, ", "))
}

// BuildDocument shapes a create payload: each declared field present in the
// body is copied verbatim, absent fields stay absent, and undeclared fields
// are dropped. Missing fields never fail the build.
func (s Schema) BuildDocument(body Document) Document {
	doc := make(Document, len(s.Fields))
	for _, f := range s.Fields {
		if value, ok := body[f.Name]; ok {
			doc[f.Name] = value
		}
	}
	return doc
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
