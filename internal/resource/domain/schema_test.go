package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testSchema() Schema {
	return Schema{
		Name:     "products",
		Singular: "product",
		Fields: []Field{
			{Name: "name", Type: TypeString, Required: true},
			{Name: "brand", Type: TypeString, Required: true},
			{Name: "price", Type: TypeNumber, Required: true},
		},
	}
}

func TestBuildDocument_CopiesDeclaredFields(t *testing.T) {
	schema := testSchema()

	doc := schema.BuildDocument(Document{
		"name":  "Widget",
		"brand": "Acme",
		"price": 9.99,
	})

	require.Equal(t, Document{"name": "Widget", "brand": "Acme", "price": 9.99}, doc)
}

func TestBuildDocument_MissingFieldsStayAbsent(t *testing.T) {
	schema := testSchema()

	doc := schema.BuildDocument(Document{"name": "Widget"})

	require.Equal(t, Document{"name": "Widget"}, doc)
	_, ok := doc["price"]
	require.False(t, ok)
}

func TestBuildDocument_DropsUndeclaredFields(t *testing.T) {
	schema := testSchema()

	doc := schema.BuildDocument(Document{"name": "Widget", "color": "red"})

	_, ok := doc["color"]
	require.False(t, ok)
}

func TestRequiredMessage(t *testing.T) {
	schema := testSchema()

	require.Equal(t, "Product should contain name, brand, price", schema.RequiredMessage())
}

func TestFieldNames(t *testing.T) {
	schema := testSchema()

	require.Equal(t, []string{"name", "brand", "price"}, schema.FieldNames())
}

func TestDocumentClone_Independent(t *testing.T) {
	original := Document{"a": 1}
	clone := original.Clone()
	clone["a"] = 2

	require.Equal(t, 1, original["a"])
}
