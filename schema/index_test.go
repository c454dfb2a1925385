package schema

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// testSchemaJSON is a small introspection document in the same shape the
// Admin API returns: a query root, two object types, an enum, scalars,
// and one meta-type.
const testSchemaJSON = `{
  "__schema": {
    "queryType": {"name": "QueryRoot"},
    "mutationType": {"name": "Mutation"},
    "types": [
      {
        "kind": "OBJECT",
        "name": "QueryRoot",
        "fields": [
          {
            "name": "product",
            "args": [
              {"name": "id", "type": {"kind": "NON_NULL", "name": null, "ofType": {"kind": "SCALAR", "name": "ID"}}}
            ],
            "type": {"kind": "OBJECT", "name": "Product"}
          },
          {"name": "products", "type": {"kind": "OBJECT", "name": "ProductConnection"}}
        ]
      },
      {
        "kind": "OBJECT",
        "name": "Product",
        "description": "A product in the store.",
        "fields": [
          {"name": "title", "description": "The product title.", "type": {"kind": "NON_NULL", "name": null, "ofType": {"kind": "SCALAR", "name": "String"}}},
          {"name": "vendor", "type": {"kind": "SCALAR", "name": "String"}}
        ]
      },
      {
        "kind": "OBJECT",
        "name": "Order",
        "fields": [
          {"name": "cancelledAt", "type": {"kind": "SCALAR", "name": "DateTime"}},
          {"name": "createdAt", "type": {"kind": "NON_NULL", "name": null, "ofType": {"kind": "SCALAR", "name": "DateTime"}}},
          {"name": "email", "type": {"kind": "SCALAR", "name": "String"}},
          {"name": "name", "type": {"kind": "NON_NULL", "name": null, "ofType": {"kind": "SCALAR", "name": "String"}}}
        ]
      },
      {
        "kind": "OBJECT",
        "name": "TagBag",
        "fields": [
          {"name": "tag1", "type": {"kind": "SCALAR", "name": "String"}},
          {"name": "tag2", "type": {"kind": "SCALAR", "name": "String"}},
          {"name": "tag3", "type": {"kind": "SCALAR", "name": "String"}},
          {"name": "tag4", "type": {"kind": "SCALAR", "name": "String"}},
          {"name": "tag5", "type": {"kind": "SCALAR", "name": "String"}},
          {"name": "tag6", "type": {"kind": "SCALAR", "name": "String"}},
          {"name": "tag7", "type": {"kind": "SCALAR", "name": "String"}}
        ]
      },
      {"kind": "ENUM", "name": "ProductStatus", "enumValues": [{"name": "ACTIVE"}, {"name": "ARCHIVED"}, {"name": "DRAFT"}]},
      {"kind": "SCALAR", "name": "String"},
      {"kind": "SCALAR", "name": "DateTime"},
      {"kind": "SCALAR", "name": "ID"},
      {"kind": "OBJECT", "name": "__Schema", "description": "Introspection meta-type."}
    ]
  }
}`

func testDocument(t *testing.T) *Document {
	t.Helper()
	var doc Document
	if err := json.Unmarshal([]byte(testSchemaJSON), &doc); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return &doc
}

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := BuildIndex(testDocument(t))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	return idx
}

func TestBuildIndex(t *testing.T) {
	idx := buildTestIndex(t)

	wantNames := []string{
		"QueryRoot", "Product", "Order", "TagBag",
		"ProductStatus", "String", "DateTime", "ID", "__Schema",
	}
	if got := idx.TypeNames(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("expected declaration order %v, got %v", wantNames, got)
	}
	if idx.Len() != len(wantNames) {
		t.Errorf("expected %d types, got %d", len(wantNames), idx.Len())
	}

	// Meta-types stay in the index; filtering them is a caller concern.
	if _, ok := idx.Type("__Schema"); !ok {
		t.Error("expected __Schema meta-type to be indexed")
	}
}

func TestBuildIndex_Malformed(t *testing.T) {
	if _, err := BuildIndex(&Document{}); !errors.Is(err, ErrMalformedSchema) {
		t.Errorf("expected ErrMalformedSchema, got %v", err)
	}
	if _, err := BuildIndex(nil); !errors.Is(err, ErrMalformedSchema) {
		t.Errorf("expected ErrMalformedSchema for nil document, got %v", err)
	}
}

func TestBuildIndex_Idempotent(t *testing.T) {
	doc := testDocument(t)

	first, err := BuildIndex(doc)
	if err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	second, err := BuildIndex(doc)
	if err != nil {
		t.Fatalf("second build failed: %v", err)
	}

	if !reflect.DeepEqual(first.TypeNames(), second.TypeNames()) {
		t.Error("expected identical type sets across builds")
	}
	for _, name := range first.TypeNames() {
		f1, err1 := first.Fields(name)
		f2, err2 := second.Fields(name)
		if err1 != nil || err2 != nil {
			t.Fatalf("Fields(%s) failed: %v / %v", name, err1, err2)
		}
		if !reflect.DeepEqual(f1, f2) {
			t.Errorf("expected identical field list for %s across builds", name)
		}
	}
}

func TestBuildIndex_DuplicateNamesFirstWins(t *testing.T) {
	doc := &Document{Schema: &SchemaData{Types: []Type{
		{Kind: KindObject, Name: "Product", Description: "first"},
		{Kind: KindObject, Name: "Product", Description: "second"},
	}}}

	idx, err := BuildIndex(doc)
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	if idx.Len() != 1 {
		t.Fatalf("expected 1 type, got %d", idx.Len())
	}
	typ, _ := idx.Type("Product")
	if typ.Description != "first" {
		t.Errorf("expected first declaration to win, got %q", typ.Description)
	}
}

func TestIndex_Fields(t *testing.T) {
	idx := buildTestIndex(t)

	t.Run("object type", func(t *testing.T) {
		fields, err := idx.Fields("Product")
		if err != nil {
			t.Fatalf("Fields failed: %v", err)
		}
		if len(fields) != 2 {
			t.Fatalf("expected 2 fields, got %d", len(fields))
		}
		if fields[0].Name != "title" || fields[1].Name != "vendor" {
			t.Errorf("expected [title vendor], got [%s %s]", fields[0].Name, fields[1].Name)
		}
		if sig := fields[0].Type.String(); sig != "String!" {
			t.Errorf("expected title signature String!, got %s", sig)
		}
		if sig := fields[1].Type.String(); sig != "String" {
			t.Errorf("expected vendor signature String, got %s", sig)
		}
	})

	t.Run("non-field-bearing kind", func(t *testing.T) {
		fields, err := idx.Fields("ProductStatus")
		if err != nil {
			t.Fatalf("expected no error for enum type, got %v", err)
		}
		if len(fields) != 0 {
			t.Errorf("expected empty field list for enum, got %d", len(fields))
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := idx.Fields("NoSuchType")
		if err == nil {
			t.Fatal("expected error for unknown type")
		}

		var unknown *UnknownTypeError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected *UnknownTypeError, got %T", err)
		}
		if unknown.Name != "NoSuchType" {
			t.Errorf("expected offending name NoSuchType, got %q", unknown.Name)
		}
		if !strings.Contains(err.Error(), "NoSuchType") {
			t.Errorf("expected message to contain offending name, got %q", err.Error())
		}
		if len(unknown.Known) == 0 || len(unknown.Known) > knownTypeSample {
			t.Errorf("expected bounded sample of known names, got %d", len(unknown.Known))
		}
		if unknown.Total != idx.Len() {
			t.Errorf("expected total %d, got %d", idx.Len(), unknown.Total)
		}
		if !strings.Contains(err.Error(), "QueryRoot") {
			t.Errorf("expected sample names in message, got %q", err.Error())
		}
	})
}

func TestTypeRef_String(t *testing.T) {
	str := "String"
	product := "Product"

	cases := []struct {
		name string
		ref  TypeRef
		want string
	}{
		{
			name: "named",
			ref:  TypeRef{Kind: KindScalar, Name: &str},
			want: "String",
		},
		{
			name: "non-null",
			ref:  TypeRef{Kind: KindNonNull, OfType: &TypeRef{Kind: KindScalar, Name: &str}},
			want: "String!",
		},
		{
			name: "non-null list of non-null",
			ref: TypeRef{Kind: KindNonNull, OfType: &TypeRef{
				Kind: KindList, OfType: &TypeRef{
					Kind: KindNonNull, OfType: &TypeRef{Kind: KindObject, Name: &product},
				},
			}},
			want: "[Product!]!",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ref.String(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTypeRef_Unwrap(t *testing.T) {
	product := "Product"
	ref := TypeRef{Kind: KindNonNull, OfType: &TypeRef{
		Kind: KindList, OfType: &TypeRef{
			Kind: KindNonNull, OfType: &TypeRef{Kind: KindObject, Name: &product},
		},
	}}

	if got := ref.Unwrap(); got != "Product" {
		t.Errorf("expected Product, got %q", got)
	}

	unnamed := TypeRef{Kind: KindNonNull}
	if got := unnamed.Unwrap(); got != "" {
		t.Errorf("expected empty name for unnamed chain, got %q", got)
	}
}

func TestDocument_Valid(t *testing.T) {
	if (&Document{}).Valid() {
		t.Error("expected document without __schema to be invalid")
	}
	var nilDoc *Document
	if nilDoc.Valid() {
		t.Error("expected nil document to be invalid")
	}
	if !testDocument(t).Valid() {
		t.Error("expected fixture document to be valid")
	}
}
