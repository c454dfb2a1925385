package schema

// Type kinds reported by GraphQL introspection.
const (
	KindScalar      = "SCALAR"
	KindObject      = "OBJECT"
	KindInterface   = "INTERFACE"
	KindUnion       = "UNION"
	KindEnum        = "ENUM"
	KindInputObject = "INPUT_OBJECT"
	KindList        = "LIST"
	KindNonNull     = "NON_NULL"
)

// Document is the raw result of a GraphQL introspection query, exactly
// as returned under the response's data key. The package never mutates
// a Document; it only indexes and persists it.
type Document struct {
	Schema *SchemaData `json:"__schema"`
}

// Valid reports whether the document carries the top-level __schema
// container.
func (d *Document) Valid() bool {
	return d != nil && d.Schema != nil
}

// SchemaData mirrors the introspection __schema object.
type SchemaData struct {
	QueryType        *RootType   `json:"queryType"`
	MutationType     *RootType   `json:"mutationType"`
	SubscriptionType *RootType   `json:"subscriptionType"`
	Types            []Type      `json:"types"`
	Directives       []Directive `json:"directives,omitempty"`
}

// RootType names one of the schema's root operation types.
type RootType struct {
	Name string `json:"name"`
}

// Type describes one named schema type.
type Type struct {
	Kind          string       `json:"kind"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	Fields        []Field      `json:"fields,omitempty"`
	InputFields   []InputValue `json:"inputFields,omitempty"`
	Interfaces    []TypeRef    `json:"interfaces,omitempty"`
	EnumValues    []EnumValue  `json:"enumValues,omitempty"`
	PossibleTypes []TypeRef    `json:"possibleTypes,omitempty"`
}

// Field describes one field of an object or interface type.
type Field struct {
	Name              string       `json:"name"`
	Description       string       `json:"description,omitempty"`
	Args              []InputValue `json:"args,omitempty"`
	Type              TypeRef      `json:"type"`
	IsDeprecated      bool         `json:"isDeprecated,omitempty"`
	DeprecationReason *string      `json:"deprecationReason,omitempty"`
}

// InputValue describes a field argument or an input-object field.
type InputValue struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Type         TypeRef `json:"type"`
	DefaultValue *string `json:"defaultValue,omitempty"`
}

// EnumValue describes one member of an enum type.
type EnumValue struct {
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	IsDeprecated      bool    `json:"isDeprecated,omitempty"`
	DeprecationReason *string `json:"deprecationReason,omitempty"`
}

// Directive describes one schema directive.
type Directive struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Locations   []string     `json:"locations,omitempty"`
	Args        []InputValue `json:"args,omitempty"`
}

// TypeRef is a possibly wrapped type reference. NON_NULL and LIST kinds
// chain through OfType down to a named type.
type TypeRef struct {
	Kind   string   `json:"kind"`
	Name   *string  `json:"name"`
	OfType *TypeRef `json:"ofType,omitempty"`
}

// String renders the reference in display form, e.g. String!, [Product!]!.
func (t TypeRef) String() string {
	switch t.Kind {
	case KindNonNull:
		if t.OfType == nil {
			return "!"
		}
		return t.OfType.String() + "!"
	case KindList:
		if t.OfType == nil {
			return "[]"
		}
		return "[" + t.OfType.String() + "]"
	default:
		if t.Name != nil {
			return *t.Name
		}
		return ""
	}
}

// Unwrap returns the named type at the bottom of a NON_NULL/LIST chain,
// or the empty string when the chain is unnamed.
func (t TypeRef) Unwrap() string {
	for ref := &t; ref != nil; ref = ref.OfType {
		if ref.Name != nil {
			return *ref.Name
		}
	}
	return ""
}

// IntrospectionQuery is the standard introspection query sent to the
// endpoint on a schema fetch, including deprecated fields and enum
// values.
const IntrospectionQuery = `
query IntrospectionQuery {
	__schema {
		queryType { name }
		mutationType { name }
		subscriptionType { name }
		types {
			...FullType
		}
		directives {
			name
			description
			locations
			args {
				...InputValue
			}
		}
	}
}
fragment FullType on __Type {
	kind
	name
	description
	fields(includeDeprecated: true) {
		name
		description
		args {
			...InputValue
		}
		type {
			...TypeRef
		}
		isDeprecated
		deprecationReason
	}
	inputFields {
		...InputValue
	}
	interfaces {
		...TypeRef
	}
	enumValues(includeDeprecated: true) {
		name
		description
		isDeprecated
		deprecationReason
	}
	possibleTypes {
		...TypeRef
	}
}
fragment InputValue on __InputValue {
	name
	description
	type { ...TypeRef }
	defaultValue
}
fragment TypeRef on __Type {
	kind
	name
	ofType {
		kind
		name
		ofType {
			kind
			name
			ofType {
				kind
				name
				ofType {
					kind
					name
					ofType {
						kind
						name
						ofType {
							kind
							name
							ofType {
								kind
								name
							}
						}
					}
				}
			}
		}
	}
}`
