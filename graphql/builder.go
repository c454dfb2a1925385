package graphql

import (
	"strings"
)

// DefaultPageSize is the page size a connection query uses when First
// is unset.
const DefaultPageSize = 10

// Arg binds one root-field argument to a query variable of the same
// name. Args with a nil Value are skipped, so optional tool arguments
// can be declared unconditionally.
type Arg struct {
	// Name is the argument and variable name.
	Name string
	// Type is the GraphQL type of the variable, e.g. "String", "ID!".
	Type string
	// Value is the bound value; nil omits the argument entirely.
	Value any
}

// Query describes a single root-field selection. Connection pagination
// is an explicit flag: when set, the selections are wrapped in
// edges/node plus pageInfo and first/after variables are added. Nothing
// is ever inferred from type naming conventions.
type Query struct {
	// Root is the root field to select, e.g. "products".
	Root string
	// Args are the root-field argument bindings.
	Args []Arg
	// Fields are the selections inside the root field (or inside node,
	// for connections). Entries may carry nested braces.
	Fields []string
	// Connection wraps Fields in edges { node { ... } cursor } and
	// appends pageInfo { hasNextPage endCursor }.
	Connection bool
	// First is the connection page size; DefaultPageSize when zero.
	First int
	// After is the pagination cursor; omitted when empty.
	After string
}

// Build renders the query text and its variable bindings.
func (q Query) Build() (string, map[string]any) {
	args := make([]Arg, 0, len(q.Args)+2)
	for _, a := range q.Args {
		if a.Value == nil {
			continue
		}
		args = append(args, a)
	}
	if q.Connection {
		first := q.First
		if first <= 0 {
			first = DefaultPageSize
		}
		args = append(args, Arg{Name: "first", Type: "Int!", Value: first})
		if q.After != "" {
			args = append(args, Arg{Name: "after", Type: "String", Value: q.After})
		}
	}

	decls := make([]string, 0, len(args))
	bound := make([]string, 0, len(args))
	var vars map[string]any
	if len(args) > 0 {
		vars = make(map[string]any, len(args))
	}
	for _, a := range args {
		decls = append(decls, "$"+a.Name+": "+a.Type)
		bound = append(bound, a.Name+": $"+a.Name)
		vars[a.Name] = a.Value
	}

	selection := strings.Join(q.Fields, " ")

	var b strings.Builder
	b.WriteString("query")
	if len(decls) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(decls, ", "))
		b.WriteString(")")
	}
	b.WriteString(" { ")
	b.WriteString(q.Root)
	if len(bound) > 0 {
		b.WriteString("(")
		b.WriteString(strings.Join(bound, ", "))
		b.WriteString(")")
	}
	b.WriteString(" { ")
	if q.Connection {
		b.WriteString("edges { node { ")
		b.WriteString(selection)
		b.WriteString(" } cursor } pageInfo { hasNextPage endCursor }")
	} else {
		b.WriteString(selection)
	}
	b.WriteString(" } }")

	return b.String(), vars
}
