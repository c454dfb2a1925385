package schema

// knownTypeSample bounds how many type names an UnknownTypeError lists.
const knownTypeSample = 8

// Index is a read-only view over one introspection document: a type
// table keyed by exact name, in the order the document declared them.
//
// Keys match the source document exactly, including the __-prefixed
// introspection meta-types. Callers that do not want meta-types filter
// them at display time.
type Index struct {
	doc   *Document
	names []string
	types map[string]*Type
}

// BuildIndex derives an Index from doc. Construction is pure: no I/O,
// and the same document always yields an equivalent index. It fails
// with ErrMalformedSchema when doc lacks the __schema container.
func BuildIndex(doc *Document) (*Index, error) {
	if !doc.Valid() {
		return nil, ErrMalformedSchema
	}

	idx := &Index{
		doc:   doc,
		names: make([]string, 0, len(doc.Schema.Types)),
		types: make(map[string]*Type, len(doc.Schema.Types)),
	}
	for i := range doc.Schema.Types {
		t := &doc.Schema.Types[i]
		if _, dup := idx.types[t.Name]; dup {
			continue
		}
		idx.names = append(idx.names, t.Name)
		idx.types[t.Name] = t
	}
	return idx, nil
}

// Document returns the source document the index was built from.
func (x *Index) Document() *Document {
	return x.doc
}

// Len returns the number of indexed types.
func (x *Index) Len() int {
	return len(x.names)
}

// TypeNames returns every type name in declaration order.
func (x *Index) TypeNames() []string {
	out := make([]string, len(x.names))
	copy(out, x.names)
	return out
}

// Type returns the descriptor for name.
func (x *Index) Type(name string) (*Type, bool) {
	t, ok := x.types[name]
	return t, ok
}

// Fields returns the field descriptors of the named type. A type that
// exists but bears no object fields (scalars, enums, unions, input
// objects) yields an empty slice. An absent name yields an
// *UnknownTypeError carrying a sample of known names.
func (x *Index) Fields(name string) ([]Field, error) {
	t, ok := x.types[name]
	if !ok {
		return nil, x.unknownType(name)
	}
	out := make([]Field, len(t.Fields))
	copy(out, t.Fields)
	return out, nil
}

func (x *Index) unknownType(name string) *UnknownTypeError {
	sample := x.names
	if len(sample) > knownTypeSample {
		sample = sample[:knownTypeSample]
	}
	known := make([]string, len(sample))
	copy(known, sample)
	return &UnknownTypeError{Name: name, Known: known, Total: len(x.names)}
}
