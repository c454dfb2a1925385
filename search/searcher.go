package search

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/admingraph/shopify-mcp/schema"
)

// Doc is one searchable schema entry: a type, or a single field of a
// type.
type Doc struct {
	// ID is "TypeName" for types and "TypeName.fieldName" for fields.
	ID string
	// Name is the bare type or field name.
	Name string
	// Kind is the type kind (OBJECT, ENUM, ...) or "FIELD".
	Kind string
	// Parent is the owning type name; empty for types.
	Parent string
	// Type is the rendered field signature; empty for types.
	Type string
	// Description is the schema description, possibly empty.
	Description string
}

// Hit is one ranked search result.
type Hit struct {
	Doc
	Score float64
}

// Config controls ranking and safety limits.
type Config struct {
	// NameBoost multiplies the score of name matches. Default 3.
	NameBoost float64
	// MaxDocs caps how many documents are indexed. 0 means unlimited.
	MaxDocs int
	// MaxDocTextLen truncates long descriptions before indexing.
	// 0 means unlimited.
	MaxDocTextLen int
}

func (c Config) withDefaults() Config {
	if c.NameBoost <= 0 {
		c.NameBoost = 3
	}
	return c
}

// Searcher ranks schema docs against free-text terms. It keeps one
// in-memory full-text index per document fingerprint, so repeated
// searches against an unchanged schema reuse the built index and a
// schema reload triggers a rebuild.
//
// Searcher is safe for concurrent use.
type Searcher struct {
	mu          sync.RWMutex
	config      Config
	index       bleve.Index
	docs        map[string]Doc
	fingerprint string
}

// NewSearcher creates a Searcher.
func NewSearcher(cfg Config) *Searcher {
	return &Searcher{config: cfg.withDefaults()}
}

// Search ranks docs against term and returns at most limit hits, best
// first. An empty term returns the first documents in input order.
// Ties break deterministically: score descending, then ID ascending.
func (s *Searcher) Search(term string, limit int, docs []Doc) ([]Hit, error) {
	if limit <= 0 {
		limit = 10
	}
	if s.config.MaxDocs > 0 && len(docs) > s.config.MaxDocs {
		docs = docs[:s.config.MaxDocs]
	}

	if err := s.ensureIndex(docs); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.TrimSpace(term)
	if term == "" {
		hits := make([]Hit, 0, limit)
		for _, d := range docs {
			if len(hits) >= limit {
				break
			}
			hits = append(hits, Hit{Doc: d})
		}
		return hits, nil
	}

	nameQuery := bleve.NewMatchQuery(term)
	nameQuery.SetField("name")
	nameQuery.SetBoost(s.config.NameBoost)

	prefixQuery := bleve.NewPrefixQuery(strings.ToLower(term))
	prefixQuery.SetField("name")
	prefixQuery.SetBoost(s.config.NameBoost)

	descQuery := bleve.NewMatchQuery(term)
	descQuery.SetField("description")

	parentQuery := bleve.NewMatchQuery(term)
	parentQuery.SetField("parent")

	req := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(nameQuery, prefixQuery, descQuery, parentQuery))
	req.Size = limit

	res, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		doc, ok := s.docs[h.ID]
		if !ok {
			continue
		}
		hits = append(hits, Hit{Doc: doc, Score: h.Score})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ID < hits[j].ID
	})
	return hits, nil
}

// Close releases the underlying index. The searcher remains usable; the
// next search rebuilds.
func (s *Searcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index == nil {
		return nil
	}
	err := s.index.Close()
	s.index = nil
	s.docs = nil
	s.fingerprint = ""
	if err != nil {
		return fmt.Errorf("search: close index: %w", err)
	}
	return nil
}

// ensureIndex rebuilds the full-text index when the document set
// changed since the last build.
func (s *Searcher) ensureIndex(docs []Doc) error {
	fp := computeFingerprint(docs)

	s.mu.RLock()
	current := s.fingerprint
	hasIndex := s.index != nil
	s.mu.RUnlock()
	if hasIndex && current == fp {
		return nil
	}

	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return fmt.Errorf("search: create index: %w", err)
	}

	byID := make(map[string]Doc, len(docs))
	batch := idx.NewBatch()
	for _, d := range docs {
		desc := d.Description
		if s.config.MaxDocTextLen > 0 && len(desc) > s.config.MaxDocTextLen {
			desc = desc[:s.config.MaxDocTextLen]
		}
		if err := batch.Index(d.ID, map[string]any{
			"name":        d.Name,
			"kind":        d.Kind,
			"parent":      d.Parent,
			"description": desc,
		}); err != nil {
			idx.Close()
			return fmt.Errorf("search: index doc %s: %w", d.ID, err)
		}
		byID[d.ID] = d
	}
	if err := idx.Batch(batch); err != nil {
		idx.Close()
		return fmt.Errorf("search: apply batch: %w", err)
	}

	s.mu.Lock()
	old := s.index
	s.index = idx
	s.docs = byID
	s.fingerprint = fp
	s.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

// DocsFromIndex flattens a schema index into searchable docs: one per
// type and one per field. Introspection meta-types are skipped.
func DocsFromIndex(idx *schema.Index) []Doc {
	names := idx.TypeNames()
	docs := make([]Doc, 0, len(names)*4)
	for _, name := range names {
		if strings.HasPrefix(name, "__") {
			continue
		}
		t, ok := idx.Type(name)
		if !ok {
			continue
		}
		docs = append(docs, Doc{
			ID:          name,
			Name:        name,
			Kind:        t.Kind,
			Description: t.Description,
		})
		for _, f := range t.Fields {
			docs = append(docs, Doc{
				ID:          name + "." + f.Name,
				Name:        f.Name,
				Kind:        "FIELD",
				Parent:      name,
				Type:        f.Type.String(),
				Description: f.Description,
			})
		}
	}
	return docs
}
