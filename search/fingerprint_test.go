package search

import (
	"testing"
)

func TestFingerprint_SameDocsProduceSameFingerprint(t *testing.T) {
	docs := testDocs()

	fp1 := computeFingerprint(docs)
	fp2 := computeFingerprint(docs)

	if fp1 != fp2 {
		t.Errorf("same docs produced different fingerprints: %s vs %s", fp1, fp2)
	}
	if fp1 == "" {
		t.Error("fingerprint is empty")
	}
}

func TestFingerprint_DifferentDocsProduceDifferentFingerprint(t *testing.T) {
	base := testDocs()
	fp := computeFingerprint(base)

	t.Run("added doc", func(t *testing.T) {
		changed := append(testDocs(), Doc{ID: "Customer", Name: "Customer", Kind: "OBJECT"})
		if computeFingerprint(changed) == fp {
			t.Error("expected fingerprint to change when a doc is added")
		}
	})

	t.Run("changed description", func(t *testing.T) {
		changed := testDocs()
		changed[0].Description = "A completely different description."
		if computeFingerprint(changed) == fp {
			t.Error("expected fingerprint to change with description")
		}
	})

	t.Run("changed signature", func(t *testing.T) {
		changed := testDocs()
		changed[1].Type = "String"
		if computeFingerprint(changed) == fp {
			t.Error("expected fingerprint to change with type signature")
		}
	})
}

func TestFingerprint_FieldBoundaries(t *testing.T) {
	// Adjacent fields must not blur together: ("ab", "c") and
	// ("a", "bc") are different documents.
	a := []Doc{{ID: "ab", Name: "c"}}
	b := []Doc{{ID: "a", Name: "bc"}}

	if computeFingerprint(a) == computeFingerprint(b) {
		t.Error("expected field boundaries to separate fingerprints")
	}
}

func TestFingerprint_EmptyDocs(t *testing.T) {
	if computeFingerprint(nil) != computeFingerprint([]Doc{}) {
		t.Error("expected nil and empty slices to fingerprint identically")
	}
}
