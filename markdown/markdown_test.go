package markdown

import (
	"strings"
	"testing"
)

func TestBuilder_Heading(t *testing.T) {
	b := NewBuilder()
	b.Heading(2, "Products")

	got := b.String()
	if !strings.HasPrefix(got, "## Products\n") {
		t.Errorf("expected level-2 heading, got %q", got)
	}

	t.Run("level clamped", func(t *testing.T) {
		low := NewBuilder().Heading(0, "x").String()
		if !strings.HasPrefix(low, "# x") {
			t.Errorf("expected level 0 clamped to 1, got %q", low)
		}
		high := NewBuilder().Heading(9, "x").String()
		if !strings.HasPrefix(high, "###### x") {
			t.Errorf("expected level 9 clamped to 6, got %q", high)
		}
	})
}

func TestBuilder_Field(t *testing.T) {
	b := NewBuilder()
	b.Field("Vendor", "Acme")
	b.Field("Status", "")

	got := b.String()
	if !strings.Contains(got, "**Vendor:** Acme") {
		t.Errorf("expected vendor field, got %q", got)
	}
	if strings.Contains(got, "Status") {
		t.Errorf("expected empty field skipped, got %q", got)
	}
}

func TestBuilder_Table(t *testing.T) {
	b := NewBuilder()
	b.Table(
		[]string{"Field", "Type"},
		[][]string{
			{"title", "String!"},
			{"vendor"},
			{"tags", "[String!]!", "extra cell dropped"},
		},
	)

	got := b.String()
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header + separator + 3 rows, got %d lines:\n%s", len(lines), got)
	}
	if lines[0] != "| Field | Type |" {
		t.Errorf("unexpected header row %q", lines[0])
	}
	if lines[1] != "| --- | --- |" {
		t.Errorf("unexpected separator row %q", lines[1])
	}
	if lines[3] != "| vendor |  |" {
		t.Errorf("expected short row padded, got %q", lines[3])
	}
	if lines[4] != "| tags | [String!]! |" {
		t.Errorf("expected long row truncated, got %q", lines[4])
	}
}

func TestBuilder_TableEscapesCells(t *testing.T) {
	b := NewBuilder()
	b.Table([]string{"Value"}, [][]string{{"a|b\nc"}})

	got := b.String()
	if !strings.Contains(got, `a\|b c`) {
		t.Errorf("expected pipes escaped and newlines flattened, got %q", got)
	}
}

func TestBuilder_Code(t *testing.T) {
	b := NewBuilder()
	b.Code("graphql", "query { shop { name } }\n")

	got := b.String()
	if !strings.Contains(got, "```graphql\nquery { shop { name } }\n```") {
		t.Errorf("unexpected code block: %q", got)
	}
}

func TestBuilder_Chaining(t *testing.T) {
	got := NewBuilder().
		Heading(1, "Order").
		Field("ID", "gid://shopify/Order/1").
		Blank().
		Item("first").
		Item("second").
		String()

	if !strings.Contains(got, "- first\n- second") {
		t.Errorf("expected list items in order, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short enough", "abc", 10, "abc"},
		{"exactly max", "abcde", 5, "abcde"},
		{"cut with ellipsis", "abcdefgh", 6, "abc..."},
		{"tiny max", "abcdefgh", 2, "ab"},
		{"zero max means unlimited", "abcdefgh", 0, "abcdefgh"},
		{"multibyte runes", "héllo wörld", 8, "héllo..."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.in, tc.max); got != tc.want {
				t.Errorf("Truncate(%q, %d) = %q, expected %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}
