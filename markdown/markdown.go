package markdown

import (
	"fmt"
	"strings"
)

// Builder accumulates a Markdown document section by section. The zero
// value is ready to use. Every section method returns the builder so
// calls chain.
type Builder struct {
	sb strings.Builder
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Heading writes a heading at the given level (1 to 6).
func (b *Builder) Heading(level int, text string) *Builder {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	b.sb.WriteString(strings.Repeat("#", level))
	b.sb.WriteString(" ")
	b.sb.WriteString(text)
	b.sb.WriteString("\n\n")
	return b
}

// Line writes one line of text followed by a newline.
func (b *Builder) Line(text string) *Builder {
	b.sb.WriteString(text)
	b.sb.WriteString("\n")
	return b
}

// Linef writes one formatted line.
func (b *Builder) Linef(format string, args ...any) *Builder {
	return b.Line(fmt.Sprintf(format, args...))
}

// Blank writes an empty line, separating blocks.
func (b *Builder) Blank() *Builder {
	b.sb.WriteString("\n")
	return b
}

// Field writes one bold key/value line, skipping empty values so
// renderers can emit optional fields unconditionally.
func (b *Builder) Field(key, value string) *Builder {
	if value == "" {
		return b
	}
	b.sb.WriteString("**")
	b.sb.WriteString(key)
	b.sb.WriteString(":** ")
	b.sb.WriteString(value)
	b.sb.WriteString("\n")
	return b
}

// Item writes one bulleted list item.
func (b *Builder) Item(text string) *Builder {
	b.sb.WriteString("- ")
	b.sb.WriteString(text)
	b.sb.WriteString("\n")
	return b
}

// Table writes a pipe table with a header row. Rows shorter than the
// header are padded with empty cells; longer rows are truncated. Cell
// text has pipe characters escaped so values cannot break the row.
func (b *Builder) Table(headers []string, rows [][]string) *Builder {
	if len(headers) == 0 {
		return b
	}

	writeRow := func(cells []string) {
		b.sb.WriteString("|")
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = escapeCell(cells[i])
			}
			b.sb.WriteString(" ")
			b.sb.WriteString(cell)
			b.sb.WriteString(" |")
		}
		b.sb.WriteString("\n")
	}

	writeRow(headers)
	b.sb.WriteString("|")
	for range headers {
		b.sb.WriteString(" --- |")
	}
	b.sb.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	b.sb.WriteString("\n")
	return b
}

// Code writes a fenced code block tagged with lang.
func (b *Builder) Code(lang, code string) *Builder {
	b.sb.WriteString("```")
	b.sb.WriteString(lang)
	b.sb.WriteString("\n")
	b.sb.WriteString(strings.TrimRight(code, "\n"))
	b.sb.WriteString("\n```\n\n")
	return b
}

// String returns the accumulated document.
func (b *Builder) String() string {
	return strings.TrimRight(b.sb.String(), "\n") + "\n"
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut. A max of 0 or less returns s unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// Code quotes s as inline code.
func Code(s string) string {
	return "`" + s + "`"
}
