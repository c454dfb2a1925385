// Package markdown builds the Markdown text that tool handlers return
// to MCP clients.
//
// It is a thin accumulation layer, not a Markdown engine: headings,
// bold key/value fields, bullet items, pipe tables, and fenced code
// blocks, plus a rune-aware Truncate for long descriptions.
//
// # Usage
//
//	b := markdown.NewBuilder()
//	b.Heading(2, "Products")
//	b.Table([]string{"Title", "Status"}, rows)
//	b.Field("Next cursor", cursor)
//	return b.String()
//
// Table cells have pipes escaped and newlines flattened so remote data
// cannot break the table layout.
package markdown
