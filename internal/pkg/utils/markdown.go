package utils

import (
	"bytes"
	"html"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// noteRenderer drops raw HTML from note text, leaving an
// "<!-- raw HTML omitted -->" comment in its place, since WithUnsafe is not set.
var noteRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// RenderNoteHTML converts a doctor's note to HTML. On failure the escaped
// plain text is returned.
func RenderNoteHTML(note string) string {
	var buf bytes.Buffer
	if err := noteRenderer.Convert([]byte(note), &buf); err != nil {
		return html.EscapeString(note)
	}
	return buf.String()
}
