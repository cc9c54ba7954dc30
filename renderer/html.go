package renderer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown is the converter of rendered reports, tables need GFM.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a rendered markdown report to an HTML fragment.
func HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("could not convert markdown to html: %w", err)
	}
	return buf.String(), nil
}
