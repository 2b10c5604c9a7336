// Package richtext renders long-form descriptions for display.
//
// Club presentations and event info are authored as Markdown in the admin
// forms; the backend stores them verbatim. Rendering converts to HTML and
// always sanitizes the result, so a compromised or buggy backend value can
// never inject markup.
package richtext

import (
	"bytes"
	"html/template"

	"github.com/klubbportal/klubbportal/internal/app/system/htmlsanitize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Render converts Markdown to sanitized HTML ready for template output.
// Empty input renders to empty output; conversion failures degrade to the
// escaped source text rather than dropping content.
func Render(source string) template.HTML {
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(source) + "</p>")
	}
	return template.HTML(htmlsanitize.Sanitize(buf.String()))
}
