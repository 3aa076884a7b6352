package render

import (
	"context"
	"io"

	"github.com/vango-dev/vattr/pkg/vdom"
)

// DefaultClientScript is the path of the live client script.
const DefaultClientScript = "/_vattr/client.js"

// Page contains all data needed to render a complete HTML document.
type Page[EVENT, MSG any] struct {
	// Body is the root node for the page content
	Body *vdom.Node[EVENT, MSG]

	// Title is the page title
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Scripts contains script tags to include after the body content
	Scripts []ScriptTag

	// LiveURL is the websocket endpoint of the live session. When empty no
	// client script is injected and the page is static.
	LiveURL string

	// ClientScript is the path to the client JavaScript.
	// Defaults to DefaultClientScript.
	ClientScript string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Content  string // content attribute
	Property string // property attribute (for OpenGraph)
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Module bool   // type="module"
	Defer  bool   // defer attribute
	Inline string // inline script content
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer[EVENT, MSG]) RenderPage(w io.Writer, page Page[EVENT, MSG]) error {
	return r.renderPage(context.Background(), w, page, nil)
}

// renderPage writes the document. flush, if set, is called after the head
// and again after the body content.
func (r *Renderer[EVENT, MSG]) renderPage(ctx context.Context, w io.Writer, page Page[EVENT, MSG], flush func()) error {
	ew := &errWriter{w: w}

	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	ew.WriteString("<!DOCTYPE html>\n")
	ew.WriteString(`<html lang="` + escapeAttr(lang) + `">` + "\n")
	r.renderHead(ew, page)
	ew.WriteString("<body>\n")
	if ew.err != nil {
		return wrapWriteErr(ew.err)
	}
	if flush != nil {
		flush()
	}

	if err := r.RenderContext(ctx, w, page.Body); err != nil {
		return err
	}
	if flush != nil {
		flush()
	}

	ew.WriteString("\n")
	for _, script := range page.Scripts {
		renderScriptTag(ew, script)
	}
	renderClientScript(ew, page)
	ew.WriteString("</body>\n</html>\n")

	if ew.err != nil {
		return wrapWriteErr(ew.err)
	}
	return nil
}

// renderHead renders the document head section.
func (r *Renderer[EVENT, MSG]) renderHead(ew *errWriter, page Page[EVENT, MSG]) {
	ew.WriteString("<head>\n")
	ew.WriteString(`  <meta charset="utf-8">` + "\n")
	ew.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")

	if page.Title != "" {
		ew.WriteString("  <title>" + escapeHTML(page.Title) + "</title>\n")
	}

	for _, meta := range page.Meta {
		renderMetaTag(ew, meta)
	}

	for _, href := range page.StyleSheets {
		ew.WriteString(`  <link rel="stylesheet" href="` + escapeAttr(href) + `">` + "\n")
	}

	ew.WriteString("</head>\n")
}

// renderMetaTag renders a meta element.
func renderMetaTag(ew *errWriter, meta MetaTag) {
	ew.WriteString("  <meta")
	if meta.Name != "" {
		ew.WriteString(` name="` + escapeAttr(meta.Name) + `"`)
	}
	if meta.Property != "" {
		ew.WriteString(` property="` + escapeAttr(meta.Property) + `"`)
	}
	if meta.Content != "" {
		ew.WriteString(` content="` + escapeAttr(meta.Content) + `"`)
	}
	ew.WriteString(">\n")
}

// renderScriptTag renders a script element.
func renderScriptTag(ew *errWriter, script ScriptTag) {
	ew.WriteString("  <script")
	if script.Src != "" {
		ew.WriteString(` src="` + escapeAttr(script.Src) + `"`)
	}
	if script.Module {
		ew.WriteString(` type="module"`)
	}
	if script.Defer {
		ew.WriteString(" defer")
	}
	ew.WriteString(">")
	ew.WriteString(script.Inline)
	ew.WriteString("</script>\n")
}

// renderClientScript injects the live client when the page has a session.
func renderClientScript[EVENT, MSG any](ew *errWriter, page Page[EVENT, MSG]) {
	if page.LiveURL == "" {
		return
	}

	clientPath := page.ClientScript
	if clientPath == "" {
		clientPath = DefaultClientScript
	}

	ew.WriteString(`  <script src="` + escapeAttr(clientPath) + `" data-live="` + escapeAttr(page.LiveURL) + `" defer></script>` + "\n")
}
