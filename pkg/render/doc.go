// Package render provides server-side rendering for vdom trees.
//
// The render package converts Node trees into HTML strings or streams:
//
//   - Text and attribute escaping
//   - Void element handling (input, br, img, etc.)
//   - Boolean attributes, rendered bare when present and omitted when false
//   - Hydration IDs for elements that carry listeners
//   - Full page rendering with DOCTYPE, head and body
//
// Only static attributes are written as markup. Function-call attributes
// are DOM properties and are left for the live client to apply, except
// innerHTML, which becomes the element's content. Event attributes are
// written as data-on-<type> markers so the client knows which listeners to
// forward.
//
// # Basic Usage
//
//	r := render.NewRenderer[vdom.Event, Msg](render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// # Full Page Rendering
//
//	err := r.RenderPage(w, render.Page[vdom.Event, Msg]{
//	    Body:    body,
//	    Title:   "Counter",
//	    LiveURL: "/live",
//	})
//
// For large pages, use StreamingRenderer to flush the head before the body
// is rendered.
//
// # Security
//
// All text content is escaped. Raw nodes and innerHTML properties are
// written verbatim and should only carry trusted content.
package render
