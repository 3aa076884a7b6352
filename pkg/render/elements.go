package render

import "github.com/vango-dev/vattr/pkg/vdom"

// inlineElements are rendered without surrounding newlines in pretty mode.
var inlineElements = map[string]bool{
	"a":      true,
	"abbr":   true,
	"b":      true,
	"bdi":    true,
	"bdo":    true,
	"br":     true,
	"cite":   true,
	"code":   true,
	"data":   true,
	"dfn":    true,
	"em":     true,
	"i":      true,
	"kbd":    true,
	"label":  true,
	"mark":   true,
	"q":      true,
	"s":      true,
	"samp":   true,
	"small":  true,
	"span":   true,
	"strong": true,
	"sub":    true,
	"sup":    true,
	"time":   true,
	"u":      true,
	"var":    true,
	"wbr":    true,
}

// isInlineElement returns true if the tag is an inline element.
func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

// hasOnlyText reports whether every child is a text node, in which case the
// element is kept on one line in pretty mode.
func hasOnlyText[EVENT, MSG any](children []*vdom.Node[EVENT, MSG]) bool {
	for _, c := range children {
		if c != nil && c.Kind != vdom.KindText {
			return false
		}
	}
	return true
}
