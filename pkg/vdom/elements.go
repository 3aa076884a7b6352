package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// HTML builds nodes and attributes for one event and message type.
// The zero value is ready to use.
type HTML[EVENT, MSG any] struct{}

// Element creates an element with the given tag.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string.
// Strings become text children; zero attributes are ignored.
func (HTML[EVENT, MSG]) Element(tag string, args ...any) *Node[EVENT, MSG] {
	return createElement[EVENT, MSG](tag, args)
}

// Text creates a text node.
func (HTML[EVENT, MSG]) Text(content string) *Node[EVENT, MSG] {
	return &Node[EVENT, MSG]{Kind: KindText, Text: content}
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func (HTML[EVENT, MSG]) Raw(html string) *Node[EVENT, MSG] {
	return &Node[EVENT, MSG]{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element.
func (HTML[EVENT, MSG]) Fragment(children ...any) *Node[EVENT, MSG] {
	node := createElement[EVENT, MSG]("", children)
	node.Kind = KindFragment
	node.Attrs = nil
	return node
}

func createElement[EVENT, MSG any](tag string, args []any) *Node[EVENT, MSG] {
	node := &Node[EVENT, MSG]{
		Kind:     KindElement,
		Tag:      tag,
		Children: make([]*Node[EVENT, MSG], 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional children)
			continue

		case Attr[EVENT, MSG]:
			node.addAttr(v)

		case []Attr[EVENT, MSG]:
			for _, a := range v {
				node.addAttr(a)
			}

		case *Node[EVENT, MSG]:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*Node[EVENT, MSG]:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			node.Children = append(node.Children, &Node[EVENT, MSG]{
				Kind: KindText,
				Text: v,
			})
		}
	}

	return node
}

func (n *Node[EVENT, MSG]) addAttr(a Attr[EVENT, MSG]) {
	if a.Name == "" || a.Value == nil {
		return
	}
	if a.Name == keyAttr && a.Namespace.IsZero() {
		if v, ok := a.GetValue(); ok {
			n.Key = v.String()
		}
		return
	}
	n.Attrs = append(n.Attrs, a)
}

// Document structure elements

func (h HTML[EVENT, MSG]) Html(args ...any) *Node[EVENT, MSG]  { return h.Element("html", args...) }
func (h HTML[EVENT, MSG]) Head(args ...any) *Node[EVENT, MSG]  { return h.Element("head", args...) }
func (h HTML[EVENT, MSG]) Body(args ...any) *Node[EVENT, MSG]  { return h.Element("body", args...) }
func (h HTML[EVENT, MSG]) Title(args ...any) *Node[EVENT, MSG] { return h.Element("title", args...) }
func (h HTML[EVENT, MSG]) Meta(args ...any) *Node[EVENT, MSG]  { return h.Element("meta", args...) }
func (h HTML[EVENT, MSG]) Link(args ...any) *Node[EVENT, MSG]  { return h.Element("link", args...) }

// Content sectioning elements

func (h HTML[EVENT, MSG]) Header(args ...any) *Node[EVENT, MSG]  { return h.Element("header", args...) }
func (h HTML[EVENT, MSG]) Footer(args ...any) *Node[EVENT, MSG]  { return h.Element("footer", args...) }
func (h HTML[EVENT, MSG]) Main(args ...any) *Node[EVENT, MSG]    { return h.Element("main", args...) }
func (h HTML[EVENT, MSG]) Nav(args ...any) *Node[EVENT, MSG]     { return h.Element("nav", args...) }
func (h HTML[EVENT, MSG]) Section(args ...any) *Node[EVENT, MSG] { return h.Element("section", args...) }
func (h HTML[EVENT, MSG]) Article(args ...any) *Node[EVENT, MSG] { return h.Element("article", args...) }
func (h HTML[EVENT, MSG]) H1(args ...any) *Node[EVENT, MSG]      { return h.Element("h1", args...) }
func (h HTML[EVENT, MSG]) H2(args ...any) *Node[EVENT, MSG]      { return h.Element("h2", args...) }
func (h HTML[EVENT, MSG]) H3(args ...any) *Node[EVENT, MSG]      { return h.Element("h3", args...) }

// Text content elements

func (h HTML[EVENT, MSG]) Div(args ...any) *Node[EVENT, MSG]  { return h.Element("div", args...) }
func (h HTML[EVENT, MSG]) P(args ...any) *Node[EVENT, MSG]    { return h.Element("p", args...) }
func (h HTML[EVENT, MSG]) Span(args ...any) *Node[EVENT, MSG] { return h.Element("span", args...) }
func (h HTML[EVENT, MSG]) Pre(args ...any) *Node[EVENT, MSG]  { return h.Element("pre", args...) }
func (h HTML[EVENT, MSG]) Ul(args ...any) *Node[EVENT, MSG]   { return h.Element("ul", args...) }
func (h HTML[EVENT, MSG]) Ol(args ...any) *Node[EVENT, MSG]   { return h.Element("ol", args...) }
func (h HTML[EVENT, MSG]) Li(args ...any) *Node[EVENT, MSG]   { return h.Element("li", args...) }
func (h HTML[EVENT, MSG]) Hr(args ...any) *Node[EVENT, MSG]   { return h.Element("hr", args...) }
func (h HTML[EVENT, MSG]) Br(args ...any) *Node[EVENT, MSG]   { return h.Element("br", args...) }

// Inline text semantics

func (h HTML[EVENT, MSG]) A(args ...any) *Node[EVENT, MSG]      { return h.Element("a", args...) }
func (h HTML[EVENT, MSG]) Strong(args ...any) *Node[EVENT, MSG] { return h.Element("strong", args...) }
func (h HTML[EVENT, MSG]) Em(args ...any) *Node[EVENT, MSG]     { return h.Element("em", args...) }
func (h HTML[EVENT, MSG]) Code(args ...any) *Node[EVENT, MSG]   { return h.Element("code", args...) }

// Media elements

func (h HTML[EVENT, MSG]) Img(args ...any) *Node[EVENT, MSG] { return h.Element("img", args...) }

// Form elements

func (h HTML[EVENT, MSG]) Form(args ...any) *Node[EVENT, MSG]     { return h.Element("form", args...) }
func (h HTML[EVENT, MSG]) Label(args ...any) *Node[EVENT, MSG]    { return h.Element("label", args...) }
func (h HTML[EVENT, MSG]) Input(args ...any) *Node[EVENT, MSG]    { return h.Element("input", args...) }
func (h HTML[EVENT, MSG]) Textarea(args ...any) *Node[EVENT, MSG] { return h.Element("textarea", args...) }
func (h HTML[EVENT, MSG]) Button(args ...any) *Node[EVENT, MSG]   { return h.Element("button", args...) }
func (h HTML[EVENT, MSG]) Select(args ...any) *Node[EVENT, MSG]   { return h.Element("select", args...) }
func (h HTML[EVENT, MSG]) Option(args ...any) *Node[EVENT, MSG]   { return h.Element("option", args...) }

// SVG elements

func (h HTML[EVENT, MSG]) Svg(args ...any) *Node[EVENT, MSG]    { return h.Element("svg", args...) }
func (h HTML[EVENT, MSG]) Use(args ...any) *Node[EVENT, MSG]    { return h.Element("use", args...) }
func (h HTML[EVENT, MSG]) Circle(args ...any) *Node[EVENT, MSG] { return h.Element("circle", args...) }
