package vdom

import (
	"fmt"
	"strings"

	"github.com/vango-dev/vattr/pkg/attr"
	"github.com/vango-dev/vattr/pkg/value"
)

// keyAttr is consumed by the element builder as the reconciliation key.
const keyAttr = "key"

// static creates a static Attr with the given name and value.
func static[EVENT, MSG any](name string, v any) Attr[EVENT, MSG] {
	return attr.FromValue[EVENT, MSG](name, value.From(v))
}

// prop creates a function-call Attr with the given property name and value.
func prop[EVENT, MSG any](name string, v any) Attr[EVENT, MSG] {
	return Attr[EVENT, MSG]{
		Name:  name,
		Value: attr.NewFuncCall[EVENT, MSG](value.From(v)),
	}
}

// Attr creates a static attribute with any name.
func (HTML[EVENT, MSG]) Attr(name string, v any) Attr[EVENT, MSG] {
	return static[EVENT, MSG](name, v)
}

// Attrs collects attributes into a slice.
func (HTML[EVENT, MSG]) Attrs(attrs ...Attr[EVENT, MSG]) []Attr[EVENT, MSG] {
	return attrs
}

// Identity attributes

// ID sets the id attribute.
func (HTML[EVENT, MSG]) ID(id string) Attr[EVENT, MSG] { return static[EVENT, MSG]("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func (HTML[EVENT, MSG]) Class(classes ...string) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("class", strings.Join(classes, " "))
}

// Style sets the style attribute.
func (HTML[EVENT, MSG]) Style(style string) Attr[EVENT, MSG] { return static[EVENT, MSG]("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func (HTML[EVENT, MSG]) Data(key, v string) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("data-"+key, v)
}

// Key sets the reconciliation key. It is not rendered.
// The key is converted to a string using fmt.Sprint.
func (HTML[EVENT, MSG]) Key(key any) Attr[EVENT, MSG] {
	return static[EVENT, MSG](keyAttr, fmt.Sprint(key))
}

// Accessibility attributes

// Role sets the role attribute.
func (HTML[EVENT, MSG]) Role(role string) Attr[EVENT, MSG] { return static[EVENT, MSG]("role", role) }

// AriaLabel sets the aria-label attribute.
func (HTML[EVENT, MSG]) AriaLabel(label string) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("aria-label", label)
}

// AriaHidden sets the aria-hidden attribute.
func (HTML[EVENT, MSG]) AriaHidden(hidden bool) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("aria-hidden", hidden)
}

// AriaExpanded sets the aria-expanded attribute.
func (HTML[EVENT, MSG]) AriaExpanded(expanded bool) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("aria-expanded", expanded)
}

// TabIndex sets the tabindex attribute.
func (HTML[EVENT, MSG]) TabIndex(index int) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("tabindex", index)
}

// Hidden sets the hidden attribute.
func (HTML[EVENT, MSG]) Hidden() Attr[EVENT, MSG] { return static[EVENT, MSG]("hidden", true) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func (HTML[EVENT, MSG]) TitleAttr(title string) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("title", title)
}

// Link attributes

// Href sets the href attribute.
func (HTML[EVENT, MSG]) Href(url string) Attr[EVENT, MSG] { return static[EVENT, MSG]("href", url) }

// XLinkHref sets xlink:href, as used by SVG <use> elements.
func (HTML[EVENT, MSG]) XLinkHref(url string) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("href", url).WithNamespace(attr.XLink)
}

// Target sets the target attribute.
func (HTML[EVENT, MSG]) Target(target string) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("target", target)
}

// Rel sets the rel attribute.
func (HTML[EVENT, MSG]) Rel(rel string) Attr[EVENT, MSG] { return static[EVENT, MSG]("rel", rel) }

// Form input attributes

// Name sets the name attribute.
func (HTML[EVENT, MSG]) Name(name string) Attr[EVENT, MSG] { return static[EVENT, MSG]("name", name) }

// Type sets the type attribute.
func (HTML[EVENT, MSG]) Type(t string) Attr[EVENT, MSG] { return static[EVENT, MSG]("type", t) }

// Placeholder sets the placeholder attribute.
func (HTML[EVENT, MSG]) Placeholder(text string) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("placeholder", text)
}

// For sets the for attribute (for labels).
func (HTML[EVENT, MSG]) For(id string) Attr[EVENT, MSG] { return static[EVENT, MSG]("for", id) }

// Disabled sets the disabled attribute.
func (HTML[EVENT, MSG]) Disabled(disabled bool) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("disabled", disabled)
}

// Readonly sets the readonly attribute.
func (HTML[EVENT, MSG]) Readonly() Attr[EVENT, MSG] { return static[EVENT, MSG]("readonly", true) }

// Required sets the required attribute.
func (HTML[EVENT, MSG]) Required() Attr[EVENT, MSG] { return static[EVENT, MSG]("required", true) }

// Checked sets the checked attribute. This is the initial state in markup;
// use PropChecked to drive the live DOM property.
func (HTML[EVENT, MSG]) Checked(checked bool) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("checked", checked)
}

// MaxLength sets the maxlength attribute.
func (HTML[EVENT, MSG]) MaxLength(n int) Attr[EVENT, MSG] { return static[EVENT, MSG]("maxlength", n) }

// Action sets the action attribute.
func (HTML[EVENT, MSG]) Action(url string) Attr[EVENT, MSG] { return static[EVENT, MSG]("action", url) }

// Method sets the method attribute.
func (HTML[EVENT, MSG]) Method(method string) Attr[EVENT, MSG] {
	return static[EVENT, MSG]("method", method)
}

// Media attributes

// Src sets the src attribute.
func (HTML[EVENT, MSG]) Src(url string) Attr[EVENT, MSG] { return static[EVENT, MSG]("src", url) }

// Alt sets the alt attribute.
func (HTML[EVENT, MSG]) Alt(text string) Attr[EVENT, MSG] { return static[EVENT, MSG]("alt", text) }

// Width sets the width attribute.
func (HTML[EVENT, MSG]) Width(w int) Attr[EVENT, MSG] { return static[EVENT, MSG]("width", w) }

// Height sets the height attribute.
func (HTML[EVENT, MSG]) Height(h int) Attr[EVENT, MSG] { return static[EVENT, MSG]("height", h) }

// DOM properties. These are applied imperatively by the client and never
// appear in rendered markup.

// Prop sets an arbitrary DOM property.
func (HTML[EVENT, MSG]) Prop(name string, v any) Attr[EVENT, MSG] { return prop[EVENT, MSG](name, v) }

// PropValue sets the live value property of an input.
func (HTML[EVENT, MSG]) PropValue(v string) Attr[EVENT, MSG] { return prop[EVENT, MSG]("value", v) }

// PropChecked sets the live checked property of a checkbox.
func (HTML[EVENT, MSG]) PropChecked(checked bool) Attr[EVENT, MSG] {
	return prop[EVENT, MSG]("checked", checked)
}

// PropSelected sets the live selected property of an option.
func (HTML[EVENT, MSG]) PropSelected(selected bool) Attr[EVENT, MSG] {
	return prop[EVENT, MSG]("selected", selected)
}

// InnerHTML sets the innerHTML property.
// Use with caution - can lead to XSS if content is user-provided.
func (HTML[EVENT, MSG]) InnerHTML(html string) Attr[EVENT, MSG] {
	return prop[EVENT, MSG]("innerHTML", html)
}

// Conditional attributes

// ClassIf adds a class conditionally.
func (h HTML[EVENT, MSG]) ClassIf(condition bool, class string) Attr[EVENT, MSG] {
	if condition {
		return h.Class(class)
	}
	return Attr[EVENT, MSG]{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func (HTML[EVENT, MSG]) AttrIf(condition bool, a Attr[EVENT, MSG]) Attr[EVENT, MSG] {
	if condition {
		return a
	}
	return Attr[EVENT, MSG]{}
}

// Classes merges multiple class values.
// Accepts string, []string, and map[string]bool. Map entries are sorted so
// the output is stable across renders.
func (HTML[EVENT, MSG]) Classes(classes ...any) Attr[EVENT, MSG] {
	var result []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			if v != "" {
				result = append(result, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					result = append(result, s)
				}
			}
		case map[string]bool:
			result = append(result, enabledClasses(v)...)
		}
	}
	return static[EVENT, MSG]("class", strings.Join(result, " "))
}
