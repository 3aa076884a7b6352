package vdom

import (
	"sort"

	"github.com/vango-dev/vattr/pkg/value"
)

var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr returns true if name is an HTML boolean attribute, which is
// present (with no value) or absent rather than carrying text.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

// BooleanAttrValue reports whether a boolean attribute with value v should
// be present.
func BooleanAttrValue(v value.Value) bool {
	return v.Truthy()
}

// EffectiveAttrs returns the string attributes that should be present on the
// DOM for the given node, keyed by qualified name.
//
// This includes:
// - static attributes (boolean attributes map to "" when present, and are
// omitted when false)
// - data-on-<event> markers for each bound listener
//
// Function-call properties are not attributes; see EffectiveProps.
// It intentionally omits data-hid, which is managed separately via node.HID.
func EffectiveAttrs[EVENT, MSG any](node *Node[EVENT, MSG]) map[string]string {
	if node == nil || len(node.Attrs) == 0 {
		return nil
	}

	attrs := make(map[string]string)
	for _, a := range node.Attrs {
		switch {
		case a.IsValue():
			name := a.QualifiedName()
			v, _ := a.GetValue()
			if IsBooleanAttr(name) {
				if BooleanAttrValue(v) {
					attrs[name] = ""
				} else {
					delete(attrs, name)
				}
				continue
			}
			attrs[name] = v.String()
		case a.IsEvent():
			attrs["data-on-"+EventType(a.NameString())] = "true"
		}
	}
	return attrs
}

// EffectiveProps returns the function-call properties of the node by name.
func EffectiveProps[EVENT, MSG any](node *Node[EVENT, MSG]) map[string]value.Value {
	if node == nil {
		return nil
	}

	var props map[string]value.Value
	for _, a := range node.Attrs {
		if !a.IsFuncCall() {
			continue
		}
		if props == nil {
			props = make(map[string]value.Value)
		}
		v, _ := a.GetValue()
		props[a.NameString()] = v
	}
	return props
}

// Listeners returns the sorted, de-duplicated event types bound on the node.
func Listeners[EVENT, MSG any](node *Node[EVENT, MSG]) []string {
	if node == nil {
		return nil
	}

	seen := make(map[string]bool)
	var types []string
	for _, a := range node.Attrs {
		if !a.IsEvent() {
			continue
		}
		t := EventType(a.NameString())
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	sort.Strings(types)
	return types
}

// SortedKeys returns the keys of m in sorted order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// enabledClasses returns the enabled class names in sorted order.
func enabledClasses(m map[string]bool) []string {
	var result []string
	for _, class := range SortedKeys(m) {
		if m[class] && class != "" {
			result = append(result, class)
		}
	}
	return result
}
