package vdom

import (
	"strings"

	"github.com/vango-dev/vattr/pkg/attr"
)

// Diff compares two Node trees and returns the patches needed to transform prev into next.
func Diff[EVENT, MSG any](prev, next *Node[EVENT, MSG]) []Patch[EVENT, MSG] {
	var patches []Patch[EVENT, MSG]
	diff(prev, next, "", &patches)
	return patches
}

// diff recursively compares nodes and appends patches.
// parentHID is the HID of the parent element, used for text patches that don't have their own HID.
func diff[EVENT, MSG any](prev, next *Node[EVENT, MSG], parentHID string, patches *[]Patch[EVENT, MSG]) {
	// Both nil - nothing to do
	if prev == nil && next == nil {
		return
	}

	// Node added (handled by parent via InsertNode)
	if prev == nil {
		return
	}

	// Node removed
	if next == nil {
		*patches = append(*patches, Patch[EVENT, MSG]{
			Op:  PatchRemoveNode,
			HID: prev.HID,
		})
		return
	}

	// Different types - replace
	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch[EVENT, MSG]{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	switch prev.Kind {
	case KindText:
		diffText(prev, next, parentHID, patches)
	case KindElement:
		diffElement(prev, next, patches)
	case KindFragment:
		next.HID = prev.HID
		diffChildren(prev, next, parentHID, patches)
	case KindRaw:
		diffRaw(prev, next, parentHID, patches)
	}
}

// diffText compares text nodes.
func diffText[EVENT, MSG any](prev, next *Node[EVENT, MSG], parentHID string, patches *[]Patch[EVENT, MSG]) {
	next.HID = prev.HID

	if prev.Text != next.Text {
		// Text nodes usually have no HID; the client updates the parent's textContent.
		targetHID := prev.HID
		if targetHID == "" {
			targetHID = parentHID
		}
		if targetHID != "" {
			*patches = append(*patches, Patch[EVENT, MSG]{
				Op:    PatchSetText,
				HID:   targetHID,
				Value: next.Text,
			})
		}
	}
}

// diffElement compares element nodes.
func diffElement[EVENT, MSG any](prev, next *Node[EVENT, MSG], patches *[]Patch[EVENT, MSG]) {
	if prev.Tag != next.Tag {
		*patches = append(*patches, Patch[EVENT, MSG]{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	next.HID = prev.HID

	diffAttrs(prev, next, patches)

	// Children text patches target this element.
	diffChildren(prev, next, prev.HID, patches)
}

// diffRaw compares raw HTML nodes.
func diffRaw[EVENT, MSG any](prev, next *Node[EVENT, MSG], parentHID string, patches *[]Patch[EVENT, MSG]) {
	next.HID = prev.HID

	if prev.Text != next.Text {
		targetHID := prev.HID
		if targetHID == "" {
			targetHID = parentHID
		}
		if targetHID != "" {
			*patches = append(*patches, Patch[EVENT, MSG]{
				Op:   PatchReplaceNode,
				HID:  targetHID,
				Node: next,
			})
		}
	}
}

// diffAttrs compares attributes by qualified name. When a name appears more
// than once, the last occurrence wins, matching render order.
func diffAttrs[EVENT, MSG any](prev, next *Node[EVENT, MSG], patches *[]Patch[EVENT, MSG]) {
	prevIdx := indexAttrs(prev.Attrs)
	nextIdx := indexAttrs(next.Attrs)

	// Removed and changed
	for i, a := range prev.Attrs {
		name := a.QualifiedName()
		if prevIdx[name] != i {
			continue
		}

		j, exists := nextIdx[name]
		if !exists {
			appendRemoveAttr(patches, prev.HID, a)
			continue
		}

		b := next.Attrs[j]
		if a.Kind() != b.Kind() || !a.Namespace.Equal(b.Namespace) {
			// Reclassified: undo the old binding before applying the new one.
			appendRemoveAttr(patches, prev.HID, a)
			appendSetAttr(patches, prev.HID, b)
			continue
		}
		if attrChanged(a, b) {
			if isBool, present := booleanStatic(b); isBool && !present {
				appendRemoveAttr(patches, prev.HID, a)
				continue
			}
			appendSetAttr(patches, prev.HID, b)
		}
	}

	// Added
	for j, b := range next.Attrs {
		name := b.QualifiedName()
		if nextIdx[name] != j {
			continue
		}
		if _, exists := prevIdx[name]; !exists {
			appendSetAttr(patches, prev.HID, b)
		}
	}
}

func indexAttrs[EVENT, MSG any](attrs []Attr[EVENT, MSG]) map[string]int {
	idx := make(map[string]int, len(attrs))
	for i, a := range attrs {
		idx[a.QualifiedName()] = i
	}
	return idx
}

func appendSetAttr[EVENT, MSG any](patches *[]Patch[EVENT, MSG], hid string, a Attr[EVENT, MSG]) {
	if p, ok := setAttrPatch(hid, a); ok {
		*patches = append(*patches, p)
	}
}

func appendRemoveAttr[EVENT, MSG any](patches *[]Patch[EVENT, MSG], hid string, a Attr[EVENT, MSG]) {
	if p, ok := removeAttrPatch(hid, a); ok {
		*patches = append(*patches, p)
	}
}

// setAttrPatch returns the patch that applies a, chosen by its classification.
func setAttrPatch[EVENT, MSG any](hid string, a Attr[EVENT, MSG]) (Patch[EVENT, MSG], bool) {
	switch a.Kind() {
	case attr.KindValue:
		v, _ := a.GetValue()
		text := v.String()
		if isBool, present := booleanStatic(a); isBool {
			if !present {
				return Patch[EVENT, MSG]{}, false
			}
			text = ""
		}
		return Patch[EVENT, MSG]{
			Op:        PatchSetAttr,
			HID:       hid,
			Key:       a.QualifiedName(),
			Namespace: a.Namespace.NamespaceURI(),
			Value:     text,
		}, true
	case attr.KindFuncCall:
		v, _ := a.GetValue()
		return Patch[EVENT, MSG]{
			Op:    PatchSetProp,
			HID:   hid,
			Key:   a.NameString(),
			Value: v.String(),
		}, true
	case attr.KindEvent:
		return Patch[EVENT, MSG]{
			Op:  PatchAddListener,
			HID: hid,
			Key: EventType(a.NameString()),
		}, true
	default:
		return Patch[EVENT, MSG]{}, false
	}
}

// removeAttrPatch returns the patch that undoes a, chosen by its classification.
func removeAttrPatch[EVENT, MSG any](hid string, a Attr[EVENT, MSG]) (Patch[EVENT, MSG], bool) {
	switch a.Kind() {
	case attr.KindValue:
		if isBool, present := booleanStatic(a); isBool && !present {
			return Patch[EVENT, MSG]{}, false
		}
		return Patch[EVENT, MSG]{
			Op:        PatchRemoveAttr,
			HID:       hid,
			Key:       a.QualifiedName(),
			Namespace: a.Namespace.NamespaceURI(),
		}, true
	case attr.KindFuncCall:
		return Patch[EVENT, MSG]{
			Op:  PatchRemoveProp,
			HID: hid,
			Key: a.NameString(),
		}, true
	case attr.KindEvent:
		return Patch[EVENT, MSG]{
			Op:  PatchRemoveListener,
			HID: hid,
			Key: EventType(a.NameString()),
		}, true
	default:
		return Patch[EVENT, MSG]{}, false
	}
}

// booleanStatic reports whether a is a static HTML boolean attribute and,
// if so, whether it is present in the DOM. Boolean attributes carry no text:
// they are set to "" or removed.
func booleanStatic[EVENT, MSG any](a Attr[EVENT, MSG]) (isBool, present bool) {
	if !a.IsValue() || !IsBooleanAttr(a.QualifiedName()) {
		return false, false
	}
	v, _ := a.GetValue()
	return true, BooleanAttrValue(v)
}

// attrChanged compares two attributes of the same kind. Boolean attributes
// compare by presence, other values by kind and payload, and callbacks by
// identity only.
func attrChanged[EVENT, MSG any](a, b Attr[EVENT, MSG]) bool {
	if isBool, present := booleanStatic(a); isBool {
		_, next := booleanStatic(b)
		return present != next
	}
	if a.IsEvent() {
		ca, _ := a.GetCallback()
		cb, _ := b.GetCallback()
		return !ca.Equal(cb)
	}
	va, okA := a.GetValue()
	vb, okB := b.GetValue()
	if okA != okB {
		return true
	}
	return !va.Equal(vb)
}

// EventType returns the DOM event type for a listener attribute name
// (e.g., "onclick" becomes "click"). The prefix match is case-insensitive.
func EventType(name string) string {
	if len(name) > 2 && strings.EqualFold(name[:2], "on") {
		return name[2:]
	}
	return name
}

// diffChildren compares and patches child nodes.
// parentHID is passed through so text node patches can target the parent element.
func diffChildren[EVENT, MSG any](prev, next *Node[EVENT, MSG], parentHID string, patches *[]Patch[EVENT, MSG]) {
	if hasKeys(prev.Children) || hasKeys(next.Children) {
		diffKeyedChildren(prev, prev.Children, next.Children, parentHID, patches)
	} else {
		diffUnkeyedChildren(prev, prev.Children, next.Children, parentHID, patches)
	}
}

// diffUnkeyedChildren handles children without keys using positional matching.
func diffUnkeyedChildren[EVENT, MSG any](parent *Node[EVENT, MSG], prev, next []*Node[EVENT, MSG], parentHID string, patches *[]Patch[EVENT, MSG]) {
	maxLen := max(len(prev), len(next))

	for i := 0; i < maxLen; i++ {
		var prevChild, nextChild *Node[EVENT, MSG]

		if i < len(prev) {
			prevChild = prev[i]
		}
		if i < len(next) {
			nextChild = next[i]
		}

		if prevChild == nil && nextChild != nil {
			*patches = append(*patches, Patch[EVENT, MSG]{
				Op:       PatchInsertNode,
				ParentID: parent.HID,
				Index:    i,
				Node:     nextChild,
			})
		} else if prevChild != nil && nextChild == nil {
			*patches = append(*patches, Patch[EVENT, MSG]{
				Op:  PatchRemoveNode,
				HID: prevChild.HID,
			})
		} else {
			diff(prevChild, nextChild, parentHID, patches)
		}
	}
}

// diffKeyedChildren handles children with keys for efficient reordering.
func diffKeyedChildren[EVENT, MSG any](parent *Node[EVENT, MSG], prev, next []*Node[EVENT, MSG], parentHID string, patches *[]Patch[EVENT, MSG]) {
	prevKeyMap := make(map[string]int)
	for i, child := range prev {
		if key := getKey(child); key != "" {
			prevKeyMap[key] = i
		}
	}

	matched := make(map[int]bool)

	for nextIdx, nextChild := range next {
		key := getKey(nextChild)

		if key != "" {
			if prevIdx, exists := prevKeyMap[key]; exists {
				matched[prevIdx] = true
				prevChild := prev[prevIdx]

				if prevIdx != nextIdx {
					*patches = append(*patches, Patch[EVENT, MSG]{
						Op:       PatchMoveNode,
						HID:      prevChild.HID,
						ParentID: parent.HID,
						Index:    nextIdx,
					})
				}

				diff(prevChild, nextChild, parentHID, patches)
				continue
			}
		}

		// New keyed node, or unkeyed node in a keyed list
		*patches = append(*patches, Patch[EVENT, MSG]{
			Op:       PatchInsertNode,
			ParentID: parent.HID,
			Index:    nextIdx,
			Node:     nextChild,
		})
	}

	for i, prevChild := range prev {
		if !matched[i] {
			*patches = append(*patches, Patch[EVENT, MSG]{
				Op:  PatchRemoveNode,
				HID: prevChild.HID,
			})
		}
	}
}

// getKey extracts the reconciliation key from a node.
func getKey[EVENT, MSG any](node *Node[EVENT, MSG]) string {
	if node == nil {
		return ""
	}
	return node.Key
}

// hasKeys returns true if any child has a key.
func hasKeys[EVENT, MSG any](children []*Node[EVENT, MSG]) bool {
	for _, child := range children {
		if getKey(child) != "" {
			return true
		}
	}
	return false
}
