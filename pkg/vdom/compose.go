package vdom

import (
	"github.com/vango-dev/vattr/pkg/attr"
	"github.com/vango-dev/vattr/pkg/callback"
)

// MapMsg returns a copy of the subtree whose callbacks produce MSG2 by
// feeding their result through cb. Static values, properties, keys and HIDs
// are carried over unchanged.
func MapMsg[EVENT, MSG, MSG2 any](node *Node[EVENT, MSG], cb callback.Callback[MSG, MSG2]) *Node[EVENT, MSG2] {
	return transform(node, func(a Attr[EVENT, MSG]) Attr[EVENT, MSG2] {
		return attr.MapCallback(a, cb)
	})
}

// MapMsgFunc is MapMsg for a plain function.
func MapMsgFunc[EVENT, MSG, MSG2 any](node *Node[EVENT, MSG], fn func(MSG) MSG2) *Node[EVENT, MSG2] {
	return MapMsg(node, callback.New(fn))
}

// Reform returns a copy of the subtree whose callbacks accept EVENT2,
// converting it with f before the original callback runs.
func Reform[EVENT, MSG, EVENT2 any](node *Node[EVENT, MSG], f func(EVENT2) EVENT) *Node[EVENT2, MSG] {
	return transform(node, func(a Attr[EVENT, MSG]) Attr[EVENT2, MSG] {
		return attr.Reform(a, f)
	})
}

func transform[E1, M1, E2, M2 any](node *Node[E1, M1], fn func(Attr[E1, M1]) Attr[E2, M2]) *Node[E2, M2] {
	if node == nil {
		return nil
	}

	out := &Node[E2, M2]{
		Kind: node.Kind,
		Tag:  node.Tag,
		Key:  node.Key,
		Text: node.Text,
		HID:  node.HID,
	}

	if len(node.Attrs) > 0 {
		out.Attrs = make([]Attr[E2, M2], len(node.Attrs))
		for i, a := range node.Attrs {
			out.Attrs[i] = fn(a)
		}
	}

	if node.Children != nil {
		out.Children = make([]*Node[E2, M2], 0, len(node.Children))
		for _, child := range node.Children {
			if child != nil {
				out.Children = append(out.Children, transform(child, fn))
			}
		}
	}

	return out
}
