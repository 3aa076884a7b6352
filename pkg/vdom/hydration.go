package vdom

import (
	"fmt"
	"sync"

	"github.com/vango-dev/vattr/pkg/callback"
)

// HIDGenerator generates unique hydration IDs for interactive elements.
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// Current returns the current counter value without incrementing.
func (g *HIDGenerator) Current() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

// AssignHIDs walks the tree and assigns HIDs to interactive elements.
// An element is interactive if it has at least one event attribute.
func AssignHIDs[EVENT, MSG any](node *Node[EVENT, MSG], gen *HIDGenerator) {
	if node == nil {
		return
	}

	if node.IsInteractive() {
		node.HID = gen.Next()
	}

	for _, child := range node.Children {
		AssignHIDs(child, gen)
	}
}

// AssignAllHIDs assigns HIDs to ALL element nodes, not just interactive ones.
// Attribute and property patches need an addressable target, so trees that
// will be diffed should use this.
func AssignAllHIDs[EVENT, MSG any](node *Node[EVENT, MSG], gen *HIDGenerator) {
	if node == nil {
		return
	}

	if node.Kind == KindElement {
		node.HID = gen.Next()
	}

	for _, child := range node.Children {
		AssignAllHIDs(child, gen)
	}
}

// FindByHID finds a node by its HID in the tree.
func FindByHID[EVENT, MSG any](node *Node[EVENT, MSG], hid string) *Node[EVENT, MSG] {
	if node == nil || hid == "" {
		return nil
	}

	if node.HID == hid {
		return node
	}

	for _, child := range node.Children {
		if found := FindByHID(child, hid); found != nil {
			return found
		}
	}

	return nil
}

// CountInteractive returns the number of interactive elements in the tree.
func CountInteractive[EVENT, MSG any](node *Node[EVENT, MSG]) int {
	if node == nil {
		return 0
	}

	count := 0
	if node.IsInteractive() {
		count = 1
	}

	for _, child := range node.Children {
		count += CountInteractive(child)
	}

	return count
}

// ClearHIDs removes all HIDs from the tree.
func ClearHIDs[EVENT, MSG any](node *Node[EVENT, MSG]) {
	if node == nil {
		return
	}

	node.HID = ""

	for _, child := range node.Children {
		ClearHIDs(child)
	}
}

// ListenerKey identifies a bound listener.
type ListenerKey struct {
	HID  string // Element hydration ID
	Type string // DOM event type, e.g. "click"
}

// String returns the key in the "hid_onevent" form (e.g., "h1_onclick").
func (k ListenerKey) String() string {
	return k.HID + "_" + ListenerName(k.Type)
}

// CollectListeners returns every callback bound in the tree, keyed by HID
// and event type. Elements without a HID are skipped.
func CollectListeners[EVENT, MSG any](node *Node[EVENT, MSG]) map[ListenerKey]callback.Callback[EVENT, MSG] {
	result := make(map[ListenerKey]callback.Callback[EVENT, MSG])
	collectListeners(node, result)
	return result
}

func collectListeners[EVENT, MSG any](node *Node[EVENT, MSG], result map[ListenerKey]callback.Callback[EVENT, MSG]) {
	if node == nil {
		return
	}

	if node.HID != "" {
		for _, a := range node.Attrs {
			if cb, ok := a.GetCallback(); ok {
				result[ListenerKey{HID: node.HID, Type: EventType(a.NameString())}] = cb
			}
		}
	}

	for _, child := range node.Children {
		collectListeners(child, result)
	}
}

// Dispatch delivers e to the listener bound for eventType on the element
// with the given HID. It reports false if no such listener exists.
func Dispatch[EVENT, MSG any](root *Node[EVENT, MSG], hid, eventType string, e EVENT) (MSG, bool) {
	var zero MSG

	node := FindByHID(root, hid)
	if node == nil {
		return zero, false
	}

	// Last binding wins, matching diff and render order.
	for i := len(node.Attrs) - 1; i >= 0; i-- {
		a := node.Attrs[i]
		if !a.IsEvent() || EventType(a.NameString()) != eventType {
			continue
		}
		cb, _ := a.GetCallback()
		return cb.Emit(e), true
	}
	return zero, false
}
