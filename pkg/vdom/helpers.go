package vdom

// If returns the node if condition is true, nil otherwise.
func If[EVENT, MSG any](condition bool, node *Node[EVENT, MSG]) *Node[EVENT, MSG] {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse[EVENT, MSG any](condition bool, ifTrue, ifFalse *Node[EVENT, MSG]) *Node[EVENT, MSG] {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When[EVENT, MSG any](condition bool, fn func() *Node[EVENT, MSG]) *Node[EVENT, MSG] {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to nodes, dropping nil results.
func Range[T, EVENT, MSG any](items []T, fn func(item T, index int) *Node[EVENT, MSG]) []*Node[EVENT, MSG] {
	result := make([]*Node[EVENT, MSG], 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat[EVENT, MSG any](n int, fn func(i int) *Node[EVENT, MSG]) []*Node[EVENT, MSG] {
	if n <= 0 {
		return nil
	}
	result := make([]*Node[EVENT, MSG], 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}
