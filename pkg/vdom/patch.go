package vdom

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText        PatchOp = 0x01 // Update text content
	PatchSetAttr        PatchOp = 0x02 // Set/update attribute
	PatchRemoveAttr     PatchOp = 0x03 // Remove attribute
	PatchInsertNode     PatchOp = 0x04 // Insert new node
	PatchRemoveNode     PatchOp = 0x05 // Remove node
	PatchMoveNode       PatchOp = 0x06 // Move node to new position
	PatchReplaceNode    PatchOp = 0x07 // Replace node entirely
	PatchSetProp        PatchOp = 0x08 // Assign a DOM property
	PatchRemoveProp     PatchOp = 0x09 // Reset a DOM property
	PatchAddListener    PatchOp = 0x0A // Bind (or rebind) an event listener
	PatchRemoveListener PatchOp = 0x0B // Unbind an event listener
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchInsertNode:
		return "InsertNode"
	case PatchRemoveNode:
		return "RemoveNode"
	case PatchMoveNode:
		return "MoveNode"
	case PatchReplaceNode:
		return "ReplaceNode"
	case PatchSetProp:
		return "SetProp"
	case PatchRemoveProp:
		return "RemoveProp"
	case PatchAddListener:
		return "AddListener"
	case PatchRemoveListener:
		return "RemoveListener"
	default:
		return "Unknown"
	}
}

// Patch represents a single DOM operation to apply.
type Patch[EVENT, MSG any] struct {
	Op        PatchOp           // Operation type
	HID       string            // Target element's hydration ID
	Key       string            // Attribute, property or event name
	Namespace string            // Attribute namespace URI, if qualified
	Value     string            // New value
	Node      *Node[EVENT, MSG] // For InsertNode/ReplaceNode
	Index     int               // Insert position
	ParentID  string            // Parent for InsertNode
}
