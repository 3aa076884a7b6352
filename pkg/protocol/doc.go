// Package protocol implements the binary wire format between a live session
// and its browser client.
//
// Every message is a Frame: a one-byte type and a four-byte big-endian
// payload length followed by the payload.
//
//   - FrameEvent carries an EventFrame from the client: the target HID, the
//     DOM event type and the event fields.
//   - FramePatches carries a PatchesFrame to the client: a sequence number
//     and the patches produced by vdom.Diff.
//   - FrameError carries an ErrorMessage in either direction.
//
// # Patches
//
// Patch op values are the vdom.PatchOp values. Attribute classification is
// preserved on the wire: static attributes travel as SetAttr/RemoveAttr with
// their namespace URI, function-call attributes as SetProp/RemoveProp, and
// event attributes as AddListener/RemoveListener carrying only the event
// type. Callbacks stay on the server; the client forwards events by HID.
//
// # Encoding
//
// Integers are varints (7 bits per byte, MSB continues); signed values use
// ZigZag encoding. Strings are length-prefixed. Nodes are written
// depth-first with attributes and properties in sorted order.
//
// # Limits
//
// A Decoder checks every length, count and nesting depth against its
// Limits before allocating. Decoding failures carry error code E040, limit
// violations E041 and unknown patch ops E042.
package protocol
