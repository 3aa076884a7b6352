// Package live keeps a rendered tree in sync with a browser over a
// websocket.
//
// A Program describes the application as Init, Update and View. Each
// connection gets its own Session: client events arrive as protocol event
// frames, are dispatched to the listener bound at the event's HID, and the
// resulting message updates the model. The new view is diffed against the
// previous one and the patches go back as a single patches frame.
//
//	program := live.Program[int, Msg]{Init: initModel, Update: update, View: view}
//	http.Handle("/_vattr/live", live.NewHandler(program, live.Config{}))
//
// Pages rendered with Program.Initial carry the same HIDs a new Session
// starts with, so the first event from the page can be dispatched without
// a resync.
package live
