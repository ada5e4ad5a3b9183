// Package server implements the MCP (Model Context Protocol) server for the media editor.
//
// This package provides a JSON-RPC 2.0 server that exposes the editing
// pipeline through the MCP protocol. Each editing pass is a session: a
// client opens an asset, accumulates adjustments, and either saves (getting
// back the final bytes plus metadata) or cancels.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Session lifecycle:
//   - editor_open: Start a session for a base64-encoded asset
//   - editor_state: Inspect session state and adjustments
//   - editor_viewport: Set the displayed image size
//   - editor_save: Run the pipeline and emit the final asset
//   - editor_cancel: Discard the session
//
// Crop operations:
//   - editor_crop_begin / editor_crop_frame / editor_crop_end
//
// Adjustments:
//   - editor_rotate: Accumulate 90-degree rotations
//   - editor_flip: Set mirror flags
//   - editor_adjust: Display-only brightness/contrast/saturation
//   - editor_metadata: Overlay text, description, visibility
//   - editor_reset: Return adjustments to defaults
//
// Preview:
//   - editor_preview: CSS-style filter/transform description
//   - editor_preview_render: Base64 PNG with the color adjustments applied
//   - editor_sample_color: Eyedropper color sampling
//
// # Sessions and Caching
//
// Sessions live in memory for the lifetime of the server process and are
// removed on save or cancel. Decoded source images are held in a shared
// LRU cache bounded by a byte budget; a session's entries are evicted when
// it ends.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// A failed editor_save leaves the session open and editable; retry is
// manual.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(server.Config{})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
