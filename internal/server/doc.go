// Package server implements an MCP (Model Context Protocol) server that
// renders images as ASCII art.
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
//   - image_to_ascii: Render an image as text (path, width, max_height)
//   - image_dimensions: Get width, height, format and file size
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Unlike the desktop window, a file that cannot be decoded is an error here,
// not an empty string.
//
// # Usage
//
//	srv := server.New(ascii.NewConverter(log), log, version)
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
