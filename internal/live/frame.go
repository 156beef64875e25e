// Package live streams synchronized collections to websocket clients. Each
// connection owns one feed adapter for a single collection; the client picks
// the scope and may switch it at any time.
package live

import "github.com/Peytose/mixer-app-sub003/internal/feed"

const (
	MessageScope = "scope"
	MessagePing  = "ping"

	FrameSnapshot = "snapshot"
	FrameError    = "error"
	FramePong     = "pong"
)

// ClientMessage is what a client sends over the socket.
type ClientMessage struct {
	Type  string `json:"type"`
	Scope string `json:"scope,omitempty"`
}

// Frame is what the server sends. Data holds the grouped collection of a
// snapshot frame.
type Frame struct {
	Type       string          `json:"type"`
	Collection feed.Collection `json:"collection,omitempty"`
	Scope      string          `json:"scope,omitempty"`
	Data       any             `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
}
