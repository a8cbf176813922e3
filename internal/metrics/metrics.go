// Package metrics provides lightweight counters for tracking the
// runtime statistics of fetchwire connections.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks connection and transfer statistics.
// A nil Collector is safe to use — all methods become no-ops.
type Collector struct {
	connectsAttempted atomic.Int64
	connectsSucceeded atomic.Int64
	candidatesTried   atomic.Int64
	handshakes        atomic.Int64
	connectionsActive atomic.Int64
	bytesIn           atomic.Int64
	bytesOut          atomic.Int64
	errorsTotal       atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Connect-phase metrics ────────────────────────────────────────────

// ConnectAttempted records the start of a connect call.
func (c *Collector) ConnectAttempted() {
	if c == nil {
		return
	}
	c.connectsAttempted.Add(1)
}

// ConnectSucceeded records a connect call that returned a connection.
func (c *Collector) ConnectSucceeded() {
	if c == nil {
		return
	}
	c.connectsSucceeded.Add(1)
	c.connectionsActive.Add(1)
}

// CandidateTried records one per-candidate dial attempt.
func (c *Collector) CandidateTried() {
	if c == nil {
		return
	}
	c.candidatesTried.Add(1)
}

// HandshakeCompleted records a successful TLS handshake.
func (c *Collector) HandshakeCompleted() {
	if c == nil {
		return
	}
	c.handshakes.Add(1)
}

// ConnectionClosed decrements the active connection count.
func (c *Collector) ConnectionClosed() {
	if c == nil {
		return
	}
	c.connectionsActive.Add(-1)
}

// ActiveConnections returns the current number of open connections.
func (c *Collector) ActiveConnections() int64 {
	if c == nil {
		return 0
	}
	return c.connectionsActive.Load()
}

// CandidatesTried returns the lifetime per-candidate attempt count.
func (c *Collector) CandidatesTried() int64 {
	if c == nil {
		return 0
	}
	return c.candidatesTried.Load()
}

// ── I/O metrics ──────────────────────────────────────────────────────

// BytesReceived records n bytes read from the network.
func (c *Collector) BytesReceived(n int64) {
	if c == nil {
		return
	}
	c.bytesIn.Add(n)
}

// BytesSent records n bytes written to the network.
func (c *Collector) BytesSent(n int64) {
	if c == nil {
		return
	}
	c.bytesOut.Add(n)
}

// TotalBytesIn returns total bytes received.
func (c *Collector) TotalBytesIn() int64 {
	if c == nil {
		return 0
	}
	return c.bytesIn.Load()
}

// TotalBytesOut returns total bytes sent.
func (c *Collector) TotalBytesOut() int64 {
	if c == nil {
		return 0
	}
	return c.bytesOut.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime            string `json:"uptime"`
	ConnectsAttempted int64  `json:"connects_attempted"`
	ConnectsSucceeded int64  `json:"connects_succeeded"`
	CandidatesTried   int64  `json:"candidates_tried"`
	Handshakes        int64  `json:"handshakes"`
	ConnectionsActive int64  `json:"connections_active"`
	BytesIn           int64  `json:"bytes_in"`
	BytesOut          int64  `json:"bytes_out"`
	ErrorsTotal       int64  `json:"errors_total"`
	LastError         string `json:"last_error,omitempty"`
	LastErrorMessage  string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:            time.Since(c.startTime).Truncate(time.Second).String(),
		ConnectsAttempted: c.connectsAttempted.Load(),
		ConnectsSucceeded: c.connectsSucceeded.Load(),
		CandidatesTried:   c.candidatesTried.Load(),
		Handshakes:        c.handshakes.Load(),
		ConnectionsActive: c.connectionsActive.Load(),
		BytesIn:           c.bytesIn.Load(),
		BytesOut:          c.bytesOut.Load(),
		ErrorsTotal:       c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
