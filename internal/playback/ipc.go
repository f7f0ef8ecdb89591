package playback

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/desertthunder/vloop/internal/shared"
)

// ipcRequest is one command frame on the mpv JSON IPC socket.
type ipcRequest struct {
	Command   []any `json:"command"`
	RequestID int   `json:"request_id"`
}

// ipcResponse is either a command reply (RequestID set) or an asynchronous
// engine event (Event set). Replies carry "success" in Error on success.
type ipcResponse struct {
	Error     string          `json:"error"`
	Data      json.RawMessage `json:"data"`
	RequestID int             `json:"request_id"`
	Event     string          `json:"event"`
}

// ipcConn serializes newline-delimited JSON commands over the engine socket.
// One request is outstanding at a time; the engine applies commands in order.
type ipcConn struct {
	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
	reqID  int
}

func dialIPC(socket string) (*ipcConn, error) {
	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil, err
	}
	return newIPCConn(conn), nil
}

func newIPCConn(conn net.Conn) *ipcConn {
	return &ipcConn{conn: conn, reader: bufio.NewReader(conn)}
}

// roundTrip writes one command and reads frames until its reply arrives,
// skipping engine events. Returns the reply payload.
func (c *ipcConn) roundTrip(cmd ...any) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, shared.ErrEngineClosed
	}

	c.reqID++
	payload, err := json.Marshal(ipcRequest{Command: cmd, RequestID: c.reqID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode command: %w", err)
	}
	if _, err := c.conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrEngineClosed, err)
	}

	for {
		line, err := c.reader.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrEngineClosed, err)
		}

		var resp ipcResponse
		if err := json.Unmarshal(line, &resp); err != nil {
			continue
		}
		if resp.Event != "" || resp.RequestID != c.reqID {
			continue
		}
		if resp.Error != "success" {
			return nil, fmt.Errorf("engine rejected %v: %s", cmd[0], resp.Error)
		}
		return resp.Data, nil
	}
}

// send writes a command without waiting for a reply. Used for quit, where the
// engine may close the socket before answering.
func (c *ipcConn) send(cmd ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return
	}
	payload, err := json.Marshal(ipcRequest{Command: cmd})
	if err != nil {
		return
	}
	_, _ = c.conn.Write(append(payload, '\n'))
}

func (c *ipcConn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}
