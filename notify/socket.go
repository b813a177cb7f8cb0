package notify

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/moyoez/katana/tool"
	"github.com/moyoez/katana/types"
)

// NotifyWriteChunkSize is the chunk size when writing payload to Unix socket (avoid large single write).
const NotifyWriteChunkSize = 32 * 1024

// UnixSocketTimeout is the per-operation deadline on the socket.
var UnixSocketTimeout = 3 * time.Second

// SocketDeliverer hands notifications to a companion process listening on a Unix socket.
// Frames are a 4-byte little-endian length followed by the JSON payload.
type SocketDeliverer struct {
	path string
}

// NewSocketDeliverer talks to the companion listening on the unix socket at path.
func NewSocketDeliverer(path string) *SocketDeliverer {
	return &SocketDeliverer{path: path}
}

func (s *SocketDeliverer) Name() string { return "unix-socket" }

func (s *SocketDeliverer) Deliver(ctx context.Context, n *types.Notification) error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("%w: unix socket not found: %s", ErrUnavailable, s.path)
	}

	payload, err := sonic.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: failed to serialize notification: %v", ErrUnavailable, err)
	}
	if len(payload) > NotifyWriteChunkSize {
		return fmt.Errorf("%w: notification payload too large: %d bytes (max %d)", ErrUnavailable, len(payload), NotifyWriteChunkSize)
	}

	dialer := net.Dialer{Timeout: UnixSocketTimeout}
	conn, err := dialer.DialContext(ctx, "unix", s.path)
	if err != nil {
		return fmt.Errorf("%w: failed to connect to %s: %v", ErrUnavailable, s.path, err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			tool.DefaultLogger.Errorf("Failed to close Unix socket connection: %v", err)
		}
	}()

	deadline := time.Now().Add(UnixSocketTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		tool.DefaultLogger.Errorf("Failed to set socket deadline: %v", err)
	}

	frame := make([]byte, 4, 4+len(payload))
	binary.LittleEndian.PutUint32(frame, uint32(len(payload)))
	frame = append(frame, payload...)
	if written, err := conn.Write(frame); err != nil {
		if written == 0 {
			return fmt.Errorf("%w: failed to write to Unix socket: %v", ErrUnavailable, err)
		}
		return fmt.Errorf("failed to write to Unix socket: %w", err)
	}
	tool.DefaultLogger.Debugf("[UnixSocket] sent %d bytes", len(payload))

	buf := make([]byte, 4096)
	nr, err := conn.Read(buf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read response from Unix socket: %w", err)
	}
	if nr > 0 {
		var response map[string]any
		if err := sonic.Unmarshal(buf[:nr], &response); err != nil {
			tool.DefaultLogger.Debugf("[UnixSocket] response (raw): %s", string(buf[:nr]))
		} else if errMsg, ok := response["error"].(string); ok && errMsg != "" {
			return fmt.Errorf("server returned error: %s", errMsg)
		}
	}
	return nil
}
