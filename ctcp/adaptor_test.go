package ctcp

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// chanConn is an in-memory FramedConn test double standing in for the
// already-framed underlying transport the codec wraps in production; it is
// not part of the codec's deliverable surface.
type chanConn struct {
	out    chan []byte
	in     chan []byte
	closed chan struct{}
}

func newChanPair() (a, b *chanConn) {
	ab := make(chan []byte, 16)
	ba := make(chan []byte, 16)
	a = &chanConn{out: ab, in: ba, closed: make(chan struct{})}
	b = &chanConn{out: ba, in: ab, closed: make(chan struct{})}
	return a, b
}

func (c *chanConn) WriteFrame(frame []byte) error {
	cp := append([]byte(nil), frame...)
	select {
	case c.out <- cp:
		return nil
	case <-c.closed:
		return io.ErrClosedPipe
	}
}

func (c *chanConn) Flush() error { return nil }

func (c *chanConn) Close() error {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}
	return nil
}

func (c *chanConn) ReadFrame() ([]byte, error) {
	select {
	case f := <-c.in:
		return f, nil
	case <-c.closed:
		return nil, io.EOF
	}
}

func TestWrapRoundTrip(t *testing.T) {
	clientRaw, serverRaw := newChanPair()
	client := Wrap(clientRaw, DefaultKey)
	server := Wrap(serverRaw, DefaultKey)
	defer client.Close()
	defer server.Close()

	msg := []byte("hello over ctcp")
	require.NoError(t, client.WriteFrame(msg))

	got, err := server.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

func TestWrapRejectsMismatchedKey(t *testing.T) {
	clientRaw, serverRaw := newChanPair()
	client := Wrap(clientRaw, DefaultKey)
	server := Wrap(serverRaw, DefaultKey+1)
	defer client.Close()
	defer server.Close()

	require.NoError(t, client.WriteFrame([]byte("hello")))
	_, err := server.ReadFrame()
	require.Error(t, err)
}
