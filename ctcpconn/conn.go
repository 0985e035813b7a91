// Package ctcpconn binds the ctcp codec to a plain net.Conn, standing in
// for the transport layer the codec treats as an external collaborator
// (TCP, WebSocket, etc.). It exists purely to let the codec be demonstrated
// and exercised end-to-end over a real byte stream; production transports
// and the aggregation engine that actually drives them are out of scope
// here.
package ctcpconn

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"

	"github.com/opkgmake/aggligator/ctcp"
)

// maxPhysicalFrame bounds the already-framed physical segment size: a
// CTCP-encoded frame can be larger than the plaintext aggregation frame it
// carries (base-94 expansion plus the length prefix), so this must exceed
// ctcp.MaxFrameLength.
const maxPhysicalFrame = 3*ctcp.MaxFrameLength + 64

// lengthPrefixedConn turns a byte-stream net.Conn into a ctcp.FramedConn by
// adding a trivial 4-byte big-endian length prefix around each frame. This
// physical framing is not part of CTCP; CTCP assumes the underlying
// transport already delivers whole frames, and this is the minimal stand-in
// that makes that true for a raw net.Conn.
type lengthPrefixedConn struct {
	conn net.Conn
}

// NewFramedConn wraps conn so it satisfies ctcp.FramedConn.
func NewFramedConn(conn net.Conn) ctcp.FramedConn {
	return &lengthPrefixedConn{conn: conn}
}

func (c *lengthPrefixedConn) WriteFrame(frame []byte) error {
	if len(frame) > maxPhysicalFrame {
		return fmt.Errorf("ctcpconn: frame of %d bytes exceeds %d byte maximum", len(frame), maxPhysicalFrame)
	}
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(frame)))
	if _, err := c.conn.Write(hdr[:]); err != nil {
		return err
	}
	if len(frame) == 0 {
		return nil
	}
	_, err := c.conn.Write(frame)
	return err
}

func (c *lengthPrefixedConn) Flush() error {
	return nil
}

func (c *lengthPrefixedConn) Close() error {
	return c.conn.Close()
}

func (c *lengthPrefixedConn) ReadFrame() ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(c.conn, hdr[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(hdr[:])
	if n > maxPhysicalFrame {
		return nil, fmt.Errorf("ctcpconn: peer announced frame of %d bytes, exceeds %d byte maximum", n, maxPhysicalFrame)
	}
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.conn, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Dial connects to address over network and wraps the resulting connection
// with the CTCP codec using key.
func Dial(network, address string, key uint32) (ctcp.FramedConn, error) {
	conn, err := net.Dial(network, address)
	if err != nil {
		return nil, err
	}
	return ctcp.Wrap(NewFramedConn(conn), key), nil
}

// Listener accepts plain net.Conn connections and wraps each with the CTCP
// codec using a fixed key.
type Listener struct {
	inner net.Listener
	key   uint32
}

// Listen starts a Listener on laddr using key for every accepted connection.
func Listen(network, laddr string, key uint32) (*Listener, error) {
	l, err := net.Listen(network, laddr)
	if err != nil {
		return nil, err
	}
	return &Listener{inner: l, key: key}, nil
}

// Accept waits for and wraps the next incoming connection.
func (l *Listener) Accept() (ctcp.FramedConn, error) {
	conn, err := l.inner.Accept()
	if err != nil {
		return nil, err
	}
	return ctcp.Wrap(NewFramedConn(conn), l.key), nil
}

// Close stops accepting new connections.
func (l *Listener) Close() error {
	return l.inner.Close()
}

// Addr returns the listener's network address.
func (l *Listener) Addr() net.Addr {
	return l.inner.Addr()
}
