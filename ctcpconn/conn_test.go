package ctcpconn

import (
	"net"
	"testing"

	"github.com/opkgmake/aggligator/ctcp"
	"github.com/stretchr/testify/require"
)

func TestFramedConnRoundTripOverNetPipe(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	client := ctcp.Wrap(NewFramedConn(clientConn), ctcp.DefaultKey)
	server := ctcp.Wrap(NewFramedConn(serverConn), ctcp.DefaultKey)

	msg := []byte("aggligator frame over a ctcp-wrapped net.Conn")

	errCh := make(chan error, 1)
	go func() {
		errCh <- client.WriteFrame(msg)
	}()

	got, err := server.ReadFrame()
	require.NoError(t, err)
	require.NoError(t, <-errCh)
	require.Equal(t, msg, got)
}

func TestListenDialRoundTrip(t *testing.T) {
	l, err := Listen("tcp", "127.0.0.1:0", ctcp.DefaultKey)
	require.NoError(t, err)
	defer l.Close()

	acceptedCh := make(chan ctcp.FramedConn, 1)
	acceptErrCh := make(chan error, 1)
	go func() {
		c, err := l.Accept()
		acceptedCh <- c
		acceptErrCh <- err
	}()

	client, err := Dial("tcp", l.Addr().String(), ctcp.DefaultKey)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, <-acceptErrCh)
	server := <-acceptedCh
	defer server.Close()

	msg := []byte("dial/listen round trip")
	require.NoError(t, client.WriteFrame(msg))

	got, err := server.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, msg, got)
}
