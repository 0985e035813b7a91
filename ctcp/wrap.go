package ctcp

// wrapped combines an encoder-backed FrameWriter and a decoder-backed
// FrameReader sharing one underlying FramedConn into a single FramedConn
// that is semantically equivalent to conn but printable on the wire.
type wrapped struct {
	*encoderSink
	*decoderStream
	conn FramedConn
}

// Close closes the underlying connection directly rather than through the
// embedded encoder half.
func (w *wrapped) Close() error {
	return w.conn.Close()
}

// Wrap takes a bidirectional, already-framed stream and a shared key and
// returns a new FramedConn that transparently CTCP-encodes every frame
// written and decodes every frame read. Both peers must call Wrap with the
// same key.
func Wrap(conn FramedConn, key uint32) FramedConn {
	return &wrapped{
		encoderSink:   newEncoderSink(conn, key),
		decoderStream: newDecoderStream(conn, key),
		conn:          conn,
	}
}
