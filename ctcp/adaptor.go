package ctcp

// FrameWriter is the push-style sink the encoder half forwards encoded
// frames into. Implementations are the underlying, already-framed byte
// transport (out of scope for this package); readiness and errors are the
// caller's responsibility to surface.
type FrameWriter interface {
	WriteFrame(frame []byte) error
	Flush() error
	Close() error
}

// FrameReader is the pull-style source the decoder half reads encoded
// frames from. ReadFrame returns io.EOF once the underlying transport is
// cleanly exhausted.
type FrameReader interface {
	ReadFrame() ([]byte, error)
}

// FramedConn is a bidirectional, already-framed byte-oriented connection:
// the shape both the plaintext aggregation side and the printable wire
// side of the wrapper present.
type FramedConn interface {
	FrameWriter
	FrameReader
}

// encoderSink adapts an Encoder into a FrameWriter: every frame passed to
// WriteFrame is synchronously encoded (§4.3) before being forwarded to the
// inner sink. The synchronous encode step never itself suspends; only the
// forwarded call to the inner sink may.
type encoderSink struct {
	inner   FrameWriter
	encoder *Encoder
}

func newEncoderSink(inner FrameWriter, key uint32) *encoderSink {
	return &encoderSink{inner: inner, encoder: NewEncoder(key)}
}

func (s *encoderSink) WriteFrame(frame []byte) error {
	encoded, err := s.encoder.Encode(frame)
	if err != nil {
		return err
	}
	return s.inner.WriteFrame(encoded)
}

func (s *encoderSink) Flush() error {
	return s.inner.Flush()
}

func (s *encoderSink) Close() error {
	return s.inner.Close()
}

// decoderStream adapts a Decoder into a FrameReader: every frame pulled
// from the inner source is synchronously decoded (§4.3) before being
// handed back to the caller. Inner errors propagate unchanged; decode
// errors are themselves returned as-is and are fatal to the stream — the
// caller must not call ReadFrame again afterwards.
type decoderStream struct {
	inner   FrameReader
	decoder *Decoder
}

func newDecoderStream(inner FrameReader, key uint32) *decoderStream {
	return &decoderStream{inner: inner, decoder: NewDecoder(key)}
}

func (s *decoderStream) ReadFrame() ([]byte, error) {
	raw, err := s.inner.ReadFrame()
	if err != nil {
		return nil, err
	}
	return s.decoder.Decode(raw)
}
