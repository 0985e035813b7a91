package ctcp

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that carry no useful parameter.
var (
	// ErrPayloadEmpty is returned when the prefix codec is asked to encode
	// a length of zero.
	ErrPayloadEmpty = errors.New("ctcp: payload length is zero")

	// ErrBadSymbol is returned when base-94 decode encounters a byte
	// outside [0x20, 0x7e].
	ErrBadSymbol = errors.New("ctcp: non-printable byte in encoded stream")

	// ErrBadPair is returned when a base-94 high digit has no valid low
	// digit, or the combined value overflows a byte.
	ErrBadPair = errors.New("ctcp: invalid base-94 digit pair")

	// ErrBadChecksum is returned when a long prefix's verification tail
	// does not match the header it accompanies.
	ErrBadChecksum = errors.New("ctcp: prefix checksum mismatch")

	// ErrBadLengthDigits is returned when the 3 base-94 length digits of a
	// received prefix decode to a payload length of zero.
	ErrBadLengthDigits = errors.New("ctcp: length prefix digits decode to zero")

	// ErrBadBodyLength is returned when a decoded frame body's length
	// does not match the header's declared length.
	ErrBadBodyLength = errors.New("ctcp: decoded body length disagrees with header")
)

// PayloadTooLargeError is returned by Encoder.Encode when the input frame
// exceeds MaxFrameLength bytes.
type PayloadTooLargeError int

func (e PayloadTooLargeError) Error() string {
	return fmt.Sprintf("ctcp: payload of %d bytes exceeds the %d byte maximum", int(e), MaxFrameLength)
}

// PayloadTooLongError is returned by the prefix codec when the payload
// length to encode is >= the base-94 modulus.
type PayloadTooLongError int

func (e PayloadTooLongError) Error() string {
	return fmt.Sprintf("ctcp: payload length %d is too long to prefix-encode", int(e))
}

// FrameLengthError is returned when a received frame's actual length
// disagrees with the length implied by its prefix.
type FrameLengthError struct {
	Got, Want int
}

func (e FrameLengthError) Error() string {
	return fmt.Sprintf("ctcp: frame length %d, expected %d", e.Got, e.Want)
}
