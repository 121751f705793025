package stegano
import (
	"encoding/binary"
)

/*
 * the core LSB codec. a pixel is 4 consecutive 8-bit samples; the least
 * significant bit of the first sample of every pixel carries one bit.
 * the embedded frame is a 32-bit little-endian payload length followed
 * by the payload bytes, LSB first within each byte.
 */
const (
	SamplesPerPixel = 4
	FrameHeadSize = 4	// bytes of the length field
)

// Capacity returns the payload capacity of a sample buffer in bytes.
// The result is negative when the buffer cannot hold the length field.
func Capacity( size int ) int {
	return (size / SamplesPerPixel) / 8 - FrameHeadSize
}

// Encode returns a copy of pixels with the payload embedded. The input
// buffer is never modified.
func Encode( pixels []byte, payload []byte ) ([]byte, error) {
	needed := (FrameHeadSize + len(payload)) * 8
	available := len(pixels) / SamplesPerPixel
	if len(pixels) % SamplesPerPixel != 0 || needed > available {
		return nil, &CapacityError{ needed, available }
	}

	out := make( []byte, len(pixels) )
	copy( out, pixels )

	w := NewBitWriter( out, SamplesPerPixel )
	head := make( []byte, FrameHeadSize )
	binary.LittleEndian.PutUint32( head, uint32(len(payload)) )
	for _, b := range head {
		w.PutByte( b )
	}
	for _, b := range payload {
		w.PutByte( b )
	}
	return out, nil
}

// Decode extracts the embedded payload from a sample buffer. The result
// is opaque bytes; text interpretation is the caller's concern.
func Decode( pixels []byte ) ([]byte, error) {
	slots := len(pixels) / SamplesPerPixel
	if len(pixels) % SamplesPerPixel != 0 || slots < FrameHeadSize * 8 {
		return nil, &TruncatedError{ slots }
	}

	r := NewBitReader( pixels, SamplesPerPixel )
	head := make( []byte, FrameHeadSize )
	for i := range head {
		head[i] = r.NextByte()
	}
	length := binary.LittleEndian.Uint32( head )

	// never trust the embedded length: a buffer that was never encoded
	// with this scheme may claim more data than it holds.
	required := uint64(FrameHeadSize * 8) + uint64(length) * 8
	if required > uint64(slots) {
		return nil, &CorruptError{ length, slots }
	}

	payload := make( []byte, length )
	for i := range payload {
		payload[i] = r.NextByte()
	}
	return payload, nil
}
