package stegano
import (
	"encoding/binary"
)

/*
 * slot cursor helpers shared by the encoder and the decoder.
 * one slot is the least significant bit of every stride-th byte;
 * bytes are serialized into slots LSB first.
 */

type BitWriter struct {
	buf	[]byte
	stride	int
	pos	int
}

func NewBitWriter( buf []byte, stride int ) *BitWriter {
	return &BitWriter{ buf, stride, 0 }
}

// how many bits the writer can still carry.
func(w *BitWriter) Slots() int {
	return len(w.buf) / w.stride - w.pos
}

// the caller checks Slots before writing.
func(w *BitWriter) PutByte( b byte ) {
	for i := 0; i < 8; i++ {
		idx := w.pos * w.stride
		w.buf[idx] = (w.buf[idx] & 0xfe) | ((b >> i) & 1)
		w.pos++
	}
}

type BitReader struct {
	buf	[]byte
	stride	int
	pos	int
}

func NewBitReader( buf []byte, stride int ) *BitReader {
	return &BitReader{ buf, stride, 0 }
}

func(r *BitReader) Slots() int {
	return len(r.buf) / r.stride - r.pos
}

func(r *BitReader) NextByte() byte {
	result := byte(0)
	for i := 0; i < 8; i++ {
		result |= (r.buf[ r.pos * r.stride ] & 1) << i
		r.pos++
	}
	return result
}

// PackBits expands a full frame ( length field + payload ) into one byte
// per bit, for carriers whose slots are not a flat sample buffer.
func PackBits( data []byte ) []byte {
	out := make( []byte, (FrameHeadSize + len(data)) * 8 )
	w := NewBitWriter( out, 1 )

	head := make( []byte, FrameHeadSize )
	binary.LittleEndian.PutUint32( head, uint32(len(data)) )
	for _, b := range head {
		w.PutByte( b )
	}
	for _, b := range data {
		w.PutByte( b )
	}
	return out
}

// UnpackBits reassembles a frame from one-byte-per-bit form, with the same
// bound checks as Decode.
func UnpackBits( bits []byte ) ([]byte, error) {
	if len(bits) < FrameHeadSize * 8 {
		return nil, &TruncatedError{ len(bits) }
	}
	r := NewBitReader( bits, 1 )

	head := make( []byte, FrameHeadSize )
	for i := range head {
		head[i] = r.NextByte()
	}
	length := binary.LittleEndian.Uint32( head )
	required := uint64(FrameHeadSize * 8) + uint64(length) * 8
	if required > uint64(len(bits)) {
		return nil, &CorruptError{ length, len(bits) }
	}

	payload := make( []byte, length )
	for i := range payload {
		payload[i] = r.NextByte()
	}
	return payload, nil
}
