package stegano
import (
	"fmt"
)

// CapacityError is returned by Encode when the frame does not fit in the
// buffer's slots. Needed and Available are bit counts.
type CapacityError struct {
	Needed		int
	Available	int
}

func(e *CapacityError) Error() string {
	return fmt.Sprintf("Not enough space to embed data ( %d < %d bits )",
		e.Available, e.Needed)
}

// TruncatedError is returned by Decode when the buffer cannot hold even
// the length field. Slots is the number of slots the buffer provides.
type TruncatedError struct {
	Slots	int
}

func(e *TruncatedError) Error() string {
	return fmt.Sprintf("Buffer too small to hold the length field ( %d < %d slots )",
		e.Slots, FrameHeadSize * 8)
}

// CorruptError is returned by Decode when the decoded length field claims
// more data than the buffer holds.
type CorruptError struct {
	Claimed	uint32
	Slots	int
}

func(e *CorruptError) Error() string {
	return fmt.Sprintf("Invalid data length ( %d bytes claimed, %d slots present )",
		e.Claimed, e.Slots)
}
