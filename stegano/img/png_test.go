package img
import (
	"bytes"
	"errors"
	"testing"

	"pixveil/stegano"
)

func TestPNG( t *testing.T ) {
	decoys := [][]byte{
		pngDecoy( t, 100, 100, 20 ),
		pngDecoy( t, 301, 99, 21 ),
	}

	tests := [][]byte{
		nil,
		[]byte{},
		[]byte("Hello world!"),
		bytes.Repeat([]byte("a"), 1000),
	}

	for _, data := range tests {
		for _, decoy := range decoys {
			enc, err := HideInPNG( decoy, data )
			if err != nil {
				t.Errorf("Failed to encode data: %v", err)
			} else {
				dec, err := RevealFromPNG( enc )
				if err != nil {
					t.Errorf("Failed to extract data: %v", err)
				} else if bytes.Equal( data, dec ) == false && len(data) > 0 {
					t.Errorf("Steganography spoiled the data. %v != %v",
						data, dec)
				}
			}
		}
	}
}

func TestPNGCapacityExceeded( t *testing.T ) {
	decoy := pngDecoy( t, 16, 16, 22 )	// 256 slots, 28 payload bytes

	var capErr *stegano.CapacityError
	if _, err := HideInPNG( decoy, bytes.Repeat([]byte{0x55}, 29) ); !errors.As( err, &capErr ) {
		t.Fatalf("Expected CapacityError, got %v", err)
	}

	if _, err := HideInPNG( decoy, bytes.Repeat([]byte{0x55}, 28) ); err != nil {
		t.Errorf("Payload of exactly the capacity must fit: %v", err)
	}
}

func TestRevealFromForeignPNG( t *testing.T ) {
	// a decoy that never went through Hide must not crash the decoder
	dec, err := RevealFromPNG( pngDecoy( t, 50, 50, 23 ) )
	if err != nil {
		var corrupt *stegano.CorruptError
		if !errors.As( err, &corrupt ) {
			t.Errorf("Unexpected error type: %v", err)
		}
	} else if len(dec) > stegano.Capacity( 50 * 50 * stegano.SamplesPerPixel ) {
		t.Errorf("Decoded more bytes than the decoy can carry: %d", len(dec))
	}
}
