package img
import (
	"bytes"
	"errors"
	"fmt"
	"image/gif"

	"pixveil/stegano"
)

// ErrLossyFormat marks decoys and output formats that cannot carry
// embedded bits: a lossy re-encode destroys them.
var ErrLossyFormat = errors.New("Lossy image formats destroy embedded data.")

func DetectFormat( decoy []byte ) string {
	switch {
	case bytes.HasPrefix( decoy, []byte("GIF8") ):
		return "gif"
	case bytes.HasPrefix( decoy, []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a} ):
		return "png"
	case bytes.HasPrefix( decoy, []byte{0xff, 0xd8, 0xff} ):
		return "jpeg"
	case bytes.HasPrefix( decoy, []byte{0x42, 0x4d} ):
		return "bmp"
	}
	return ""
}

func Hide( decoy, data []byte ) ([]byte, error) {
	switch DetectFormat( decoy ) {
	case "gif":
		return HideInGif( decoy, data )
	case "png":
		return HideInPNG( decoy, data )
	case "bmp":
		return HideInBMP( decoy, data )
	case "jpeg":
		return nil, fmt.Errorf("JPEG decoys are rejected: %w", ErrLossyFormat)
	}
	return nil, fmt.Errorf("Unsupported image format.")
}

// CapacityOf reports how many payload bytes a decoy can carry.
func CapacityOf( decoy []byte ) (int, error) {
	switch DetectFormat( decoy ) {
	case "gif":
		g, err := gif.DecodeAll( bytes.NewReader( decoy ) )
		if err != nil {
			return 0, err
		}
		slots := 0
		for _, frame := range g.Image {
			slots += len(frame.Pix)
		}
		return slots / 8 - stegano.FrameHeadSize, nil
	case "png", "bmp":
		pix, _, _, err := DecodePixels( decoy )
		if err != nil {
			return 0, err
		}
		return stegano.Capacity( len(pix) ), nil
	case "jpeg":
		return 0, fmt.Errorf("JPEG decoys are rejected: %w", ErrLossyFormat)
	}
	return 0, fmt.Errorf("Unsupported image format.")
}

func Reveal( decoy []byte ) ([]byte, error) {
	switch DetectFormat( decoy ) {
	case "gif":
		return RevealFromGif( decoy )
	case "png":
		return RevealFromPNG( decoy )
	case "bmp":
		return RevealFromBMP( decoy )
	case "jpeg":
		return nil, fmt.Errorf("JPEG decoys are rejected: %w", ErrLossyFormat)
	}
	return nil, fmt.Errorf("Unsupported image format.")
}
