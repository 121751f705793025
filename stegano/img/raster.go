package img
import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/bmp"

	"pixveil/stegano"
)

/*
 * the adapter between image files and the flat sample buffer the codec
 * operates on. pixels are kept non-premultiplied so the stored samples
 * survive the round trip exactly, and only lossless output formats are
 * accepted.
 */

// DecodePixels decodes an image file and flattens it into a buffer of
// 4 samples per pixel.
func DecodePixels( imgBytes []byte ) ([]byte, int, int, error) {
	src, _, err := image.Decode( bytes.NewReader( imgBytes ) )
	if err != nil {
		return nil, 0, 0, err
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	flat := image.NewNRGBA( image.Rect( 0, 0, width, height ) )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			flat.Set( x, y, src.At( bounds.Min.X + x, bounds.Min.Y + y ) )
		}
	}
	return flat.Pix, width, height, nil
}

// EncodePixels writes a sample buffer back to an image file. Only
// lossless formats are supported; anything else would destroy the
// embedded bits.
func EncodePixels( pix []byte, width, height int, format string ) ([]byte, error) {
	if len(pix) != width * height * stegano.SamplesPerPixel {
		return nil, fmt.Errorf("Pixel buffer does not cover %dx%d pixels ( %d bytes )",
			width, height, len(pix))
	}

	flat := &image.NRGBA{
		Pix: pix,
		Stride: width * stegano.SamplesPerPixel,
		Rect: image.Rect( 0, 0, width, height ),
	}

	buf := new(bytes.Buffer)
	switch format {
	case "png":
		if err := png.Encode( buf, flat ); err != nil {
			return nil, err
		}
	case "bmp":
		if err := bmp.Encode( buf, flat ); err != nil {
			return nil, err
		}
	case "jpeg", "jpg":
		return nil, fmt.Errorf("Cannot encode pixels to %s: %w", format, ErrLossyFormat)
	case "gif":
		// quantizing a flat sample buffer to a palette loses the bits too
		return nil, fmt.Errorf("Cannot encode pixels to gif: %w", ErrLossyFormat)
	default:
		return nil, fmt.Errorf("Unsupported output format %q.", format)
	}
	return buf.Bytes(), nil
}
