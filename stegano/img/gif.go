package img
import (
	"bytes"
	"image/gif"

	"pixveil/stegano"
)

/*
 * GIF carries the same frame in the palette indices instead of flat
 * samples: one slot per index byte, spanning all animation frames.
 * GIF compression is palette-lossless, so the bits survive re-encoding.
 */

func HideInGif( gifBytes []byte, data []byte ) ([]byte, error) {
	g, err := gif.DecodeAll( bytes.NewReader( gifBytes ) )
	if err != nil {
		return nil, err
	}

	bits := stegano.PackBits( data )
	slots := 0
	for _, frame := range g.Image {
		slots += len(frame.Pix)
	}
	if len(bits) > slots {
		return nil, &stegano.CapacityError{ Needed: len(bits), Available: slots }
	}

	// flipping the low bit of an index must not leave the palette;
	// pad odd palettes with a copy of their last color.
	for _, frame := range g.Image {
		if len(frame.Palette) % 2 != 0 {
			frame.Palette = append( frame.Palette, frame.Palette[len(frame.Palette)-1] )
		}
	}

	bitIdx := 0
	for frameIdx, frame := range g.Image {
		for i := range frame.Pix {
			if bitIdx >= len(bits) {
				break
			}
			frame.Pix[i] = (frame.Pix[i] & 0xfe) | bits[bitIdx]
			bitIdx++
		}
		g.Image[frameIdx] = frame
		if bitIdx >= len(bits) {
			break
		}
	}

	outbuf := bytes.NewBuffer( []byte{} )
	if err = gif.EncodeAll( outbuf, g ); err != nil {
		return nil, err
	}
	return outbuf.Bytes(), nil
}

func RevealFromGif( gifBytes []byte ) ([]byte, error) {
	g, err := gif.DecodeAll( bytes.NewReader( gifBytes ) )
	if err != nil {
		return nil, err
	}
	bits := []byte{}
	for _, frame := range g.Image {
		for _, pix := range frame.Pix {
			bits = append( bits, pix & 1 )
		}
	}
	return stegano.UnpackBits( bits )
}
