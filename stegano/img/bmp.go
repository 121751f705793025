package img
import (
	"pixveil/stegano"
)

// basically, the same as with png; only the output encoder differs.
func HideInBMP( decoy, data []byte ) ([]byte, error) {
	pix, width, height, err := DecodePixels( decoy )
	if err != nil {
		return nil, err
	}
	encoded, err := stegano.Encode( pix, data )
	if err != nil {
		return nil, err
	}
	return EncodePixels( encoded, width, height, "bmp" )
}

func RevealFromBMP( decoy []byte ) ([]byte, error) {
	pix, _, _, err := DecodePixels( decoy )
	if err != nil {
		return nil, err
	}
	return stegano.Decode( pix )
}
