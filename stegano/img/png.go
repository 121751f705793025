package img
import (
	"pixveil/stegano"
)

func HideInPNG( decoy, data []byte ) ([]byte, error) {
	pix, width, height, err := DecodePixels( decoy )
	if err != nil {
		return nil, err
	}
	encoded, err := stegano.Encode( pix, data )
	if err != nil {
		return nil, err
	}
	return EncodePixels( encoded, width, height, "png" )
}

func RevealFromPNG( decoy []byte ) ([]byte, error) {
	pix, _, _, err := DecodePixels( decoy )
	if err != nil {
		return nil, err
	}
	return stegano.Decode( pix )
}
