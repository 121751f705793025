package text
import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

/*
 * text interpretation of extracted payloads. the codec itself is byte
 * agnostic; treating a payload as text is a separate step that may fail.
 */

// Interpret decodes a payload as NFC-normalized UTF-8 text.
func Interpret( data []byte ) (string, error) {
	if utf8.Valid( data ) == false {
		return "", fmt.Errorf("Payload is not valid UTF-8 text.")
	}
	return norm.NFC.String( string(data) ), nil
}

// ToPayload converts text to the bytes the encoder embeds.
func ToPayload( str string ) []byte {
	return []byte( norm.NFC.String( str ) )
}
