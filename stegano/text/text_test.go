package text
import (
	"testing"
)

func TestInterpret( t *testing.T ) {
	str, err := Interpret( []byte("Hello world!") )
	if err != nil {
		t.Fatalf("Failed to interpret text payload: %v", err)
	}
	if str != "Hello world!" {
		t.Errorf("Text spoiled: %q", str)
	}

	if _, err = Interpret( []byte{0xff, 0xfe, 0xfd} ); err == nil {
		t.Errorf("Interpreted garbage as text")
	}
}

func TestNormalization( t *testing.T ) {
	// "e" + combining acute accent must normalize to a single rune
	decomposed := "é"
	str, err := Interpret( []byte(decomposed) )
	if err != nil {
		t.Fatalf("Failed to interpret text payload: %v", err)
	}
	if str != "é" {
		t.Errorf("Payload was not normalized: %q", str)
	}
	if string(ToPayload( decomposed )) != "é" {
		t.Errorf("ToPayload did not normalize")
	}
}

func TestRoundTrip( t *testing.T ) {
	messages := []string{
		"",
		"plain ascii",
		"штука с юникодом",
		"絵文字 🦀",
	}
	for _, msg := range messages {
		str, err := Interpret( ToPayload( msg ) )
		if err != nil {
			t.Errorf("Failed to interpret %q: %v", msg, err)
		} else if str != msg {
			t.Errorf("Text spoiled: %q != %q", str, msg)
		}
	}
}
