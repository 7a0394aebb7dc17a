package generic_test

import (
	"testing"

	"github.com/CLOEI/gtworld-r/generic"
)

func TestDecodeRoundTrip(t *testing.T) {
	block, err := generic.Marshal(map[string]any{
		"label": "WELCOME",
		"count": uint64(3),
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	d := generic.NewDecoder()
	v, err := d.Decode(block)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	m, ok := v.(map[any]any)
	if !ok {
		t.Fatalf("decoded value is %T, want map", v)
	}
	if m["label"] != "WELCOME" {
		t.Errorf("label = %v", m["label"])
	}
	if m["count"] != uint64(3) {
		t.Errorf("count = %v", m["count"])
	}
}

func TestDecodeAsTyped(t *testing.T) {
	type payload struct {
		Label string `cbor:"label"`
		Count int    `cbor:"count"`
	}
	block, err := generic.Marshal(payload{Label: "x", Count: 7})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	d := generic.NewDecoder()
	got, err := generic.DecodeAs[payload](d, block)
	if err != nil {
		t.Fatalf("DecodeAs: %v", err)
	}
	if got.Label != "x" || got.Count != 7 {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeMalformedBlock(t *testing.T) {
	d := generic.NewDecoder()
	if _, err := d.Decode([]byte{0xFF, 0x00, 0x13}); err == nil {
		t.Error("expected error for malformed block")
	}
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	block, _ := generic.Marshal("ok")
	block = append(block, 0x01)

	d := generic.NewDecoder()
	if _, err := d.Decode(block); err == nil {
		t.Error("expected error for trailing bytes")
	}
}
