package twsframe

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{},
		[]byte("hello"),
		bytes.Repeat([]byte{'x'}, 70000),
	}
	for _, p := range payloads {
		framed, err := Encode(p)
		if err != nil {
			t.Fatal(err)
		}
		d := NewDecoder()
		d.Feed(framed)
		got, ok, err := d.Next()
		if err != nil || !ok {
			t.Fatalf("Next() = %v, %v, %v", got, ok, err)
		}
		if !bytes.Equal(got, p) {
			t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(p))
		}
	}
}

func TestDecoderByteAtATime(t *testing.T) {
	var want [][]byte
	var allBytes []byte
	for _, s := range []string{"first", "second frame", ""} {
		framed, err := Encode([]byte(s))
		if err != nil {
			t.Fatal(err)
		}
		want = append(want, []byte(s))
		allBytes = append(allBytes, framed...)
	}

	d := NewDecoder()
	var got [][]byte
	for _, b := range allBytes {
		d.Feed([]byte{b})
		for {
			frame, ok, err := d.Next()
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				break
			}
			got = append(got, frame)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("got %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if !bytes.Equal(got[i], want[i]) {
			t.Errorf("frame %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDecoderShortReadIsNonDestructive(t *testing.T) {
	framed, _ := Encode([]byte("payload"))
	d := NewDecoder()
	// Feed everything but the last byte.
	d.Feed(framed[:len(framed)-1])
	if _, ok, err := d.Next(); ok || err != nil {
		t.Fatalf("expected no frame yet, got ok=%v err=%v", ok, err)
	}
	// Feed the rest; the previously-buffered prefix must still be there.
	d.Feed(framed[len(framed)-1:])
	frame, ok, err := d.Next()
	if !ok || err != nil {
		t.Fatalf("expected frame after remaining byte arrives, ok=%v err=%v", ok, err)
	}
	if string(frame) != "payload" {
		t.Errorf("got %q", frame)
	}
}

func TestFrameTooBig(t *testing.T) {
	big := make([]byte, MaxPayloadLen+1)
	if _, err := Encode(big); err == nil {
		t.Fatal("expected error encoding oversized payload")
	}

	d := NewDecoder()
	var hdr [4]byte
	hdr[0] = 0xFF // forces a length far beyond MaxPayloadLen
	hdr[1] = 0xFF
	hdr[2] = 0xFF
	hdr[3] = 0xFF
	d.Feed(hdr[:])
	_, ok, err := d.Next()
	if ok {
		t.Fatal("expected no frame")
	}
	var tooBig *FrameTooBigError
	if !errors.As(err, &tooBig) {
		t.Fatalf("expected FrameTooBigError, got %v", err)
	}
	if !errors.Is(err, ErrFrameTooBig) {
		t.Fatalf("expected errors.Is(err, ErrFrameTooBig)")
	}
}
