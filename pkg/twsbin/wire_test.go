package twsbin

import (
	"math"
	"testing"
	"testing/quick"
)

func TestPushReadInt(t *testing.T) {
	f := func(n int32) bool {
		w := NewWriter(nil)
		w.PushInt(n)
		r := NewReader(w.Buf)
		got := r.ReadInt()
		return r.Err() == nil && got == n
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPushReadLong(t *testing.T) {
	f := func(n int64) bool {
		w := NewWriter(nil)
		w.PushLong(n)
		r := NewReader(w.Buf)
		got := r.ReadLong()
		return r.Err() == nil && got == n
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPushReadDouble(t *testing.T) {
	f := func(v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
		w := NewWriter(nil)
		w.PushDouble(v)
		r := NewReader(w.Buf)
		got := r.ReadDouble()
		return r.Err() == nil && got == v
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPushReadBool(t *testing.T) {
	for _, v := range []bool{true, false} {
		w := NewWriter(nil)
		w.PushBool(v)
		r := NewReader(w.Buf)
		if got := r.ReadBool(); got != v {
			t.Errorf("PushBool(%v): got %v", v, got)
		}
	}
}

func TestPushReadString(t *testing.T) {
	cases := []string{"", "hello", "LKE/ASX/AUD", "日本語"}
	for _, s := range cases {
		w := NewWriter(nil)
		if err := w.PushString(s); err != nil {
			t.Fatal(err)
		}
		r := NewReader(w.Buf)
		if got := r.ReadString(); got != s {
			t.Errorf("PushString(%q): got %q", s, got)
		}
	}
}

func TestPushStringRejectsEmbeddedNUL(t *testing.T) {
	w := NewWriter(nil)
	if err := w.PushString("a\x00b"); err != ErrEmbeddedNUL {
		t.Fatalf("expected ErrEmbeddedNUL, got %v", err)
	}
}

func TestEmptyIntIsZero(t *testing.T) {
	r := NewReader([]byte{0})
	if got := r.ReadInt(); got != 0 {
		t.Errorf("empty int field: got %d, want 0", got)
	}
}

func TestIntMaxSentinel(t *testing.T) {
	w := NewWriter(nil)
	w.PushIntMax(MaxInt)
	r := NewReader(w.Buf)
	if got := r.ReadIntMax(); got != MaxInt {
		t.Errorf("max sentinel round trip: got %d", got)
	}
	if len(w.Buf) != 1 || w.Buf[0] != 0 {
		t.Errorf("PushIntMax(MaxInt) should emit a bare NUL, got %v", w.Buf)
	}

	w2 := NewWriter(nil)
	w2.PushIntMax(42)
	r2 := NewReader(w2.Buf)
	if got := r2.ReadIntMax(); got != 42 {
		t.Errorf("non-sentinel round trip: got %d", got)
	}
}

func TestDoubleMaxSentinel(t *testing.T) {
	w := NewWriter(nil)
	w.PushDoubleMax(MaxFloat)
	r := NewReader(w.Buf)
	if got := r.ReadDoubleMax(); got != MaxFloat {
		t.Errorf("max sentinel round trip: got %v", got)
	}

	w2 := NewWriter(nil)
	w2.PushDoubleMax(3.25)
	r2 := NewReader(w2.Buf)
	if got := r2.ReadDoubleMax(); got != 3.25 {
		t.Errorf("non-sentinel round trip: got %v", got)
	}
}

func TestBoolFromString(t *testing.T) {
	w := NewWriter(nil)
	w.PushBoolAsString(true)
	w.PushBoolAsString(false)
	r := NewReader(w.Buf)
	if got := r.ReadBoolFromString(); got != true {
		t.Errorf("got %v, want true", got)
	}
	if got := r.ReadBoolFromString(); got != false {
		t.Errorf("got %v, want false", got)
	}
}

func TestMultiFieldSequence(t *testing.T) {
	w := NewWriter(nil)
	w.PushInt(1)
	_ = w.PushString("LKE")
	w.PushDouble(1.5)
	w.PushBool(true)

	r := NewReader(w.Buf)
	if got := r.ReadInt(); got != 1 {
		t.Fatalf("field 1: got %d", got)
	}
	if got := r.ReadString(); got != "LKE" {
		t.Fatalf("field 2: got %q", got)
	}
	if got := r.ReadDouble(); got != 1.5 {
		t.Fatalf("field 3: got %v", got)
	}
	if got := r.ReadBool(); got != true {
		t.Fatalf("field 4: got %v", got)
	}
	if r.Len() != 0 {
		t.Fatalf("expected reader exhausted, %d bytes remain", r.Len())
	}
}
