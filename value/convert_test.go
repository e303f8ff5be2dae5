package value

import (
	stderrors "errors"
	"math"
	"testing"

	rterrors "github.com/fedesilva/minnieml/errors"
)

func TestIntToText(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{42, "42"},
		{-305441741, "-305441741"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}

	for _, tt := range tests {
		s := IntToText(tt.v)
		if s.String() != tt.want {
			t.Fatalf("IntToText(%d) = %q, want %q", tt.v, s.String(), tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 7, -10, 123456789, -987654321, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		s := IntToText(v)
		if got := TextToInt(s); got != v {
			t.Fatalf("round trip of %d yielded %d", v, got)
		}
	}
}

func TestTextToInt_Strict(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"123", 123},
		{"+123", 123},
		{"-123", -123},
		{"0", 0},
		{"-0", 0},
		{"", 0},
		{"+", 0},
		{"-", 0},
		{"12a", 0},
		{"a12", 0},
		{" 12", 0},
		{"12 ", 0},
		{"1.5", 0},
		{"--1", 0},
	}

	for _, tt := range tests {
		s := FromString(tt.in)
		if got := TextToInt(s); got != tt.want {
			t.Fatalf("TextToInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseInt(t *testing.T) {
	if v, err := ParseInt(FromString("-42")); err != nil || v != -42 {
		t.Fatalf("ParseInt(-42) = %d, %v", v, err)
	}

	_, err := ParseInt(Str{})
	if !stderrors.Is(err, &rterrors.Error{Phase: rterrors.PhaseConvert, Kind: rterrors.KindInvalidInput}) {
		t.Fatalf("empty input: got %v", err)
	}

	_, err = ParseInt(FromString("+"))
	if !stderrors.Is(err, &rterrors.Error{Phase: rterrors.PhaseConvert, Kind: rterrors.KindInvalidInput}) {
		t.Fatalf("bare sign: got %v", err)
	}

	_, err = ParseInt(FromString("12x3"))
	if !stderrors.Is(err, &rterrors.Error{Phase: rterrors.PhaseConvert, Kind: rterrors.KindInvalidDigit}) {
		t.Fatalf("bad digit: got %v", err)
	}

	_, err = ParseInt(FromString("9223372036854775808"))
	if !stderrors.Is(err, &rterrors.Error{Phase: rterrors.PhaseConvert, Kind: rterrors.KindOverflow}) {
		t.Fatalf("overflow: got %v", err)
	}
}

func TestAppendInt(t *testing.T) {
	var buf [32]byte

	n := AppendInt(buf[:], -9223372036854775808)
	if string(buf[:n]) != "-9223372036854775808" {
		t.Fatalf("AppendInt(MinInt64) = %q", buf[:n])
	}

	n = AppendInt(buf[:], 0)
	if string(buf[:n]) != "0" {
		t.Fatalf("AppendInt(0) = %q", buf[:n])
	}
}

func TestAppendInt_ScratchTooSmall(t *testing.T) {
	small := make([]byte, 3)
	if n := AppendInt(small, 123456); n != 0 {
		t.Fatalf("expected 0 on overflow, got %d", n)
	}
	if n := AppendInt(small, -12); n != 3 {
		t.Fatalf("exact fit should succeed: got %d", n)
	}
	if n := AppendInt(nil, 1); n != 0 {
		t.Fatalf("nil scratch: got %d", n)
	}
}

func BenchmarkAppendInt(b *testing.B) {
	var buf [32]byte
	for i := 0; i < b.N; i++ {
		AppendInt(buf[:], int64(i)*-1234567)
	}
}
