package xps

import (
	"strings"
	"testing"
)

func TestIgnoreComment(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"12 # bones", "12"},
		{"12#bones", "12"},
		{"  7  ", "7"},
		{"# only comment", "only"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := IgnoreComment(tt.line); got != tt.want {
			t.Errorf("IgnoreComment(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestIgnoreStringComment(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"root ground", "root ground"},
		{"arm left elbow # bone 12", "arm left elbow "},
		{"#hidden", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := IgnoreStringComment(tt.line); got != tt.want {
			t.Errorf("IgnoreStringComment(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSplitValues(t *testing.T) {
	got := SplitValues("1.0 2.0\t3.0 # position")
	want := []string{"1.0", "2.0", "3.0", "position"}
	if len(got) != len(want) {
		t.Fatalf("SplitValues = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseFallbacks(t *testing.T) {
	if v, ok := ParseInt("42"); !ok || v != 42 {
		t.Errorf("ParseInt(42) = %d, %v", v, ok)
	}
	if v, ok := ParseInt("-1"); !ok || v != -1 {
		t.Errorf("ParseInt(-1) = %d, %v", v, ok)
	}
	if v, ok := ParseInt("abc"); ok || v != 0 {
		t.Errorf("ParseInt(abc) = %d, %v, want 0, false", v, ok)
	}
	if v, ok := ParseInt("1.5"); ok || v != 0 {
		t.Errorf("ParseInt(1.5) = %d, %v, want 0, false", v, ok)
	}
	if v, ok := ParseFloat("0.5"); !ok || v != 0.5 {
		t.Errorf("ParseFloat(0.5) = %f, %v", v, ok)
	}
	if v, ok := ParseFloat("abc"); ok || !isNaN(v) {
		t.Errorf("ParseFloat(abc) = %f, %v, want NaN, false", v, ok)
	}
	if v, ok := ParseFloat(""); ok || !isNaN(v) {
		t.Errorf("ParseFloat(\"\") = %f, %v, want NaN, false", v, ok)
	}
}

func TestTokenizer_Lines(t *testing.T) {
	input := "\xEF\xBB\xBF2 # bones\r\n  root ground  \r\nabc 1.0 2.0\n3\n"
	tok := NewTokenizer(strings.NewReader(input), nil)

	if got := tok.Int(); got != 2 {
		t.Errorf("Int() = %d, want 2 (BOM skipped)", got)
	}
	if got := tok.String(); got != "root ground" {
		t.Errorf("String() = %q, want %q", got, "root ground")
	}
	xyz := tok.XYZ()
	if !isNaN(xyz[0]) || xyz[1] != 1 || xyz[2] != 2 {
		t.Errorf("XYZ() = %v, want (NaN, 1, 2)", xyz)
	}
	if tok.Exhausted() {
		t.Error("tokenizer exhausted too early")
	}
	if got := tok.Floats(2); got[0] != 3 || !isNaN(got[1]) {
		t.Errorf("Floats(2) = %v, want (3, NaN)", got)
	}
	if got := tok.Int(); got != 0 {
		t.Errorf("Int() past end = %d, want 0", got)
	}
	if !tok.Exhausted() {
		t.Error("tokenizer not exhausted at end of input")
	}
	if tok.LineNumber() != 4 {
		t.Errorf("LineNumber() = %d, want 4", tok.LineNumber())
	}
}

func TestTokenizer_IntsPadding(t *testing.T) {
	tok := NewTokenizer(strings.NewReader("255 128 x\n"), nil)
	got := tok.Ints(4)
	want := []int32{255, 128, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ints(4)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
