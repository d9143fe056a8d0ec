package util

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp high = %d", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("Clamp low = %d", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Fatalf("Clamp inside = %d", got)
	}
	if got := Clamp(5, 4, 1); got != 4 {
		t.Fatalf("Clamp inverted range = %d", got)
	}
	if got := Clamp(1.5, 0.0, 1.0); got != 1.0 {
		t.Fatalf("Clamp float = %v", got)
	}
}

func TestBoolIntRoundTrip(t *testing.T) {
	if BoolToInt(true) != 1 || BoolToInt(false) != 0 {
		t.Fatalf("BoolToInt mismatch")
	}
	if !IntToBool(2) || IntToBool(0) {
		t.Fatalf("IntToBool mismatch")
	}
}
