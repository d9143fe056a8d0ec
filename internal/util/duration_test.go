package util

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"15", 900, false},
		{"25m", 1500, false},
		{"90s", 90, false},
		{"1h30m", 5400, false},
		{" 2m ", 120, false},
		{"", 0, true},
		{"-3", 0, true},
		{"-3m", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseDuration(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDuration(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseDuration(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		-1:   "00:00",
		0:    "00:00",
		59:   "00:59",
		600:  "10:00",
		3725: "1:02:05",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		45:   "45s",
		300:  "5m",
		330:  "5m 30s",
		3600: "1h",
		8100: "2h 15m",
	}
	for in, want := range cases {
		if got := FormatDuration(in); got != want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}
