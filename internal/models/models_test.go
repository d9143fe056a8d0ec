package models

import "testing"

func TestPaletteColorsAreValid(t *testing.T) {
	if len(Palette) == 0 {
		t.Fatalf("palette must not be empty")
	}
	for _, c := range Palette {
		if !c.Valid() {
			t.Fatalf("palette color %q reported invalid", c)
		}
	}
	if ColorTag("chartreuse").Valid() {
		t.Fatalf("unknown color reported valid")
	}
}

func TestParseColorTag(t *testing.T) {
	if c, ok := ParseColorTag("green"); !ok || c != ColorGreen {
		t.Fatalf("ParseColorTag(green) = %q, %v", c, ok)
	}
	if _, ok := ParseColorTag(""); ok {
		t.Fatalf("empty color should not parse")
	}
}

func TestTimerZeroValues(t *testing.T) {
	var tm Timer
	if tm.UserBaseline != nil {
		t.Fatalf("expected nil baseline by default")
	}
	if tm.Muted || tm.RepeatEnabled || tm.TitleAlwaysVisible || tm.TicksAlwaysVisible {
		t.Fatalf("expected all flags off by default")
	}
}

func TestColorTagRGB(t *testing.T) {
	r, g, b := ColorRed.RGB()
	if r != 0xEF || g != 0x44 || b != 0x44 {
		t.Fatalf("unexpected red components: %d %d %d", r, g, b)
	}
	if ColorTag("nope").Hex() != ColorBlue.Hex() {
		t.Fatalf("expected unknown color to fall back to blue")
	}
	for _, c := range Palette {
		if len(c.Hex()) != 7 {
			t.Fatalf("bad hex for %s: %q", c, c.Hex())
		}
	}
}
