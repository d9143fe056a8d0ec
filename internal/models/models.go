package models

import "fmt"

// ColorTag identifies one entry of the fixed timer palette.
type ColorTag string

const (
	ColorBlue   ColorTag = "blue"
	ColorRed    ColorTag = "red"
	ColorOrange ColorTag = "orange"
	ColorYellow ColorTag = "yellow"
	ColorGreen  ColorTag = "green"
	ColorTeal   ColorTag = "teal"
	ColorPurple ColorTag = "purple"
	ColorPink   ColorTag = "pink"
	ColorGray   ColorTag = "gray"
)

// Palette lists the selectable colors in display order.
var Palette = []ColorTag{
	ColorBlue,
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorTeal,
	ColorPurple,
	ColorPink,
	ColorGray,
}

// Valid reports whether c is part of the palette.
func (c ColorTag) Valid() bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

var colorHex = map[ColorTag]string{
	ColorBlue:   "#3B82F6",
	ColorRed:    "#EF4444",
	ColorOrange: "#F97316",
	ColorYellow: "#EAB308",
	ColorGreen:  "#22C55E",
	ColorTeal:   "#14B8A6",
	ColorPurple: "#A855F7",
	ColorPink:   "#EC4899",
	ColorGray:   "#6B7280",
}

// Hex returns the #RRGGBB value for c, falling back to the first palette entry.
func (c ColorTag) Hex() string {
	if h, ok := colorHex[c]; ok {
		return h
	}
	return colorHex[Palette[0]]
}

// RGB splits Hex into its components.
func (c ColorTag) RGB() (r, g, b int) {
	h := c.Hex()
	_, _ = fmt.Sscanf(h, "#%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// ParseColorTag maps a user supplied name onto the palette.
func ParseColorTag(s string) (ColorTag, bool) {
	c := ColorTag(s)
	return c, c.Valid()
}

// Flags holds the per-timer display and behaviour toggles.
type Flags struct {
	TitleAlwaysVisible bool
	TicksAlwaysVisible bool
	Muted              bool
	RepeatEnabled      bool
}

// Timer is one named countdown. All durations are whole seconds.
type Timer struct {
	ID            string
	Title         string
	TotalDuration int
	RemainingTime int
	UserBaseline  *int // last duration committed by drag or edit; nil until then
	Color         ColorTag
	Flags
}

// Draft is the identity-less input used to create or edit a timer.
type Draft struct {
	Title         string
	Color         ColorTag
	TotalDuration int
	Flags         Flags
}
