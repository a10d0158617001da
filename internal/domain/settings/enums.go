package settings

import "slices"

// PrimaryColor is the accent color of the interface.
type PrimaryColor string

const (
	Purple PrimaryColor = "PURPLE"
	Blue   PrimaryColor = "BLUE"
	Green  PrimaryColor = "GREEN"
	Orange PrimaryColor = "ORANGE"
	Red    PrimaryColor = "RED"
	Teal   PrimaryColor = "TEAL"
	Indigo PrimaryColor = "INDIGO"
	Brown  PrimaryColor = "BROWN"
)

var primaryColors = []PrimaryColor{Purple, Blue, Green, Orange, Red, Teal, Indigo, Brown}

var colorHex = map[PrimaryColor]string{
	Purple: "#6200EA",
	Blue:   "#0277BD",
	Green:  "#2E7D32",
	Orange: "#EF6C00",
	Red:    "#C62828",
	Teal:   "#00796B",
	Indigo: "#283593",
	Brown:  "#5D4037",
}

// PrimaryColors returns every color in declaration order.
func PrimaryColors() []PrimaryColor {
	return slices.Clone(primaryColors)
}

// IsValid reports whether c is a known color.
func (c PrimaryColor) IsValid() bool {
	_, ok := colorHex[c]
	return ok
}

// Hex returns the "#RRGGBB" form of the color.
func (c PrimaryColor) Hex() string {
	if h, ok := colorHex[c]; ok {
		return h
	}
	return colorHex[Purple]
}

func (c PrimaryColor) String() string { return string(c) }

// ParsePrimaryColor returns the color stored under name, or Purple when the
// name is unknown.
func ParsePrimaryColor(name string) PrimaryColor {
	if c := PrimaryColor(name); c.IsValid() {
		return c
	}
	return Purple
}

// FontSize scales body and header text.
type FontSize string

const (
	FontSmall  FontSize = "SMALL"
	FontMedium FontSize = "MEDIUM"
	FontLarge  FontSize = "LARGE"
)

// TextSizes returns the body and header point sizes.
func (f FontSize) TextSizes() (body, header int) {
	switch f {
	case FontSmall:
		return 14, 16
	case FontLarge:
		return 20, 20
	default:
		return 16, 18
	}
}

// IsValid reports whether f is a known size.
func (f FontSize) IsValid() bool {
	switch f {
	case FontSmall, FontMedium, FontLarge:
		return true
	}
	return false
}

func (f FontSize) String() string { return string(f) }

// ParseFontSize returns the size stored under name, or FontMedium.
func ParseFontSize(name string) FontSize {
	if f := FontSize(name); f.IsValid() {
		return f
	}
	return FontMedium
}

// PaddingMode controls spacing density.
type PaddingMode string

const (
	PaddingNormal  PaddingMode = "NORMAL"
	PaddingCompact PaddingMode = "COMPACT"
)

// IsValid reports whether p is a known mode.
func (p PaddingMode) IsValid() bool {
	return p == PaddingNormal || p == PaddingCompact
}

func (p PaddingMode) String() string { return string(p) }

// ParsePaddingMode returns the mode stored under name, or PaddingNormal.
func ParsePaddingMode(name string) PaddingMode {
	if p := PaddingMode(name); p.IsValid() {
		return p
	}
	return PaddingNormal
}
