package hues

import "fmt"

// Color is a 24-bit RGB triple.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// ColorFromHex unpacks a 24-bit 0xRRGGBB integer into a Color. Bits above
// the low 24 are ignored.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// Hex packs the color back into a 24-bit 0xRRGGBB integer.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// HexString renders the color in "#rrggbb" form.
func (c Color) HexString() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
