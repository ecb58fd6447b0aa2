package hues_test

import (
	"testing"

	"github.com/skanderjeddi/hues"
)

func TestColorFromHex(t *testing.T) {
	cases := []struct {
		name string
		hex  uint32
		want hues.Color
	}{
		{"black", 0x000000, hues.Color{}},
		{"white", 0xFFFFFF, hues.Color{R: 255, G: 255, B: 255}},
		{"crimson", 0xDC143C, hues.Color{R: 0xDC, G: 0x14, B: 0x3C}},
		{"channels", 0x010203, hues.Color{R: 1, G: 2, B: 3}},
		{"high bits ignored", 0xFF010203, hues.Color{R: 1, G: 2, B: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hues.ColorFromHex(tc.hex); got != tc.want {
				t.Fatalf("ColorFromHex(%#06x) = %+v, want %+v", tc.hex, got, tc.want)
			}
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, hex := range []uint32{0x000000, 0xFFFFFF, 0x90EE90, 0x6161ED, 0x123456} {
		if got := hues.ColorFromHex(hex).Hex(); got != hex {
			t.Fatalf("round trip of %#06x yielded %#06x", hex, got)
		}
	}
}

func TestColorHexString(t *testing.T) {
	cases := []struct {
		color hues.Color
		want  string
	}{
		{hues.Color{}, "#000000"},
		{hues.Color{R: 255, G: 255, B: 255}, "#ffffff"},
		{hues.Color{R: 0xDC, G: 0x14, B: 0x3C}, "#dc143c"},
		{hues.Color{R: 0x01, G: 0x02, B: 0x03}, "#010203"},
	}
	for _, tc := range cases {
		if got := tc.color.HexString(); got != tc.want {
			t.Fatalf("HexString of %+v = %q, want %q", tc.color, got, tc.want)
		}
	}
}
