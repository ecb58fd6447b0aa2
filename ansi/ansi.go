// Package ansi provides the escape sequences hues uses to colorize console
// output. Colors are emitted as 24-bit "truecolor" SGR sequences; Reset
// clears all styling. The append-style builders write into caller-owned
// buffers so the logger's hot path avoids intermediate strings.
package ansi

import "strconv"

// Reset is the ANSI escape code that clears all terminal styling.
const Reset = "\x1b[0m"

const (
	backgroundIntro = "\x1b[48;2;"
	foregroundIntro = "\x1b[38;2;"
)

// Background returns the SGR sequence selecting a 24-bit background color,
// "\x1b[48;2;R;G;Bm".
func Background(r, g, b uint8) string {
	return string(AppendBackground(make([]byte, 0, 24), r, g, b))
}

// Foreground returns the SGR sequence selecting a 24-bit foreground color,
// "\x1b[38;2;R;G;Bm".
func Foreground(r, g, b uint8) string {
	return string(AppendForeground(make([]byte, 0, 24), r, g, b))
}

// AppendBackground appends the 24-bit background sequence to dst and returns
// the extended slice.
func AppendBackground(dst []byte, r, g, b uint8) []byte {
	return appendRGB(dst, backgroundIntro, r, g, b)
}

// AppendForeground appends the 24-bit foreground sequence to dst and returns
// the extended slice.
func AppendForeground(dst []byte, r, g, b uint8) []byte {
	return appendRGB(dst, foregroundIntro, r, g, b)
}

func appendRGB(dst []byte, intro string, r, g, b uint8) []byte {
	dst = append(dst, intro...)
	dst = strconv.AppendUint(dst, uint64(r), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(g), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(b), 10)
	dst = append(dst, 'm')
	return dst
}

// Strip removes CSI escape sequences from s. Tests use it to compare the
// textual payload of colorized output against its plain rendering.
func Strip(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && !isFinalByte(s[i]) {
				i++
			}
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

// CSI sequences terminate on a byte in the 0x40..0x7e range.
func isFinalByte(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}
