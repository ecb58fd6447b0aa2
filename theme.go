package hues

// Style pairs a level with the colors used to render its log lines.
type Style struct {
	Level      Level
	Background Color
	Foreground Color
}

// Theme maps levels to styles. A complete theme carries one entry per level
// ordinal; rendering a message whose level has no entry is reported on the
// logger's error writer and the message is dropped.
type Theme []Style

// Style returns the entry for level and whether one exists.
func (t Theme) Style(level Level) (Style, bool) {
	for _, s := range t {
		if s.Level == level {
			return s, true
		}
	}
	return Style{}, false
}

// ThemeFromHex builds a theme from two parallel tables of 24-bit hex colors,
// one entry per level ordinal starting at zero. When the tables differ in
// length the shorter one bounds the theme.
func ThemeFromHex(background, foreground []uint32) Theme {
	n := len(background)
	if len(foreground) < n {
		n = len(foreground)
	}
	theme := make(Theme, 0, n)
	for i := 0; i < n; i++ {
		theme = append(theme, Style{
			Level:      Level(i),
			Background: ColorFromHex(background[i]),
			Foreground: ColorFromHex(foreground[i]),
		})
	}
	return theme
}

var (
	lightForeground = []uint32{0x212121, 0x008000, 0x000000, 0x808000, 0xDC143C, 0xFFFFFF, 0x808080}
	lightBackground = []uint32{0xFFFFFF, 0xFFFFFF, 0xFFFFFF, 0xFFFAE6, 0xFFF0F5, 0xFF0000, 0xFFFFFF}

	darkForeground = []uint32{0xFFFFFF, 0xFFDF00, 0x90EE90, 0xFFA500, 0xFF69B4, 0xFFFF00, 0xFFFFFF}
	darkBackground = []uint32{0x6161ED, 0x181818, 0x181818, 0x181818, 0x181818, 0xE60000, 0xE60000}
)

// DarkTheme returns the stock theme for dark terminals. It is the default
// installed by New and Init.
func DarkTheme() Theme {
	return ThemeFromHex(darkBackground, darkForeground)
}

// LightTheme returns the stock theme for light terminals.
func LightTheme() Theme {
	return ThemeFromHex(lightBackground, lightForeground)
}
