package willowui

import (
	"fmt"
	"slices"
	"strings"
)

// Theme is the palette shared by every widget. Widgets keep a pointer to it,
// so switching flavors is ApplyTheme on the top-level panels.
type Theme struct {
	Name string

	Background    Color // scene clear color
	WindowFill    Color
	TitleFill     Color
	Border        Color
	Shadow        Color
	Text          Color
	MutedText     Color
	Button        Color
	ButtonHover   Color
	InputFill     Color
	Focus         Color
	ListHighlight Color
	Link          Color
	LinkHover     Color
	Icon          Color
}

// Themed is implemented by widgets that repaint on a theme change.
type Themed interface {
	ApplyTheme(th *Theme)
}

// Accent colors shared by every flavor.
var (
	listHighlight = RGB(52, 66, 73)
	linkColor     = RGB(173, 216, 230)
	linkHover     = RGB(255, 255, 224)
	iconColor     = RGB(248, 197, 20)
)

// catppuccin lays out one flavor's base colors.
type catppuccin struct {
	base, mantle, crust          uint32
	surface0, surface1, surface2 uint32
	overlay0, subtext0, text     uint32
	lavender                     uint32
}

func (p catppuccin) theme(name string) Theme {
	return Theme{
		Name:          name,
		Background:    Hex(p.crust),
		WindowFill:    Hex(p.base),
		TitleFill:     Hex(p.mantle),
		Border:        Hex(p.surface1),
		Shadow:        Color{0, 0, 0, 0.35},
		Text:          Hex(p.text),
		MutedText:     Hex(p.subtext0),
		Button:        Hex(p.surface0),
		ButtonHover:   Hex(p.surface2),
		InputFill:     Hex(p.mantle),
		Focus:         Hex(p.lavender),
		ListHighlight: listHighlight,
		Link:          linkColor,
		LinkHover:     linkHover,
		Icon:          iconColor,
	}
}

var flavors = map[string]catppuccin{
	"mocha": {
		base: 0x1e1e2e, mantle: 0x181825, crust: 0x11111b,
		surface0: 0x313244, surface1: 0x45475a, surface2: 0x585b70,
		overlay0: 0x6c7086, subtext0: 0xa6adc8, text: 0xcdd6f4,
		lavender: 0xb4befe,
	},
	"macchiato": {
		base: 0x24273a, mantle: 0x1e2030, crust: 0x181926,
		surface0: 0x363a4f, surface1: 0x494d64, surface2: 0x5b6078,
		overlay0: 0x6e738d, subtext0: 0xa5adcb, text: 0xcad3f5,
		lavender: 0xb7bdf8,
	},
	"frappe": {
		base: 0x303446, mantle: 0x292c3c, crust: 0x232634,
		surface0: 0x414559, surface1: 0x51576d, surface2: 0x626880,
		overlay0: 0x737994, subtext0: 0xa5adce, text: 0xc6d0f5,
		lavender: 0xbabbf1,
	},
	"latte": {
		base: 0xeff1f5, mantle: 0xe6e9ef, crust: 0xdce0e8,
		surface0: 0xccd0da, surface1: 0xbcc0cc, surface2: 0xacb0be,
		overlay0: 0x9ca0b0, subtext0: 0x6c6f85, text: 0x4c4f69,
		lavender: 0x7287fd,
	},
}

// DefaultThemeName is the flavor used when none is configured.
const DefaultThemeName = "mocha"

// DefaultTheme returns the mocha flavor.
func DefaultTheme() *Theme {
	th, _ := ThemeByName(DefaultThemeName)
	return th
}

// ThemeByName returns a fresh copy of the named Catppuccin flavor. Names are
// case-insensitive.
func ThemeByName(name string) (*Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	p, ok := flavors[key]
	if !ok {
		return nil, fmt.Errorf("willowui: unknown theme %q (want one of %s)", name, strings.Join(ThemeNames(), ", "))
	}
	th := p.theme(key)
	return &th, nil
}

// ThemeNames lists the available flavors in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(flavors))
	for k := range flavors {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
