package app

import "github.com/lucasb-eyer/go-colorful"

// Theme defines the colours of the demo screens.
type Theme struct {
	WindowColor     colorful.Color // Behind every screen
	HomeColor       colorful.Color // Home screen background
	SecondColor     colorful.Color // Second screen background
	ButtonColor     colorful.Color // The home button
	ButtonIconColor colorful.Color // Icon drawn on the button
}

// DefaultTheme is the Cannoli palette: white screens with a teal accent.
func DefaultTheme() Theme {
	return Theme{
		WindowColor:     HexToColor(0x000000),
		HomeColor:       HexToColor(0xFFFFFF),
		SecondColor:     HexToColor(0x808080),
		ButtonColor:     HexToColor(0x008080),
		ButtonIconColor: HexToColor(0xFFFFFF),
	}
}

// HexToColor converts a 0xRRGGBB value.
func HexToColor(hex uint32) colorful.Color {
	return colorful.Color{
		R: float64(hex>>16&0xFF) / 255,
		G: float64(hex>>8&0xFF) / 255,
		B: float64(hex&0xFF) / 255,
	}
}
