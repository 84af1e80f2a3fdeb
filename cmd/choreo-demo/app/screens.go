package app

import (
	"github.com/BrandonKowalski/choreo/pkg/choreo"
	"github.com/BrandonKowalski/choreo/pkg/choreo/router"
	"github.com/BrandonKowalski/choreo/pkg/choreo/view"
)

const (
	ScreenHome router.Screen = iota + 1
	ScreenSecond
)

// ButtonSize is the size of the home button, centered on the home screen.
var ButtonSize = view.Rect{W: 120, H: 48}

const buttonIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path d="M8 5l8 7-8 7z" fill="#ffffff"/>
</svg>`

// Home is the first screen: a title and a button leading to Second.
type Home struct {
	Title  string
	view   *view.View
	Button *view.View
}

func NewHome(theme Theme, title string) *Home {
	h := &Home{
		Title:  title,
		view:   view.New("home", view.Rect{}),
		Button: view.New("home-button", ButtonSize),
	}
	h.view.SetBackground(theme.HomeColor)
	h.Button.SetBackground(theme.ButtonColor)

	if arrow := newIconView("home-button-icon", buttonIcon); arrow != nil {
		h.Button.AddSubview(arrow)
		h.Button.SetLayout(func(b *view.View) {
			size := b.Bounds().H / 2
			arrow.SetFrame(view.Centered(b.Bounds().Center(), size, size))
		})
	}

	h.view.AddSubview(h.Button)
	h.view.SetLayout(func(v *view.View) {
		h.Button.SetFrame(view.Centered(v.Bounds().Center(), ButtonSize.W, ButtonSize.H))
	})
	return h
}

func (h *Home) Screen() router.Screen { return ScreenHome }
func (h *Home) View() *view.View      { return h.view }

// Second is the screen pushed from Home.
type Second struct {
	Title string
	view  *view.View
}

func NewSecond(theme Theme, title string) *Second {
	s := &Second{
		Title: title,
		view:  view.New("second", view.Rect{}),
	}
	s.view.SetBackground(theme.SecondColor)
	return s
}

func (s *Second) Screen() router.Screen { return ScreenSecond }
func (s *Second) View() *view.View      { return s.view }

// newIconView returns a view drawing the SVG source, or nil when it does not
// parse.
func newIconView(name, source string) *view.View {
	icon, err := view.ParseIconBytes([]byte(source))
	if err != nil {
		choreo.GetLogger().Error("Failed to parse icon", "name", name, "error", err)
		return nil
	}
	v := view.New(name, view.Rect{})
	v.SetIcon(icon)
	return v
}
