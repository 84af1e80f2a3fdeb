// Command choreo-demo shows the choreo transitions, keyframes and sequences in
// an SDL window.
//
// Keys: Enter pushes the second screen, Backspace pops it, Space pulses the
// home button and Escape quits.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"runtime"

	"github.com/BrandonKowalski/choreo/cmd/choreo-demo/app"
	"github.com/BrandonKowalski/choreo/pkg/choreo"
	"github.com/BrandonKowalski/choreo/pkg/choreo/platform/sdlwindow"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML or YAML config file.")
	lang := flag.String("lang", "en", "Language for screen titles.")
	logPath := flag.String("log", "", "Log file path.")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	flag.Parse()

	options := choreo.Options{ConfigPath: *configPath, LogPath: *logPath}
	if *debug {
		options.LogLevel = "debug"
	}
	if err := choreo.Init(options); err != nil {
		choreo.GetLogger().Error("Failed to initialize", "error", err)
		os.Exit(1)
	}
	defer choreo.Close()

	if err := run(*lang); err != nil {
		choreo.GetLogger().Error("Demo stopped", "error", err)
		os.Exit(1)
	}
}

func run(lang string) error {
	locale, err := app.NewLocalizer(lang)
	if err != nil {
		return err
	}

	window, err := sdlwindow.Open("choreo", choreo.CurrentConfig(), sdlwindow.WindowOptions{})
	if err != nil {
		return err
	}
	defer window.Close()

	demo := app.New(app.Options{
		Platform:  window.Platform(),
		Frame:     window.Bounds(),
		Theme:     app.DefaultTheme(),
		Localizer: locale,
	})
	withWindowTitle(demo, window)
	window.Background = app.DefaultTheme().WindowColor
	window.SetRoot(demo.Router.Window())
	demo.Intro()

	choreo.GetLogger().Info("Demo started", "lang", locale.Language().String(), "size", window.Size())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = window.Run(ctx, func(event sdl.Event) bool {
		key, ok := event.(*sdl.KeyboardEvent)
		if !ok || key.Type != sdl.KEYDOWN || key.Repeat != 0 {
			return true
		}
		return handleKey(demo, key.Keysym.Sym)
	})
	if errors.Is(err, sdlwindow.ErrClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// withWindowTitle keeps the window title in step with the top screen.
func withWindowTitle(demo *app.App, window *sdlwindow.Window) {
	demo.SetOnTitle(func(string) {
		window.Window.SetTitle(demo.WindowTitle())
	})
	window.Window.SetTitle(demo.WindowTitle())
}

func handleKey(demo *app.App, key sdl.Keycode) bool {
	var err error
	switch key {
	case sdl.K_ESCAPE:
		return false
	case sdl.K_RETURN:
		err = demo.Forward()
	case sdl.K_BACKSPACE:
		err = demo.Back()
	case sdl.K_SPACE:
		if !demo.Pulse() {
			choreo.GetLogger().Debug("Pulse ignored away from home")
		}
	}
	if err != nil {
		choreo.GetLogger().Debug("Navigation ignored", "error", err)
	}
	return true
}
