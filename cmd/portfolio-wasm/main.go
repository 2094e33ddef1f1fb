//go:build js && wasm

// Command portfolio-wasm runs the page's view state in the browser: the theme
// toggle, the active navigation link, and the pointer effects.
package main

import (
	"context"
	"syscall/js"

	"github.com/hanumantha123456/portfolio"
	"github.com/hanumantha123456/portfolio/internal/dom"
)

func main() {
	ctx := context.Background()
	logger := portfolio.NewDefaultLogger()
	doc := dom.NewDocument()

	host := portfolio.Host{
		Document:  doc,
		Surface:   dom.RootClassList(),
		Detector:  dom.MediaDetector{},
		Observers: dom.Observers(doc),
		Logger:    logger,
	}
	if ls, err := dom.NewLocalStorage(); err == nil {
		host.Storage = ls
	} else {
		logger.Warn("Theme will not persist", "error", err)
	}

	view := portfolio.Mount(ctx, host)

	if btn, ok := doc.ByID("theme-toggle"); ok {
		showTheme(btn, view.Theme.CurrentPreference())
		view.Add(btn.OnClick(func() {
			showTheme(btn, view.Theme.Toggle(ctx))
		}))
	}

	unload := js.FuncOf(func(js.Value, []js.Value) any {
		view.Unmount()
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", unload)

	select {}
}

func showTheme(btn *dom.Element, theme portfolio.Theme) {
	btn.SetAttribute("data-theme", theme.String())
	if theme.IsDark() {
		btn.SetText("☀")
	} else {
		btn.SetText("☾")
	}
}
