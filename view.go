package portfolio

import "context"

// Host bundles what the page runtime provides. Any field may be nil; each
// controller degrades on its own when its part of the host is missing.
type Host struct {
	Document  Document
	Surface   Surface
	Storage   Storage
	Cache     Cache
	Detector  ColorSchemeDetector
	Observers ObserverFactory
	Logger    Logger
	// VisitorID scopes the theme preference. Empty means LocalVisitorID.
	VisitorID string
}

// View is a mounted page: the three controllers plus the listeners and
// observers they hold. Unmount releases all of it.
type View struct {
	Theme   *ThemeController
	Tracker *Tracker

	lifecycle Lifecycle
}

// Mount resolves and applies the initial theme, starts section tracking with
// the nav highlight following it, and binds the pointer effects.
func Mount(ctx context.Context, host Host) *View {
	logger := host.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	v := &View{
		Theme: NewThemeController(host.VisitorID,
			WithStorage(host.Storage),
			WithCache(host.Cache),
			WithDetector(host.Detector),
			WithSurface(host.Surface),
			WithLogger(logger),
		),
		Tracker: NewTracker(logger),
	}
	v.Theme.InitialPreference(ctx)

	v.lifecycle.Add(v.Tracker.Mount(host.Observers))
	v.lifecycle.Add(MountNavHighlight(host.Document, v.Tracker))
	v.lifecycle.Add(MountTilt(host.Document, TiltSelector))
	v.lifecycle.Add(MountMagnetic(host.Document, MagneticSelector))

	logger.Debug("View mounted", "theme", v.Theme.CurrentPreference(), "section", v.Tracker.Active())
	return v
}

// Add ties an extra disposer to the view's lifetime.
func (v *View) Add(d Disposer) {
	v.lifecycle.Add(d)
}

// Unmount releases every listener and observer the view registered.
func (v *View) Unmount() {
	v.lifecycle.Dispose()
}

// Mounted reports whether Unmount has not run yet.
func (v *View) Mounted() bool {
	return !v.lifecycle.Disposed()
}
