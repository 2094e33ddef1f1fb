// Package portfolio holds the view-state logic of a single-page portfolio site.
//
// Three independent controllers derive UI state from browser-provided signals:
// the ThemeController persists a light/dark preference and mirrors it onto the
// root rendering surface, the Tracker reports which page section is in view, and
// the tilt and magnetic effects turn pointer offsets into CSS transforms. Each
// controller is written against small host interfaces (Document, Element,
// Surface, Storage, ColorSchemeDetector, ObserverFactory) so the same code runs
// inside the WebAssembly host and on the server when pre-rendering a page.
package portfolio
