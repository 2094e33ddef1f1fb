package portfolio

// NavLinkSelector matches the navigation links; each carries its section id in
// the NavSectionAttr attribute.
const (
	NavLinkSelector = "a[data-section]"
	NavSectionAttr  = "data-section"
	NavActiveClass  = "active"
)

// Link is a navigation element the active-section highlight is drawn on.
// Elements returned by a Document that do not implement it are skipped.
type Link interface {
	Attribute(name string) string
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	Classes() Surface
}

// MountNavHighlight marks the link of the tracker's active section with
// NavActiveClass and aria-current, now and on every change.
func MountNavHighlight(doc Document, tracker *Tracker) Disposer {
	if doc == nil || tracker == nil {
		return func() {}
	}
	HighlightNav(doc, tracker.Active())
	return tracker.OnChange(func(id SectionID) {
		HighlightNav(doc, id)
	})
}

// HighlightNav moves the highlight to the link for active.
func HighlightNav(doc Document, active SectionID) {
	for _, el := range doc.QueryAll(NavLinkSelector) {
		link, ok := el.(Link)
		if !ok {
			continue
		}
		if SectionID(link.Attribute(NavSectionAttr)) == active {
			link.Classes().AddClass(NavActiveClass)
			link.SetAttribute("aria-current", "true")
			continue
		}
		link.Classes().RemoveClass(NavActiveClass)
		link.RemoveAttribute("aria-current")
	}
}
