//go:build js && wasm

// Package dom binds the portfolio controllers to a real browser page through
// syscall/js.
package dom

import (
	"fmt"
	"syscall/js"

	"github.com/hanumantha123456/portfolio"
)

// catch turns a JavaScript exception raised during a call into an error
// wrapping sentinel.
func catch(sentinel error, err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = fmt.Errorf("%w: %s", sentinel, jsErr.Error())
			return
		}
		panic(r)
	}
}

func defined(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

// Document is the page's document object.
type Document struct {
	doc js.Value
}

// NewDocument wraps the global document.
func NewDocument() *Document {
	return &Document{doc: js.Global().Get("document")}
}

// Query returns the first element matching selector.
func (d *Document) Query(selector string) (portfolio.Element, bool) {
	el := d.doc.Call("querySelector", selector)
	if !defined(el) {
		return nil, false
	}
	return &Element{el: el}, true
}

// QueryAll returns every element matching selector in document order.
func (d *Document) QueryAll(selector string) []portfolio.Element {
	list := d.doc.Call("querySelectorAll", selector)
	n := list.Length()
	out := make([]portfolio.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{el: list.Index(i)})
	}
	return out
}

// ByID returns the element with the given id.
func (d *Document) ByID(id string) (*Element, bool) {
	el := d.doc.Call("getElementById", id)
	if !defined(el) {
		return nil, false
	}
	return &Element{el: el}, true
}

// Element wraps a DOM element.
type Element struct {
	el js.Value
}

func (e *Element) Bounds() portfolio.Rect {
	r := e.el.Call("getBoundingClientRect")
	return portfolio.Rect{
		X:      r.Get("left").Float(),
		Y:      r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (e *Element) SetTransform(css string) {
	e.el.Get("style").Set("transform", css)
}

// On listens for a pointer event and reports the pointer's viewport position.
func (e *Element) On(event string, fn func(portfolio.Point)) func() {
	return e.listen(event, func(ev js.Value) {
		fn(portfolio.Point{X: ev.Get("clientX").Float(), Y: ev.Get("clientY").Float()})
	})
}

// OnClick listens for clicks and cancels the default action, so a button
// inside a form is handled here instead of submitting it.
func (e *Element) OnClick(fn func()) func() {
	return e.listen("click", func(ev js.Value) {
		ev.Call("preventDefault")
		fn()
	})
}

func (e *Element) listen(event string, fn func(js.Value)) func() {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		}
		return nil
	})
	e.el.Call("addEventListener", event, cb)
	return func() {
		e.el.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

func (e *Element) Attribute(name string) string {
	v := e.el.Call("getAttribute", name)
	if !defined(v) {
		return ""
	}
	return v.String()
}

func (e *Element) SetAttribute(name, value string) {
	e.el.Call("setAttribute", name, value)
}

func (e *Element) RemoveAttribute(name string) {
	e.el.Call("removeAttribute", name)
}

func (e *Element) SetText(s string) {
	e.el.Set("textContent", s)
}

// ClassList is an element's classList.
type ClassList struct {
	list js.Value
}

// RootClassList returns the class list of the document element, where the
// dark class lives.
func RootClassList() *ClassList {
	return &ClassList{list: js.Global().Get("document").Get("documentElement").Get("classList")}
}

// Classes returns the class list of e.
func (e *Element) Classes() portfolio.Surface {
	return &ClassList{list: e.el.Get("classList")}
}

func (c *ClassList) AddClass(name string)    { c.list.Call("add", name) }
func (c *ClassList) RemoveClass(name string) { c.list.Call("remove", name) }
func (c *ClassList) HasClass(name string) bool {
	return c.list.Call("contains", name).Bool()
}
