//go:build js && wasm

package dom

import (
	"fmt"
	"syscall/js"

	"github.com/hanumantha123456/portfolio"
)

// Observers returns a factory backed by the browser's IntersectionObserver.
func Observers(doc *Document) portfolio.ObserverFactory {
	return func(threshold float64, callback func([]portfolio.IntersectionEntry)) (portfolio.IntersectionObserver, error) {
		ctor := js.Global().Get("IntersectionObserver")
		if ctor.Type() != js.TypeFunction {
			return nil, portfolio.ErrObserverUnsupported
		}

		cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
			if len(args) == 0 {
				return nil
			}
			list := args[0]
			entries := make([]portfolio.IntersectionEntry, 0, list.Length())
			for i := 0; i < list.Length(); i++ {
				e := list.Index(i)
				entries = append(entries, portfolio.IntersectionEntry{
					ID:             portfolio.SectionID(e.Get("target").Get("id").String()),
					IsIntersecting: e.Get("isIntersecting").Bool(),
					Ratio:          e.Get("intersectionRatio").Float(),
				})
			}
			callback(entries)
			return nil
		})

		opts := js.Global().Get("Object").New()
		opts.Set("threshold", threshold)
		return &observer{doc: doc, obs: ctor.New(cb, opts), cb: cb}, nil
	}
}

type observer struct {
	doc *Document
	obs js.Value
	cb  js.Func
}

func (o *observer) Observe(id portfolio.SectionID) error {
	el, ok := o.doc.ByID(string(id))
	if !ok {
		return fmt.Errorf("%w: no element #%s", portfolio.ErrUnknownSection, id)
	}
	o.obs.Call("observe", el.el)
	return nil
}

func (o *observer) Disconnect() {
	o.obs.Call("disconnect")
	o.cb.Release()
}
