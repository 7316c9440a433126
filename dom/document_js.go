package dom

import (
	"syscall/js"
)

type BrowserDocument js.Value

var _ Document = BrowserDocument{}

func NewBrowserDocument() BrowserDocument {
	return BrowserDocument(js.Global().Get("document"))
}

func (d BrowserDocument) GetElementByID(id string) (js.Value, bool) {
	el := js.Value(d).Call("getElementById", id)
	return el, !el.IsNull()
}

// AddStyleSheet appends a <style> element holding rules to the document head.
func (d BrowserDocument) AddStyleSheet(rules ...string) Release {
	head := js.Value(d).Get("head")
	el := js.Value(d).Call("createElement", "style")
	head.Call("appendChild", el)
	sheet := el.Get("sheet")
	for _, r := range rules {
		sheet.Call("insertRule", r, sheet.Get("cssRules").Get("length").Int())
	}
	return Once(func() {
		head.Call("removeChild", el)
	})
}
