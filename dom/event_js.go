package dom

import (
	"syscall/js"
)

// listen registers cb for the named event on target and returns the release
// that removes the listener and frees the js.Func.
func listen(target js.Value, name string, cb func(js.Value)) Release {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cb(args[0])
		return nil
	})
	target.Call("addEventListener", name, fn)
	return Once(func() {
		target.Call("removeEventListener", name, fn)
		fn.Release()
	})
}

// OnceEvent calls cb the first time the named event fires on target.
func OnceEvent(target js.Value, name string, cb func()) Release {
	var r Release
	r = listen(target, name, func(js.Value) {
		r()
		cb()
	})
	return r
}
