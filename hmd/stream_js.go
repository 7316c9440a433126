package hmd

import (
	"syscall/js"
)

// DialStream connects a Stream to a pose server over a browser WebSocket.
// The returned function closes the socket and releases the callbacks.
func DialStream(url string, onError func(error)) (*Stream, func()) {
	s := NewStream()
	ws := js.Global().Get("WebSocket").New(url)

	onMessage := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		f, err := DecodeFrame([]byte(args[0].Get("data").String()))
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return nil
		}
		s.Push(f)
		return nil
	})
	ws.Call("addEventListener", "message", onMessage)

	closed := false
	return s, func() {
		if closed {
			return
		}
		closed = true
		ws.Call("removeEventListener", "message", onMessage)
		ws.Call("close")
		onMessage.Release()
	}
}
