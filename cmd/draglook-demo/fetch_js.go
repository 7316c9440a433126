package main

import (
	"errors"
	"fmt"
	"syscall/js"
)

var errNotFound = errors.New("not found")

func fetchGet(path string) ([]byte, error) {
	var b []byte
	var errored bool
	chErr := make(chan error, 1)

	onResponse := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		res := args[0]
		if !res.Get("ok").Bool() {
			errored = true
			if res.Get("status").Int() == 404 {
				chErr <- fmt.Errorf("%s: %w", path, errNotFound)
			} else {
				chErr <- fmt.Errorf("failed to fetch %s: %s", path, res.Get("statusText").String())
			}
			return nil
		}
		return res.Call("arrayBuffer")
	})
	onFetchError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		errored = true
		chErr <- fmt.Errorf("failed to fetch %s", path)
		return nil
	})
	onData := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if errored {
			return nil
		}
		array := js.Global().Get("Uint8Array").New(args[0])
		b = make([]byte, array.Get("byteLength").Int())
		js.CopyBytesToGo(b, array)
		chErr <- nil
		return nil
	})
	onDataError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chErr <- errors.New("failed to handle received data")
		return nil
	})
	defer func() {
		onResponse.Release()
		onFetchError.Release()
		onData.Release()
		onDataError.Release()
	}()

	js.Global().Call("fetch", path).
		Call("then", onResponse, onFetchError).
		Call("then", onData, onDataError)

	if err := <-chErr; err != nil {
		return nil, err
	}
	return b, nil
}
