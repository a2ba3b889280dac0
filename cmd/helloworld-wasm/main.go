//go:build js && wasm

// Command helloworld-wasm exposes the greeter to JavaScript hosts.
//
//	GOOS=js GOARCH=wasm go build -o helloworld.wasm ./cmd/helloworld-wasm
//
// After the module starts, the globals helloWorld(firstName, lastName) and
// greeting(firstName, lastName, platform) are available to the host.
package main

import (
	"syscall/js"

	"github.com/YoshitsuguKoike/helloworld/internal/hello"
)

// arg returns the i-th argument as a string, or "" when it is missing,
// undefined or null
func arg(args []js.Value, i int) string {
	if i >= len(args) {
		return ""
	}
	v := args[i]
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

// register publishes the greeter functions as JS globals
func register() {
	js.Global().Set("helloWorld", js.FuncOf(func(_ js.Value, args []js.Value) any {
		return hello.HelloWorld(arg(args, 0), arg(args, 1))
	}))
	js.Global().Set("greeting", js.FuncOf(func(_ js.Value, args []js.Value) any {
		return hello.Greeting(arg(args, 0), arg(args, 1), arg(args, 2))
	}))
}

func main() {
	register()
	select {}
}
