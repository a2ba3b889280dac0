//go:build !js

package hello

import "testing"

func TestHelloWorld_Server(t *testing.T) {
	got := HelloWorld("Ada", "Lovelace")
	want := "Hello World by Ada Lovelace from the amazing world of JAVA!!"

	if got != want {
		t.Errorf("HelloWorld() = %q, want %q", got, want)
	}
}
