// Package hello provides the greeting entry points shared by every build target.
package hello

import "github.com/YoshitsuguKoike/helloworld/internal/domain/model/template"

// Greeting returns the greeting for the given names and an explicit platform label.
func Greeting(firstName, lastName, platform string) string {
	return template.New(firstName, lastName, platform).Greeting()
}

// HelloWorld returns the greeting with the platform fixed to the label of
// the current build target.
func HelloWorld(firstName, lastName string) string {
	return Greeting(firstName, lastName, Platform)
}
