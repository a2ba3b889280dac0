//go:build js

package hello

// Platform is the label baked into script (GOOS=js) builds.
const Platform = "NODE"
