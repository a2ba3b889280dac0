//go:build !js

package hello

// Platform is the label baked into server builds.
const Platform = "JAVA"
