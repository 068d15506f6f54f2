//go:build darwin

// Package darwin provides macOS platform support using CoreGraphics, AppKit and
// Accessibility APIs. Native backends require CGo (Objective-C frameworks).
// When CGo is disabled only the scripting-bridge inspector is available.
package darwin
