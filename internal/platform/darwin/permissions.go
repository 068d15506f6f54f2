//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreGraphics -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreGraphics/CoreGraphics.h>

static int is_trusted() {
    return AXIsProcessTrusted();
}

static int can_capture_screen() {
    return CGPreflightScreenCaptureAccess();
}
*/
import "C"
import "fmt"

// CheckAccessibilityPermission checks if the process has macOS accessibility permission.
// Returns an error with instructions if permission is not granted.
func CheckAccessibilityPermission() error {
	if C.is_trusted() == 0 {
		return fmt.Errorf(
			"accessibility permission required\n\n" +
				"Grant permission at: System Settings > Privacy & Security > Accessibility\n" +
				"Add the app hosting automac (e.g. Terminal.app, iTerm2, or the MCP client).\n" +
				"Then restart it and try again.")
	}
	return nil
}

// CheckScreenRecordingPermission checks if the process has macOS screen recording permission.
func CheckScreenRecordingPermission() error {
	if C.can_capture_screen() == 0 {
		return fmt.Errorf(
			"screen recording permission required\n\n" +
				"Grant permission at: System Settings > Privacy & Security > Screen Recording\n" +
				"Add the app hosting automac (e.g. Terminal.app, iTerm2, or the MCP client).\n" +
				"Then restart it and try again.")
	}
	return nil
}

// missingPermissions returns one error per permission not yet granted.
func missingPermissions() []error {
	var errs []error
	if err := CheckAccessibilityPermission(); err != nil {
		errs = append(errs, err)
	}
	if err := CheckScreenRecordingPermission(); err != nil {
		errs = append(errs, err)
	}
	return errs
}
