//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework CoreGraphics -framework CoreFoundation -framework Foundation
#import <AppKit/AppKit.h>
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    char *title;
    char *app;
    int x, y, width, height;
    int layer;
    int pid;
    int windowID;
} WindowInfo;

static char *dup_nsstring(NSString *s, const char *fallback) {
    if (s == nil || ![s isKindOfClass:[NSString class]]) return strdup(fallback);
    const char *utf8 = [s UTF8String];
    return strdup(utf8 ? utf8 : fallback);
}

static int ns_frontmost_app(char **name, char **bundleID, int *pid) {
    @autoreleasepool {
        NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
        if (app == nil) return -1;
        *name = dup_nsstring(app.localizedName, "Unknown");
        *bundleID = dup_nsstring(app.bundleIdentifier, "Unknown");
        *pid = (int)app.processIdentifier;
    }
    return 0;
}

static int cg_list_windows(WindowInfo **out, int *count) {
    @autoreleasepool {
        CFArrayRef list = CGWindowListCopyWindowInfo(kCGWindowListOptionOnScreenOnly, kCGNullWindowID);
        if (!list) return -1;

        NSArray *windows = (NSArray *)list;
        NSUInteger n = [windows count];
        WindowInfo *infos = calloc(n > 0 ? n : 1, sizeof(WindowInfo));
        if (!infos) {
            CFRelease(list);
            return -1;
        }

        for (NSUInteger i = 0; i < n; i++) {
            NSDictionary *w = windows[i];
            infos[i].title = dup_nsstring(w[(id)kCGWindowName], "");
            infos[i].app = dup_nsstring(w[(id)kCGWindowOwnerName], "Unknown");

            CGRect r = CGRectZero;
            NSDictionary *bounds = w[(id)kCGWindowBounds];
            if (bounds) CGRectMakeWithDictionaryRepresentation((CFDictionaryRef)bounds, &r);
            infos[i].x = (int)r.origin.x;
            infos[i].y = (int)r.origin.y;
            infos[i].width = (int)r.size.width;
            infos[i].height = (int)r.size.height;

            NSNumber *layer = w[(id)kCGWindowLayer];
            NSNumber *pid = w[(id)kCGWindowOwnerPID];
            NSNumber *num = w[(id)kCGWindowNumber];
            infos[i].layer = layer ? [layer intValue] : 0;
            infos[i].pid = pid ? [pid intValue] : -1;
            infos[i].windowID = num ? [num intValue] : 0;
        }
        CFRelease(list);

        *out = infos;
        *count = (int)n;
    }
    return 0;
}

static void cg_free_windows(WindowInfo *infos, int count) {
    for (int i = 0; i < count; i++) {
        free(infos[i].title);
        free(infos[i].app);
    }
    free(infos);
}
*/
import "C"
import (
	"context"
	"fmt"
	"unsafe"

	"github.com/automac-mcp/automac/internal/model"
)

// DarwinInspector implements platform.Inspector with NSWorkspace and
// CGWindowListCopyWindowInfo.
type DarwinInspector struct{}

// NewInspector creates a new macOS inspector.
func NewInspector() *DarwinInspector {
	return &DarwinInspector{}
}

func (i *DarwinInspector) Name() string { return "native" }

func (i *DarwinInspector) ActiveApp(_ context.Context) (*model.AppInfo, error) {
	var cName, cBundle *C.char
	var cPid C.int
	if C.ns_frontmost_app(&cName, &cBundle, &cPid) != 0 {
		return nil, fmt.Errorf("no frontmost application")
	}
	defer C.free(unsafe.Pointer(cName))
	defer C.free(unsafe.Pointer(cBundle))

	return &model.AppInfo{
		Name:     C.GoString(cName),
		BundleID: C.GoString(cBundle),
		PID:      int(cPid),
	}, nil
}

// ListWindows returns all on-screen windows in window-server order.
func (i *DarwinInspector) ListWindows(_ context.Context) ([]model.Window, error) {
	var cWindows *C.WindowInfo
	var cCount C.int

	if C.cg_list_windows(&cWindows, &cCount) != 0 {
		return nil, fmt.Errorf("failed to enumerate windows")
	}
	defer C.cg_free_windows(cWindows, cCount)

	count := int(cCount)
	windows := make([]model.Window, 0, count)
	if count == 0 {
		return windows, nil
	}
	for _, cw := range unsafe.Slice(cWindows, count) {
		windows = append(windows, model.Window{
			Title: C.GoString(cw.title),
			App:   C.GoString(cw.app),
			Bounds: model.Bounds{
				X:      int(cw.x),
				Y:      int(cw.y),
				Width:  int(cw.width),
				Height: int(cw.height),
			},
			Layer: int(cw.layer),
			PID:   int(cw.pid),
			ID:    int(cw.windowID),
		})
	}
	return windows, nil
}

func (i *DarwinInspector) ScreenSize(_ context.Context) (model.Size, error) {
	w, h, err := pixelSize()
	if err != nil {
		return model.Size{}, err
	}
	return model.Size{Width: w, Height: h}, nil
}
