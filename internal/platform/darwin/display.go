//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c -Wno-deprecated-declarations
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>

static void cg_main_display_points(int *w, int *h) {
    CGRect r = CGDisplayBounds(CGMainDisplayID());
    *w = (int)r.size.width;
    *h = (int)r.size.height;
}

static int cg_main_display_pixels(int *w, int *h) {
    CGDisplayModeRef mode = CGDisplayCopyDisplayMode(CGMainDisplayID());
    if (!mode) return -1;
    *w = (int)CGDisplayModeGetPixelWidth(mode);
    *h = (int)CGDisplayModeGetPixelHeight(mode);
    CGDisplayModeRelease(mode);
    return 0;
}

// Capture the main display into a malloc'd premultiplied RGBA buffer.
// The caller frees *out.
static int cg_capture_main(unsigned char **out, int *w, int *h) {
    CGImageRef img = CGDisplayCreateImage(CGMainDisplayID());
    if (!img) return -1;

    size_t width = CGImageGetWidth(img);
    size_t height = CGImageGetHeight(img);
    size_t stride = width * 4;
    unsigned char *buf = calloc(height, stride);
    if (!buf) {
        CGImageRelease(img);
        return -1;
    }

    CGColorSpaceRef cs = CGColorSpaceCreateDeviceRGB();
    CGContextRef ctx = CGBitmapContextCreate(buf, width, height, 8, stride, cs,
        kCGImageAlphaPremultipliedLast | kCGBitmapByteOrder32Big);
    CGColorSpaceRelease(cs);
    if (!ctx) {
        free(buf);
        CGImageRelease(img);
        return -1;
    }
    CGContextDrawImage(ctx, CGRectMake(0, 0, width, height), img);
    CGContextRelease(ctx);
    CGImageRelease(img);

    *out = buf;
    *w = (int)width;
    *h = (int)height;
    return 0;
}
*/
import "C"
import (
	"fmt"
	"image"
	"unsafe"
)

// DarwinDisplay implements platform.Display for the main display.
type DarwinDisplay struct{}

// NewDisplay creates a new macOS display.
func NewDisplay() *DarwinDisplay {
	return &DarwinDisplay{}
}

// ScreenSize returns the main display bounds in points, the coordinate
// space CGEvent input uses.
func (d *DarwinDisplay) ScreenSize() (int, int, error) {
	var w, h C.int
	C.cg_main_display_points(&w, &h)
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("main display reported empty bounds")
	}
	return int(w), int(h), nil
}

// Capture returns the main display at full pixel resolution.
func (d *DarwinDisplay) Capture() (image.Image, error) {
	if err := CheckScreenRecordingPermission(); err != nil {
		return nil, err
	}

	var buf *C.uchar
	var w, h C.int
	if C.cg_capture_main(&buf, &w, &h) != 0 {
		return nil, fmt.Errorf("screen capture failed (check Screen Recording permission in System Settings > Privacy & Security > Screen Recording)")
	}
	defer C.free(unsafe.Pointer(buf))

	width, height := int(w), int(h)
	img := &image.RGBA{
		Pix:    C.GoBytes(unsafe.Pointer(buf), C.int(width*height*4)),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return img, nil
}

// pixelSize returns the main display mode size in pixels.
func pixelSize() (int, int, error) {
	var w, h C.int
	if C.cg_main_display_pixels(&w, &h) != 0 {
		return 0, 0, fmt.Errorf("failed to read main display mode")
	}
	return int(w), int(h), nil
}
