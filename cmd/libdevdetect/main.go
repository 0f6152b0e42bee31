//go:build cgo

// Command libdevdetect builds the detection engine as a C shared library
// (`go build -buildmode=c-shared`), grounded on original_source/src/ffi.rs's
// opaque-handle boundary: a detector handle is created once and freed
// once, a lookup produces a JSON string that is caller-owned and must be
// released with DeviceDetectorFreeString.
//
// The Rust original exposes one getter per Detection field (rdd_client_name,
// rdd_os_version, rdd_is_mobile, ...). Go has no equivalent need for
// dozens of per-field cgo exports: DeviceDetectorLookup returns a single
// JSON string carrying the whole Detection, encoded exactly as
// Detection.MarshalJSON produces it, and the caller decodes whatever
// fields it needs on its side of the boundary.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"encoding/json"
	"sync"
	"unsafe"

	"github.com/simplecastapps/go-device-detector/internal/detector"
)

var (
	handles   = map[C.uintptr_t]*detector.Detector{}
	handlesMu sync.Mutex
	nextID    C.uintptr_t
)

//export DeviceDetectorNew
func DeviceDetectorNew() C.uintptr_t {
	det, err := detector.New(detector.Config{})
	if err != nil {
		return 0
	}

	handlesMu.Lock()
	defer handlesMu.Unlock()
	nextID++
	handles[nextID] = det
	return nextID
}

//export DeviceDetectorFree
func DeviceDetectorFree(handle C.uintptr_t) {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	delete(handles, handle)
}

// DeviceDetectorLookup runs detection for ua against handle and returns
// the resulting Detection as a JSON string, or NULL if handle is unknown.
// The caller must release the returned string with DeviceDetectorFreeString.
//
//export DeviceDetectorLookup
func DeviceDetectorLookup(handle C.uintptr_t, ua *C.char) *C.char {
	handlesMu.Lock()
	det, ok := handles[handle]
	handlesMu.Unlock()
	if !ok {
		return nil
	}

	detection := det.Detect(C.GoString(ua))
	data, err := json.Marshal(detection)
	if err != nil {
		return nil
	}
	return C.CString(string(data))
}

//export DeviceDetectorFreeString
func DeviceDetectorFreeString(s *C.char) {
	C.free(unsafe.Pointer(s))
}

func main() {}
