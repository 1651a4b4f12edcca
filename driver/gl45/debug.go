package gl45

import (
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/gogpu/ren/driver"
)

func (api) DebugOutputSupported() bool {
	var flags int32
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	return flags&gl.CONTEXT_FLAG_DEBUG_BIT != 0
}

func (api) EnableDebugOutput(fn func(driver.DebugMessage)) {
	gl.Enable(gl.DEBUG_OUTPUT)
	// Deliver on the offending call's stack, not from a worker thread.
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		if id == 131185 {
			// A vendor notification about buffer placement, emitted on
			// every allocation.
			return
		}
		fn(driver.DebugMessage{
			Source:   debugSourceName(source),
			Kind:     debugKindName(gltype),
			Severity: debugSeverityName(severity),
			ID:       id,
			Message:  message,
		})
	}, nil)
}

func debugSourceName(source uint32) string {
	switch source {
	case gl.DEBUG_SOURCE_API:
		return "api"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "window system"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "shader compiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "third party"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "application"
	case gl.DEBUG_SOURCE_OTHER:
		return "other"
	}
	return "unknown"
}

func debugKindName(gltype uint32) string {
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		return "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "deprecated behavior"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "undefined behavior"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "portability"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "performance"
	case gl.DEBUG_TYPE_MARKER:
		return "marker"
	case gl.DEBUG_TYPE_PUSH_GROUP:
		return "push group"
	case gl.DEBUG_TYPE_POP_GROUP:
		return "pop group"
	case gl.DEBUG_TYPE_OTHER:
		return "other"
	}
	return "unknown"
}

func debugSeverityName(severity uint32) string {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		return "high"
	case gl.DEBUG_SEVERITY_MEDIUM:
		return "medium"
	case gl.DEBUG_SEVERITY_LOW:
		return "low"
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		return "notification"
	}
	return "unknown"
}
