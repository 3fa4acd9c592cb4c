package renderer

import (
	"log"
	"unsafe"

	vk "github.com/goki/vulkan"
)

const debugReportFlags = vk.DebugReportErrorBit | vk.DebugReportWarningBit | vk.DebugReportPerformanceWarningBit

func debugReportCreateInfo() *vk.DebugReportCallbackCreateInfo {
	return &vk.DebugReportCallbackCreateInfo{
		SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags:       vk.DebugReportFlags(debugReportFlags),
		PfnCallback: debugReportCallback,
	}
}

func debugReportCallback(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint64, messageCode int32, pLayerPrefix string,
	pMessage string, pUserData unsafe.Pointer) vk.Bool32 {

	log.Printf("[%s %d] %s on layer %s", debugSeverity(flags), messageCode, pMessage, pLayerPrefix)
	// Returning false lets the call that triggered the report continue
	return vk.Bool32(vk.False)
}

func debugSeverity(flags vk.DebugReportFlags) string {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		return "ERROR"
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		return "WARN"
	case flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0:
		return "PERF"
	case flags&vk.DebugReportFlags(vk.DebugReportInformationBit) != 0:
		return "INFO"
	case flags&vk.DebugReportFlags(vk.DebugReportDebugBit) != 0:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}
