package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryRender,
		Message:  "Unknown node kind",
		Detail:   "The renderer met a node whose kind is not element, text, fragment or raw.",
	},
	"E002": {
		Category: CategoryRender,
		Message:  "Render output failed",
		Detail:   "Writing rendered HTML to the output failed.",
	},
	"E003": {
		Category: CategoryRender,
		Message:  "Render cancelled",
		Detail:   "The render context was cancelled before the tree was written.",
	},
	"E004": {
		Category: CategoryRender,
		Message:  "Tree too deep",
		Detail:   "The node tree exceeds the maximum nesting depth.",
	},

	// ============================================
	// Diff and Dispatch Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryDiff,
		Message:  "Listener not found",
		Detail:   "No callback is bound for this element and event type. The view may have re-rendered without it.",
	},
	"E021": {
		Category: CategoryValidation,
		Message:  "Invalid attribute name",
		Detail:   "Attribute names must be non-empty.",
	},

	// ============================================
	// Protocol Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryProtocol,
		Message:  "Invalid frame",
		Detail:   "The binary frame could not be decoded.",
	},
	"E041": {
		Category: CategoryProtocol,
		Message:  "Frame limit exceeded",
		Detail:   "The frame declares more data than the configured limits allow.",
	},
	"E042": {
		Category: CategoryProtocol,
		Message:  "Unknown patch op",
		Detail:   "The frame contains a patch op this decoder does not support.",
	},
	"E043": {
		Category: CategoryProtocol,
		Message:  "Connection failed",
		Detail:   "The live connection could not be established or was closed unexpectedly.",
	},

	// ============================================
	// Config Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No vattr.json was found.",
	},
	"E061": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"E062": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range.",
	},

	// ============================================
	// Publish Errors (E080-E089)
	// ============================================

	"E080": {
		Category: CategoryPublish,
		Message:  "Invalid publish target",
		Detail:   "Publish targets must be a directory path or an s3://bucket/key URL.",
	},
	"E081": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "The rendered output could not be stored.",
	},

	// ============================================
	// CLI Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryCLI,
		Message:  "Unknown state",
		Detail:   "The requested demo state does not exist.",
	},
	"E101": {
		Category: CategoryCLI,
		Message:  "Server failed",
		Detail:   "The HTTP server stopped with an error.",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
