// internal/app/system/limits/limits.go
package limits

// Request body size limits for various features.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxContactBodySize is the maximum size for a contact form submission,
	// JSON or form-encoded. Larger bodies are treated as unparsable.
	MaxContactBodySize = 64 << 10 // 64 KB
)
