// Package samples provides canned API error responses for the demo, plus a
// reader for user-supplied response streams.
package samples

// Responses returns the built-in demo responses in play order. Each call
// builds fresh maps, so callers are free to mutate the result.
func Responses() []map[string]any {
	return []map[string]any{
		{"error": "Invalid token", "code": 401},
		{"message": "Not found", "success": false},
		{"err": "Database timeout", "trace": "java.lang..."},
		{"status": "error", "details": "Missing parameter"},
		{"fault": map[string]any{"faultstring": "Rate limit exceeded"}},
		{"result": "failure", "data": nil},
	}
}
