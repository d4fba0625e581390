package respond

import "regexp"

// Provider credentials occasionally end up inside wrapped error messages
// (for example when a client library echoes its request). Mask anything
// that looks like an API key before the message reaches a response.
var apiKeyPattern = regexp.MustCompile(`\b(sk-ant-[A-Za-z0-9_-]+|sk-[A-Za-z0-9_-]{20,}|AIza[A-Za-z0-9_-]{30,})\b`)

// SanitizeError masks API-key-shaped substrings in message.
func SanitizeError(message string) string {
	return apiKeyPattern.ReplaceAllString(message, "[REDACTED]")
}
