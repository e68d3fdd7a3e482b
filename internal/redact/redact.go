// Package redact removes credentials and other sensitive fragments from
// strings before they are logged. Errors from the Gemini client can echo
// request URLs, headers or local file paths; everything passed to a log
// attribute as error text goes through Error first.
package redact

import (
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order; key-specific rules run before the generic
// path rule so URLs are not half-redacted.
var rules = []rule{
	// Google API keys, as used by the Gemini API.
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},
	// key=... query parameters.
	{regexp.MustCompile(`(?i)([?&]key=)[^&\s"']+`), "${1}" + RedactedKeyPlaceholder},
	// Authorization headers.
	{regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=]{8,}`), "${1}" + RedactedCredentialPlaceholder},
	// Generic "api_key: value" / "token=value" pairs.
	{
		regexp.MustCompile(`(?i)((?:api[_-]?key|x-goog-api-key|token|secret|password)['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		"${1}" + RedactedKeyPlaceholder,
	},
	// Credentials embedded in URLs.
	{regexp.MustCompile(`(?i)([a-z][a-z0-9+.\-]*://)[^/@\s]+@`), "${1}" + RedactedCredentialPlaceholder + "@"},
	// Absolute unix paths with at least two segments.
	{regexp.MustCompile(`(?:^|\s)(/[\w.\-]+){2,}`), " " + RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
