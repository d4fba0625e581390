package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength defines the maximum allowed length for feed and article URLs.
const maxURLLength = 2048

// ValidateFeedURL validates the format of a feed or article URL.
// It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and has a valid host.
// Returns a ValidationError if the URL is invalid or empty.
func ValidateFeedURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host"}
	}

	return nil
}

// ValidateLanguageCode checks that a language code is either the unknown sentinel or a
// two-letter ISO 639-1 code.
func ValidateLanguageCode(code string) error {
	if code == LangUnknown {
		return nil
	}
	if len(code) != 2 {
		return &ValidationError{
			Field:   "language",
			Message: fmt.Sprintf("language code must be 2 letters or %q, got %q", LangUnknown, code),
		}
	}
	return nil
}
