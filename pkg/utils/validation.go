package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL trims and validates a URL string, returning a normalized value
// or an error if the URL is empty, invalid, or not http(s).
func ValidateURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("the link is required")
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("the link scheme must be http or https")
	}
	if u.Host == "" {
		return "", fmt.Errorf("the link must have a host")
	}
	return s, nil
}

// NormalizeName trims and lower-cases a link name, returning an error if
// nothing is left.
func NormalizeName(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", fmt.Errorf("the name is required")
	}
	if strings.ContainsAny(s, "/ ") {
		return "", fmt.Errorf("the name must not contain spaces or slashes")
	}
	return s, nil
}
