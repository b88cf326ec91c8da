package errors

import (
	"strings"
	"unicode"
)

// ValidateURL validates a repository URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidURL, "repository URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidURL, "repository URL %q must use http or https scheme", rawURL)
	}

	return nil
}

// ValidateRepoPath validates a local test-repository path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateRepoPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "test-repository path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "test-repository path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "test-repository path contains invalid characters")
		}
	}

	return nil
}
