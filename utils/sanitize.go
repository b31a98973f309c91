package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// Sanitize strips dangerous HTML from user-submitted comment bodies before
// they reach the store. Plain text passes through untouched.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
