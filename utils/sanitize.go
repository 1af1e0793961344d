package utils

import "github.com/microcosm-cc/bluemonday"

var (
	ugcSanitizer    = bluemonday.UGCPolicy()
	strictSanitizer = bluemonday.StrictPolicy()
)

// Sanitize cleans HTML content to prevent XSS attacks.
func Sanitize(input string) string {
	return ugcSanitizer.Sanitize(input)
}

// SanitizeText strips all markup. Used on user-supplied labels and on text
// returned by the content providers, which should never carry HTML.
func SanitizeText(input string) string {
	return strictSanitizer.Sanitize(input)
}
