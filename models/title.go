package models

import "strings"

// titleEscaper mirrors what a browser produces when text is assigned as
// textContent and read back as innerHTML.
var titleEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var titleUnescaper = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
)

// EscapeTitle escapes markup in a user supplied title.
func EscapeTitle(s string) string {
	return titleEscaper.Replace(s)
}

// UnescapeTitle returns the text a user typed for a stored title. It is the
// exact inverse of EscapeTitle.
func UnescapeTitle(s string) string {
	return titleUnescaper.Replace(s)
}

// IsEscapedTitle reports whether s could have been produced by EscapeTitle,
// i.e. it holds no raw markup and no stray ampersand.
func IsEscapedTitle(s string) bool {
	return EscapeTitle(UnescapeTitle(s)) == s
}
