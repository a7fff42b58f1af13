package importer

import (
	"net/url"
	"strings"
)

// NormalizeSlug canonicalizes a raw slug or URL value into the stable
// storage key. It returns "" when no usable slug can be derived.
//
// Rules, in order: trim whitespace; strip all leading and trailing slashes;
// if the value is an absolute http(s) URL, keep only its path component
// (slashes stripped again). Case is preserved: slugs are case-sensitive as
// provided.
func NormalizeSlug(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.Trim(s, "/")

	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		u, err := url.Parse(s)
		if err != nil {
			return ""
		}
		s = strings.Trim(u.Path, "/")
	}

	return s
}
