package helper

import (
	"strings"

	"github.com/gosimple/slug"
)

// MakeSlug derives the URL slug for a title or name.
func MakeSlug(s string) string {
	return slug.Make(strings.TrimSpace(s))
}

func IsSlug(s string) bool {
	return slug.IsSlug(s)
}
