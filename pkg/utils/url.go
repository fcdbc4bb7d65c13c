package utils

import "strings"

// MediaURL expands a stored object key into a public URL. Empty keys stay empty.
func MediaURL(staticURL, key string) string {
	if key == "" {
		return ""
	}

	return strings.TrimRight(staticURL, "/") + "/" + strings.TrimLeft(key, "/")
}
