// Package people discovers the portraits to drill on and derives each
// person's identifier and display name from the image filename.
package people

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ProfileSuffix marks the end of the identifier in a portrait filename,
// e.g. "alice_jones_profile.png".
const ProfileSuffix = "_profile"

// imageExts lists the file extensions treated as portraits.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// Person is one quizzable person.
type Person struct {
	// ID is the stable identifier used as the score key.
	ID string
	// Name is the display name shown in feedback.
	Name string
	// Path is the portrait image file.
	Path string
}

// ParseFilename derives the identifier and display name from a portrait
// path. Only the base name is considered, so the result does not depend on
// directory depth. The identifier is the base name without its extension,
// cut at the first "_profile" if present. ok is false for files that are
// not portraits: hidden files, unknown extensions, or an empty identifier.
func ParseFilename(path string) (id, name string, ok bool) {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) || strings.HasPrefix(base, ".") {
		return "", "", false
	}

	ext := filepath.Ext(base)
	if !imageExts[strings.ToLower(ext)] {
		return "", "", false
	}

	id = strings.TrimSuffix(base, ext)
	if i := strings.Index(id, ProfileSuffix); i >= 0 {
		id = id[:i]
	}
	if strings.TrimFunc(id, isSeparator) == "" {
		return "", "", false
	}
	return id, DisplayName(id), true
}

// DisplayName turns an identifier such as "mary-kate_olsen" into
// "Mary Kate Olsen".
func DisplayName(id string) string {
	words := strings.FieldsFunc(id, isSeparator)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
