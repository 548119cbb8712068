package shared

import (
	"regexp"
	"strings"
)

// Category and payment-method identifiers are user-supplied keys in
// kebab-case, e.g. "weight-management" or "bank-transfer".
var kebabKey = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateKey checks that id is a well-formed kebab-case key.
func ValidateKey(id string) error {
	if !kebabKey.MatchString(id) {
		return ErrInvalidKey
	}
	return nil
}

// Slugify derives a kebab-case key from a display name. The result may still
// fail ValidateKey for names with no usable characters.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastHyphen := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
