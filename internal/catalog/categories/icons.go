package categories

// Icon keys form a closed set mapped to renderer names on the client. Unknown
// keys fall back to the package glyph.
const defaultIcon = "Package"

var knownIcons = map[string]struct{}{
	"Grid": {}, "FlaskConical": {}, "Sparkles": {}, "Heart": {},
	"Droplet": {}, "Package": {}, "ShoppingBag": {}, "Star": {},
	"Zap": {}, "Shield": {}, "Leaf": {}, "Flame": {},
	"Snowflake": {}, "Sun": {}, "Moon": {},
}

// IconFor resolves an icon key to a renderer name, falling back for unknown
// keys instead of failing.
func IconFor(name string) string {
	if _, ok := knownIcons[name]; ok {
		return name
	}
	return defaultIcon
}

// KnownIcon reports whether the key is part of the closed icon set.
func KnownIcon(name string) bool {
	_, ok := knownIcons[name]
	return ok
}
