// Package i18n resolves the request language from the URL path and looks up
// display strings. The catalog here is a working subset; the full catalog is
// maintained alongside the front-end assets.
package i18n

import "strings"

type Lang string

const (
	LangEN Lang = "en"
	LangFR Lang = "fr"
)

// Locale is a resolved language plus the path prefix that selected it. An
// unprefixed path and an explicit "/en" prefix both resolve to English; the
// empty prefix is a distinct mode so generated links stay unprefixed.
type Locale struct {
	Lang   Lang
	Prefix string
}

// Resolve inspects the first path segment. "fr" selects French, "en" selects
// English with an explicit prefix, anything else falls back to unprefixed
// English.
func Resolve(pathname string) Locale {
	first := firstSegment(pathname)
	switch first {
	case "fr":
		return Locale{Lang: LangFR, Prefix: "/fr"}
	case "en":
		return Locale{Lang: LangEN, Prefix: "/en"}
	default:
		return Locale{Lang: LangEN, Prefix: ""}
	}
}

func firstSegment(pathname string) string {
	for _, seg := range strings.Split(pathname, "/") {
		if seg != "" {
			return seg
		}
	}
	return ""
}

// T looks up a display string: requested language first, English second, the
// raw key verbatim last. It never fails.
func T(lang Lang, key string) string {
	if lang == LangFR {
		if s, ok := fr[key]; ok {
			return s
		}
	}
	if s, ok := en[key]; ok {
		return s
	}
	return key
}

// Path builds a localized path from a prefix and an app path. The home path
// "/" collapses onto the bare prefix (or stays "/" when unprefixed) so no
// double slash or empty path ever escapes.
func Path(prefix, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if prefix == "" {
		return path
	}
	if path == "/" {
		return prefix
	}
	return prefix + path
}

// Strip removes the locale prefix from a request path, leaving the app path.
// "/fr" and "/fr/" both strip to "/".
func Strip(pathname string) string {
	loc := Resolve(pathname)
	if loc.Prefix == "" {
		return pathname
	}
	rest := strings.TrimPrefix(pathname, loc.Prefix)
	if rest == "" {
		return "/"
	}
	return rest
}
