package keys

import (
	"regexp"
	"strings"
	"unicode"
)

// Key identifies one logical document across all sources.
type Key string

// String returns the key as a plain string.
func (k Key) String() string {
	return string(k)
}

var (
	urlPattern      = regexp.MustCompile(`/view/([^/?]+)`)
	folderPattern   = regexp.MustCompile(`^([^,]+),\s*(\d{4})`)
	filenamePattern = regexp.MustCompile(`^([^_]+_\d{4})`)
)

// folderDiacritics lists the only substitutions applied to folder titles.
var folderDiacritics = strings.NewReplacer(
	"ș", "s",
	"Ș", "S",
	"ț", "t",
	"Ț", "T",
)

// FromURL extracts the key from a record URL.
// Example: "https://adt.arcanum.com/ro/view/Energetica_1969" -> "Energetica_1969".
func FromURL(url string) (Key, bool) {
	match := urlPattern.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	return Key(match[1]), true
}

// FromFolder extracts the key from a scan folder name.
// Example: "Energetica, 1969 (Anul 17, nr. 2-8)" -> "Energetica_1969".
func FromFolder(name string) (Key, bool) {
	match := folderPattern.FindStringSubmatch(name)
	if match == nil {
		return "", false
	}

	title := strings.TrimSpace(match[1])
	title = folderDiacritics.Replace(title)
	title = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, title)

	if title == "" {
		return "", false
	}
	return Key(title + "_" + match[2]), true
}

// FromFilename extracts the key from a segment filename.
// Example: "StiintaSiTehnica_1964-1627417979__pages400-449.pdf" -> "StiintaSiTehnica_1964".
func FromFilename(filename string) (Key, bool) {
	match := filenamePattern.FindStringSubmatch(filename)
	if match == nil {
		return "", false
	}
	return Key(match[1]), true
}
