package memory

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var captionSeparators = strings.NewReplacer("_", " ", "-", " ", ".", " ", "+", " ")

// Caption derives readable alt text from an asset name:
// "2022-09-23_beach-day.jpg" becomes "Beach Day".
func Caption(name string) string {
	base := path.Base(strings.TrimSpace(name))
	if base == "." || base == "/" {
		return "Memory"
	}
	base = strings.TrimSuffix(base, path.Ext(base))
	if key := dateKeyPattern.FindString(base); key != "" {
		base = strings.Replace(base, key, " ", 1)
	}
	words := strings.Fields(captionSeparators.Replace(base))
	if len(words) == 0 {
		return "Memory"
	}
	return cases.Title(language.Und).String(strings.Join(words, " "))
}
