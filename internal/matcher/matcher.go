// Package matcher checks input lines for containing the query substring and returns matching lines in their original order
package matcher

import (
	"iter"
	"slices"
	"strings"
)

// Lines yields every line of contents. '\n' is the separator, a trailing "\r" is dropped
// and the last line is yielded even without a final newline.
func Lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := contents
		for rest != "" {
			line := rest
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				line, rest = rest[:i], rest[i+1:]
			} else {
				rest = ""
			}
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

// Matches yields lines of contents containing query. The sequence can be ranged over any number of times.
func Matches(query, contents string, caseSensitive bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		q := query
		if !caseSensitive {
			q = strings.ToLower(query)
		}

		for line := range Lines(contents) {
			candidate := line
			if !caseSensitive { // -i: сравниваем в нижнем регистре, возвращаем оригинал
				candidate = strings.ToLower(line)
			}
			if !strings.Contains(candidate, q) {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

func Search(query, contents string) []string {
	return Find(query, contents, true)
}

func SearchCaseInsensitive(query, contents string) []string {
	return Find(query, contents, false)
}

// Find collects Matches into a slice; the result is never nil.
func Find(query, contents string, caseSensitive bool) []string {
	result := slices.Collect(Matches(query, contents, caseSensitive))
	if result == nil {
		return []string{}
	}
	return result
}
