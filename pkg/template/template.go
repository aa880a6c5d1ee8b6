// Package template implements the line-oriented placeholder substitution
// used to render workspace files. Placeholders take the form {{identifier}};
// substitution is single-pass and non-recursive, so a resolved value is
// never re-scanned for further placeholders.
package template

import "regexp"

// placeholderPattern matches a double-brace-delimited identifier,
// non-greedily, allowing any characters other than the closing delimiter
// inside.
var placeholderPattern = regexp.MustCompile(`\{\{[^}]+?\}\}`)

// Resolver maps a full placeholder match (braces included) to its
// replacement value. A resolver error aborts the substitution.
type Resolver func(placeholder string) (string, error)

// IsTemplated reports whether the line contains at least one placeholder.
// Callers check this before handing a line to Substitute.
func IsTemplated(line string) bool {
	return placeholderPattern.MatchString(line)
}

// Substitute replaces every non-overlapping placeholder in the line, left to
// right, with the resolver's return value. Placeholders are resolved
// independently of each other. On the first resolver error the original
// error is returned and no partial result is produced.
func Substitute(line string, resolve Resolver) (string, error) {
	var resolveErr error

	result := placeholderPattern.ReplaceAllStringFunc(line, func(match string) string {
		if resolveErr != nil {
			return match
		}
		value, err := resolve(match)
		if err != nil {
			resolveErr = err
			return match
		}
		return value
	})

	if resolveErr != nil {
		return "", resolveErr
	}
	return result, nil
}
