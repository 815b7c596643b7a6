package biolink

import (
	"fmt"
	"unicode"

	"github.com/translator-tools/reasoner-converter/api/common"
	"github.com/translator-tools/reasoner-converter/pkg/rcerrors"
)

// SnakeCase converts a term, or each term of a list, to snake_case. It accepts
// a string, a []string, a []any of strings or a common.OneOrMany[string] and
// returns a value of the same shape.
func SnakeCase(arg any) (any, error) {
	return applyCase(arg, snakeCase)
}

// PascalCase converts a term, or each term of a list, to PascalCase. It accepts
// the same inputs as SnakeCase.
func PascalCase(arg any) (any, error) {
	return applyCase(arg, pascalCase)
}

func applyCase(arg any, fn func(string) string) (any, error) {
	switch v := arg.(type) {
	case string:
		return fn(v), nil
	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			out[i] = fn(s)
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list item %d is %T, not a term: %w", i, item, rcerrors.ErrInvalidArgument)
			}
			out[i] = fn(s)
		}
		return out, nil
	case common.OneOrMany[string]:
		return common.MapOneOrMany(v, fn), nil
	default:
		return nil, fmt.Errorf("%T is neither a term nor a list of terms: %w", arg, rcerrors.ErrInvalidArgument)
	}
}

// snakeCase rewrites non-word characters as underscores and splits camel humps.
// An upper-case letter only starts a new word when it sits between two
// lower-case letters, so acronyms and digits pass through untouched.
func snakeCase(s string) string {
	in := []rune(s)
	for i, r := range in {
		if !isWord(r) {
			in[i] = '_'
		}
	}

	out := make([]rune, 0, len(in)+4)
	for i, r := range in {
		if i > 0 && i+1 < len(in) && isLower(in[i-1]) && isUpper(r) && isLower(in[i+1]) {
			out = append(out, '_', unicode.ToLower(r))
			continue
		}
		out = append(out, r)
	}

	if len(out) > 1 && isUpper(out[0]) && isLower(out[1]) {
		out[0] = unicode.ToLower(out[0])
	}
	return string(out)
}

// pascalCase joins underscore-separated words. An underscore is only dropped
// when a letter precedes it and a lower-case letter follows it.
func pascalCase(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); i++ {
		if in[i] == '_' && i > 0 && i+1 < len(in) && isLetter(in[i-1]) && isLower(in[i+1]) {
			out = append(out, unicode.ToUpper(in[i+1]))
			i++
			continue
		}
		out = append(out, in[i])
	}

	if len(out) > 0 && isLower(out[0]) {
		out[0] = unicode.ToUpper(out[0])
	}
	return string(out)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLetter(r rune) bool {
	return isLower(r) || isUpper(r)
}
