package utils

import (
	"reflect"
	"strings"
	"unicode"
)

func NewTrue() *bool {
	b := true
	return &b
}

// returns slice removing duplicate elements
func UniqueSlice[T comparable](slice []T) []T {
	inResult := make(map[T]bool)
	var result []T
	for _, elm := range slice {
		if _, ok := inResult[elm]; !ok {
			inResult[elm] = true
			result = append(result, elm)
		}
	}
	return result
}

// LikeEscapeChar is used in every LIKE predicate the search engine emits.
// '!' is portable across MySQL and sqlite, unlike a bare backslash.
const LikeEscapeChar = "!"

// EscapeLike neutralizes LIKE wildcards in user-supplied text so prefix,
// suffix and partial matches treat '%' and '_' literally.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, LikeEscapeChar, LikeEscapeChar+LikeEscapeChar)
	s = strings.ReplaceAll(s, "%", LikeEscapeChar+"%")
	s = strings.ReplaceAll(s, "_", LikeEscapeChar+"_")
	return s
}

// TypeName returns a human-readable label for T, e.g. "ship destination"
// for ShipDestination. Used by not-found errors.
func TypeName[T any]() string {
	var v T
	t := reflect.TypeOf(&v).Elem()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return humanizeTypeName(t.Name())
}

func humanizeTypeName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune(' ')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
