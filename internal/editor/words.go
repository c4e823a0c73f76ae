package editor

import "unicode"

// Word boundaries are whitespace transitions as reported by unicode.IsSpace.

// nextWordStart returns the column of the first word that starts after a
// whitespace rune at or beyond column from. When there is none the cursor
// stays at from.
func nextWordStart(text []rune, from int) int {
	if len(text) == 0 {
		return from
	}
	if i := wordStartFrom(text, from-1); i >= 0 {
		return i + 1
	}
	return from
}

// prevWordStart returns the start column of the nearest run of non-space
// runes before column from. Without one the result is (from-1)+1, so the
// cursor stays put.
func prevWordStart(text []rune, from int) int {
	if len(text) == 0 {
		return from
	}
	end := from - 1
	if end > len(text) {
		end = len(text)
	}
	i := end - 1
	for i >= 0 && unicode.IsSpace(text[i]) {
		i--
	}
	if i < 0 {
		return end + 1
	}
	for i > 0 && !unicode.IsSpace(text[i-1]) {
		i--
	}
	return normalizeCol(i + 1)
}

// wordStartFrom returns the index of the first non-space rune directly
// preceded by a space, considering pairs that begin at index i or later.
func wordStartFrom(text []rune, i int) int {
	if i < 0 {
		i = 0
	}
	for j := i; j+1 < len(text); j++ {
		if unicode.IsSpace(text[j]) && !unicode.IsSpace(text[j+1]) {
			return j + 1
		}
	}
	return -1
}

// nonSpaceFrom returns the index of the first non-space rune at index i or
// later.
func nonSpaceFrom(text []rune, i int) int {
	for j := i; j < len(text); j++ {
		if !unicode.IsSpace(text[j]) {
			return j
		}
	}
	return -1
}
