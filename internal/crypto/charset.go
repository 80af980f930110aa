package crypto

import "strings"

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Characters easily confused with one another when read.
	ambiguousChars = "B8G6I1l0OQDS5Z2"
	// Vowels and the digits that look like them.
	vowelChars = "01aeiouyAEIOUY"
)

// Class is a character class with its own fixed pool.
type Class int

const (
	Lowercase Class = iota
	Uppercase
	Digit
	Symbol
)

func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	}
	return "unknown"
}

// Chars returns the literal pool of the class.
func (c Class) Chars() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Digit:
		return digitChars
	case Symbol:
		return symbolChars
	}
	return ""
}

// Contains reports whether ch belongs to the class pool.
func (c Class) Contains(ch byte) bool {
	return strings.IndexByte(c.Chars(), ch) >= 0
}

// Tag labels individual characters across classes.
type Tag int

const (
	Ambiguous Tag = iota
	Vowel
)

func (t Tag) String() string {
	switch t {
	case Ambiguous:
		return "ambiguous"
	case Vowel:
		return "vowel"
	}
	return "unknown"
}

// Chars returns every character carrying the tag.
func (t Tag) Chars() string {
	switch t {
	case Ambiguous:
		return ambiguousChars
	case Vowel:
		return vowelChars
	}
	return ""
}

// Has reports whether ch carries the tag.
func (t Tag) Has(ch byte) bool {
	return strings.IndexByte(t.Chars(), ch) >= 0
}
