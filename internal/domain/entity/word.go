package entity

import (
	"regexp"
	"strings"
	"unicode"

	domainerrors "cafeteria/internal/domain/errors"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var wordPattern = regexp.MustCompile(`^\p{L}[\p{L}\d_ ]+$`)

// Word is a short piece of text used for names and descriptions. It starts with a
// letter, has at least two characters and may contain letters, digits, '_' and spaces.
type Word struct {
	value string
}

// NewWord validates s and wraps it as a Word.
func NewWord(s string) (Word, error) {
	if !wordPattern.MatchString(s) {
		return Word{}, domainerrors.InvalidArgument(
			"word cannot contain special characters but '_' or spaces, and must have at least two characters",
		)
	}

	return Word{value: s}, nil
}

// MustWord is NewWord for literals known to be valid. It panics otherwise.
func MustWord(s string) Word {
	w, err := NewWord(s)
	if err != nil {
		panic(err)
	}

	return w
}

// String returns the raw text.
func (w Word) String() string {
	return w.value
}

// IsZero reports whether the word was never set.
func (w Word) IsZero() bool {
	return w.value == ""
}

// Equals compares two words ignoring case and diacritics.
func (w Word) Equals(other Word) bool {
	return w.EqualsString(other.value)
}

// EqualsString compares the word to plain text ignoring case and diacritics.
func (w Word) EqualsString(s string) bool {
	return strings.EqualFold(stripAccents(w.value), stripAccents(s))
}

// Compare orders words by their raw text.
func (w Word) Compare(other Word) int {
	return strings.Compare(w.value, other.value)
}

// MarshalText encodes the word as its raw text.
func (w Word) MarshalText() ([]byte, error) {
	return []byte(w.value), nil
}

// UnmarshalText validates text like NewWord. Empty text yields the zero Word.
func (w *Word) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*w = Word{}

		return nil
	}

	parsed, err := NewWord(string(text))
	if err != nil {
		return err
	}
	*w = parsed

	return nil
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}
