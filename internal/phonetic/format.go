package phonetic

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/wymowa/internal/phone"
)

// Symbols joins the symbolic names of phones with sep
func Symbols(phones []phone.Phone, sep string) string {
	ss := make([]string, len(phones))
	for i, p := range phones {
		ss[i] = p.Name()
	}
	return strings.Join(ss, sep)
}

// IPA joins the IPA symbols of phones with sep
func IPA(phones []phone.Phone, sep string) string {
	ss := make([]string, len(phones))
	for i, p := range phones {
		ss[i] = p.IPA()
	}
	return strings.Join(ss, sep)
}

// Describe names the articulatory features of a phone, e.g.
// "voiced bilabial stop"
func Describe(p phone.Phone) string {
	switch f := p.Features().(type) {
	case phone.Vowel:
		return f.String()
	case phone.Consonant:
		return f.String()
	default:
		panic(fmt.Sprintf("phonetic: unexpected features %T", f))
	}
}
