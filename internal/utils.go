package internal

import (
	"crypto/md5"
	"encoding/hex"
	"unicode"
)

// EntryID derives a stable identifier for a word in a language
// Format: language_md5(word)[:8]
func EntryID(language, word string) string {
	hash := md5.Sum([]byte(word))
	return language + "_" + hex.EncodeToString(hash[:])[:8]
}

// SanitizeFilename creates a safe filename from a string, keeping letters of
// any script
func SanitizeFilename(s string) string {
	result := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}
	return string(result)
}
