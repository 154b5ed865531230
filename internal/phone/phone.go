package phone

import "errors"

// ErrUnrecognizedCharacter is returned by transcribers when a word contains a
// character that has no pronunciation rule in the target language.
var ErrUnrecognizedCharacter = errors.New("unrecognized character")

// Phone is a single speech sound of some language's inventory. Phone values
// are owned by a language's phoneset table and never change.
type Phone interface {
	// Name is the canonical symbolic name, e.g. "sz".
	Name() string
	// IPA is the International Phonetic Alphabet symbol, e.g. "ʂ".
	IPA() string
	// Features returns either a Vowel or a Consonant.
	Features() Features
}
