package phonetic

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/wymowa/internal/phone"
	"codeberg.org/snonux/wymowa/internal/phonetic/pl"
)

// Transcriber converts orthographic words of one language into phones
type Transcriber interface {
	// Language returns the ISO 639-1 code of the language
	Language() string

	// Transcribe returns the phones of word, or an error wrapping
	// phone.ErrUnrecognizedCharacter
	Transcribe(word string) ([]phone.Phone, error)
}

// Config selects and tunes a transcriber
type Config struct {
	Language string // ISO 639-1 code, only "pl" for now

	// Polish-specific settings
	DenasalizeFinalE bool
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Language: pl.Language,
	}
}

// New creates the transcriber for the configured language
func New(config *Config) (Transcriber, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch strings.ToLower(config.Language) {
	case pl.Language:
		return pl.NewTranscriber(pl.Options{DenasalizeFinalE: config.DenasalizeFinalE}), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", config.Language)
	}
}

// Inventory returns the phone inventory of a supported language
func Inventory(language string) ([]phone.Phone, error) {
	switch strings.ToLower(language) {
	case pl.Language:
		ps := pl.Phones()
		out := make([]phone.Phone, len(ps))
		for i, p := range ps {
			out[i] = p
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", language)
	}
}
