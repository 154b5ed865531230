package phonetic

import (
	"errors"
	"testing"

	"codeberg.org/snonux/wymowa/internal/phone"
	"codeberg.org/snonux/wymowa/internal/phonetic/pl"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantLang string
		wantErr  bool
	}{
		{"nil config", nil, "pl", false},
		{"polish", &Config{Language: "pl"}, "pl", false},
		{"upper case code", &Config{Language: "PL"}, "pl", false},
		{"unsupported", &Config{Language: "bg"}, "", true},
		{"empty", &Config{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tr.Language() != tt.wantLang {
				t.Errorf("Language() = %q, want %q", tr.Language(), tt.wantLang)
			}
		})
	}
}

func TestNewPassesOptions(t *testing.T) {
	plain, _ := New(&Config{Language: "pl"})
	denasal, _ := New(&Config{Language: "pl", DenasalizeFinalE: true})

	ps, err := plain.Transcribe("idę")
	if err != nil {
		t.Fatal(err)
	}
	if got := Symbols(ps, " "); got != "i d e wx" {
		t.Errorf("plain = %q, want %q", got, "i d e wx")
	}

	ps, err = denasal.Transcribe("idę")
	if err != nil {
		t.Fatal(err)
	}
	if got := Symbols(ps, " "); got != "i d e" {
		t.Errorf("denasalized = %q, want %q", got, "i d e")
	}
}

func TestTranscribeFailure(t *testing.T) {
	tr, _ := New(nil)
	ps, err := tr.Transcribe("café")
	if !errors.Is(err, phone.ErrUnrecognizedCharacter) {
		t.Errorf("error = %v, want ErrUnrecognizedCharacter", err)
	}
	if ps != nil {
		t.Errorf("got partial result %v", ps)
	}
}

func TestFormat(t *testing.T) {
	ps := []phone.Phone{pl.Sz, pl.Y, pl.Ci}

	if got := Symbols(ps, " "); got != "sz y ci" {
		t.Errorf("Symbols = %q", got)
	}
	if got := IPA(ps, ""); got != "ʂɨt͡ɕ" {
		t.Errorf("IPA = %q", got)
	}
	if got := Symbols(nil, " "); got != "" {
		t.Errorf("Symbols(nil) = %q, want empty", got)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		phone phone.Phone
		want  string
	}{
		{pl.B, "voiced bilabial stop"},
		{pl.Sz, "voiceless retroflex fricative"},
		{pl.Dzi, "voiced alveolopalatal affricate"},
		{pl.Wx, "voiced labiovelar approximant"},
		{pl.O, "back mid rounded oral vowel"},
		{pl.Y, "center high unrounded oral vowel"},
	}

	for _, tt := range tests {
		t.Run(tt.phone.Name(), func(t *testing.T) {
			if got := Describe(tt.phone); got != tt.want {
				t.Errorf("Describe(%s) = %q, want %q", tt.phone.Name(), got, tt.want)
			}
		})
	}
}

func TestInventory(t *testing.T) {
	ps, err := Inventory("pl")
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != len(pl.Phones()) {
		t.Errorf("Inventory has %d phones, want %d", len(ps), len(pl.Phones()))
	}

	if _, err := Inventory("xx"); err == nil {
		t.Error("expected error for unsupported language")
	}
}
