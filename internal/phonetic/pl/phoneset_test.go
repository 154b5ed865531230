package pl

import (
	"testing"

	"codeberg.org/snonux/wymowa/internal/phone"
)

func TestLookup(t *testing.T) {
	for _, p := range Phones() {
		t.Run(p.Name(), func(t *testing.T) {
			got, ok := Lookup(p.Name())
			if !ok || got != p {
				t.Errorf("Lookup(%q) = %v, %v; want %v", p.Name(), got, ok, p)
			}
			if p.IPA() == "" {
				t.Errorf("%s has no IPA symbol", p.Name())
			}
			if p.Features() == nil {
				t.Errorf("%s has no features", p.Name())
			}
		})
	}

	if _, ok := Lookup("th"); ok {
		t.Error("Lookup(\"th\") found a phone")
	}
}

func TestMustLookup(t *testing.T) {
	if got := MustLookup("dzi"); got != Dzi {
		t.Errorf("MustLookup(\"dzi\") = %v, want dzi", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustLookup(\"th\") did not panic")
		}
	}()
	MustLookup("th")
}

func TestVoicingCounterparts(t *testing.T) {
	pairs := [][2]Phone{
		{P, B}, {T, D}, {K, G},
		{F, V}, {S, Z}, {Sz, Zh}, {Si, Zi}, {H, Gh},
		{C, Dz}, {Cz, Dzh}, {Ci, Dzi},
	}

	for _, pair := range pairs {
		voiceless, voiced := pair[0], pair[1]
		t.Run(voiceless.Name()+"/"+voiced.Name(), func(t *testing.T) {
			if got := voiceless.withPhonation(phone.Voiced); got != voiced {
				t.Errorf("%s voiced = %s, want %s", voiceless, got, voiced)
			}
			if got := voiced.withPhonation(phone.Unvoiced); got != voiceless {
				t.Errorf("%s devoiced = %s, want %s", voiced, got, voiceless)
			}
			if got := voiced.withPhonation(phone.Voiced); got != voiced {
				t.Errorf("%s voiced = %s, want itself", voiced, got)
			}
		})
	}

	// sonorants and vowels have no counterpart
	for _, p := range []Phone{A, M, N, Ni, Ng, L, R, W, J, Wx} {
		if got := p.withPhonation(phone.Unvoiced); got != p {
			t.Errorf("%s devoiced = %s, want itself", p, got)
		}
	}
}

func TestObstruentsAreUnique(t *testing.T) {
	seen := make(map[phone.Consonant]Phone)
	for _, p := range Phones() {
		if !phone.ParticipatesInVoicingAssimilation(p) {
			continue
		}
		c := p.Features().(phone.Consonant)
		if other, ok := seen[c]; ok {
			t.Errorf("%s and %s share features %v", p, other, c)
		}
		seen[c] = p
	}
}
