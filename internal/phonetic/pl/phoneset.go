package pl

import (
	"fmt"

	"codeberg.org/snonux/wymowa/internal/phone"
)

// Phone is a member of the Polish phone inventory.
type Phone uint8

const (
	A Phone = iota
	E
	I
	Y
	O
	U

	P
	B
	T
	D
	K
	G

	F
	V
	S
	Z
	Sz
	Zh
	Si
	Zi
	H
	Gh

	C
	Dz
	Cz
	Dzh
	Ci
	Dzi

	M
	N
	Ni
	Ng

	L
	R
	W
	J
	Wx

	numPhones
)

type phoneInfo struct {
	name     string
	ipa      string
	features phone.Features
}

func vowel(name, ipa string, f phone.Frontness, h phone.Height, r phone.Roundness) phoneInfo {
	return phoneInfo{name, ipa, phone.Vowel{Frontness: f, Height: h, Roundness: r, Nasality: phone.Oral}}
}

func consonant(name, ipa string, m phone.Manner, p phone.Place, ph phone.Phonation) phoneInfo {
	return phoneInfo{name, ipa, phone.Consonant{Manner: m, Place: p, Phonation: ph}}
}

var phoneset = [numPhones]phoneInfo{
	A: vowel("a", "a", phone.Front, phone.Low, phone.Unrounded),
	E: vowel("e", "ɛ", phone.Front, phone.Mid, phone.Unrounded),
	I: vowel("i", "i", phone.Front, phone.High, phone.Unrounded),
	Y: vowel("y", "ɨ", phone.Center, phone.High, phone.Unrounded),
	O: vowel("o", "ɔ", phone.Back, phone.Mid, phone.Rounded),
	U: vowel("u", "u", phone.Back, phone.High, phone.Rounded),

	P: consonant("p", "p", phone.Stop, phone.Bilabial, phone.Unvoiced),
	B: consonant("b", "b", phone.Stop, phone.Bilabial, phone.Voiced),
	T: consonant("t", "t", phone.Stop, phone.Alveolar, phone.Unvoiced),
	D: consonant("d", "d", phone.Stop, phone.Alveolar, phone.Voiced),
	K: consonant("k", "k", phone.Stop, phone.Velar, phone.Unvoiced),
	G: consonant("g", "ɡ", phone.Stop, phone.Velar, phone.Voiced),

	F:  consonant("f", "f", phone.Fricative, phone.Labiodental, phone.Unvoiced),
	V:  consonant("v", "v", phone.Fricative, phone.Labiodental, phone.Voiced),
	S:  consonant("s", "s", phone.Fricative, phone.Alveolar, phone.Unvoiced),
	Z:  consonant("z", "z", phone.Fricative, phone.Alveolar, phone.Voiced),
	Sz: consonant("sz", "ʂ", phone.Fricative, phone.Retroflex, phone.Unvoiced),
	Zh: consonant("zh", "ʐ", phone.Fricative, phone.Retroflex, phone.Voiced),
	Si: consonant("si", "ɕ", phone.Fricative, phone.Alveolopalatal, phone.Unvoiced),
	Zi: consonant("zi", "ʑ", phone.Fricative, phone.Alveolopalatal, phone.Voiced),
	H:  consonant("h", "x", phone.Fricative, phone.Velar, phone.Unvoiced),
	Gh: consonant("gh", "ɣ", phone.Fricative, phone.Velar, phone.Voiced),

	C:   consonant("c", "t͡s", phone.Affricate, phone.Alveolar, phone.Unvoiced),
	Dz:  consonant("dz", "d͡z", phone.Affricate, phone.Alveolar, phone.Voiced),
	Cz:  consonant("cz", "t͡ʂ", phone.Affricate, phone.Retroflex, phone.Unvoiced),
	Dzh: consonant("dzh", "d͡ʐ", phone.Affricate, phone.Retroflex, phone.Voiced),
	Ci:  consonant("ci", "t͡ɕ", phone.Affricate, phone.Alveolopalatal, phone.Unvoiced),
	Dzi: consonant("dzi", "d͡ʑ", phone.Affricate, phone.Alveolopalatal, phone.Voiced),

	M:  consonant("m", "m", phone.Nasal, phone.Bilabial, phone.Voiced),
	N:  consonant("n", "n", phone.Nasal, phone.Alveolar, phone.Voiced),
	Ni: consonant("ni", "ɲ", phone.Nasal, phone.Alveolopalatal, phone.Voiced),
	Ng: consonant("ng", "ŋ", phone.Nasal, phone.Velar, phone.Voiced),

	L:  consonant("l", "l", phone.Lateral, phone.Alveolar, phone.Voiced),
	R:  consonant("r", "r", phone.Trill, phone.Alveolar, phone.Voiced),
	W:  consonant("w", "w", phone.Approximant, phone.Labiovelar, phone.Voiced),
	J:  consonant("j", "j", phone.Approximant, phone.Palatal, phone.Voiced),
	Wx: consonant("wx", "w̃", phone.Approximant, phone.Labiovelar, phone.Voiced),
}

var (
	byName map[string]Phone
	// obstruents indexed by feature tuple, for finding voicing counterparts
	obstruents map[phone.Consonant]Phone
)

func init() {
	byName = make(map[string]Phone, numPhones)
	obstruents = make(map[phone.Consonant]Phone)
	for p := Phone(0); p < numPhones; p++ {
		byName[p.Name()] = p
		if phone.ParticipatesInVoicingAssimilation(p) {
			obstruents[p.Features().(phone.Consonant)] = p
		}
	}
}

// Name returns the symbolic name of the phone.
func (p Phone) Name() string { return p.info().name }

// IPA returns the IPA symbol of the phone.
func (p Phone) IPA() string { return p.info().ipa }

// Features returns the articulatory features of the phone.
func (p Phone) Features() phone.Features { return p.info().features }

func (p Phone) String() string { return p.Name() }

func (p Phone) info() *phoneInfo {
	if p >= numPhones {
		panic(fmt.Sprintf("pl: invalid phone %d", uint8(p)))
	}
	return &phoneset[p]
}

// withPhonation returns the obstruent that differs from p only in phonation.
// Phones without such a counterpart are returned unchanged.
func (p Phone) withPhonation(ph phone.Phonation) Phone {
	c, ok := p.Features().(phone.Consonant)
	if !ok || c.Phonation == ph {
		return p
	}
	c.Phonation = ph
	if q, ok := obstruents[c]; ok {
		return q
	}
	return p
}

// Phones returns the complete Polish inventory in table order.
func Phones() []Phone {
	ps := make([]Phone, numPhones)
	for i := range ps {
		ps[i] = Phone(i)
	}
	return ps
}

// Lookup finds a phone by its symbolic name.
func Lookup(name string) (Phone, bool) {
	p, ok := byName[name]
	return p, ok
}

// MustLookup is like Lookup but panics if the name is not in the inventory.
func MustLookup(name string) Phone {
	p, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("pl: unknown phone %q", name))
	}
	return p
}
