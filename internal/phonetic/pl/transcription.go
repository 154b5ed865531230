package pl

import (
	"fmt"
	"slices"

	"codeberg.org/snonux/wymowa/internal/phone"
)

// Language is the ISO 639-1 code of the language handled by this package.
const Language = "pl"

// noChar stands in for letters beyond either end of the word.
const noChar = '#'

// Options tune the transcription rules.
type Options struct {
	// DenasalizeFinalE makes a word-final "ę" surface as a plain [ɛ]
	// instead of [ɛw̃], as in careful colloquial speech.
	DenasalizeFinalE bool
}

// Transcriber converts Polish words into phones. It holds no mutable state
// and is safe for concurrent use.
type Transcriber struct {
	opts Options
}

// NewTranscriber creates a transcriber with the given options.
func NewTranscriber(opts Options) *Transcriber {
	return &Transcriber{opts: opts}
}

var defaultTranscriber = NewTranscriber(Options{})

// Transcribe converts word into phones using the default options.
func Transcribe(word string) ([]Phone, error) {
	return defaultTranscriber.Phones(word)
}

// Language returns "pl".
func (t *Transcriber) Language() string { return Language }

// Transcribe implements phonetic.Transcriber.
func (t *Transcriber) Transcribe(word string) ([]phone.Phone, error) {
	ps, err := t.Phones(word)
	if err != nil {
		return nil, err
	}
	out := make([]phone.Phone, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out, nil
}

// Phones converts word into the sequence of Polish phones it is pronounced
// with. The word is taken as is: upper case letters and characters outside
// the Polish alphabet make the whole transcription fail with
// phone.ErrUnrecognizedCharacter.
func (t *Transcriber) Phones(word string) ([]Phone, error) {
	chars := []rune(word)
	// built back to front, reversed at the end
	rev := make([]Phone, 0, len(chars)+2)

	for i := len(chars) - 1; i >= 0; i-- {
		win := window{
			this:     chars[i],
			prev:     charAt(chars, i-1),
			prevPrev: charAt(chars, i-2),
			next:     charAt(chars, i+1),
			nextNext: charAt(chars, i+2),
		}
		if len(rev) > 0 {
			win.nextPhone = rev[len(rev)-1]
		}

		ps, ok := t.transcribeChar(win)
		if !ok {
			return nil, fmt.Errorf("%w %q in %q", phone.ErrUnrecognizedCharacter, chars[i], word)
		}
		for j := len(ps) - 1; j >= 0; j-- {
			rev = append(rev, ps[j])
		}
	}

	slices.Reverse(rev)
	return rev, nil
}

func charAt(chars []rune, i int) rune {
	if i < 0 || i >= len(chars) {
		return noChar
	}
	return chars[i]
}

// window is everything a single letter's pronunciation may depend on.
type window struct {
	this, prev, prevPrev, next, nextNext rune
	// nextPhone is the first phone of the already transcribed remainder,
	// nil at the end of the word.
	nextPhone phone.Phone
}

func tr(ps ...Phone) ([]Phone, bool) { return ps, true }

func silent() ([]Phone, bool) { return nil, true }

func (t *Transcriber) transcribeChar(c window) ([]Phone, bool) {
	switch c.this {
	case 'a':
		return tr(A)
	case 'ą':
		return tr(nasalVowel(O, c.nextPhone)...)
	case 'b':
		return tr(c.assimilate(B))
	case 'c':
		switch c.next {
		case 'z':
			return tr(c.assimilate(Cz))
		case 'i':
			return tr(c.assimilate(Ci))
		case 'h':
			return tr(c.assimilate(H))
		}
		return tr(c.assimilate(C))
	case 'ć':
		return tr(c.assimilate(Ci))
	case 'd':
		switch c.next {
		case 'z':
			if c.nextNext == 'i' {
				return tr(c.assimilate(Dzi))
			}
			return tr(c.assimilate(Dz))
		case 'ź':
			return tr(c.assimilate(Dzi))
		case 'ż':
			return tr(c.assimilate(Dzh))
		}
		return tr(c.assimilate(D))
	case 'e':
		return tr(E)
	case 'ę':
		if c.nextPhone == nil && t.opts.DenasalizeFinalE {
			return tr(E)
		}
		return tr(nasalVowel(E, c.nextPhone)...)
	case 'f':
		return tr(c.assimilate(F))
	case 'g':
		return tr(c.assimilate(G))
	case 'h':
		if c.prev == 'c' {
			return silent()
		}
		return tr(c.assimilate(H))
	case 'i':
		return c.transcribeI()
	case 'j':
		return tr(J)
	case 'k':
		return tr(c.assimilate(K))
	case 'l':
		return tr(L)
	case 'ł':
		return tr(W)
	case 'm':
		return tr(M)
	case 'n':
		if c.next == 'i' {
			return tr(Ni)
		}
		if cons, ok := featuresOf(c.nextPhone).(phone.Consonant); ok && cons.Place == phone.Velar {
			return tr(Ng)
		}
		return tr(N)
	case 'ń':
		return tr(Ni)
	case 'o':
		return tr(O)
	case 'ó':
		return tr(U)
	case 'p':
		return tr(c.assimilate(P))
	case 'r':
		if c.next == 'z' {
			return tr(c.assimilate(c.afterVoiceless(Zh)))
		}
		return tr(R)
	case 's':
		switch c.next {
		case 'i':
			return tr(c.assimilate(Si))
		case 'z':
			return tr(c.assimilate(Sz))
		}
		return tr(c.assimilate(S))
	case 'ś':
		return tr(c.assimilate(Si))
	case 't':
		return tr(c.assimilate(T))
	case 'u':
		return tr(U)
	case 'w':
		return tr(c.assimilate(c.afterVoiceless(V)))
	case 'y':
		return tr(Y)
	case 'z':
		switch c.prev {
		case 'c', 'd', 'r', 's':
			return silent()
		}
		if c.next == 'i' {
			return tr(c.assimilate(Zi))
		}
		return tr(c.assimilate(Z))
	case 'ź':
		if c.prev == 'd' {
			return silent()
		}
		return tr(c.assimilate(Zi))
	case 'ż':
		if c.prev == 'd' {
			return silent()
		}
		return tr(c.assimilate(Zh))
	}
	return nil, false
}

// transcribeI handles "i", which before a vowel only marks the preceding
// consonant as palatal (that consonant already chose its palatal phone) or
// becomes the glide [j].
func (c window) transcribeI() ([]Phone, bool) {
	if _, ok := featuresOf(c.nextPhone).(phone.Vowel); !ok {
		return tr(I)
	}
	switch c.prev {
	case 'c', 's', 'z', 'n':
		return silent()
	}
	return tr(J)
}

// assimilate applies regressive voicing assimilation: an obstruent takes the
// voicing of the obstruent that follows it.
func (c window) assimilate(p Phone) Phone {
	switch {
	case !phone.ParticipatesInVoicingAssimilation(p):
		return p
	case phone.IsDevoicingTrigger(c.nextPhone):
		return p.withPhonation(phone.Unvoiced)
	case phone.IsVoicingTrigger(c.nextPhone):
		return p.withPhonation(phone.Voiced)
	}
	return p
}

// afterVoiceless devoices "w" and "rz" following a voiceless obstruent
// ("kwiat", "przy"). The result is itself voiceless, so the preceding
// letter keeps its voicelessness when it is transcribed next.
func (c window) afterVoiceless(p Phone) Phone {
	if precededByVoiceless(c.prevPrev, c.prev) {
		return p.withPhonation(phone.Unvoiced)
	}
	return p
}

// precededByVoiceless reports whether the letter (or digraph) ending in prev
// stands for a voiceless obstruent in its dictionary form.
func precededByVoiceless(prevPrev, prev rune) bool {
	switch prev {
	case 'p', 't', 'k', 'f', 's', 'ś', 'c', 'ć', 'h':
		return true
	case 'z':
		return prevPrev == 's' || prevPrev == 'c'
	}
	return false
}

// nasalVowel splits a nasal vowel letter into its oral vowel followed by a
// nasal consonant agreeing in place with a following stop or affricate, or by
// the nasal glide [w̃] anywhere else.
func nasalVowel(oral Phone, next phone.Phone) []Phone {
	if phone.ParticipatesInNasalAssimilation(next) {
		switch next.Features().(phone.Consonant).Place {
		case phone.Bilabial:
			return []Phone{oral, M}
		case phone.Alveolar, phone.Alveolopalatal:
			return []Phone{oral, N}
		case phone.Velar:
			return []Phone{oral, Ng}
		}
	}
	return []Phone{oral, Wx}
}

func featuresOf(p phone.Phone) phone.Features {
	if p == nil {
		return nil
	}
	return p.Features()
}
