package phone

// Frontness is the horizontal tongue position of a vowel.
type Frontness uint8

const (
	Front Frontness = iota
	Center
	Back
)

func (f Frontness) String() string {
	switch f {
	case Front:
		return "front"
	case Center:
		return "center"
	case Back:
		return "back"
	}
	return "unknown"
}

// Height is the vertical tongue position of a vowel.
type Height uint8

const (
	High Height = iota
	Mid
	Low
)

func (h Height) String() string {
	switch h {
	case High:
		return "high"
	case Mid:
		return "mid"
	case Low:
		return "low"
	}
	return "unknown"
}

// Roundness tells whether the lips are rounded.
type Roundness uint8

const (
	Rounded Roundness = iota
	Unrounded
)

func (r Roundness) String() string {
	switch r {
	case Rounded:
		return "rounded"
	case Unrounded:
		return "unrounded"
	}
	return "unknown"
}

// Nasality of a vowel.
type Nasality uint8

const (
	Oral Nasality = iota
	AsynchronousNasal
	SynchronousNasal
)

func (n Nasality) String() string {
	switch n {
	case Oral:
		return "oral"
	case AsynchronousNasal:
		return "asynchronous nasal"
	case SynchronousNasal:
		return "synchronous nasal"
	}
	return "unknown"
}

// Manner of articulation of a consonant.
type Manner uint8

const (
	Stop Manner = iota
	Approximant
	Fricative
	Affricate
	Trill
	Nasal
	Lateral
)

func (m Manner) String() string {
	switch m {
	case Stop:
		return "stop"
	case Approximant:
		return "approximant"
	case Fricative:
		return "fricative"
	case Affricate:
		return "affricate"
	case Trill:
		return "trill"
	case Nasal:
		return "nasal"
	case Lateral:
		return "lateral"
	}
	return "unknown"
}

// Place of articulation of a consonant.
type Place uint8

const (
	Bilabial Place = iota
	Labiodental
	Dental
	Alveolar
	Palatoalveolar
	Retroflex
	Alveolopalatal
	Palatal
	Velar
	Labiovelar
	Uvular
	Pharyngeal
	Glottal
)

var placeNames = [...]string{
	Bilabial:       "bilabial",
	Labiodental:    "labiodental",
	Dental:         "dental",
	Alveolar:       "alveolar",
	Palatoalveolar: "palatoalveolar",
	Retroflex:      "retroflex",
	Alveolopalatal: "alveolopalatal",
	Palatal:        "palatal",
	Velar:          "velar",
	Labiovelar:     "labiovelar",
	Uvular:         "uvular",
	Pharyngeal:     "pharyngeal",
	Glottal:        "glottal",
}

func (p Place) String() string {
	if int(p) < len(placeNames) {
		return placeNames[p]
	}
	return "unknown"
}

// Phonation tells whether the vocal folds vibrate.
type Phonation uint8

const (
	Voiced Phonation = iota
	Unvoiced
)

func (p Phonation) String() string {
	switch p {
	case Voiced:
		return "voiced"
	case Unvoiced:
		return "voiceless"
	}
	return "unknown"
}

// Features is the feature tuple of a phone. It is implemented by exactly two
// types, Vowel and Consonant; switch on the concrete type to inspect it.
type Features interface {
	isFeatures()
}

// Vowel holds the features of a vowel phone.
type Vowel struct {
	Frontness Frontness
	Height    Height
	Roundness Roundness
	Nasality  Nasality
}

// Consonant holds the features of a consonant phone.
type Consonant struct {
	Manner    Manner
	Place     Place
	Phonation Phonation
}

func (Vowel) isFeatures()     {}
func (Consonant) isFeatures() {}

// String renders the vowel as e.g. "back mid rounded oral vowel".
func (v Vowel) String() string {
	return v.Frontness.String() + " " + v.Height.String() + " " +
		v.Roundness.String() + " " + v.Nasality.String() + " vowel"
}

// String renders the consonant as e.g. "voiced bilabial stop".
func (c Consonant) String() string {
	return c.Phonation.String() + " " + c.Place.String() + " " + c.Manner.String()
}
