package phone

// A nil Phone stands for "no phone" (the end of a word) in all predicates
// below and never satisfies any of them.

func consonantOf(p Phone) (Consonant, bool) {
	if p == nil {
		return Consonant{}, false
	}
	c, ok := p.Features().(Consonant)
	return c, ok
}

// ParticipatesInNasalAssimilation reports whether p can lend its place of
// articulation to a preceding nasal vowel. Only stops and affricates do.
func ParticipatesInNasalAssimilation(p Phone) bool {
	c, ok := consonantOf(p)
	if !ok {
		return false
	}
	switch c.Manner {
	case Stop, Affricate:
		return true
	}
	return false
}

// ParticipatesInVoicingAssimilation reports whether p is an obstruent.
func ParticipatesInVoicingAssimilation(p Phone) bool {
	c, ok := consonantOf(p)
	if !ok {
		return false
	}
	switch c.Manner {
	case Stop, Fricative, Affricate:
		return true
	}
	return false
}

// IsDevoicingTrigger reports whether p devoices a preceding obstruent.
func IsDevoicingTrigger(p Phone) bool {
	c, ok := consonantOf(p)
	return ok && ParticipatesInVoicingAssimilation(p) && c.Phonation == Unvoiced
}

// IsVoicingTrigger reports whether p voices a preceding obstruent.
func IsVoicingTrigger(p Phone) bool {
	c, ok := consonantOf(p)
	return ok && ParticipatesInVoicingAssimilation(p) && c.Phonation == Voiced && c.Manner != Nasal
}
