// Package phone defines the articulatory feature vocabulary shared by all
// languages: vowel and consonant feature values, the Phone capability
// interface each language's inventory implements, and the predicates that
// decide how phones take part in nasal and voicing assimilation.
package phone
