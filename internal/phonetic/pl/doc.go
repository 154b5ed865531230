// Package pl implements Polish grapheme-to-phone transcription. Words are
// scanned right to left so that every letter can see both the raw letters
// around it and the phones already chosen for the rest of the word, which is
// what digraphs, nasal vowels and voicing assimilation depend on.
package pl
