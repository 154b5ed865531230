// Package processor contains the core business logic for processing Polish
// words. It orchestrates transcription, output rendering, lexicon storage
// and pronunciation explanations. This package serves as the main
// coordinator between all other components.
package processor
