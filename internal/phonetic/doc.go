// Package phonetic turns words into phone sequences for the supported
// languages. It selects a language's transcriber, renders phones as symbols,
// IPA or feature descriptions, and can ask OpenAI's GPT models for a
// learner-friendly explanation of a transcription.
package phonetic
