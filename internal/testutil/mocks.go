package testutil

import (
	"fmt"
	"sync"

	"codeberg.org/snonux/wymowa/internal/phone"
)

// MockTranscriber mocks phonetic.Transcriber. Words without a configured
// response or error transcribe to no phones.
type MockTranscriber struct {
	Responses map[string][]phone.Phone
	Errors    map[string]error

	mu    sync.Mutex
	calls []string
}

// Language returns the code of the mocked language
func (m *MockTranscriber) Language() string { return "xx" }

// Transcribe mocks transcribing a word
func (m *MockTranscriber) Transcribe(word string) ([]phone.Phone, error) {
	m.mu.Lock()
	m.calls = append(m.calls, fmt.Sprintf("Transcribe: %s", word))
	m.mu.Unlock()

	if err, ok := m.Errors[word]; ok {
		return nil, err
	}
	return m.Responses[word], nil
}

// Calls returns the recorded calls in no particular order
func (m *MockTranscriber) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
