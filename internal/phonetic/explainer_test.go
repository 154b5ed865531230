package phonetic

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/wymowa/internal/testutil"
)

func TestNewExplainer(t *testing.T) {
	explainer := NewExplainer("test-api-key", "")

	if explainer == nil {
		t.Fatal("NewExplainer returned nil")
	}
	if explainer.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", explainer.apiKey)
	}
	if explainer.model != "gpt-4o-mini" {
		t.Errorf("Expected default model gpt-4o-mini, got '%s'", explainer.model)
	}
	if explainer.client == nil {
		t.Error("OpenAI client not initialized")
	}
	if explainer.breaker == nil {
		t.Error("circuit breaker not initialized")
	}
}

func TestExplain_NoAPIKey(t *testing.T) {
	explainer := NewExplainer("", "")

	_, err := explainer.Explain(context.Background(), "żółw", "ʐuw")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("Expected ErrNoAPIKey, got: %v", err)
	}
}

func TestExplain_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	explainer := NewExplainer(apiKey, "")
	text, err := explainer.Explain(context.Background(), "żółw", "ʐuw")
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}
	if len(text) < 50 {
		t.Error("Explanation seems too short")
	}

	t.Logf("Explanation for 'żółw':\n%s", text)
}

func TestSaveExplanation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "explanations")

	path, err := SaveExplanation(dir, "żółw", "• /ʐ/ - like 's' in 'measure'")
	if err != nil {
		t.Fatalf("SaveExplanation failed: %v", err)
	}
	if filepath.Base(path) != "żółw.txt" {
		t.Errorf("unexpected file name %s", path)
	}

	testutil.AssertFileExists(t, path)
	testutil.AssertFileContains(t, path, "measure")
}

func TestSaveExplanation_InvalidDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	testutil.CreateTestFile(t, file, nil)

	if _, err := SaveExplanation(filepath.Join(file, "sub"), "kot", "x"); err == nil {
		t.Error("Expected error for invalid directory")
	}
}
