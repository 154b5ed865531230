package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/wymowa/internal/batch"
	"codeberg.org/snonux/wymowa/internal/phonetic"
)

func results(t *testing.T, words ...string) []batch.Result {
	t.Helper()
	tr, err := phonetic.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return batch.Run(context.Background(), tr, words, 2)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatText, results(t, "dąb", "quasi"), " "); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if lines[0] != "dąb\td o m b" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "quasi\t!unrecognized character") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestWriteTextSeparator(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatText, results(t, "kot"), "."); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "kot\tk.o.t\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteIPA(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatIPA, results(t, "szczaw"), " "); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "szczaw\t/ʂt͡ʂav/\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatYAML, results(t, "bąk", "café"), " "); err != nil {
		t.Fatal(err)
	}

	var docs []yamlResult
	if err := yaml.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("output is not valid yaml: %v\n%s", err, buf.String())
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}

	if docs[0].Word != "bąk" || docs[0].IPA != "bɔŋk" || len(docs[0].Phones) != 4 {
		t.Errorf("unexpected first result %+v", docs[0])
	}
	if docs[0].Phones[2].Features != "voiced velar nasal" {
		t.Errorf("features of %s = %q", docs[0].Phones[2].Symbol, docs[0].Phones[2].Features)
	}
	if docs[1].Error == "" || docs[1].Phones != nil {
		t.Errorf("unexpected failed result %+v", docs[1])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, "xml", nil, " "); err == nil {
		t.Error("Expected error for unknown format")
	}
}
