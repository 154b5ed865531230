// Package output renders transcription results.
package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/wymowa/internal/batch"
	"codeberg.org/snonux/wymowa/internal/phonetic"
)

// Supported formats
const (
	FormatText = "text" // word TAB symbols
	FormatIPA  = "ipa"  // word TAB /ipa/
	FormatYAML = "yaml"
)

// Formats lists the accepted values of the format argument of Write
var Formats = []string{FormatText, FormatIPA, FormatYAML}

type yamlPhone struct {
	Symbol   string `yaml:"symbol"`
	IPA      string `yaml:"ipa"`
	Features string `yaml:"features"`
}

type yamlResult struct {
	Word   string      `yaml:"word"`
	IPA    string      `yaml:"ipa,omitempty"`
	Phones []yamlPhone `yaml:"phones,omitempty"`
	Error  string      `yaml:"error,omitempty"`
}

// Write renders results to w. sep separates phone symbols in the text
// format. Failed words are written as "word<TAB>!error" in the line formats.
func Write(w io.Writer, format string, results []batch.Result, sep string) error {
	switch format {
	case FormatText, FormatIPA:
		for _, r := range results {
			if err := writeLine(w, format, r, sep); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		return writeYAML(w, results)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func writeLine(w io.Writer, format string, r batch.Result, sep string) error {
	var err error
	switch {
	case r.Err != nil:
		_, err = fmt.Fprintf(w, "%s\t!%v\n", r.Word, r.Err)
	case format == FormatIPA:
		_, err = fmt.Fprintf(w, "%s\t/%s/\n", r.Word, phonetic.IPA(r.Phones, ""))
	default:
		_, err = fmt.Fprintf(w, "%s\t%s\n", r.Word, phonetic.Symbols(r.Phones, sep))
	}
	return err
}

func writeYAML(w io.Writer, results []batch.Result) error {
	docs := make([]yamlResult, len(results))
	for i, r := range results {
		docs[i].Word = r.Word
		if r.Err != nil {
			docs[i].Error = r.Err.Error()
			continue
		}
		docs[i].IPA = phonetic.IPA(r.Phones, "")
		for _, p := range r.Phones {
			docs[i].Phones = append(docs[i].Phones, yamlPhone{
				Symbol:   p.Name(),
				IPA:      p.IPA(),
				Features: phonetic.Describe(p),
			})
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
