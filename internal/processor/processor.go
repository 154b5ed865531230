package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"codeberg.org/snonux/wymowa/internal/batch"
	"codeberg.org/snonux/wymowa/internal/cli"
	"codeberg.org/snonux/wymowa/internal/lexicon"
	"codeberg.org/snonux/wymowa/internal/logger"
	"codeberg.org/snonux/wymowa/internal/output"
	"codeberg.org/snonux/wymowa/internal/phonetic"
)

// Processor handles the main word processing logic
type Processor struct {
	flags       *cli.Flags
	transcriber phonetic.Transcriber
	explainer   *phonetic.Explainer
	log         logger.Logger
	out         io.Writer
}

// NewProcessor creates a new word processor
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	transcriber, err := phonetic.New(&phonetic.Config{
		Language:         flags.Language,
		DenasalizeFinalE: flags.DenasalizeFinalE,
	})
	if err != nil {
		return nil, err
	}

	p := &Processor{
		flags:       flags,
		transcriber: transcriber,
		log:         logger.New(flags.LogLevel),
		out:         os.Stdout,
	}
	if flags.Explain {
		p.explainer = phonetic.NewExplainer(cli.GetOpenAIKey(), flags.ExplainModel)
	}
	return p, nil
}

// ProcessBatch processes all words of the batch file
func (p *Processor) ProcessBatch(ctx context.Context) error {
	words, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}
	p.log.Info(ctx, "Read %d words from %s", len(words), p.flags.BatchFile)
	return p.ProcessWords(ctx, words)
}

// ProcessWords transcribes words, writes the results and stores them in the
// lexicon. It returns an error if any word could not be transcribed; the
// remaining words are still processed.
func (p *Processor) ProcessWords(ctx context.Context, words []string) error {
	if !p.flags.KeepCase {
		lowered := make([]string, len(words))
		for i, w := range words {
			lowered[i] = strings.ToLower(w)
		}
		words = lowered
	}

	results := batch.Run(ctx, p.transcriber, words, p.flags.Workers)
	for _, r := range results {
		if r.Err != nil {
			p.log.Warn(ctx, "Skipping %q: %v", r.Word, r.Err)
		} else {
			p.log.Debug(ctx, "%s -> %s", r.Word, phonetic.Symbols(r.Phones, " "))
		}
	}

	if err := output.Write(p.out, p.flags.Format, results, p.flags.Separator); err != nil {
		return err
	}

	if p.flags.LexiconDB != "" {
		if err := p.storeResults(ctx, results); err != nil {
			return err
		}
	}

	if p.explainer != nil {
		p.explainResults(ctx, results)
	}

	if failed := batch.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d words could not be transcribed", failed, len(results))
	}
	return nil
}

func (p *Processor) storeResults(ctx context.Context, results []batch.Result) error {
	store, err := lexicon.Open(p.flags.LexiconDB)
	if err != nil {
		return err
	}
	defer store.Close()

	stored := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		err := store.Put(ctx, lexicon.Entry{
			Word:     r.Word,
			Language: p.transcriber.Language(),
			Symbols:  phonetic.Symbols(r.Phones, " "),
			IPA:      phonetic.IPA(r.Phones, ""),
		})
		if err != nil {
			return err
		}
		stored++
	}

	p.log.Info(ctx, "Stored %d transcriptions in %s", stored, p.flags.LexiconDB)
	return nil
}

func (p *Processor) explainResults(ctx context.Context, results []batch.Result) {
	for _, r := range results {
		if r.Err != nil {
			continue
		}

		text, err := p.explainer.Explain(ctx, r.Word, phonetic.IPA(r.Phones, ""))
		if err != nil {
			p.log.Error(ctx, "Explaining %q failed: %v", r.Word, err)
			continue
		}

		path, err := phonetic.SaveExplanation(p.flags.ExplainDir, r.Word, text)
		if err != nil {
			p.log.Error(ctx, "%v", err)
			continue
		}
		p.log.Info(ctx, "Explanation for %q saved to %s", r.Word, path)
	}
}

// ListPhones prints the phone inventory of the configured language
func (p *Processor) ListPhones() error {
	phones, err := phonetic.Inventory(p.transcriber.Language())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tIPA\tFEATURES")
	for _, ph := range phones {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ph.Name(), ph.IPA(), phonetic.Describe(ph))
	}
	return w.Flush()
}
