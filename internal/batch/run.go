package batch

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"codeberg.org/snonux/wymowa/internal/phone"
	"codeberg.org/snonux/wymowa/internal/phonetic"
)

// Result is the outcome of transcribing one word
type Result struct {
	Word   string
	Phones []phone.Phone
	Err    error
}

// Run transcribes words on up to workers goroutines. Results keep the order
// of words. Words not yet started when ctx is cancelled get ctx.Err().
func Run(ctx context.Context, tr phonetic.Transcriber, words []string, workers int) []Result {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(words))
	p := pool.New().WithMaxGoroutines(workers)

	for i, word := range words {
		p.Go(func() {
			results[i].Word = word
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			results[i].Phones, results[i].Err = tr.Transcribe(word)
		})
	}

	p.Wait()
	return results
}

// Failed counts the results that carry an error
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
