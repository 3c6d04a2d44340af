package phishcheck

import (
	"context"
	"io"
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/utils/errkit"
	errorutil "github.com/projectdiscovery/utils/errors"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyInput is returned when there is no url to classify.
var ErrEmptyInput = errkit.New("no url provided to classify")

// Analyzer Options
type Options struct {
	// Stemmer used for every token
	// if nil the stemmer named by StemmerName is used
	Stemmer Stemmer
	// StemmerName selects a registered stemmer (suffix, snowball)
	StemmerName string
	// Concurrency is the number of workers used by Execute (default 1)
	// with a single worker results keep input order
	Concurrency int
	// Limit stops ExecuteWithWriter after n written results (0 = no limit)
	Limit int
	// MaliciousOnly skips safe results in ExecuteWithWriter
	MaliciousOnly bool
	// JSON writes results as json lines
	JSON bool
	// Template is a {{var}} output template, see TemplateVars
	Template string
	// Verbose adds scores to plain output
	Verbose bool
}

// Result is the full trace of a single classification
type Result struct {
	URL        string   `json:"url"`
	Host       string   `json:"host,omitempty"`
	Root       string   `json:"root,omitempty"`
	Tokens     []string `json:"tokens"`
	Stems      []string `json:"stems"`
	Score      Score    `json:"score"`
	Label      Label    `json:"label"`
	Prediction int      `json:"prediction"`
	Lookalike  string   `json:"lookalike,omitempty"`
}

// Analyzer runs urls through the tokenize, stem and classify pipeline.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	Options *Options
	stemmer Stemmer
}

// New creates and returns new analyzer instance from options
func New(opts *Options) (*Analyzer, error) {
	if opts == nil {
		opts = &Options{}
	}
	stemmer := opts.Stemmer
	if stemmer == nil {
		s, err := StemmerByName(opts.StemmerName)
		if err != nil {
			return nil, err
		}
		stemmer = s
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.Template != "" {
		if err := validateTemplate(opts.Template); err != nil {
			return nil, err
		}
	}
	return &Analyzer{Options: opts, stemmer: stemmer}, nil
}

// Analyze classifies url and returns the trace. It never fails.
func (a *Analyzer) Analyze(url string) *Result {
	tokens := Tokenize(url)
	stems := StemAll(a.stemmer, tokens)
	score := ScoreStems(stems)
	label := Decide(score)
	r := &Result{
		URL:        url,
		Tokens:     tokens,
		Stems:      stems,
		Score:      score,
		Label:      label,
		Prediction: int(label),
	}
	if input, err := NewInput(url); err == nil {
		r.Host = input.Host
		r.Root = input.Root
		r.Lookalike = Lookalike(input.SLD)
	}
	gologger.Debug().Msgf("%v: tokens=%v stems=%v suspicious=%v legitimate=%v", url, tokens, stems, score.Suspicious, score.Legitimate)
	return r
}

// AnalyzeInput is Analyze for caller supplied input, blank input is rejected with ErrEmptyInput
func (a *Analyzer) AnalyzeInput(url string) (*Result, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyInput
	}
	return a.Analyze(url), nil
}

// Execute classifies every url received on urls using Options.Concurrency workers
// and writes results to the returned channel, which is closed once urls is drained
// or ctx is done
func (a *Analyzer) Execute(ctx context.Context, urls <-chan string) <-chan *Result {
	results := make(chan *Result, a.Options.Concurrency)
	go func() {
		defer close(results)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(a.Options.Concurrency)
	loop:
		for {
			select {
			case <-gctx.Done():
				break loop
			case url, ok := <-urls:
				if !ok {
					break loop
				}
				if strings.TrimSpace(url) == "" {
					continue
				}
				g.Go(func() error {
					r := a.Analyze(url)
					select {
					case results <- r:
						return nil
					case <-gctx.Done():
						return gctx.Err()
					}
				})
			}
		}
		_ = g.Wait()
	}()
	return results
}

// ExecuteWithWriter executes Analyzer and writes formatted results directly to type that implements io.Writer interface
func (a *Analyzer) ExecuteWithWriter(ctx context.Context, urls <-chan string, writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("phishcheck", "writer destination cannot be nil")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	resChan := a.Execute(ctx, urls)
	counter := 0
	for r := range resChan {
		if a.Options.Limit > 0 && counter == a.Options.Limit {
			cancel()
			continue
		}
		if a.Options.MaliciousOnly && r.Label == Safe {
			continue
		}
		line, err := a.Format(r)
		if err != nil {
			gologger.Warning().Msgf("could not format result for %v: %v", r.URL, err)
			continue
		}
		if _, err := writer.Write(append(line, '\n')); err != nil {
			return err
		}
		counter++
	}
	return nil
}
