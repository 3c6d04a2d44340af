package runner

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/phishcheck"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// Runner drives the analyzer from cli options
type Runner struct {
	options  *Options
	analyzer *phishcheck.Analyzer
	stdin    io.Reader
}

// New creates a runner, merging the analysis profile into options
func New(opts *Options) (*Runner, error) {
	profile, err := loadProfile(opts.Profile)
	if err != nil {
		return nil, errorutil.NewWithTag("phishcheck", "could not read profile %v: %v", opts.Profile, err)
	}
	aopts := &phishcheck.Options{
		StemmerName:   opts.Stemmer,
		Concurrency:   opts.Concurrency,
		Limit:         opts.Limit,
		MaliciousOnly: opts.MaliciousOnly,
		JSON:          opts.JSON,
		Template:      opts.Template,
		Verbose:       opts.Verbose,
	}
	profile.Apply(aopts)
	analyzer, err := phishcheck.New(aopts)
	if err != nil {
		return nil, err
	}
	r := &Runner{options: opts, analyzer: analyzer}
	if opts.hasStdin {
		r.stdin = os.Stdin
	}
	return r, nil
}

// Run serves the api when -serve is set, otherwise classifies all inputs
func (r *Runner) Run(ctx context.Context) error {
	if r.options.Serve != "" {
		return r.serve(ctx)
	}
	output, closeOutput, err := r.outputWriter()
	if err != nil {
		return err
	}
	defer closeOutput()

	urls := r.inputs(ctx)
	if r.options.Dedupe {
		urls = phishcheck.NewDedupe(r.estimateInputSize()).Filter(ctx, urls)
	}
	return r.analyzer.ExecuteWithWriter(ctx, urls, output)
}

// inputs streams urls from flags, the list file and stdin in that order
func (r *Runner) inputs(ctx context.Context) <-chan string {
	out := make(chan string, 100)
	send := func(v string) bool {
		v = strings.TrimSpace(v)
		if v == "" {
			return true
		}
		select {
		case out <- v:
			return true
		case <-ctx.Done():
			return false
		}
	}
	go func() {
		defer close(out)
		for _, v := range r.options.URLs {
			if !send(v) {
				return
			}
		}
		if r.options.List != "" {
			f, err := os.Open(r.options.List)
			if err != nil {
				gologger.Error().Msgf("failed to open list %v got %v", r.options.List, err)
			} else {
				ok := scanLines(f, send)
				f.Close()
				if !ok {
					return
				}
			}
		}
		if r.stdin != nil {
			scanLines(r.stdin, send)
		}
	}()
	return out
}

func scanLines(src io.Reader, send func(string) bool) bool {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if !send(scanner.Text()) {
			return false
		}
	}
	if err := scanner.Err(); err != nil {
		gologger.Error().Msgf("failed to read input got %v", err)
	}
	return true
}

// estimateInputSize approximates input bytes to pick a dedupe backend
func (r *Runner) estimateInputSize() int {
	size := 0
	for _, v := range r.options.URLs {
		size += len(v)
	}
	if r.options.List != "" {
		if info, err := os.Stat(r.options.List); err == nil {
			size += int(info.Size())
		}
	}
	return size
}

// outputWriter returns the configured writer and a func closing it
func (r *Runner) outputWriter() (io.Writer, func(), error) {
	if r.options.Output == "" {
		return os.Stdout, func() {}, nil
	}
	fs, err := os.OpenFile(r.options.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, errorutil.NewWithTag("phishcheck", "failed to open output file %v: %v", r.options.Output, err)
	}
	return fs, func() { _ = fs.Close() }, nil
}
