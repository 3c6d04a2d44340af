package runner

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/phishcheck"
	fileutil "github.com/projectdiscovery/utils/file"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

type Options struct {
	URLs          goflags.StringSlice // urls to classify
	List          string              // file with one url per line
	Output        string
	Config        string
	Profile       string
	Stemmer       string
	Template      string
	JSON          bool
	MaliciousOnly bool
	Dedupe        bool
	Verbose       bool
	Silent        bool
	Concurrency   int
	Limit         int
	Serve         string
	RateLimit     int
	// internal/unexported fields
	hasStdin bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Rule based phishing url classifier.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.URLs, "url", "u", nil, "urls to classify (file or value)", goflags.FileStringSliceOptions),
		flagSet.StringVarP(&opts.List, "list", "l", "", "file containing urls to classify, one per line"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write results"),
		flagSet.BoolVarP(&opts.JSON, "json", "j", false, "write results as json lines"),
		flagSet.StringVarP(&opts.Template, "template", "t", "", fmt.Sprintf("output template using {{var}} placeholders (%v)", phishcheck.TemplateVars)),
		flagSet.BoolVarP(&opts.MaliciousOnly, "malicious-only", "m", false, "display malicious results only"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display phishcheck version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `phishcheck cli config file (default '$HOME/.config/phishcheck/config.yaml')`),
		flagSet.StringVarP(&opts.Profile, "profile", "pc", "", fmt.Sprintf(`phishcheck analysis profile (default '$HOME/.config/phishcheck/profile_%v.yaml')`, version)),
		flagSet.StringVarP(&opts.Stemmer, "stemmer", "s", "", "stemmer to use (suffix, snowball)"),
		flagSet.IntVarP(&opts.Concurrency, "concurrency", "c", 0, "number of concurrent workers (default 1)"),
		flagSet.IntVar(&opts.Limit, "limit", 0, "limit the number of results to return (default 0)"),
		flagSet.BoolVar(&opts.Dedupe, "dedupe", false, "skip duplicate input urls"),
	)

	flagSet.CreateGroup("server", "Server",
		flagSet.StringVar(&opts.Serve, "serve", "", "serve the http classification api on the given address (ex: 127.0.0.1:8080)"),
		flagSet.IntVarP(&opts.RateLimit, "rate-limit", "rl", 0, "maximum api requests per second (0 = unlimited)"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	opts.URLs = sliceutil.Dedupe(opts.URLs)
	opts.hasStdin = fileutil.HasStdin()

	if err := opts.validate(); err != nil {
		gologger.Fatal().Msgf("phishcheck: %v", err)
	}
	return opts
}

// validate reports input errors before anything is classified
func (o *Options) validate() error {
	if o.List != "" && !fileutil.FileExists(o.List) {
		return fmt.Errorf("list file %v does not exist", o.List)
	}
	if o.RateLimit < 0 {
		return fmt.Errorf("rate-limit cannot be negative")
	}
	if o.Serve != "" {
		return nil
	}
	if len(o.URLs) == 0 && o.List == "" && !o.hasStdin {
		return phishcheck.ErrEmptyInput
	}
	return nil
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
