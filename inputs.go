package phishcheck

import (
	"fmt"
	"strings"

	"github.com/projectdiscovery/gologger"
	urlutil "github.com/projectdiscovery/utils/url"
	"golang.org/x/net/publicsuffix"
)

// Input contains host metadata parsed from a URL.
// It is used for reporting only and never changes a classification.
type Input struct {
	Host string // hostname without port, lower-cased
	TLD  string // only TLD (right most label) ex: `uk`
	ETLD string // public suffix when it has more than one label (ex: co.uk)
	Root string // registrable domain (eTLD+1) ex: paypal.co.uk
	SLD  string // registrable label ex: paypal
}

// NewInput parses inputURL leniently and derives its host parts.
func NewInput(inputURL string) (*Input, error) {
	URL, err := urlutil.Parse(strings.TrimSpace(inputURL))
	if err != nil {
		return nil, err
	}
	host := strings.TrimSuffix(strings.ToLower(URL.Hostname()), ".")
	if host == "" {
		return nil, fmt.Errorf("input %v has no host", inputURL)
	}
	ivar := &Input{Host: host}
	suffix, _ := publicsuffix.PublicSuffix(host)
	if strings.Contains(suffix, ".") {
		ivar.ETLD = suffix
		arr := strings.Split(suffix, ".")
		ivar.TLD = arr[len(arr)-1]
	} else {
		ivar.TLD = suffix
	}
	rootDomain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// host is itself a public suffix (ex: `com`, `co.uk`) or an ip literal
		gologger.Debug().Msgf("input host %v has no registrable domain: %v", host, err)
		return ivar, nil
	}
	ivar.Root = rootDomain
	if ivar.ETLD != "" {
		ivar.SLD = strings.TrimSuffix(rootDomain, "."+ivar.ETLD)
	} else {
		ivar.SLD = strings.TrimSuffix(rootDomain, "."+ivar.TLD)
	}
	return ivar, nil
}
