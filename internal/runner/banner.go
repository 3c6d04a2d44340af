package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = `
       __    _      __         __              __  
  ___ / /   (_)__  / /  ____  / /  ___  ____  / /__
 / _ \/ _ \/ (_-< / _ \/ __/ / _ \/ -_)/ __/ /  '_/
/ .__/_//_/_/___//_//_/\__/ /_//_/\__/ \__/ /_/\_\ 
/_/
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\turl phishing heuristics\n\n")
}
