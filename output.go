package phishcheck

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TemplateVars are the placeholders available to output templates
var TemplateVars = []string{
	"url", "label", "prediction", "host", "root",
	"suspicious", "legitimate", "tokens", "stems", "lookalike",
}

// GetMap returns variables map of result
func (r *Result) GetMap() map[string]interface{} {
	return map[string]interface{}{
		"url":        r.URL,
		"label":      r.Label.String(),
		"prediction": r.Prediction,
		"host":       r.Host,
		"root":       r.Root,
		"suspicious": r.Score.Suspicious,
		"legitimate": r.Score.Legitimate,
		"tokens":     strings.Join(r.Tokens, " "),
		"stems":      strings.Join(r.Stems, " "),
		"lookalike":  r.Lookalike,
	}
}

// Format renders r as configured by Options (json, template or plain)
func (a *Analyzer) Format(r *Result) ([]byte, error) {
	switch {
	case a.Options.JSON:
		return json.Marshal(r)
	case a.Options.Template != "":
		return []byte(Replace(a.Options.Template, r.GetMap())), nil
	default:
		return []byte(formatPlain(r, a.Options.Verbose)), nil
	}
}

func formatPlain(r *Result, verbose bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%v] %v", r.Label, r.URL)
	if verbose {
		fmt.Fprintf(&sb, " [suspicious=%d legitimate=%d]", r.Score.Suspicious, r.Score.Legitimate)
		if len(r.Score.Signals) > 0 {
			fmt.Fprintf(&sb, " [%v]", strings.Join(r.Score.Signals, ","))
		}
	}
	if r.Lookalike != "" {
		fmt.Fprintf(&sb, " [lookalike:%v]", r.Lookalike)
	}
	return sb.String()
}
