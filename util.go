package phishcheck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/projectdiscovery/fasttemplate"
)

var varRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9]+)\}\}`)

// returns names of all variables
func getAllVars(data string) []string {
	values := []string{}
	for _, v := range varRegex.FindAllStringSubmatch(data, -1) {
		if len(v) >= 2 {
			values = append(values, v[1])
		}
	}
	return values
}

// validateTemplate compiles template and checks that every placeholder is a known variable
func validateTemplate(template string) error {
	if _, err := fasttemplate.NewTemplate(template, ParenthesisOpen, ParenthesisClose); err != nil {
		return err
	}
	known := map[string]struct{}{}
	for _, v := range TemplateVars {
		known[v] = struct{}{}
	}
	var unknown []string
	for _, v := range getAllVars(template) {
		if _, ok := known[v]; !ok {
			unknown = append(unknown, v)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown template variables `%v`, supported: %v", strings.Join(unknown, ","), strings.Join(TemplateVars, ","))
	}
	return nil
}
