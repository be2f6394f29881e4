package envcheck

import (
	"fmt"
	"strings"

	"github.com/vertti/envpoke/pkg/check"
)

// previewLen is the number of characters of a value shown in OK results.
const previewLen = 20

// Check verifies that a required variable is present and non-blank.
type Check struct {
	Name      string    // variable name
	HideValue bool      // --hide-value: don't show value in output
	MaskValue bool      // --mask-value: show first/last 3 chars
	Getter    EnvGetter // merged mapping, injected
}

// Options controls how values appear in OK results.
type Options struct {
	HideValue bool
	MaskValue bool
}

// Run executes the variable check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: c.Name}

	value, exists := c.Getter.LookupEnv(c.Name)
	if !exists {
		return result.Fail(check.StatusMissing, "not set",
			fmt.Errorf("environment variable %s is not set", c.Name))
	}

	if strings.TrimSpace(value) == "" {
		return result.Fail(check.StatusEmpty, "blank value",
			fmt.Errorf("environment variable %s is empty", c.Name))
	}

	return result.Pass("%s", c.formatValue(value))
}

func (c *Check) formatValue(value string) string {
	if c.HideValue {
		return "[hidden]"
	}
	if c.MaskValue {
		return maskValue(value)
	}
	return Preview(value)
}

// Preview returns the first 20 characters of value, followed by "..." when
// value is longer than that.
func Preview(value string) string {
	runes := []rune(value)
	if len(runes) <= previewLen {
		return value
	}
	return string(runes[:previewLen]) + "..."
}

func maskValue(value string) string {
	runes := []rune(value)
	if len(runes) <= 6 {
		return "•••"
	}
	return string(runes[:3]) + "•••" + string(runes[len(runes)-3:])
}

// CheckAll checks names in order against vars. A name listed more than once
// yields a single result at the position of its first appearance.
func CheckAll(names []string, vars EnvGetter, opts Options) []check.Result {
	results := make([]check.Result, 0, len(names))
	index := make(map[string]int, len(names))

	for _, name := range names {
		c := &Check{
			Name:      name,
			HideValue: opts.HideValue,
			MaskValue: opts.MaskValue,
			Getter:    vars,
		}
		r := c.Run()

		if i, seen := index[name]; seen {
			results[i] = r
			continue
		}
		index[name] = len(results)
		results = append(results, r)
	}

	return results
}
