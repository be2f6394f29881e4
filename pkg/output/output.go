// Package output prints check results for humans.
package output

import (
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/envpoke/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		DisableColor()
	}
}

// DisableColor turns off ANSI colour codes for all subsequent output.
func DisableColor() {
	green, red, yellow, dim, reset = "", "", "", "", ""
}

// Printer writes the report to an io.Writer.
type Printer struct {
	W io.Writer
}

// Header announces how many variables are about to be checked.
func (p Printer) Header(n int) {
	fmt.Fprintf(p.W, "\n%sPoking %d environment variables...%s\n\n", dim, n, reset)
}

// Notice prints an informational line that does not affect the outcome.
func (p Printer) Notice(format string, args ...any) {
	fmt.Fprintf(p.W, "%s[INFO]%s %s\n", yellow, reset, fmt.Sprintf(format, args...))
}

// Result prints one line for a checked variable.
func (p Printer) Result(r check.Result) {
	if r.OK() {
		fmt.Fprintf(p.W, "%s[OK]%s %s: %s\n", green, reset, r.Name, r.Summary())
	} else {
		fmt.Fprintf(p.W, "%s[FAIL]%s %s: %s\n", red, reset, r.Name, r.Summary())
	}
}

// Results prints every result in order.
func (p Printer) Results(results []check.Result) {
	for _, r := range results {
		p.Result(r)
	}
}

// Summary prints the number of failing variables.
func (p Printer) Summary(failing int) {
	color := green
	if failing > 0 {
		color = red
	}
	fmt.Fprintf(p.W, "\n%sSummary: %d problem(s) found%s\n", color, failing, reset)
}
