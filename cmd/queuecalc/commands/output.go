package commands

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	gfn "github.com/panyam/goutils/fn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/panyam/queuemodels/queues"
)

var (
	printer   = message.NewPrinter(language.English)
	titler    = cases.Title(language.English)
	nanColor  = color.New(color.FgRed)
	infColor  = color.New(color.FgYellow)
	headColor = color.New(color.Bold)
)

// formatValue prints a metric with the configured precision, highlighting
// the NaN and +Inf sentinels.
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return nanColor.Sprint(queues.FormatValue(v, -1))
	case math.IsInf(v, 0):
		return infColor.Sprint(queues.FormatValue(v, -1))
	}
	return printer.Sprintf("%.*f", cfg.Precision, v)
}

// printModel writes a heading and one "name  value" line per metric.
func printModel(w io.Writer, name string, m queues.Model) {
	heading := fmt.Sprintf("%s: %s", titler.String(m.Kind()), m.Name())
	if name != "" {
		heading = fmt.Sprintf("%s (%s)", name, m.Name())
	}
	fmt.Fprintln(w, headColor.Sprint(heading))
	fmt.Fprintln(w, strings.Repeat("─", 40))

	lines := gfn.Map(m.Metrics(), func(mt queues.Metric) string {
		return fmt.Sprintf("  %-12s %s", mt.Name, formatValue(mt.Value))
	})
	fmt.Fprintln(w, strings.Join(lines, "\n"))

	switch {
	case !m.IsValid():
		fmt.Fprintln(w, nanColor.Sprint("  ! invalid inputs"))
	case !m.IsFeasible():
		fmt.Fprintln(w, infColor.Sprint("  ! unstable: utilization >= 1"))
	}
}
