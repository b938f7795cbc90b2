package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BenchReport is one benchmark result, printable as a styled block or
// as JSON via --json.
type BenchReport struct {
	Workload  string        `json:"workload"`
	KeyWidth  string        `json:"key_width"`
	Checked   bool          `json:"checked"`
	Ops       int64         `json:"ops"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	NsPerOp   float64       `json:"ns_per_op"`
	OpsPerSec float64       `json:"ops_per_sec"`
}

func newBenchReport(workload, width string, checked bool, ops int64, elapsed time.Duration) BenchReport {
	r := BenchReport{
		Workload: workload,
		KeyWidth: width,
		Checked:  checked,
		Ops:      ops,
		Elapsed:  elapsed,
	}
	if ops > 0 && elapsed > 0 {
		r.NsPerOp = float64(elapsed.Nanoseconds()) / float64(ops)
		r.OpsPerSec = float64(ops) / elapsed.Seconds()
	}
	return r
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(12)
	valueStyle = lipgloss.NewStyle().Bold(true)
)

// render formats the report for humans. Digits are grouped per the
// English locale so a hundred-million-ops run stays readable.
func (r BenchReport) render(color bool) string {
	p := message.NewPrinter(language.English)

	mode := "unchecked"
	if r.Checked {
		mode = "checked"
	}

	rows := [][2]string{
		{"keys", r.KeyWidth + "-bit"},
		{"mode", mode},
		{"ops", p.Sprintf("%d", r.Ops)},
		{"elapsed", r.Elapsed.Round(time.Microsecond).String()},
		{"ns/op", p.Sprintf("%.1f", r.NsPerOp)},
		{"ops/sec", p.Sprintf("%.0f", r.OpsPerSec)},
	}

	var b strings.Builder
	if color {
		b.WriteString(titleStyle.Render(r.Workload) + "\n")
		for _, row := range rows {
			b.WriteString(labelStyle.Render(row[0]) + valueStyle.Render(row[1]) + "\n")
		}
	} else {
		b.WriteString(r.Workload + "\n")
		for _, row := range rows {
			fmt.Fprintf(&b, "%-12s%s\n", row[0], row[1])
		}
	}
	return b.String()
}

// emit writes the report in the selected output format.
func emit(r BenchReport) error {
	if jsonOut {
		return printJSON(r)
	}
	printInfo("%s", r.render(!noColor))
	return nil
}
