// Package progress reports pages as the static site is rendered.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// titleWidth bounds the page title shown next to the terminal bar.
const titleWidth = 32

// Reporter is told about each page as it is rendered. Page numbers start at
// 1; the home page comes first, then posts in catalog order.
type Reporter interface {
	Start(pages int)
	Page(n int, title string)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return NewCIReporter(os.Stderr)
	}
	return &TerminalReporter{}
}

// TerminalReporter shows a bar labelled with the page being rendered.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(pages int) {
	r.bar = progressbar.NewOptions(pages,
		progressbar.OptionSetDescription("Rendering pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Page(n int, title string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(shorten(title, titleWidth))
	_ = r.bar.Set(n)
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per rendered page.
type CIReporter struct {
	out      io.Writer
	pages    int
	rendered int
}

// NewCIReporter writes progress lines to out.
func NewCIReporter(out io.Writer) *CIReporter {
	return &CIReporter{out: out}
}

func (r *CIReporter) Start(pages int) {
	r.pages = pages
	r.rendered = 0
	fmt.Fprintf(r.out, "Rendering %d pages\n", pages)
}

func (r *CIReporter) Page(n int, title string) {
	r.rendered++
	fmt.Fprintf(r.out, "[%d/%d] %s\n", n, r.pages, title)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.out, "Rendered %d of %d pages\n", r.rendered, r.pages)
}

// shorten cuts s to at most width runes, marking the cut with "...".
func shorten(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int)        {}
func (Nop) Page(int, string) {}
func (Nop) Finish()          {}
