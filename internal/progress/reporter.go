package progress

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Update per exported page. message is the page path
// relative to the output directory.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set. outputDir is shown
// alongside page paths.
func NewReporter(outputDir string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr, OutputDir: outputDir}
	}
	return &TerminalReporter{OutputDir: outputDir}
}

// TerminalReporter displays a progress bar in the terminal, described by the
// page being written.
type TerminalReporter struct {
	OutputDir string
	bar       *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Exporting to "+r.OutputDir),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionShowIts(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, page string) {
	if r.bar != nil {
		r.bar.Describe(page)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per page, suitable for CI logs.
type CIReporter struct {
	Out       io.Writer
	OutputDir string
	total     int
	written   int
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.Out, "Exporting %d part and document pages to %s\n", total, r.dir())
}

func (r *CIReporter) Update(current int, page string) {
	r.written = current
	fmt.Fprintf(r.Out, "[%d/%d] wrote %s\n", current, r.total, path.Join(r.dir(), page))
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.Out, "Export complete: %d of %d pages written\n", r.written, r.total)
}

func (r *CIReporter) dir() string {
	if r.OutputDir == "" {
		return "."
	}
	return r.OutputDir
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}
