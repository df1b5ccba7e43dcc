package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf, OutputDir: "site"}
	r.Start(2)
	r.Update(1, "data/parts/p1.html")
	r.Update(2, "data/docs/a.html")
	r.Finish()

	want := "Exporting 2 part and document pages to site\n" +
		"[1/2] wrote site/data/parts/p1.html\n" +
		"[2/2] wrote site/data/docs/a.html\n" +
		"Export complete: 2 of 2 pages written\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestCIReporterInterrupted(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(3)
	r.Update(1, "index.html")
	buf.Reset()
	r.Finish()

	if got := buf.String(); got != "Export complete: 1 of 3 pages written\n" {
		t.Errorf("finish line = %q", got)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	r, ok := NewReporter("public").(*CIReporter)
	if !ok {
		t.Fatal("expected a CIReporter when CI is set")
	}
	if r.OutputDir != "public" {
		t.Errorf("OutputDir = %q", r.OutputDir)
	}
}

func TestTerminalReporterWithoutStart(t *testing.T) {
	r := &TerminalReporter{}
	r.Update(1, "ignored")
	r.Finish()
}
