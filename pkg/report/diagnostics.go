package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorMode values accepted by ColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Diagnostics writes human-readable messages to an error stream. Only the
// message prefixes are colored; search output never is.
type Diagnostics struct {
	w       io.Writer
	quiet   bool
	errTag  *color.Color
	warnTag *color.Color
	infoTag *color.Color
}

// NewDiagnostics creates a writer for w. With quiet set, Infof and Warnf
// are discarded and only Errorf is written.
func NewDiagnostics(w io.Writer, quiet, colored bool) *Diagnostics {
	d := &Diagnostics{
		w:       w,
		quiet:   quiet,
		errTag:  color.New(color.Bold, color.FgHiRed),
		warnTag: color.New(color.FgYellow),
		infoTag: color.New(color.FgHiBlue),
	}

	if !colored {
		d.errTag.DisableColor()
		d.warnTag.DisableColor()
		d.infoTag.DisableColor()
	} else {
		d.errTag.EnableColor()
		d.warnTag.EnableColor()
		d.infoTag.EnableColor()
	}

	return d
}

// ColorEnabled resolves a color mode for f. In auto mode colors are used
// only when f is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if f == nil || os.Getenv("NO_COLOR") != "" {
			return false
		}
		return term.IsTerminal(int(f.Fd()))
	}
}

// Errorf writes an error message. It is written even in quiet mode.
func (d *Diagnostics) Errorf(format string, args ...any) {
	fmt.Fprintf(d.w, "%s %s\n", d.errTag.Sprint("error:"), fmt.Sprintf(format, args...))
}

// Warnf writes a warning unless quiet.
func (d *Diagnostics) Warnf(format string, args ...any) {
	if d.quiet {
		return
	}
	fmt.Fprintf(d.w, "%s %s\n", d.warnTag.Sprint("[warn]"), fmt.Sprintf(format, args...))
}

// Infof writes an informational message unless quiet.
func (d *Diagnostics) Infof(format string, args ...any) {
	if d.quiet {
		return
	}
	fmt.Fprintf(d.w, "%s %s\n", d.infoTag.Sprint("[info]"), fmt.Sprintf(format, args...))
}
