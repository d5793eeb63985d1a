package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/arthur-debert/cigen/internal/commands"
	"github.com/arthur-debert/cigen/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	errorColor  = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	noticeColor = lipgloss.AdaptiveColor{Light: "#AF5F00", Dark: "#FFD75F"}
	detailColor = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#9E9E9E"}
)

// useColor reports whether w is a terminal that can show colours
func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !useColor(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// PrintError writes err to w, followed by its details sorted by key
func PrintError(w io.Writer, err error) {
	r := newRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(errorColor)
	detail := r.NewStyle().Foreground(detailColor)

	fmt.Fprintln(w, title.Render(commands.MsgErrorPrefix+" "+err.Error()))

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintln(w, detail.Render(fmt.Sprintf("  %s: %v", k, details[k])))
	}
}

// PrintNotice writes a short highlighted message to w
func PrintNotice(w io.Writer, msg string) {
	r := newRenderer(w)
	fmt.Fprintln(w, r.NewStyle().Foreground(noticeColor).Render(msg))
}
