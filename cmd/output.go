package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"vidembed/internal/media"
	"vidembed/internal/videourl"
)

var (
	youtubeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0033")).Bold(true)
	vimeoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#17D5FF")).Bold(true)
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// printer writes outcomes either as JSON lines or as aligned text.
// Text is only styled when writing to a terminal.
type printer struct {
	w      io.Writer
	json   bool
	styled bool
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	f, isFile := w.(*os.File)
	return &printer{
		w:      w,
		json:   asJSON,
		styled: !asJSON && isFile && isTerminal(f),
	}
}

// jsonOutcome is the wire shape of one parsed URL; Result is null on a miss.
type jsonOutcome struct {
	URL    string        `json:"url"`
	Result *media.Result `json:"result"`
}

func (p *printer) outcome(o videourl.Outcome) error {
	if p.json {
		line := jsonOutcome{URL: o.URL}
		if o.OK {
			res := o.Result
			line.Result = &res
		}
		return json.NewEncoder(p.w).Encode(line)
	}

	if !o.OK {
		_, err := fmt.Fprintf(p.w, "%s  %s\n", p.render(missStyle, fmt.Sprintf("%-7s", "-")), o.URL)
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s  %s\n", p.render(kindStyle(o.Result.Type), fmt.Sprintf("%-7s", o.Result.Type)), o.Result.Embed)
	return err
}

func (p *printer) services(kinds []media.ServiceKind) error {
	if p.json {
		return json.NewEncoder(p.w).Encode(kinds)
	}
	for _, k := range kinds {
		if _, err := fmt.Fprintln(p.w, p.render(kindStyle(k), k.String())); err != nil {
			return err
		}
	}
	return nil
}

// field prints one labelled line, skipping values the record left out.
func (p *printer) field(label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", p.render(labelStyle, fmt.Sprintf("%-10s", label+":")), value)
}

func (p *printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

func kindStyle(k media.ServiceKind) lipgloss.Style {
	switch k {
	case media.YouTube:
		return youtubeStyle
	case media.Vimeo:
		return vimeoStyle
	default:
		return missStyle
	}
}
