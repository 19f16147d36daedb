// avsg-go: Axiom Verge save game inspector
// Copyright (C) 2018  Yishen Miao
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package report renders achievement progress as text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mys721tx/avsg-go/pkg/achievements"
	"github.com/mys721tx/avsg-go/pkg/creature"
)

// Printer writes reports to a writer. Styles are only applied when the
// writer is a terminal that supports them.
type Printer struct {
	w io.Writer

	plain    lipgloss.Style
	title    lipgloss.Style
	complete lipgloss.Style
	failed   lipgloss.Style
}

// New returns a Printer writing to w. noColor disables styling.
func New(w io.Writer, noColor bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:        w,
		plain:    r.NewStyle(),
		title:    r.NewStyle().Bold(true),
		complete: r.NewStyle().Foreground(lipgloss.Color("#5FD75F")),
		failed:   r.NewStyle().Foreground(lipgloss.Color("#D75F5F")),
	}
}

// Line formats one report entry without styling.
func Line(e achievements.Entry) string {
	var sb strings.Builder

	sb.WriteString("  - ")
	sb.WriteString(e.Name)
	sb.WriteString(": ")

	if p := e.Progress; p != nil {
		fmt.Fprintf(&sb, "%d/%d", p.Current, p.Needed)

		if e.Unit != "" {
			sb.WriteString(" " + e.Unit)
		}

		if !e.HidePercent {
			fmt.Fprintf(&sb, " (%.2f%%)", p.Percent)
		}
	} else {
		sb.WriteString(e.Detail)
	}

	if e.Outcome != "" {
		sb.WriteString(" (" + e.Outcome + ")")
	}

	return sb.String()
}

func (p *Printer) style(e achievements.Entry) lipgloss.Style {
	switch {
	case e.Outcome == achievements.Failed.String():
		return p.failed
	case e.Complete:
		return p.complete
	}

	return p.plain
}

// Achievements writes the achievement report.
func (p *Printer) Achievements(entries []achievements.Entry) error {
	if _, err := fmt.Fprintln(p.w, p.title.Render("Achievement Progress:")); err != nil {
		return err
	}

	for _, e := range entries {
		if _, err := fmt.Fprintln(p.w, p.style(e).Render(Line(e))); err != nil {
			return err
		}
	}

	return nil
}

// Hacker writes the creatures still needed for the Hacker achievement. ok is
// false when the save has no glitch log.
func (p *Printer) Hacker(remaining []creature.Creature, ok bool) error {
	var lines []string

	if ok {
		word := "creature"
		if len(remaining) > 1 {
			word = "creatures"
		}

		lines = append(lines, p.title.Render(fmt.Sprintf("Hacker Achievement requires %d more %s:", len(remaining), word)))

		for _, c := range remaining {
			lines = append(lines, fmt.Sprintf("  - %s (%s)", c, c.Ident()))
		}
	} else {
		lines = append(lines, p.title.Render("Hacker Achievement requires:"), "  - All creatures required")
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(p.w, l); err != nil {
			return err
		}
	}

	return nil
}
