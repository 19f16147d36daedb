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

package achievements

// Entry is one line of the achievement report.
type Entry struct {
	Name string
	// Progress is nil for entries that only have a Detail.
	Progress *Progress
	// Unit follows the counts, e.g. "screens".
	Unit string
	// HidePercent drops the percentage after the counts.
	HidePercent bool
	// Detail replaces the counts, e.g. "Dead".
	Detail string
	// Outcome is the result of a challenge, empty otherwise.
	Outcome string
	// Complete is set when the achievement has been earned.
	Complete bool
}

func progressEntry(name string, p Progress) Entry {
	return Entry{Name: name, Progress: &p, Complete: p.Needed > 0 && p.Current >= p.Needed}
}

func challengeEntry(name string, p Progress, s Status) Entry {
	return Entry{Name: name, Progress: &p, Outcome: s.String(), Complete: s == OK}
}

// Report returns every achievement in report order.
func (a *Achievements) Report() []Entry {
	m := progressEntry("100% Map", a.AllMap())
	m.Unit = "screens"

	entries := []Entry{
		progressEntry("100% Health", a.AllHealth()),
		progressEntry("100% Items", a.AllItems()),
		m,
		progressEntry("100% Notes", a.AllNotes()),
		progressEntry("100% Power", a.AllPower()),
		progressEntry("100% Tools", a.AllTools()),
		progressEntry("100% Weapons", a.AllWeapons()),
		progressEntry("Brick Breaker", a.BrickBreaker()),
		progressEntry("Bubble Breaker", a.BubbleBreaker()),
		progressEntry("Hack", a.Hack()),
		progressEntry("Hacker", a.Hacker()),
	}

	p, s := a.LowPercent()
	entries = append(entries, challengeEntry("Low %", p, s))

	p, s = a.MostlyInvincible()
	e := challengeEntry("Mostly Invincible", p, s)
	e.HidePercent = true
	e.Unit = "deaths"
	if p.Current == 1 {
		e.Unit = "death"
	}
	entries = append(entries, e)

	clone, s := a.Pacifist()
	entries = append(entries, Entry{
		Name:     "Pacifist",
		Detail:   "Clone " + clone.String(),
		Outcome:  s.String(),
		Complete: s == OK,
	})

	for _, boss := range Bosses {
		state := a.BossState(boss)
		entries = append(entries, Entry{
			Name:     DisplayName(boss),
			Detail:   state.String(),
			Complete: state == Dead,
		})
	}

	return entries
}
