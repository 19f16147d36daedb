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

// Package achievements derives achievement progress from a decoded save.
package achievements

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/mys721tx/avsg-go/pkg/creature"
	"github.com/mys721tx/avsg-go/pkg/savedata"
)

// Item counts needed for the 100% achievements.
const (
	NeededHealth  = 13
	NeededNotes   = 28
	NeededPower   = 9
	NeededRange   = 4
	NeededSize    = 4
	NeededTools   = 16
	NeededWeapons = 20
	NeededItems   = NeededHealth + NeededNotes + NeededPower + NeededRange +
		NeededSize + NeededTools + NeededWeapons

	NeededBricks  = 2000
	NeededRedGoo  = 2000
	NeededHack    = 1
	MaxDeaths     = 1
	MaxLowPercent = 40.0

	// FragmentsPerNode is the number of node fragments that count as a node.
	FragmentsPerNode = 5
)

// Bosses lists the bosses whose defeat is recorded in the save, in report
// order. Athetos is missing because the game does not save after his fight.
var Bosses = []string{
	"Xedur",
	"Telal",
	"Uruku",
	"Gir-Tab",
	"Vision",
	"Clone",
	"Ukhu",
	"Sentinel",
}

// DisplayName returns the achievement name of a boss. Vision's achievement is
// called Hallucination.
func DisplayName(boss string) string {
	if boss == "Vision" {
		return "Hallucination"
	}

	return boss
}

// Progress is a count towards a target.
type Progress struct {
	Current int
	Needed  int
	// Percent is Current/Needed*100, or 0 when Needed is 0. It is computed
	// in single precision, which decides how ties round at two decimals.
	Percent float64
}

func progress(current, needed int) Progress {
	p := Progress{Current: current, Needed: needed}

	if needed != 0 {
		p.Percent = float64(float32(current) / float32(needed) * 100)
	}

	return p
}

// Status is the outcome of a challenge achievement that can still be lost.
type Status int

// Challenge outcomes.
const (
	OK Status = iota
	Failed
)

func (s Status) String() string {
	if s == Failed {
		return "Failed"
	}

	return "OK"
}

// BossState is whether a boss has been defeated.
type BossState int

// Boss states.
const (
	Alive BossState = iota
	Dead
)

func (b BossState) String() string {
	if b == Dead {
		return "Dead"
	}

	return "Alive"
}

// Achievements computes achievement progress for one save. It never modifies
// the save.
type Achievements struct {
	save *savedata.SaveData
}

// New returns the achievements of s.
func New(s *savedata.SaveData) *Achievements {
	return &Achievements{save: s}
}

// count returns the number of counted items of type t.
func (a *Achievements) count(t savedata.ItemType) int {
	n := 0

	for _, it := range a.save.Items {
		if it.Type == t && !it.ExcludedFromCount {
			n++
		}
	}

	return n
}

func (a *Achievements) nodes(node, fragment savedata.ItemType) int {
	return a.count(node) + a.count(fragment)/FragmentsPerNode
}

func (a *Achievements) glitched() []creature.Creature {
	return a.save.CreaturesGlitched.OrZero()
}

// AllHealth is the 100% Health achievement.
func (a *Achievements) AllHealth() Progress {
	return progress(a.nodes(savedata.ItemHealthNode, savedata.ItemHealthNodeFragment), NeededHealth)
}

// AllItems is the 100% Items achievement.
func (a *Achievements) AllItems() Progress {
	current := a.nodes(savedata.ItemHealthNode, savedata.ItemHealthNodeFragment) +
		a.count(savedata.ItemLore) +
		a.nodes(savedata.ItemPowerNode, savedata.ItemPowerNodeFragment) +
		a.count(savedata.ItemRangeNode) +
		a.count(savedata.ItemSizeNode) +
		a.count(savedata.ItemTool) +
		a.count(savedata.ItemPermanentUpgrade) +
		a.count(savedata.ItemWeapon)

	return progress(current, NeededItems)
}

// AllMap is the 100% Map achievement, counted in screens.
func (a *Achievements) AllMap() Progress {
	return progress(a.save.ScreenCount, a.save.TotalScreenCount)
}

// AllNotes is the 100% Notes achievement.
func (a *Achievements) AllNotes() Progress {
	return progress(a.count(savedata.ItemLore), NeededNotes)
}

// AllPower is the 100% Power achievement.
func (a *Achievements) AllPower() Progress {
	return progress(a.nodes(savedata.ItemPowerNode, savedata.ItemPowerNodeFragment), NeededPower)
}

// AllTools is the 100% Tools achievement. Permanent upgrades count as tools.
func (a *Achievements) AllTools() Progress {
	return progress(a.count(savedata.ItemTool)+a.count(savedata.ItemPermanentUpgrade), NeededTools)
}

// AllWeapons is the 100% Weapons achievement.
func (a *Achievements) AllWeapons() Progress {
	return progress(a.count(savedata.ItemWeapon), NeededWeapons)
}

// BrickBreaker is the Brick Breaker achievement.
func (a *Achievements) BrickBreaker() Progress {
	return progress(clamp(a.save.BricksDestroyed, 0, NeededBricks), NeededBricks)
}

// BubbleBreaker is the Bubble Breaker achievement.
func (a *Achievements) BubbleBreaker() Progress {
	return progress(clamp(a.save.RedGooDestroyed, 0, NeededRedGoo), NeededRedGoo)
}

// Hack is the achievement for glitching one creature.
func (a *Achievements) Hack() Progress {
	return progress(clamp(len(a.glitched()), 0, NeededHack), NeededHack)
}

// Hacker is the achievement for glitching every creature.
func (a *Achievements) Hacker() Progress {
	return progress(len(a.glitched()), len(creature.HackerList()))
}

// LowPercent is the Low % achievement. It fails once the item percentage
// reaches MaxLowPercent.
func (a *Achievements) LowPercent() (Progress, Status) {
	p := a.AllItems()
	if p.Percent >= MaxLowPercent {
		return p, Failed
	}

	return p, OK
}

// MostlyInvincible is the Mostly Invincible achievement. The progress counts
// deaths against the number allowed.
func (a *Achievements) MostlyInvincible() (Progress, Status) {
	p := progress(a.save.NumDeaths, MaxDeaths)
	if p.Current > MaxDeaths {
		return p, Failed
	}

	return p, OK
}

// Pacifist is the Pacifist achievement, lost by killing the Clone.
func (a *Achievements) Pacifist() (BossState, Status) {
	state := a.BossState("Clone")
	if state == Dead {
		return state, Failed
	}

	return state, OK
}

// BossState reports whether boss has been defeated. Boss kills are logged as
// speedrun checkpoints even outside of speedruns.
func (a *Achievements) BossState(boss string) BossState {
	checkpoints, _ := a.save.SpeedrunCheckpoints.Get()

	for _, c := range checkpoints {
		if c.Name == boss {
			return Dead
		}
	}

	return Alive
}

// HackerRequires returns the creatures still to be glitched for Hacker, in
// HackerList order. ok is false when the save has no glitch log at all, in
// which case every creature is required.
func (a *Achievements) HackerRequires() (remaining []creature.Creature, ok bool) {
	glitched, ok := a.save.CreaturesGlitched.Get()
	if !ok {
		return nil, false
	}

	done := mapset.New[creature.Creature]()
	for _, c := range glitched {
		done.Put(c)
	}

	remaining = []creature.Creature{}

	for _, c := range creature.HackerList() {
		if !done.Has(c) {
			remaining = append(remaining, c)
		}
	}

	return remaining, true
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
