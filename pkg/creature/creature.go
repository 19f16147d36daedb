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

// Package creature lists the creatures the save file records in its glitch
// log, the tokens they are serialized as and their bestiary names.
package creature

import (
	"fmt"

	"github.com/mys721tx/avsg-go/internal/enum"
)

// Creature is one creature the game can record as glitched.
type Creature int

const (
	// Fauna
	Arachnoptopus Creature = iota
	Artichoker
	Blite
	Blurst
	BlurstSpawn
	Buoyg
	Drometon
	EyeCopter
	FlynnStone
	Fungine
	Furglot
	Gill
	Glugg
	Hookfish
	Jorm
	Jormite
	LoopDiatom
	Mogra
	Mutant
	Pliaa
	Potato
	Prongfish
	Quadropus
	Rugg
	Scorpiant
	Seamk
	SmallMogra
	Snailborg
	SpaceBat
	Spidler
	Spiru
	SpitBug
	SpitBugBossSpawn
	SwarmilyChild
	SwarmilyParent
	TrapClaw
	TubeWorm
	Volg
	Yorchug
	TubePuff
	LoopDiatomViolet
	MutantStrong
	RuggMeta
	SnailborgMeta
	TrapClawGamma
	TrapClawMeta

	// Flora
	Goolumn
	Hoverling
	MushroomPoof
	SpungusSpore
	TentacleGrass
	WillOWisp

	// Mechanized
	Annihiwaiter
	Diskko
	Donaught
	Hoverbug
	RepairDrone
	SentryBot
	TieFlighter
	SentryBotMeta

	// Other
	Nrok
	SpitbugNest

	count
)

type info struct {
	ident   string
	token   string
	aliases []string
	name    string
}

// Names are the ones used by the community bestiary.
var infos = [count]info{
	Arachnoptopus:    {ident: "Arachnoptopus", name: "Hopping Spider"},
	Artichoker:       {ident: "Artichoker", name: "Hopping Shrubback"},
	Blite:            {ident: "Blite", name: "Red Wasp"},
	Blurst:           {ident: "Blurst", name: "Slug"},
	BlurstSpawn:      {ident: "BlurstSpawn", name: "Slug Swarm"},
	Buoyg:            {ident: "Buoyg", name: "Green Glider"},
	Drometon:         {ident: "Drometon", name: "Drometon"},
	EyeCopter:        {ident: "EyeCopter", name: "Firefly"},
	FlynnStone:       {ident: "FlynnStone", name: "Cyberdog"},
	Fungine:          {ident: "Fungine", name: "Jellyfish"},
	Furglot:          {ident: "Furglot", name: "Parasitic Shrub"},
	Gill:             {ident: "Gill", name: "Laser Sea Urchin"},
	Glugg:            {ident: "Glugg", name: "Giant Boulderback"},
	Hookfish:         {ident: "Hookfish", name: "Ancient Tunnel Hopper"},
	Jorm:             {ident: "Jorm", name: "Giant Greenworm"},
	Jormite:          {ident: "Jormite", name: "Baby Giant Greenworm"},
	LoopDiatom:       {ident: "LoopDiatom", name: "Pink Giant Diatom"},
	Mogra:            {ident: "Mogra", name: "Mothmite"},
	Mutant:           {ident: "Mutant", name: "Brown Ghoul"},
	Pliaa:            {ident: "Pliaa", name: "Red Flying Krill"},
	Potato:           {ident: "Potato", name: "Pillbug"},
	Prongfish:        {ident: "Prongfish", name: "Tunnel Hopper"},
	Quadropus:        {ident: "Quadropus", name: "Sudran Squid"},
	Rugg:             {ident: "Rugg", name: "Green Roller"},
	Scorpiant:        {ident: "Scorpiant", name: "Scorpiant"},
	Seamk:            {ident: "Seamk", name: "Purple Flying Krill"},
	SmallMogra:       {ident: "SmallMogra", name: "Baby Mothmite"},
	Snailborg:        {ident: "Snailborg", name: "Red Nautilus"},
	SpaceBat:         {ident: "SpaceBat", name: "Space Bat"},
	Spidler:          {ident: "Spidler", name: "Carnivorous Silk Bug"},
	Spiru:            {ident: "Spiru", name: "Spiru"},
	SpitBug:          {ident: "SpitBug", name: "Purple Wasp"},
	SpitBugBossSpawn: {ident: "SpitBugBossSpawn", name: "Ukhu Spawn"},
	SwarmilyChild:    {ident: "SwarmilyChild", name: "Small Butterfly"},
	SwarmilyParent:   {ident: "SwarmilyParent", name: "Large Butterfly"},
	TrapClaw:         {ident: "TrapClaw", name: "Purple Scissorbeak"},
	TubeWorm:         {ident: "TubeWorm", name: "Yellow Sea Sponge"},
	Volg:             {ident: "Volg", name: "Green Gilk Pupae"},
	Yorchug:          {ident: "Yorchug", name: "Green Cephalopod"},
	TubePuff:         {ident: "TubePuff", aliases: []string{"TubeWorm_Meta"}, name: "Green Sea Sponge"},
	LoopDiatomViolet: {ident: "LoopDiatomViolet", token: "LoopDiatom_Violet", name: "Purple Giant Diatom"},
	MutantStrong:     {ident: "MutantStrong", token: "Mutant_Strong", name: "Gray Ghoul"},
	RuggMeta:         {ident: "RuggMeta", token: "Rugg_Meta", name: "Magenta Roller"},
	SnailborgMeta:    {ident: "SnailborgMeta", token: "Snailborg_Meta", name: "Blue Nautilus"},
	TrapClawGamma:    {ident: "TrapClawGamma", token: "TrapClaw_Gamma", name: "Cyan Scissorbeak"},
	TrapClawMeta:     {ident: "TrapClawMeta", token: "TrapClaw_Meta", name: "Red Scissorbeak"},

	Goolumn:       {ident: "Goolumn", name: "Orb Wall"},
	Hoverling:     {ident: "Hoverling", name: "Blade Vine"},
	MushroomPoof:  {ident: "MushroomPoof", name: "Walking Shrub"},
	SpungusSpore:  {ident: "SpungusSpore", name: "Mushroom Spores"},
	TentacleGrass: {ident: "TentacleGrass", name: "Poison Grate Plant"},
	WillOWisp:     {ident: "WillOWisp", name: "Will o Wisp"},

	Annihiwaiter:  {ident: "Annihiwaiter", name: "Annihiwaiter"},
	Diskko:        {ident: "Diskko", name: "Omni-Sentry"},
	Donaught:      {ident: "Donaught", name: "Beholder Sentry"},
	Hoverbug:      {ident: "Hoverbug", name: "Ancient Sentry"},
	RepairDrone:   {ident: "RepairDrone", name: "Repair Drone"},
	SentryBot:     {ident: "SentryBot", name: "Silver Sentry"},
	TieFlighter:   {ident: "TieFlighter", name: "T-Type Sentry"},
	SentryBotMeta: {ident: "SentryBotMeta", token: "SentryBot_Meta", name: "Purple Sentry"},

	Nrok:        {ident: "Nrok", name: "Boulder"},
	SpitbugNest: {ident: "SpitbugNest", name: "Hive"},
}

// Tokens is the serialization table. Most creatures serialize as their
// identifier.
var Tokens = func() *enum.Table[Creature] {
	t := enum.New[Creature]("creature")

	for c := Creature(0); c < count; c++ {
		i := infos[c]

		tok := i.token
		if tok == "" {
			tok = i.ident
		}

		t.Add(c, tok, i.aliases...)
	}

	return t
}()

// hackerList is the Hacker achievement requirement in display order.
var hackerList = []Creature{
	// Fauna
	Arachnoptopus,
	Artichoker,
	Blite,
	Blurst,
	BlurstSpawn,
	Buoyg,
	Drometon,
	EyeCopter,
	FlynnStone,
	Fungine,
	Furglot,
	Gill,
	Glugg,
	Hookfish,
	Jorm,
	LoopDiatom,
	LoopDiatomViolet,
	Mogra,
	Mutant,
	MutantStrong,
	Pliaa,
	Potato,
	Prongfish,
	Quadropus,
	Rugg,
	RuggMeta,
	Scorpiant,
	Seamk,
	SmallMogra,
	Snailborg,
	SnailborgMeta,
	SpaceBat,
	Spidler,
	Spiru,
	SpitBug,
	SpitBugBossSpawn,
	SwarmilyChild,
	SwarmilyParent,
	TrapClaw,
	TrapClawGamma,
	TrapClawMeta,
	TubePuff,
	TubeWorm,
	Volg,
	Yorchug,

	// Flora
	Goolumn,
	Hoverling,
	MushroomPoof,
	SpungusSpore,
	WillOWisp,

	// Mechanized
	Annihiwaiter,
	Diskko,
	Donaught,
	Hoverbug,
	SentryBot,
	SentryBotMeta,
	TieFlighter,

	// Other
	Nrok,
	SpitbugNest,
}

// All returns every creature in declaration order.
func All() []Creature {
	return Tokens.Values()
}

// HackerList returns the creatures that must be glitched for the Hacker
// achievement.
func HackerList() []Creature {
	return append([]Creature(nil), hackerList...)
}

// Valid reports whether c is a known creature.
func (c Creature) Valid() bool {
	return c >= 0 && c < count
}

// HackerRequired reports whether c counts towards the Hacker achievement.
func (c Creature) HackerRequired() bool {
	switch c {
	case Jormite, TentacleGrass, RepairDrone:
		return false
	}

	return c.Valid()
}

// Ident returns the identifier of c, e.g. "TrapClawGamma".
func (c Creature) Ident() string {
	if !c.Valid() {
		return "Creature(?)"
	}

	return infos[c].ident
}

// Token returns the canonical serialized form of c, e.g. "TrapClaw_Gamma".
func (c Creature) Token() string {
	return Tokens.Token(c)
}

// String returns the bestiary name of c.
func (c Creature) String() string {
	if !c.Valid() {
		return "Unknown Creature"
	}

	return infos[c].name
}

// MarshalText implements encoding.TextMarshaler.
func (c Creature) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid creature %d", int(c))
	}

	return []byte(c.Token()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Aliases are accepted.
func (c *Creature) UnmarshalText(b []byte) error {
	v, err := Tokens.Parse(string(b))
	if err != nil {
		return err
	}

	*c = v

	return nil
}
