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

package savedata

import (
	"fmt"

	"github.com/mys721tx/avsg-go/internal/enum"
)

// ItemType is the category of an item record.
type ItemType int

// Item categories.
const (
	ItemGlitchBombDrop ItemType = iota
	ItemHealthNode
	ItemHealthNodeFragment
	ItemHealthDrop
	ItemLore
	ItemPermanentUpgrade
	ItemPowerNode
	ItemPowerNodeFragment
	ItemRangeNode
	ItemSizeNode
	ItemTool
	ItemWeapon
)

// ItemTypes is the serialization table for ItemType.
var ItemTypes = enum.New[ItemType]("item type").
	Add(ItemGlitchBombDrop, "GLITCH_BOMB_DROP").
	Add(ItemHealthNode, "HEALTH_NODE").
	Add(ItemHealthNodeFragment, "HEALTH_NODE_FRAGMENT").
	Add(ItemHealthDrop, "HEALTH_DROP").
	Add(ItemLore, "LORE").
	Add(ItemPermanentUpgrade, "PERMANENT_UPGRADE").
	Add(ItemPowerNode, "POWER_NODE").
	Add(ItemPowerNodeFragment, "POWER_NODE_FRAGMENT").
	Add(ItemRangeNode, "RANGE_NODE").
	Add(ItemSizeNode, "SIZE_NODE").
	Add(ItemTool, "TOOL").
	Add(ItemWeapon, "WEAPON")

func (t ItemType) String() string { return tokenString(ItemTypes, t) }

// MarshalText implements encoding.TextMarshaler.
func (t ItemType) MarshalText() ([]byte, error) { return marshalToken(ItemTypes, t) }

// Difficulty is the game difficulty.
type Difficulty int

// Difficulties.
const (
	DifficultyNormal Difficulty = iota
	DifficultyHard
)

// Difficulties is the serialization table for Difficulty.
var Difficulties = enum.New[Difficulty]("difficulty").
	Add(DifficultyNormal, "NORMAL").
	Add(DifficultyHard, "HARD")

func (d Difficulty) String() string { return tokenString(Difficulties, d) }

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) { return marshalToken(Difficulties, d) }

// RandomizerDifficulty is the difficulty of a randomizer seed.
type RandomizerDifficulty int

// Randomizer difficulties.
const (
	RandomizerDefault RandomizerDifficulty = iota
	RandomizerAdvanced
	RandomizerMasochist
	RandomizerEasy
	RandomizerNormal
	RandomizerHard
)

// RandomizerDifficulties is the serialization table for RandomizerDifficulty.
var RandomizerDifficulties = enum.New[RandomizerDifficulty]("randomizer difficulty").
	Add(RandomizerDefault, "DEFAULT").
	Add(RandomizerAdvanced, "ADVANCED").
	Add(RandomizerMasochist, "MASOCHIST").
	Add(RandomizerEasy, "EASY").
	Add(RandomizerNormal, "NORMAL").
	Add(RandomizerHard, "HARD")

func (r RandomizerDifficulty) String() string { return tokenString(RandomizerDifficulties, r) }

// MarshalText implements encoding.TextMarshaler.
func (r RandomizerDifficulty) MarshalText() ([]byte, error) {
	return marshalToken(RandomizerDifficulties, r)
}

// CollisionDir is the wall a map door sits in.
type CollisionDir int

// Collision directions.
const (
	CollisionNone CollisionDir = iota
	CollisionBottom
	CollisionLeft
	CollisionTop
	CollisionRight
)

// CollisionDirs is the serialization table for CollisionDir.
var CollisionDirs = enum.New[CollisionDir]("collision direction").
	Add(CollisionNone, "None").
	Add(CollisionBottom, "Bottom").
	Add(CollisionLeft, "Left").
	Add(CollisionTop, "Top").
	Add(CollisionRight, "Right")

func (c CollisionDir) String() string { return tokenString(CollisionDirs, c) }

// MarshalText implements encoding.TextMarshaler.
func (c CollisionDir) MarshalText() ([]byte, error) { return marshalToken(CollisionDirs, c) }

// MapSubScreen is the pause menu tab that was open last.
type MapSubScreen int

// Map sub screens.
const (
	SubScreenMap MapSubScreen = iota
	SubScreenStart
	SubScreenInventory
	SubScreenNotes
	SubScreenPassword
	SubScreenConsole
	SubScreenCount
)

// MapSubScreens is the serialization table for MapSubScreen.
var MapSubScreens = enum.New[MapSubScreen]("map sub screen").
	Add(SubScreenMap, "MAP").
	Add(SubScreenStart, "START").
	Add(SubScreenInventory, "INVENTORY").
	Add(SubScreenNotes, "NOTES").
	Add(SubScreenPassword, "PASSWORD").
	Add(SubScreenConsole, "CONSOLE").
	Add(SubScreenCount, "COUNT")

func (m MapSubScreen) String() string { return tokenString(MapSubScreens, m) }

// MarshalText implements encoding.TextMarshaler.
func (m MapSubScreen) MarshalText() ([]byte, error) { return marshalToken(MapSubScreens, m) }

func tokenString[E ~int](t *enum.Table[E], v E) string {
	if tok := t.Token(v); tok != "" {
		return tok
	}

	return fmt.Sprintf("%s(%d)", t.Name(), int(v))
}

func marshalToken[E ~int](t *enum.Table[E], v E) ([]byte, error) {
	tok := t.Token(v)
	if tok == "" {
		return nil, fmt.Errorf("invalid %s %d", t.Name(), int(v))
	}

	return []byte(tok), nil
}
