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

// Package savedata decodes the XML save file into typed records.
//
// The element names of the save file are fixed by the game. They are listed
// in the Schema tables next to each record type, which the decoder consults
// instead of relying on struct tags.
package savedata

import (
	"github.com/mys721tx/avsg-go/pkg/creature"
)

// Point is a pair of integer coordinates.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ItemRecord is an item the player has picked up.
type ItemRecord struct {
	Name              string           `yaml:"name"`
	Type              ItemType         `yaml:"type"`
	Consumable        bool             `yaml:"consumable"`
	ExcludedFromCount bool             `yaml:"excluded_from_count"`
	RequiredItem      Optional[string] `yaml:"required_item,omitempty"`
}

// AreaSaveData is the per area state.
type AreaSaveData struct {
	AreaName    string             `yaml:"area_name"`
	Seed        int                `yaml:"seed"`
	ScreenCount int                `yaml:"screen_count"`
	X           float32            `yaml:"x"`
	Y           float32            `yaml:"y"`
	Items       Optional[[]string] `yaml:"items,omitempty"`
}

// AutoMapDoor is a door or entrance drawn on the map.
type AutoMapDoor struct {
	X    int          `yaml:"x"`
	Y    int          `yaml:"y"`
	Wall CollisionDir `yaml:"wall"`
}

// AutoMapRoom is a room outline drawn on the map.
type AutoMapRoom struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AutoMapData is the explored map of one area.
type AutoMapData struct {
	AreaName      string                  `yaml:"area_name"`
	WidthScreens  int                     `yaml:"width_screens"`
	HeightScreens int                     `yaml:"height_screens"`
	ScreenCount   int                     `yaml:"screen_count"`
	CSVData       string                  `yaml:"csv_data"`
	Data          Optional[[]uint32]      `yaml:"data,omitempty"`
	Entrances     Optional[[]AutoMapDoor] `yaml:"entrances,omitempty"`
	Doors         Optional[[]AutoMapDoor] `yaml:"doors,omitempty"`
	Rooms         Optional[[]AutoMapRoom] `yaml:"rooms,omitempty"`
	Reminders     []Point                 `yaml:"reminders"`
}

// PasswordEntry is a password typed into the password screen.
type PasswordEntry struct {
	Password string `yaml:"password"`
	Enabled  bool   `yaml:"enabled"`
}

// SecretWorldSaveData is the state of a secret world.
type SecretWorldSaveData struct {
	AreaName        string `yaml:"area_name"`
	SecretWorldName string `yaml:"secret_world_name"`
	PrimaryItem     string `yaml:"primary_item"`
	SecondaryItem   string `yaml:"secondary_item"`
}

// SpeedrunCheckpoint is a named event and the frame it happened on. The game
// records boss kills here even outside of speedruns.
type SpeedrunCheckpoint struct {
	Name   string `yaml:"name"`
	Frames int64  `yaml:"frames"`
}

// SaveData is a decoded save file.
type SaveData struct {
	ScreenSize           int                             `yaml:"screen_size"`
	PlayerName           string                          `yaml:"player_name"`
	Difficulty           Difficulty                      `yaml:"difficulty"`
	RandomizerDifficulty Optional[RandomizerDifficulty]  `yaml:"randomizer_difficulty,omitempty"`
	CurrentWeapon        string                          `yaml:"current_weapon"`
	PreviousWeapon       Optional[string]                `yaml:"previous_weapon,omitempty"`
	CurrentTool          Optional[string]                `yaml:"current_tool,omitempty"`
	SaveArea             string                          `yaml:"save_area"`
	SaveRoom             string                          `yaml:"save_room"`
	SaveRoomPos          Point                           `yaml:"save_room_pos"`
	TotalFrames          int64                           `yaml:"total_frames"`
	EffectiveFrames      float64                         `yaml:"effective_frames"`
	ScreenCount          int                             `yaml:"screen_count"`
	TotalScreenCount     int                             `yaml:"total_screen_count"`
	NumDeaths            int                             `yaml:"num_deaths"`
	RedGooDestroyed      int                             `yaml:"red_goo_destroyed"`
	BricksDestroyed      int                             `yaml:"bricks_destroyed"`
	IsSpeedRun           bool                            `yaml:"is_speed_run"`
	IsRandomizer         Optional[bool]                  `yaml:"is_randomizer,omitempty"`
	RandomItem           Optional[map[string]string]     `yaml:"random_item,omitempty"`
	UseRealTimers        bool                            `yaml:"use_real_timers"`
	LastMapSubScreen     MapSubScreen                    `yaml:"last_map_sub_screen"`
	BaseSeed             int                             `yaml:"base_seed"`
	RandomizerSeed       Optional[string]                `yaml:"randomizer_seed,omitempty"`
	BiofluxVisions       bool                            `yaml:"bioflux_visions"`
	HallucinationAmount  float32                         `yaml:"hallucination_amount"`
	TranslatePrimordial  bool                            `yaml:"translate_primordial"`
	TranslateVykhya      bool                            `yaml:"translate_vykhya"`
	JustinBailey         bool                            `yaml:"justin_bailey"`
	TraceBlues           Optional[bool]                  `yaml:"trace_blues,omitempty"`
	TraceBlack           Optional[bool]                  `yaml:"trace_black,omitempty"`
	TraceYellow          Optional[bool]                  `yaml:"trace_yellow,omitempty"`
	SecretWindow         Optional[bool]                  `yaml:"secret_window,omitempty"`
	HasDrone             bool                            `yaml:"has_drone"`
	CheatsUsed           bool                            `yaml:"cheats_used"`
	WeaponQuickSelect    []string                        `yaml:"weapon_quick_select"`
	Items                []ItemRecord                    `yaml:"items"`
	KeyPointsCompleted   []string                        `yaml:"key_points_completed"`
	Passwords            []PasswordEntry                 `yaml:"passwords"`
	AreaSaveData         []AreaSaveData                  `yaml:"area_save_data"`
	SecretWorldSaveData  Optional[[]SecretWorldSaveData] `yaml:"secret_world_save_data,omitempty"`
	AutoMaps             []AutoMapData                   `yaml:"auto_maps"`
	SpeedrunCheckpoints  Optional[[]SpeedrunCheckpoint]  `yaml:"speedrun_checkpoints,omitempty"`
	CreaturesGlitched    Optional[[]creature.Creature]   `yaml:"creatures_glitched,omitempty"`
}
