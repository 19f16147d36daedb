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
)

// Field maps a record field to the element it is serialized as.
type Field struct {
	// Name is the Go field name.
	Name string
	// Tag is the element name in the save file.
	Tag string
	// Optional fields may be missing from the record.
	Optional bool
	// Repeated fields appear once per value as sibling elements. A required
	// repeated field may appear zero times.
	Repeated bool
	// Default is decoded in place of a missing element. Only item types use
	// it.
	Default string
}

// Schema lists the fields of one record type.
type Schema struct {
	Record string
	Fields []Field
}

// Field returns the field with the given Go name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// ByTag returns the field serialized with the given element name.
func (s *Schema) ByTag(tag string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Tag == tag {
			return f, true
		}
	}

	return Field{}, false
}

// Tag returns the element name of the named field. It panics if the field
// does not exist.
func (s *Schema) Tag(name string) string {
	f, ok := s.Field(name)
	if !ok {
		panic(fmt.Sprintf("savedata: %s has no field %s", s.Record, name))
	}

	return f.Tag
}

func req(name, tag string) Field { return Field{Name: name, Tag: tag} }

func opt(name, tag string) Field { return Field{Name: name, Tag: tag, Optional: true} }

func rep(name, tag string) Field { return Field{Name: name, Tag: tag, Repeated: true} }

func optRep(name, tag string) Field {
	return Field{Name: name, Tag: tag, Optional: true, Repeated: true}
}

// RootTag is the document element of a save file.
const RootTag = "THSaveData"

var (
	// PointSchema is used for Vector2 and Point values.
	PointSchema = &Schema{
		Record: "Point",
		Fields: []Field{
			req("X", "X"),
			req("Y", "Y"),
		},
	}

	// ItemRecordSchema describes THItemRecord.
	ItemRecordSchema = &Schema{
		Record: "THItemRecord",
		Fields: []Field{
			req("Name", "mName"),
			// The game never omits mType. A missing one decodes as WEAPON to
			// stay compatible with older readers of the format.
			{Name: "Type", Tag: "mType", Default: "WEAPON"},
			req("Consumable", "mConsumable"),
			req("ExcludedFromCount", "mExcludedFromCount"),
			opt("RequiredItem", "mRequiredItem"),
		},
	}

	// AreaSaveDataSchema describes THAreaSaveData.
	AreaSaveDataSchema = &Schema{
		Record: "THAreaSaveData",
		Fields: []Field{
			req("AreaName", "mAreaName"),
			req("Seed", "mSeed"),
			req("ScreenCount", "mScreenCount"),
			req("X", "mX"),
			req("Y", "mY"),
			optRep("Items", "mItem"),
		},
	}

	// AutoMapDoorSchema describes THAutoMapDoor.
	AutoMapDoorSchema = &Schema{
		Record: "THAutoMapDoor",
		Fields: []Field{
			req("X", "mX"),
			req("Y", "mY"),
			req("Wall", "mWall"),
		},
	}

	// AutoMapRoomSchema describes THAutoMapRoom.
	AutoMapRoomSchema = &Schema{
		Record: "THAutoMapRoom",
		Fields: []Field{
			req("X", "mX"),
			req("Y", "mY"),
			req("Width", "mWidth"),
			req("Height", "mHeight"),
		},
	}

	// AutoMapDataSchema describes THAutoMapData.
	AutoMapDataSchema = &Schema{
		Record: "THAutoMapData",
		Fields: []Field{
			req("AreaName", "mAreaName"),
			req("WidthScreens", "mWidthScreens"),
			req("HeightScreens", "mHeightScreens"),
			req("ScreenCount", "mScreenCount"),
			req("CSVData", "mCSVData"),
			optRep("Data", "mData"),
			optRep("Entrances", "Entrance"),
			optRep("Doors", "Door"),
			optRep("Rooms", "Room"),
			rep("Reminders", "Reminder"),
		},
	}

	// PasswordEntrySchema describes THPasswordSaveEntry.
	PasswordEntrySchema = &Schema{
		Record: "THPasswordSaveEntry",
		Fields: []Field{
			req("Password", "mPassword"),
			req("Enabled", "mEnabled"),
		},
	}

	// SecretWorldSaveDataSchema describes THSecretWorldSaveData.
	SecretWorldSaveDataSchema = &Schema{
		Record: "THSecretWorldSaveData",
		Fields: []Field{
			req("AreaName", "mAreaName"),
			req("SecretWorldName", "mSecretWorldName"),
			req("PrimaryItem", "mPrimaryItem"),
			req("SecondaryItem", "mSecondaryItem"),
		},
	}

	// SpeedrunCheckpointSchema describes THSpeedrunCheckpoint.
	SpeedrunCheckpointSchema = &Schema{
		Record: "THSpeedrunCheckpoint",
		Fields: []Field{
			req("Name", "mName"),
			req("Frames", "mFrames"),
		},
	}

	// SaveDataSchema describes the THSaveData document element.
	SaveDataSchema = &Schema{
		Record: RootTag,
		Fields: []Field{
			req("ScreenSize", "mScreenSize"),
			req("PlayerName", "mPlayerName"),
			req("Difficulty", "mDifficulty"),
			opt("RandomizerDifficulty", "mRandomizerDifficulty"),
			req("CurrentWeapon", "mCurrentWeapon"),
			opt("PreviousWeapon", "mPreviousWeapon"),
			opt("CurrentTool", "mCurrentTool"),
			req("SaveArea", "mSaveArea"),
			req("SaveRoom", "mSaveRoom"),
			req("SaveRoomPos", "mSaveRoomPos"),
			req("TotalFrames", "mTotalFrames"),
			req("EffectiveFrames", "mEffectiveFrames"),
			req("ScreenCount", "mScreenCount"),
			req("TotalScreenCount", "mTotalScreenCount"),
			req("NumDeaths", "mNumDeaths"),
			req("RedGooDestroyed", "mRedGooDestroyed"),
			req("BricksDestroyed", "mBricksDestroyed"),
			req("IsSpeedRun", "mIsSpeedRun"),
			opt("IsRandomizer", "mIsRandomizer"),
			opt("RandomItem", "mRandomItem"),
			req("UseRealTimers", "mUseRealTimers"),
			req("LastMapSubScreen", "mLastMapSubScreen"),
			req("BaseSeed", "mBaseSeed"),
			opt("RandomizerSeed", "mRandomizerSeed"),
			req("BiofluxVisions", "mBiofluxVisions"),
			req("HallucinationAmount", "mHallucinationAmount"),
			req("TranslatePrimordial", "mTranslatePrimordial"),
			req("TranslateVykhya", "mTranslateVykhya"),
			req("JustinBailey", "mJustinBailey"),
			opt("TraceBlues", "mTraceBlues"),
			opt("TraceBlack", "mTraceBlack"),
			opt("TraceYellow", "mTraceYellow"),
			opt("SecretWindow", "mSecretWindow"),
			req("HasDrone", "mHasDrone"),
			req("CheatsUsed", "mCheatsUsed"),
			rep("WeaponQuickSelect", "QuickSelectWeapon"),
			rep("Items", "THItemRecord"),
			rep("KeyPointsCompleted", "KeyPoint"),
			rep("Passwords", "PasswordEntry"),
			rep("AreaSaveData", "AreaSaveData"),
			optRep("SecretWorldSaveData", "SecretWorldSaveData"),
			rep("AutoMaps", "AutoMap"),
			optRep("SpeedrunCheckpoints", "SpeedrunCheckpoint"),
			optRep("CreaturesGlitched", "CreatureGlitched"),
		},
	}
)

func (p *Point) schema() *Schema { return PointSchema }

func (p *Point) bind() map[string]binder {
	return map[string]binder{
		"X": value(&p.X, parseInt),
		"Y": value(&p.Y, parseInt),
	}
}

func (r *ItemRecord) schema() *Schema { return ItemRecordSchema }

func (r *ItemRecord) bind() map[string]binder {
	return map[string]binder{
		"Name":              value(&r.Name, parseString),
		"Type":              value(&r.Type, parseEnum(ItemTypes)),
		"Consumable":        value(&r.Consumable, parseBool),
		"ExcludedFromCount": value(&r.ExcludedFromCount, parseBool),
		"RequiredItem":      optValue(&r.RequiredItem, parseString),
	}
}

func (a *AreaSaveData) schema() *Schema { return AreaSaveDataSchema }

func (a *AreaSaveData) bind() map[string]binder {
	return map[string]binder{
		"AreaName":    value(&a.AreaName, parseString),
		"Seed":        value(&a.Seed, parseInt),
		"ScreenCount": value(&a.ScreenCount, parseInt),
		"X":           value(&a.X, parseFloat32),
		"Y":           value(&a.Y, parseFloat32),
		"Items":       stringSet(&a.Items),
	}
}

func (m *AutoMapDoor) schema() *Schema { return AutoMapDoorSchema }

func (m *AutoMapDoor) bind() map[string]binder {
	return map[string]binder{
		"X":    value(&m.X, parseInt),
		"Y":    value(&m.Y, parseInt),
		"Wall": value(&m.Wall, parseEnum(CollisionDirs)),
	}
}

func (m *AutoMapRoom) schema() *Schema { return AutoMapRoomSchema }

func (m *AutoMapRoom) bind() map[string]binder {
	return map[string]binder{
		"X":      value(&m.X, parseInt),
		"Y":      value(&m.Y, parseInt),
		"Width":  value(&m.Width, parseInt),
		"Height": value(&m.Height, parseInt),
	}
}

func (m *AutoMapData) schema() *Schema { return AutoMapDataSchema }

func (m *AutoMapData) bind() map[string]binder {
	return map[string]binder{
		"AreaName":      value(&m.AreaName, parseString),
		"WidthScreens":  value(&m.WidthScreens, parseInt),
		"HeightScreens": value(&m.HeightScreens, parseInt),
		"ScreenCount":   value(&m.ScreenCount, parseInt),
		"CSVData":       value(&m.CSVData, parseString),
		"Data":          optList(&m.Data, parseUint32),
		"Entrances":     optRecordList(&m.Entrances),
		"Doors":         optRecordList(&m.Doors),
		"Rooms":         optRecordList(&m.Rooms),
		"Reminders":     recordList(&m.Reminders),
	}
}

func (p *PasswordEntry) schema() *Schema { return PasswordEntrySchema }

func (p *PasswordEntry) bind() map[string]binder {
	return map[string]binder{
		"Password": value(&p.Password, parseString),
		"Enabled":  value(&p.Enabled, parseBool),
	}
}

func (s *SecretWorldSaveData) schema() *Schema { return SecretWorldSaveDataSchema }

func (s *SecretWorldSaveData) bind() map[string]binder {
	return map[string]binder{
		"AreaName":        value(&s.AreaName, parseString),
		"SecretWorldName": value(&s.SecretWorldName, parseString),
		"PrimaryItem":     value(&s.PrimaryItem, parseString),
		"SecondaryItem":   value(&s.SecondaryItem, parseString),
	}
}

func (c *SpeedrunCheckpoint) schema() *Schema { return SpeedrunCheckpointSchema }

func (c *SpeedrunCheckpoint) bind() map[string]binder {
	return map[string]binder{
		"Name":   value(&c.Name, parseString),
		"Frames": value(&c.Frames, parseInt64),
	}
}

func (s *SaveData) schema() *Schema { return SaveDataSchema }

func (s *SaveData) bind() map[string]binder {
	return map[string]binder{
		"ScreenSize":           value(&s.ScreenSize, parseInt),
		"PlayerName":           value(&s.PlayerName, parseString),
		"Difficulty":           value(&s.Difficulty, parseEnum(Difficulties)),
		"RandomizerDifficulty": optValue(&s.RandomizerDifficulty, parseEnum(RandomizerDifficulties)),
		"CurrentWeapon":        value(&s.CurrentWeapon, parseString),
		"PreviousWeapon":       optValue(&s.PreviousWeapon, parseString),
		"CurrentTool":          optValue(&s.CurrentTool, parseString),
		"SaveArea":             value(&s.SaveArea, parseString),
		"SaveRoom":             value(&s.SaveRoom, parseString),
		"SaveRoomPos":          record(&s.SaveRoomPos),
		"TotalFrames":          value(&s.TotalFrames, parseInt64),
		"EffectiveFrames":      value(&s.EffectiveFrames, parseFloat64),
		"ScreenCount":          value(&s.ScreenCount, parseInt),
		"TotalScreenCount":     value(&s.TotalScreenCount, parseInt),
		"NumDeaths":            value(&s.NumDeaths, parseInt),
		"RedGooDestroyed":      value(&s.RedGooDestroyed, parseInt),
		"BricksDestroyed":      value(&s.BricksDestroyed, parseInt),
		"IsSpeedRun":           value(&s.IsSpeedRun, parseBool),
		"IsRandomizer":         optValue(&s.IsRandomizer, parseBool),
		"RandomItem":           dictionary(&s.RandomItem),
		"UseRealTimers":        value(&s.UseRealTimers, parseBool),
		"LastMapSubScreen":     value(&s.LastMapSubScreen, parseEnum(MapSubScreens)),
		"BaseSeed":             value(&s.BaseSeed, parseInt),
		"RandomizerSeed":       optValue(&s.RandomizerSeed, parseString),
		"BiofluxVisions":       value(&s.BiofluxVisions, parseBool),
		"HallucinationAmount":  value(&s.HallucinationAmount, parseFloat32),
		"TranslatePrimordial":  value(&s.TranslatePrimordial, parseBool),
		"TranslateVykhya":      value(&s.TranslateVykhya, parseBool),
		"JustinBailey":         value(&s.JustinBailey, parseBool),
		"TraceBlues":           optValue(&s.TraceBlues, parseBool),
		"TraceBlack":           optValue(&s.TraceBlack, parseBool),
		"TraceYellow":          optValue(&s.TraceYellow, parseBool),
		"SecretWindow":         optValue(&s.SecretWindow, parseBool),
		"HasDrone":             value(&s.HasDrone, parseBool),
		"CheatsUsed":           value(&s.CheatsUsed, parseBool),
		"WeaponQuickSelect":    list(&s.WeaponQuickSelect, parseString),
		"Items":                recordList(&s.Items),
		"KeyPointsCompleted":   list(&s.KeyPointsCompleted, parseString),
		"Passwords":            recordList(&s.Passwords),
		"AreaSaveData":         recordList(&s.AreaSaveData),
		"SecretWorldSaveData":  optRecordList(&s.SecretWorldSaveData),
		"AutoMaps":             recordList(&s.AutoMaps),
		"SpeedrunCheckpoints":  optRecordList(&s.SpeedrunCheckpoints),
		"CreaturesGlitched":    creatureSet(&s.CreaturesGlitched),
	}
}
