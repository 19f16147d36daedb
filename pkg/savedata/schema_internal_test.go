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
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBindersCoverSchemas tests that every schema field has a binder and
// every binder has a schema field
func TestBindersCoverSchemas(t *testing.T) {
	records := []interface {
		schema() *Schema
		bind() map[string]binder
	}{
		new(Point),
		new(ItemRecord),
		new(AreaSaveData),
		new(AutoMapDoor),
		new(AutoMapRoom),
		new(AutoMapData),
		new(PasswordEntry),
		new(SecretWorldSaveData),
		new(SpeedrunCheckpoint),
		new(SaveData),
	}

	for _, r := range records {
		s := r.schema()
		b := r.bind()

		t.Run(s.Record, func(t *testing.T) {
			assert.Len(t, b, len(s.Fields))

			tags := make(map[string]bool)

			for _, f := range s.Fields {
				assert.Contains(t, b, f.Name)
				assert.False(t, tags[f.Tag], "tag %s used twice", f.Tag)
				tags[f.Tag] = true

				if f.Default != "" {
					assert.NotNil(t, b[f.Name].text, "%s has a default but no text binder", f.Name)
				}
			}
		})
	}
}
