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

package savedata_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mys721tx/avsg-go/pkg/savedata"
)

type errorWriter struct {
	err error
}

func (w *errorWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

// TestWriteYAML tests the YAML dump of a decoded save
func TestWriteYAML(t *testing.T) {
	s, err := savedata.Decode(readSample(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteYAML(&buf))

	out := buf.String()
	assert.Contains(t, out, "player_name: Trace\n")
	assert.Contains(t, out, "difficulty: NORMAL\n")
	assert.Contains(t, out, "last_map_sub_screen: INVENTORY\n")
	assert.Contains(t, out, "- TubePuff\n")
	assert.Contains(t, out, "- Mutant_Strong\n")
	assert.NotContains(t, out, "current_tool")
	assert.NotContains(t, out, "trace_black")

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc["num_deaths"])
	assert.Equal(t, "Nova", doc["previous_weapon"])

	items, ok := doc["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 12)

	glitched, ok := doc["creatures_glitched"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Arachnoptopus", "TubePuff", "Mutant_Strong"}, glitched)
}

// TestWriteYAMLError tests that writer errors are returned
func TestWriteYAMLError(t *testing.T) {
	s, err := savedata.Decode(readSample(t))
	require.NoError(t, err)

	assert.Error(t, s.WriteYAML(&errorWriter{err: errors.New("disk full")}))
}
