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

package fileio_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mys721tx/avsg-go/internal/fileio"
)

func TestWriteNew(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out")

	require.NoError(t, fileio.WriteNew(fn, []byte("save")))

	got, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "save", string(got))
}

func TestWriteNewEmpty(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out")

	require.NoError(t, fileio.WriteNew(fn, nil))
	assert.FileExists(t, fn)
}

func TestWriteNewRefusesOverwrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(fn, []byte("existing"), 0644))

	assert.ErrorIs(t, fileio.WriteNew(fn, []byte("new")), fs.ErrExist)

	got, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(got))
}

func TestWriteNewMissingDir(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing", "out")

	assert.ErrorIs(t, fileio.WriteNew(fn, []byte("save")), fs.ErrNotExist)
}
