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

// Package fileio writes output files without clobbering existing ones.
package fileio

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// WriteNew writes data to a file that must not exist yet. The returned error
// wraps fs.ErrExist when it does.
func WriteNew(fn string, data []byte) (err error) {
	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("unable to close %s: %w", fn, cerr)
		}
	}()

	if _, err = io.Copy(f, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("unable to write %s: %w", fn, err)
	}

	return nil
}
