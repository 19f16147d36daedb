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

/*
avsg inspects save files of Axiom Verge.

The Steam release encrypts its save files; the other releases do not. avsg
decrypts and encrypts Steam save files, reports progress towards the
achievements that can be read from a save file, and keeps compressed backups.

Usage:
	avsg achievements [-u] <save>
	avsg hacker [-u] <save>
	avsg decrypt <save> [output]
	avsg encrypt <input> <output>
	avsg dump [-u] <save>
	avsg backup <save> <archive>
	avsg restore <archive> <save>

Output files are never overwritten. Settings are read from avsg.cfg.json in
the working directory or the user configuration directory, and from
AVSG_LOGLEVEL, AVSG_NOCOLOR and AVSG_UNENCRYPTED.

*/
package main
