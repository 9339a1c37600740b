/*
 *  Copyright 2018 KardiaChain
 *  This file is part of the go-kardia library.
 *
 *  The go-kardia library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The go-kardia library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 *  GNU Lesser General Public License for more details.
 *
 *  You should have received a copy of the GNU Lesser General Public License
 *  along with the go-kardia library. If not, see <http://www.gnu.org/licenses/>.
 */

// Package db owns the mongo schema of the IBC explorer: the collections, their
// uniqueness constraints and lookup indexes.
// Supported storage: mongoDB
package db

/*
Index builds are requested one by one and are idempotent on the server, so
EnsureSchema can be re-run from the top after any failure.

Requirement:
- never drop or rewrite an existing index, conflicts are reported to the operator
- unique indexes are the only guard against duplicated natural keys, the sync
  and statistics jobs rely on duplicate key errors to detect replays
*/
