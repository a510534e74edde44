// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package osx contains extensions to the os package.
package osx

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
)

// Go does not consider it worthy to include constants for the user permission
// bits, so we do so here.
//
// The constants are named for the names chmod gives them. U, G, and O mean
// "user", "group", and "other"; R and W mean "read" and "write".
const (
	PermUR = 0o400
	PermUW = 0o200

	PermGR = 0o40
	PermOR = 0o4

	// All read.
	PermAR = PermUR | PermGR | PermOR
)

// RemoveIfExists removes the named file, treating a missing file as success.
func RemoveIfExists(name string) error {
	err := os.Remove(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
