/*
Copyright © 2023 the OCRA authors.
This file is part of OCRA.

OCRA is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

OCRA is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with OCRA.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package hash computes deterministic keys that identify runs from
// descriptions of their configuration.
package hash

import (
	"encoding/gob"
	"fmt"
	"hash/fnv"

	"github.com/davecgh/go-spew/spew"
)

// Key returns a hexadecimal key for the specified object. Equal objects
// have equal keys as long as they do not contain maps.
func Key(object interface{}) string {
	h := fnv.New128a()
	if err := gob.NewEncoder(h).Encode(object); err != nil {
		// gob can't encode some values (e.g., unregistered interface
		// types), so print the object with spew instead.
		h.Reset()
		printer := spew.ConfigState{
			Indent:                  " ",
			SortKeys:                true,
			DisableMethods:          true,
			SpewKeys:                true,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
		printer.Fprintf(h, "%#v", object)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Short returns the first 8 characters of Key(object), for use in
// file names.
func Short(object interface{}) string {
	return Key(object)[:8]
}
