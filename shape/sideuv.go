// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"strings"
)

// SideUV selects how the v texture coordinate of a [Cylinder] side
// wall is derived.
type SideUV int32

const (
	// SideUVRadial derives v from the radial fraction u/subU, the same
	// value as the u coordinate. This reproduces the historical output
	// of the generator, in which v does not vary with height.
	SideUVRadial SideUV = iota

	// SideUVHeight derives v from the height fraction h/subH,
	// so that the side texture strip spans the full wall.
	SideUVHeight

	// SideUVN is the number of SideUV values.
	SideUVN
)

var sideUVNames = [SideUVN]string{"radial", "height"}

// String returns the lowercase name of the value.
func (i SideUV) String() string {
	if i < 0 || i >= SideUVN {
		return fmt.Sprintf("SideUV(%d)", int32(i))
	}
	return sideUVNames[i]
}

// SetString sets the value from its name, ignoring case.
func (i *SideUV) SetString(s string) error {
	for v, nm := range sideUVNames {
		if strings.EqualFold(nm, s) {
			*i = SideUV(v)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type SideUV (valid: %s)", s, strings.Join(sideUVNames[:], ", "))
}

// Values returns all possible values of the type.
func (i SideUV) Values() []SideUV {
	return []SideUV{SideUVRadial, SideUVHeight}
}

// MarshalText implements [encoding.TextMarshaler].
func (i SideUV) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *SideUV) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
