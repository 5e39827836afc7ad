// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"
	"strconv"
	"strings"
)

// Tool version written into the IL version line of every IL document.
const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// Version is a major.minor.patch IL version triple.
type Version struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// CurrentVersion returns the version of the IL produced by this package.
func CurrentVersion() Version {
	return Version{Major: VersionMajor, Minor: VersionMinor, Patch: VersionPatch}
}

// String returns the dotted form, e.g. "1.0.0".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsZero reports whether v is the zero version 0.0.0.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// ParseVersion parses a "major.minor.patch" string.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, NewError(ErrInvalidVersion, fmt.Sprintf("version %q must have the form major.minor.patch", s))
	}
	var nums [3]uint16
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Version{}, NewError(ErrInvalidVersion, fmt.Sprintf("version %q: component %q is not a number", s, p))
		}
		nums[i] = uint16(n)
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}
