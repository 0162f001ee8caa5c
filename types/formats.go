package types

import (
	"fmt"
	"strings"
)

// Format selects one of the supported surface-mesh output encodings.
type Format uint8

const (
	FormatNone Format = iota
	// FormatASCII is the Cart3D ASCII triangulation (.tri / .triq).
	FormatASCII
	// Binary Cart3D triangulations: [l]b4 and [l]b8 are little/big-endian
	// with 4- and 8-byte words (record markers, indices and coordinates).
	FormatB4
	FormatLB4
	FormatB8
	FormatLB8
	// FormatSurf is the AFLR3 mixed tri/quad surface format (.surf).
	FormatSurf
	// FormatSTL and FormatSTLBinary are ASCII and binary stereolithography.
	FormatSTL
	FormatSTLBinary
)

var FormatNameMap = map[string]Format{
	"ascii":      FormatASCII,
	"tri":        FormatASCII,
	"triq":       FormatASCII,
	"b4":         FormatB4,
	"lb4":        FormatLB4,
	"b8":         FormatB8,
	"lb8":        FormatLB8,
	"surf":       FormatSurf,
	"aflr3":      FormatSurf,
	"stl":        FormatSTL,
	"stlb":       FormatSTLBinary,
	"stl-binary": FormatSTLBinary,
}

// ParseFormat maps a format name like "lb8" or "surf" to its tag.
func ParseFormat(name string) (Format, error) {
	f, ok := FormatNameMap[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return FormatNone, fmt.Errorf("unknown mesh output format: %s", name)
	}
	return f, nil
}

func (f Format) String() string {
	switch f {
	case FormatASCII:
		return "ascii"
	case FormatB4:
		return "b4"
	case FormatLB4:
		return "lb4"
	case FormatB8:
		return "b8"
	case FormatLB8:
		return "lb8"
	case FormatSurf:
		return "surf"
	case FormatSTL:
		return "stl"
	case FormatSTLBinary:
		return "stlb"
	}
	return "none"
}

// FormatNames lists the canonical format names in declaration order.
func FormatNames() []string {
	return []string{"ascii", "b4", "lb4", "b8", "lb8", "surf", "stl", "stlb"}
}
