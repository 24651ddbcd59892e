// Package buildroot inspects the staged install tree of a package:
// it classifies installed files into AppStream capability entries,
// appends them into a component document, and locates any metainfo
// document the package ships itself.
package buildroot

import (
	"path/filepath"
	"strings"
)

// Kind is the classification of one installed file.
type Kind int

const (
	KindNone Kind = iota
	KindLibrary
	KindBinary
	KindDesktopEntry
	KindServiceUnit
)

func (k Kind) String() string {
	switch k {
	case KindLibrary:
		return "library"
	case KindBinary:
		return "binary"
	case KindDesktopEntry:
		return "desktop-entry"
	case KindServiceUnit:
		return "service-unit"
	default:
		return "none"
	}
}

// Classify maps one installed file onto an AppStream capability. It is
// a pure function over the file's path relative to the buildroot, its
// base name, and whether it is executable. Rules are an ordered
// decision list; the first match wins:
//
//  1. shared libraries (.so, versioned .so.N) under usr/lib or usr/lib64
//  2. native import libraries (.dll, .lib) under the same directories
//  3. executables under usr/bin
//  4. desktop entries under usr/share/applications
//  5. systemd units under usr/lib/systemd/system
//
// Anything else contributes no metadata.
func Classify(relPath, name string, executable bool) Kind {
	rel := filepath.ToSlash(relPath)

	switch {
	case isSharedLibrary(name) && underLibDir(rel):
		return KindLibrary
	case isNativeLibrary(name) && underLibDir(rel):
		return KindLibrary
	case executable && under(rel, "usr/bin"):
		return KindBinary
	case under(rel, "usr/share/applications") && strings.HasSuffix(name, ".desktop"):
		return KindDesktopEntry
	case under(rel, "usr/lib/systemd/system") && strings.HasSuffix(name, ".service"):
		return KindServiceUnit
	default:
		return KindNone
	}
}

func isSharedLibrary(name string) bool {
	return strings.HasSuffix(name, ".so") || strings.Contains(name, ".so.")
}

func isNativeLibrary(name string) bool {
	return strings.HasSuffix(name, ".dll") || strings.HasSuffix(name, ".lib")
}

func underLibDir(rel string) bool {
	return under(rel, "usr/lib") || under(rel, "usr/lib64")
}

// under reports whether rel lies strictly inside dir. A directory is
// never inside itself, and usr/lib64 is not inside usr/lib.
func under(rel, dir string) bool {
	return strings.HasPrefix(rel, dir+"/")
}
