package buildroot

import (
	"io/fs"
	"os"
	"path/filepath"
)

// metainfoPatterns are the file names a package-shipped metainfo
// document may carry, in preference order.
var metainfoPatterns = []string{"*.metainfo.xml", "*.appdata.xml", "metainfo.xml"}

// metainfoDirs are the directories AppStream documents conventionally
// install into, relative to the buildroot.
var metainfoDirs = []string{
	filepath.Join("usr", "share", "metainfo"),
	filepath.Join("usr", "share", "appdata"),
}

// FindExisting locates a metainfo document already present in the
// buildroot. Search order: a metainfo.xml directly at the root, then
// pattern matches inside the conventional metainfo directories, then
// the first match anywhere in the tree. Reports the path and whether
// one was found.
func FindExisting(root string) (string, bool) {
	direct := filepath.Join(root, "metainfo.xml")
	if isRegularFile(direct) {
		return direct, true
	}

	for _, dir := range metainfoDirs {
		base := filepath.Join(root, dir)
		if info, err := os.Stat(base); err != nil || !info.IsDir() {
			continue
		}
		for _, pattern := range metainfoPatterns {
			matches, err := filepath.Glob(filepath.Join(base, pattern))
			if err != nil {
				continue
			}
			for _, match := range matches {
				if isRegularFile(match) {
					return match, true
				}
			}
		}
	}

	// Recursive fallback: accept a match anywhere under the root.
	for _, pattern := range metainfoPatterns {
		if match := findRecursive(root, pattern); match != "" {
			return match, true
		}
	}

	return "", false
}

func findRecursive(root, pattern string) string {
	var found string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ok, _ := filepath.Match(pattern, d.Name())
		if ok {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	return found
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
