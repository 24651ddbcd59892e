package buildroot

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/cockroachdb/errors"

	"github.com/terrapkg/appstream-helper/internal/logging"
	"github.com/terrapkg/appstream-helper/internal/metainfo"
)

// Scan walks every regular file under root, classifies it, and appends
// the resulting capability and launchable entries into doc. It also
// ensures doc carries a release entry for the package version being
// built. Visit order is not guaranteed and does not affect the
// document's semantic content.
func Scan(root string, doc *etree.Element, packageVersion string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Wrapf(err, "buildroot %q is not accessible", root)
	}
	if !info.IsDir() {
		return errors.Newf("buildroot %q is not a directory", root)
	}

	metainfo.EnsureRelease(doc, packageVersion)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		name := d.Name()
		executable := fi.Mode().Perm()&0o111 != 0
		kind := Classify(rel, name, executable)

		logging.Logger.Debugw("found installed file",
			"path", rel,
			"classification", kind.String())

		switch kind {
		case KindLibrary:
			metainfo.AppendProvides(doc, "library", name)
		case KindBinary:
			metainfo.AppendProvides(doc, "binary", name)
		case KindDesktopEntry:
			if metainfo.AppendLaunchable(doc, "desktop-id", name) {
				logging.Logger.Infow("registered desktop launchable", "file", name)
			}
		case KindServiceUnit:
			if metainfo.AppendLaunchable(doc, "service", name) {
				logging.Logger.Infow("registered service launchable", "file", name)
			}
		}

		return nil
	})
}
