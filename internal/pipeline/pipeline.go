// Package pipeline sequences the stages that produce the final
// component document: reconcile the override and package-shipped
// documents, merge in the synthesized build-time baseline, fold in
// facts scanned from the buildroot, and normalize variant suffixes.
// The accumulating document is owned here and passed by reference
// through each stage; no stage keeps a reference after returning.
package pipeline

import (
	"os"

	"github.com/beevik/etree"
	"github.com/cockroachdb/errors"

	"github.com/terrapkg/appstream-helper/internal/buildroot"
	"github.com/terrapkg/appstream-helper/internal/config"
	"github.com/terrapkg/appstream-helper/internal/logging"
	"github.com/terrapkg/appstream-helper/internal/metainfo"
)

// Generate runs the full merge pipeline and returns the root of the
// final component document. overridePath may be empty; when set it must
// name an existing, well-formed metainfo document. Precedence between
// the layers is override > existing > synthesized baseline.
func Generate(cfg *config.Config, overridePath string) (*etree.Element, error) {
	var override *etree.Element
	if overridePath != "" {
		if _, err := os.Stat(overridePath); err != nil {
			return nil, errors.Wrapf(err, "override file %q does not exist", overridePath)
		}
		var err error
		override, err = loadDocument(overridePath)
		if err != nil {
			return nil, err
		}
	}

	var existing *etree.Element
	if existingPath, ok := buildroot.FindExisting(cfg.BuildRoot); ok {
		logging.Logger.Infow("found existing metainfo", "path", existingPath)
		var err error
		existing, err = loadDocument(existingPath)
		if err != nil {
			return nil, err
		}
	}

	// The highest-precedence document present becomes the mutation
	// target for everything below it.
	var base *etree.Element
	switch {
	case override != nil:
		base = override
	case existing != nil:
		base = existing
	default:
		base = metainfo.NewComponent()
	}

	if override != nil && existing != nil {
		metainfo.Merge(base, existing)
	}

	baseline, err := metainfo.Baseline(cfg)
	if err != nil {
		return nil, err
	}
	metainfo.Merge(base, baseline)

	if err := buildroot.Scan(cfg.BuildRoot, base, cfg.PackageVersion); err != nil {
		return nil, err
	}

	if metainfo.AdjustForVariant(base, cfg.PackageName) {
		logging.Logger.Infow("adjusted component identity for variant channel",
			"package", cfg.PackageName)
	}

	return base, nil
}

// loadDocument parses a metainfo file and returns its root element.
// Parse errors surface unmodified from the XML layer.
func loadDocument(path string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, "cannot parse metainfo document %q", path)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.Newf("metainfo document %q has no root element", path)
	}
	return root, nil
}
