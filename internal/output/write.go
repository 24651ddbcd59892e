// Package output serializes the final component document.
package output

import (
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/cockroachdb/errors"
)

// Write serializes the document as indented XML with a standard
// declaration. If outputPath is empty or "-" the document is written to
// stdout; otherwise it is written to the given path, creating parent
// directories as needed.
func Write(root *etree.Element, outputPath string) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.SetRoot(root)
	doc.Indent(2)

	if outputPath == "" || outputPath == "-" {
		if _, err := doc.WriteTo(os.Stdout); err != nil {
			return errors.Wrap(err, "cannot write metainfo to stdout")
		}
		return nil
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "cannot create output directory %q", dir)
		}
	}

	if err := doc.WriteToFile(outputPath); err != nil {
		return errors.Wrapf(err, "cannot write metainfo to %q", outputPath)
	}
	return nil
}
