package metainfo

import (
	"strings"

	"github.com/beevik/etree"
)

// channel describes a development distribution track. Packages built
// from such a track carry the packageSuffix in their package name, and
// their component document must carry matching id and display-name
// markers.
type channel struct {
	packageSuffix string
	idSuffix      string
	nameSuffix    string
}

var channels = []channel{
	{packageSuffix: "-nightly", idSuffix: "-nightly", nameSuffix: " (Nightly)"},
	{packageSuffix: "-git", idSuffix: "-git", nameSuffix: " (Git)"},
}

// AdjustForVariant rewrites the document's id and name to mark the
// nightly or git channel indicated by the package name. Suffixes that
// are already present are never doubled, so the adjustment is
// idempotent. Reports whether the document was mutated; a false return
// is diagnostic only.
func AdjustForVariant(root *etree.Element, packageName string) bool {
	for _, ch := range channels {
		if !strings.HasSuffix(packageName, ch.packageSuffix) {
			continue
		}

		adjusted := false

		if id := root.SelectElement("id"); id != nil {
			text := id.Text()
			if !strings.HasSuffix(strings.ToLower(text), ch.idSuffix) {
				id.SetText(text + ch.idSuffix)
				adjusted = true
			}
		}

		if name := root.SelectElement("name"); name != nil {
			text := name.Text()
			if !nameCarriesSuffix(text, ch.nameSuffix) {
				name.SetText(text + ch.nameSuffix)
				adjusted = true
			}
		}

		return adjusted
	}
	return false
}

// nameCarriesSuffix accepts the exact suffix (" (Nightly)"), its
// trimmed form ("(Nightly)"), or the bare inner text ("Nightly"),
// compared case-insensitively against the end of the display name.
func nameCarriesSuffix(name, suffix string) bool {
	lower := strings.ToLower(name)
	trimmed := strings.TrimSpace(suffix)
	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "("), ")")

	for _, form := range []string{suffix, trimmed, inner} {
		if strings.HasSuffix(lower, strings.ToLower(form)) {
			return true
		}
	}
	return false
}
