package metainfo

import "github.com/beevik/etree"

// Merge folds every fact from source into target, in place. target is
// the higher-precedence layer: its values are never replaced, only
// supplemented. The merge never fails; a missing element is simply no
// value.
//
// Per-field behavior:
//   - singleton elements (id, name, summary, description, licenses,
//     icon, developer, and any tag not listed below): adopted from
//     source only when target has none, copied with their full subtree
//   - the component type attribute on the root: same singleton rule
//   - <url> entries: keyed by their type attribute
//   - <release> entries under <releases>: keyed by their version
//     attribute
//   - <provides> children and <launchable> entries: set-like; an entry
//     is appended unless an identical one is already present
func Merge(target, source *etree.Element) {
	if source == nil || source == target {
		return
	}

	if target.SelectAttr("type") == nil {
		if attr := source.SelectAttr("type"); attr != nil {
			target.CreateAttr("type", attr.Value)
		}
	}

	for _, child := range source.ChildElements() {
		switch child.Tag {
		case "url":
			mergeURL(target, child)
		case "releases":
			mergeReleases(target, child)
		case "provides":
			mergeProvides(target, child)
		case "launchable":
			launchType := child.SelectAttrValue("type", "")
			if !HasLaunchable(target, launchType, child.Text()) {
				target.AddChild(child.Copy())
			}
		default:
			if target.SelectElement(child.Tag) == nil {
				target.AddChild(child.Copy())
			}
		}
	}
}

func mergeURL(target *etree.Element, url *etree.Element) {
	urlType := url.SelectAttrValue("type", "")
	for _, existing := range target.SelectElements("url") {
		if existing.SelectAttrValue("type", "") == urlType {
			return
		}
	}
	target.AddChild(url.Copy())
}

func mergeReleases(target *etree.Element, releases *etree.Element) {
	incoming := releases.SelectElements("release")
	if len(incoming) == 0 {
		return
	}
	container := EnsureChild(target, "releases")
	for _, rel := range incoming {
		version := rel.SelectAttrValue("version", "")
		if hasRelease(container, version) {
			continue
		}
		container.AddChild(rel.Copy())
	}
}

func hasRelease(releases *etree.Element, version string) bool {
	for _, rel := range releases.SelectElements("release") {
		if rel.SelectAttrValue("version", "") == version {
			return true
		}
	}
	return false
}

func mergeProvides(target *etree.Element, provides *etree.Element) {
	incoming := provides.ChildElements()
	if len(incoming) == 0 {
		return
	}
	container := EnsureChild(target, "provides")
	for _, entry := range incoming {
		if hasProvides(container, entry.Tag, entry.Text()) {
			continue
		}
		container.AddChild(entry.Copy())
	}
}

func hasProvides(provides *etree.Element, capType, value string) bool {
	for _, entry := range provides.SelectElements(capType) {
		if entry.Text() == value {
			return true
		}
	}
	return false
}
