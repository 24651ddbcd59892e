// Package metainfo implements the AppStream component document model:
// element helpers, the semantic merge engine, the build-time baseline
// synthesizer, and the nightly/git variant adjuster. A component is an
// etree element tree rooted at a single <component> node.
package metainfo

import "github.com/beevik/etree"

// NewComponent returns an empty <component> root.
func NewComponent() *etree.Element {
	return etree.NewElement("component")
}

// EnsureChild returns the first child of root with the given tag,
// creating it when absent.
func EnsureChild(root *etree.Element, tag string) *etree.Element {
	if child := root.SelectElement(tag); child != nil {
		return child
	}
	return root.CreateElement(tag)
}

// AppendProvides adds a capability entry (<library>name</library>,
// <binary>name</binary>, ...) under <provides>, creating the container
// when needed. No de-duplication is applied here; revisiting the same
// file yields a second identical entry.
func AppendProvides(root *etree.Element, capType, value string) {
	entry := EnsureChild(root, "provides").CreateElement(capType)
	entry.SetText(value)
}

// HasLaunchable reports whether root already carries a <launchable>
// with the exact (type, value) pair.
func HasLaunchable(root *etree.Element, launchType, value string) bool {
	for _, el := range root.SelectElements("launchable") {
		if el.SelectAttrValue("type", "") == launchType && el.Text() == value {
			return true
		}
	}
	return false
}

// AppendLaunchable adds a <launchable type="...">value</launchable>
// child unless an identical entry is already present. Reports whether
// an entry was added.
func AppendLaunchable(root *etree.Element, launchType, value string) bool {
	if HasLaunchable(root, launchType, value) {
		return false
	}
	el := root.CreateElement("launchable")
	el.CreateAttr("type", launchType)
	el.SetText(value)
	return true
}

// EnsureRelease returns the <release> entry for the given version under
// <releases>, creating both as needed. Releases are keyed by their
// version attribute.
func EnsureRelease(root *etree.Element, version string) *etree.Element {
	releases := EnsureChild(root, "releases")
	for _, rel := range releases.SelectElements("release") {
		if rel.SelectAttrValue("version", "") == version {
			return rel
		}
	}
	rel := releases.CreateElement("release")
	rel.CreateAttr("version", version)
	return rel
}
