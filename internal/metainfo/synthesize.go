package metainfo

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/cockroachdb/errors"

	"github.com/terrapkg/appstream-helper/internal/config"
)

// MetadataLicense is applied to every synthesized baseline: the
// metainfo itself is dedicated to the public domain regardless of the
// software's own license.
const MetadataLicense = "CC0-1.0"

// iconForType maps an AppStream component type to a stock icon name
// used when the package configures no icon of its own.
var iconForType = map[string]string{
	"runtime":             "application-x-executable",
	"console-application": "terminal",
	"addon":               "package",
	"icon-theme":          "preferences-desktop-theme",
	"codec":               "multimedia-codec",
	"driver":              "computer",
	"repository":          "folder",
}

// Baseline synthesizes the build-time default component document, the
// lowest-precedence layer of the merge. The application id is the one
// required input; its absence aborts the run.
func Baseline(cfg *config.Config) (*etree.Element, error) {
	if cfg.AppID == "" {
		return nil, errors.New("APPSTREAM_APPID environment variable is not set")
	}

	root := NewComponent()

	license := root.CreateElement("metadata_license")
	license.SetText(MetadataLicense)

	if cfg.ComponentType != "" {
		root.CreateAttr("type", cfg.ComponentType)
	}

	name := root.CreateElement("name")
	if cfg.NamePretty != "" {
		name.SetText(cfg.NamePretty)
	} else {
		name.SetText(cfg.PackageName)
	}

	componentType := cfg.ComponentType
	if componentType == "" {
		componentType = "console-application"
	}
	if stock, ok := iconForType[componentType]; ok {
		icon := root.CreateElement("icon")
		icon.CreateAttr("type", "stock")
		icon.SetText(stock)
	}

	id := root.CreateElement("id")
	id.SetText(variantAppID(cfg.AppID, cfg.PackageName))

	if cfg.License != "" {
		root.CreateElement("project_license").SetText(cfg.License)
	}

	if cfg.Homepage != "" {
		homepage := root.CreateElement("url")
		homepage.CreateAttr("type", "homepage")
		homepage.SetText(cfg.Homepage)

		if isForgeURL(cfg.Homepage) {
			vcs := root.CreateElement("url")
			vcs.CreateAttr("type", "vcs-browser")
			vcs.SetText(cfg.Homepage)
		}
	}

	if cfg.Summary != "" {
		root.CreateElement("summary").SetText(cfg.Summary)
	}

	// The long description falls back to the summary, wrapped as a
	// single paragraph.
	descText := cfg.Description
	if descText == "" {
		descText = cfg.Summary
	}
	if descText != "" {
		desc := root.CreateElement("description")
		desc.CreateElement("p").SetText(descText)
	}

	if cfg.DeveloperName != "" {
		developer := root.CreateElement("developer")
		developer.CreateAttr("id", developerID(cfg))
	}

	return root, nil
}

// variantAppID suffixes the application id when the package is built
// from a development channel, so nightly and git builds keep AppStream
// identities distinct from the stable release.
func variantAppID(appID, packageName string) string {
	for _, ch := range channels {
		if strings.HasSuffix(packageName, ch.packageSuffix) {
			return appID + ch.idSuffix
		}
	}
	return appID
}

func isForgeURL(url string) bool {
	return strings.HasSuffix(url, ".git") ||
		strings.Contains(url, "github.com") ||
		strings.Contains(url, "gitlab.com")
}

func developerID(cfg *config.Config) string {
	if cfg.DeveloperOrg != "" {
		return cfg.DeveloperOrg
	}
	if cfg.AppID != "" {
		return cfg.AppID
	}
	return "com.example"
}
