package metainfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrapkg/appstream-helper/internal/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		BuildRoot:      "/tmp/buildroot",
		PackageName:    "app",
		PackageVersion: "1.0",
		AppID:          "org.example.App",
	}
}

func TestBaselineRequiresAppID(t *testing.T) {
	cfg := baseConfig()
	cfg.AppID = ""

	_, err := Baseline(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APPSTREAM_APPID")
}

func TestBaselineMetadataLicenseAlwaysCC0(t *testing.T) {
	cfg := baseConfig()
	cfg.License = "GPL-3.0-or-later"

	root, err := Baseline(cfg)
	require.NoError(t, err)

	assert.Equal(t, "CC0-1.0", root.SelectElement("metadata_license").Text())
	assert.Equal(t, "GPL-3.0-or-later", root.SelectElement("project_license").Text())
}

func TestBaselineName(t *testing.T) {
	tests := []struct {
		name       string
		namePretty string
		want       string
	}{
		{name: "pretty name preferred", namePretty: "My App", want: "My App"},
		{name: "falls back to package name", namePretty: "", want: "app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.NamePretty = tt.namePretty

			root, err := Baseline(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, root.SelectElement("name").Text())
		})
	}
}

func TestBaselineVariantID(t *testing.T) {
	tests := []struct {
		name        string
		packageName string
		want        string
	}{
		{name: "stable package", packageName: "app", want: "org.example.App"},
		{name: "nightly package", packageName: "app-nightly", want: "org.example.App-nightly"},
		{name: "git package", packageName: "app-git", want: "org.example.App-git"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.PackageName = tt.packageName

			root, err := Baseline(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, root.SelectElement("id").Text())
		})
	}
}

func TestBaselineDescriptionFallsBackToSummary(t *testing.T) {
	t.Run("explicit description", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Summary = "short"
		cfg.Description = "a longer text"

		root, err := Baseline(cfg)
		require.NoError(t, err)
		assert.Equal(t, "a longer text", root.SelectElement("description").SelectElement("p").Text())
	})

	t.Run("summary wrapped as paragraph", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Summary = "short"

		root, err := Baseline(cfg)
		require.NoError(t, err)
		assert.Equal(t, "short", root.SelectElement("description").SelectElement("p").Text())
	})

	t.Run("neither configured", func(t *testing.T) {
		root, err := Baseline(baseConfig())
		require.NoError(t, err)
		assert.Nil(t, root.SelectElement("description"))
	})
}

func TestBaselineIconFromComponentType(t *testing.T) {
	tests := []struct {
		name          string
		componentType string
		wantIcon      string
	}{
		{name: "console application", componentType: "console-application", wantIcon: "terminal"},
		{name: "runtime", componentType: "runtime", wantIcon: "application-x-executable"},
		{name: "driver", componentType: "driver", wantIcon: "computer"},
		{name: "empty type defaults to console", componentType: "", wantIcon: "terminal"},
		{name: "unrecognized type yields no icon", componentType: "desktop-application", wantIcon: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.ComponentType = tt.componentType

			root, err := Baseline(cfg)
			require.NoError(t, err)

			icon := root.SelectElement("icon")
			if tt.wantIcon == "" {
				assert.Nil(t, icon)
				return
			}
			require.NotNil(t, icon)
			assert.Equal(t, "stock", icon.SelectAttrValue("type", ""))
			assert.Equal(t, tt.wantIcon, icon.Text())
		})
	}
}

func TestBaselineURLs(t *testing.T) {
	tests := []struct {
		name     string
		homepage string
		wantVCS  bool
	}{
		{name: "plain homepage", homepage: "https://example.org", wantVCS: false},
		{name: "github homepage", homepage: "https://github.com/example/app", wantVCS: true},
		{name: "gitlab homepage", homepage: "https://gitlab.com/example/app", wantVCS: true},
		{name: "git suffix", homepage: "https://forge.example.org/app.git", wantVCS: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.Homepage = tt.homepage

			root, err := Baseline(cfg)
			require.NoError(t, err)

			byType := map[string]string{}
			for _, u := range root.SelectElements("url") {
				byType[u.SelectAttrValue("type", "")] = u.Text()
			}

			assert.Equal(t, tt.homepage, byType["homepage"])
			if tt.wantVCS {
				assert.Equal(t, tt.homepage, byType["vcs-browser"])
			} else {
				assert.NotContains(t, byType, "vcs-browser")
			}
		})
	}
}

func TestBaselineNoHomepageNoURLs(t *testing.T) {
	root, err := Baseline(baseConfig())
	require.NoError(t, err)
	assert.Empty(t, root.SelectElements("url"))
}

func TestBaselineDeveloper(t *testing.T) {
	tests := []struct {
		name          string
		developerName string
		developerOrg  string
		wantID        string
	}{
		{name: "org identifier preferred", developerName: "Jane", developerOrg: "org.example", wantID: "org.example"},
		{name: "falls back to app id", developerName: "Jane", wantID: "org.example.App"},
		{name: "no developer configured", developerName: "", wantID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.DeveloperName = tt.developerName
			cfg.DeveloperOrg = tt.developerOrg

			root, err := Baseline(cfg)
			require.NoError(t, err)

			developer := root.SelectElement("developer")
			if tt.wantID == "" {
				assert.Nil(t, developer)
				return
			}
			require.NotNil(t, developer)
			assert.Equal(t, tt.wantID, developer.SelectAttrValue("id", ""))
		})
	}
}
