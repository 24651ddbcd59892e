// Package config resolves the build-time variables the RPM build
// environment exposes into a single Config record. The rest of the tool
// never reads the environment directly.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config carries every build-time value the pipeline consumes.
// BuildRoot is the only field whose absence Load rejects; AppID is
// validated later by the synthesizer, which is where its absence
// becomes fatal.
type Config struct {
	// Set by rpmbuild for every package build.
	BuildRoot      string
	PackageName    string
	PackageVersion string

	// Set by the appstream macros in the spec file; all optional
	// except AppID.
	AppID         string
	License       string
	Summary       string
	Description   string
	Homepage      string
	ComponentType string
	DeveloperName string
	DeveloperOrg  string
	NamePretty    string
}

// envBindings maps viper keys to the environment variables that feed them.
var envBindings = map[string]string{
	"buildroot":       "RPM_BUILD_ROOT",
	"package_name":    "RPM_PACKAGE_NAME",
	"package_version": "RPM_PACKAGE_VERSION",
	"app_id":          "APPSTREAM_APPID",
	"license":         "APPSTREAM_LICENSE",
	"summary":         "APPSTREAM_SUMMARY",
	"description":     "APPSTREAM_DESCRIPTION",
	"homepage":        "APPSTREAM_URL",
	"component_type":  "APPSTREAM_COMPONENT_TYPE",
	"developer_name":  "APPSTREAM_DEVELOPER_NAME",
	"developer_org":   "APPSTREAM_DEVELOPER_ORG_NAME",
	"name_pretty":     "APPSTREAM_NAME_PRETTY",
}

// Load reads the build environment into a Config.
func Load() (*Config, error) {
	v := viper.New()
	for key, envVar := range envBindings {
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, errors.Wrapf(err, "cannot bind %s", envVar)
		}
	}
	v.SetDefault("package_version", "unknown")

	cfg := &Config{
		BuildRoot:      v.GetString("buildroot"),
		PackageName:    v.GetString("package_name"),
		PackageVersion: v.GetString("package_version"),
		AppID:          v.GetString("app_id"),
		License:        v.GetString("license"),
		Summary:        v.GetString("summary"),
		Description:    v.GetString("description"),
		Homepage:       v.GetString("homepage"),
		ComponentType:  v.GetString("component_type"),
		DeveloperName:  v.GetString("developer_name"),
		DeveloperOrg:   v.GetString("developer_org"),
		NamePretty:     v.GetString("name_pretty"),
	}

	if cfg.BuildRoot == "" {
		return nil, errors.New("RPM_BUILD_ROOT environment variable is not set")
	}

	return cfg, nil
}
