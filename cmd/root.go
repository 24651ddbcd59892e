// Package cmd wires the command-line surface of appstream-helper.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/terrapkg/appstream-helper/internal/config"
	"github.com/terrapkg/appstream-helper/internal/logging"
	"github.com/terrapkg/appstream-helper/internal/output"
	"github.com/terrapkg/appstream-helper/internal/pipeline"
)

var (
	flagOverride string
	flagOutput   string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "appstream-helper",
	Short: "Generate merged AppStream metadata for a package build",
	Long: `appstream-helper generates AppStream metainfo for a package by merging
up to three sources of truth:

  • a human-provided metainfo override (--override)
  • the metainfo file the package installs into its buildroot, if any
  • a baseline synthesized from the APPSTREAM_* build variables

The buildroot (RPM_BUILD_ROOT) is then scanned for installed libraries,
executables, desktop entries, and systemd units, and the discovered
capabilities are folded into the merged document.`,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan the buildroot and write the merged metainfo document",
	Long: `Merge the override, existing, and synthesized metainfo documents,
augment the result with facts scanned from the buildroot, and write the
final metainfo XML.

Examples:
  appstream-helper generate --output %{buildroot}/usr/share/metainfo/%{name}.metainfo.xml
  appstream-helper generate --override metainfo-override.xml -o out.xml
  appstream-helper generate --verbose`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagOverride, "override", "", "Path to a human-provided metainfo XML override")
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Path to write the final merged metainfo XML (stdout if omitted)")
	generateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug output for every scanned file")

	rootCmd.AddCommand(generateCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logging.Initialize(flagVerbose)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	doc, err := pipeline.Generate(cfg, flagOverride)
	if err != nil {
		return err
	}

	if err := output.Write(doc, flagOutput); err != nil {
		return err
	}

	if flagOutput != "" && flagOutput != "-" {
		logging.Logger.Infow("metainfo written", "path", flagOutput)
	}
	return nil
}
