/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/fwtab/pkg/firmware"
	"github.com/ssargent/fwtab/pkg/logging"
)

// sourceKey is the context key under which the table source is stored.
type sourceKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fwtab",
	Short: "fwtab - ACPI & SMBIOS table inspector",
	Long: `fwtab reads firmware tables (ACPI system description tables and the
SMBIOS/DMI structure table) from the live system or from saved dumps and
decodes them into readable form.

Reading live tables from sysfs usually requires root.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		human, _ := cmd.Flags().GetBool("human")
		logging.Init(debug, human)

		kind, _ := cmd.Flags().GetString("source")
		dir, _ := cmd.Flags().GetString("dir")
		source, err := buildSource(kind, dir)
		if err != nil {
			return err
		}
		cmd.SetContext(context.WithValue(cmd.Context(), sourceKey{}, source))
		return nil
	},
}

// buildSource constructs a table source of the given kind ("sysfs" or
// "dir"). Used by the global flags and by the serve command's config file.
func buildSource(kind, dir string) (firmware.TableSource, error) {
	switch kind {
	case "sysfs":
		return firmware.NewSysfsSource(), nil
	case "dir":
		if dir == "" {
			return nil, fmt.Errorf("--dir is required with --source=dir")
		}
		return firmware.NewDirSource(dir), nil
	default:
		return nil, fmt.Errorf("unknown source %q (want sysfs or dir)", kind)
	}
}

// tableSource retrieves the source placed in the command context by
// PersistentPreRunE.
func tableSource(cmd *cobra.Command) firmware.TableSource {
	source, _ := cmd.Context().Value(sourceKey{}).(firmware.TableSource)
	return source
}

// warnIfUnprivileged prints a warning when live table reads will likely
// fail for lack of privileges.
func warnIfUnprivileged(cmd *cobra.Command) {
	kind, _ := cmd.Flags().GetString("source")
	if kind == "sysfs" && os.Geteuid() != 0 {
		cmd.PrintErrln("WARNING: not running as root; reading firmware tables from sysfs will likely fail.")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("source", "sysfs", "Table source: sysfs (live system) or dir (saved dumps)")
	rootCmd.PersistentFlags().String("dir", "", "Dump directory for --source=dir")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("human", false, "Human-friendly log output")
}
