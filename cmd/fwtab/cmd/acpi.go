/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/fwtab/pkg/acpi"
	"github.com/ssargent/fwtab/pkg/firmware"
	"github.com/ssargent/fwtab/pkg/hexdump"
)

// acpiCmd represents the acpi command
var acpiCmd = &cobra.Command{
	Use:   "acpi",
	Short: "List available ACPI table signatures",
	Run: func(cmd *cobra.Command, args []string) {
		warnIfUnprivileged(cmd)

		tables, err := tableSource(cmd).EnumTables(firmware.ProviderACPI)
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			return
		}
		if len(tables) == 0 {
			cmd.Println("No ACPI tables found or access denied.")
			return
		}
		cmd.Println("ACPI Tables:")
		for _, t := range tables {
			cmd.Printf(" - %s\n", t)
		}
	},
}

// acpiDumpCmd represents the acpi dump command
var acpiDumpCmd = &cobra.Command{
	Use:   "dump <signature>",
	Short: "Dump one ACPI table: decoded header plus hex dump",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		warnIfUnprivileged(cmd)
		sig := args[0]

		data, err := tableSource(cmd).GetTable(firmware.ProviderACPI, sig)
		if err != nil || len(data) == 0 {
			cmd.PrintErrf("Could not retrieve table %q\n", sig)
			return
		}

		header, err := acpi.ParseHeader(data)
		if err != nil {
			cmd.PrintErrf("Error parsing header: %v\n", err)
		} else {
			cmd.Printf("Signature: %s\n", header.Signature)
			cmd.Printf("Length:    %d bytes\n", header.Length)
			cmd.Printf("OEM ID:    %s\n", header.OEMID)
			cmd.Printf("Table ID:  %s\n", header.OEMTableID)
		}

		cmd.Printf("--- ACPI Table: %s ---\n", sig)
		cmd.Println(hexdump.Dump(data))
	},
}

func init() {
	acpiCmd.AddCommand(acpiDumpCmd)
	rootCmd.AddCommand(acpiCmd)
}
