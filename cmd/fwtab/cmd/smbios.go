/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/fwtab/pkg/firmware"
	"github.com/ssargent/fwtab/pkg/smbios"
)

// smbiosCmd represents the smbios command
var smbiosCmd = &cobra.Command{
	Use:   "smbios",
	Short: "Decode the SMBIOS/DMI structure table",
	Run: func(cmd *cobra.Command, args []string) {
		warnIfUnprivileged(cmd)
		raw := rawTable(cmd)

		data, err := tableSource(cmd).GetTable(firmware.ProviderSMBIOS, "DMI")
		if err != nil || len(data) == 0 {
			cmd.PrintErrln("Could not retrieve SMBIOS data.")
			return
		}
		cmd.Printf("Total Retrieved Data Size: %d bytes\n", len(data))

		start := 0
		if !raw {
			if entry, offset := smbios.ParseEntryHeader(data); entry != nil {
				cmd.Println("Found SMBIOS wrapper header:")
				cmd.Printf("  Version: %d.%d\n", entry.MajorVersion, entry.MinorVersion)
				cmd.Printf("  DMI Revision: %d\n", entry.DMIRevision)
				cmd.Printf("  Table Length: %d bytes\n", entry.TableLength)
				start = offset
			}
		}
		cmd.Printf("Parsing SMBIOS structures starting at offset %d (%d bytes)...\n", start, len(data)-start)

		count := 0
		walker := smbios.NewWalker(data, start)
		for {
			structure, ok := walker.Next()
			if !ok {
				break
			}
			count++
			printStructure(cmd, data, structure)
		}
		cmd.Printf("Finished. Parsed %d structures.\n", count)
	},
}

// printStructure renders one structure as a titled block: decoded fields
// when a decoder exists, otherwise the raw length and numbered strings.
func printStructure(cmd *cobra.Command, data []byte, s *smbios.Structure) {
	header := s.Header
	line := strings.Repeat("=", 60)
	name := ""
	if n, ok := smbios.TypeName(header.Type); ok {
		name = " - " + n
	}

	cmd.Println(line)
	cmd.Printf("Type %d (Handle 0x%04X)%s\n", header.Type, header.Handle, name)
	cmd.Println(line)

	fields := smbios.DecodeFields(header.Type, data, s.Offset, int(header.Length), s.Strings)
	if fields != nil {
		for _, f := range fields {
			cmd.Printf("%-25s: %s\n", f.Label, f.Value)
		}
	} else {
		cmd.Printf("Length: 0x%X\n", header.Length)
		if len(s.Strings) > 0 {
			cmd.Println(strings.Repeat("-", 60))
			for i, str := range s.Strings {
				cmd.Printf("String %d: %s\n", i+1, str)
			}
		}
	}
	cmd.Println()
}

// rawTable reports whether the table should be decoded without probing
// for the RawSMBIOSData wrapper. Sysfs exports the bare structure table,
// so --source=sysfs implies raw unless the flag says otherwise.
func rawTable(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("raw") {
		raw, _ := cmd.Flags().GetBool("raw")
		return raw
	}
	kind, _ := cmd.Flags().GetString("source")
	return kind == "sysfs"
}

func init() {
	smbiosCmd.Flags().Bool("raw", false, "Table has no RawSMBIOSData wrapper (sysfs-style dump)")
	rootCmd.AddCommand(smbiosCmd)
}
