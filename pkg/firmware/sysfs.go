package firmware

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ssargent/fwtab/pkg/logging"
)

const (
	defaultACPIDir = "/sys/firmware/acpi/tables"
	defaultDMIFile = "/sys/firmware/dmi/tables/DMI"
)

// SysfsSource reads firmware tables the Linux kernel exports under
// /sys/firmware. ACPI tables are individual files named by signature;
// the SMBIOS structure table is a single raw dump with no RawSMBIOSData
// wrapper. Reading usually requires root.
type SysfsSource struct {
	acpiDir string
	dmiFile string
	log     zerolog.Logger
}

// NewSysfsSource creates a source over the standard sysfs paths.
func NewSysfsSource() *SysfsSource {
	return &SysfsSource{
		acpiDir: defaultACPIDir,
		dmiFile: defaultDMIFile,
		log:     logging.L().With().Str("source", "sysfs").Logger(),
	}
}

// EnumTables lists the table identifiers available for a provider. An
// unreadable sysfs (not mounted, access denied) yields an empty list.
func (s *SysfsSource) EnumTables(provider string) ([]string, error) {
	switch provider {
	case ProviderACPI:
		entries, err := os.ReadDir(s.acpiDir)
		if err != nil {
			s.log.Debug().Err(err).Str("dir", s.acpiDir).Msg("cannot enumerate ACPI tables")
			return nil, nil
		}
		var tables []string
		for _, e := range entries {
			if e.IsDir() {
				// Some tables (SSDT duplicates) live in subdirectories;
				// only top-level signatures are listed.
				continue
			}
			tables = append(tables, e.Name())
		}
		sort.Strings(tables)
		s.log.Debug().Int("count", len(tables)).Msg("enumerated ACPI tables")
		return tables, nil
	case ProviderSMBIOS:
		if _, err := os.Stat(s.dmiFile); err != nil {
			s.log.Debug().Err(err).Str("file", s.dmiFile).Msg("no DMI table")
			return nil, nil
		}
		return []string{"DMI"}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

// GetTable reads the raw bytes of one table. For the SMBIOS provider the
// id is ignored; there is only one structure table.
func (s *SysfsSource) GetTable(provider, id string) ([]byte, error) {
	var path string
	switch provider {
	case ProviderACPI:
		path = filepath.Join(s.acpiDir, filepath.Base(id))
	case ProviderSMBIOS:
		path = s.dmiFile
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Debug().Err(err).Str("path", path).Msg("table read failed")
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, provider, id)
		}
		return nil, err
	}
	s.log.Debug().Str("path", path).Int("bytes", len(data)).Msg("table read")
	return data, nil
}
