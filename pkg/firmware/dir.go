package firmware

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ssargent/fwtab/pkg/logging"
)

// DirSource reads firmware tables from saved dump files, laid out as
// <dir>/<provider>/<id>.bin. It serves offline inspection of dumps taken
// on another machine, and tests.
type DirSource struct {
	dir string
	log zerolog.Logger
}

// NewDirSource creates a source over the given dump directory.
func NewDirSource(dir string) *DirSource {
	return &DirSource{
		dir: dir,
		log: logging.L().With().Str("source", "dir").Str("dir", dir).Logger(),
	}
}

// EnumTables lists the dump files present for a provider, by identifier.
// A missing provider directory yields an empty list.
func (s *DirSource) EnumTables(provider string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, provider))
	if err != nil {
		s.log.Debug().Err(err).Str("provider", provider).Msg("cannot enumerate dumps")
		return nil, nil
	}
	var tables []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".bin") {
			continue
		}
		tables = append(tables, strings.TrimSuffix(name, ".bin"))
	}
	sort.Strings(tables)
	return tables, nil
}

// GetTable reads one dump file.
func (s *DirSource) GetTable(provider, id string) ([]byte, error) {
	path := filepath.Join(s.dir, provider, filepath.Base(id)+".bin")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, provider, id)
		}
		return nil, err
	}
	s.log.Debug().Str("path", path).Int("bytes", len(data)).Msg("dump read")
	return data, nil
}
