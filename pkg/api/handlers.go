package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ssargent/fwtab/pkg/acpi"
	"github.com/ssargent/fwtab/pkg/firmware"
	"github.com/ssargent/fwtab/pkg/smbios"
)

// Server holds the API server state
type Server struct {
	source  firmware.TableSource
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(source firmware.TableSource, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		source:  source,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleListACPI lists the ACPI table signatures the source exposes.
// An empty list is a valid answer (no access, no tables).
func (s *Server) handleListACPI(w http.ResponseWriter, r *http.Request) {
	tables, err := s.source.EnumTables(firmware.ProviderACPI)
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if tables == nil {
		tables = []string{}
	}
	sendSuccess(w, tables)
}

// handleGetACPI fetches one ACPI table and returns its decoded header
// alongside the raw bytes. A table too short for a header still returns
// the raw bytes, with the header fields omitted.
func (s *Server) handleGetACPI(w http.ResponseWriter, r *http.Request) {
	sig := chi.URLParam(r, "sig")
	if sig == "" {
		sendError(w, "Table signature is required", http.StatusBadRequest)
		return
	}

	data, err := s.source.GetTable(firmware.ProviderACPI, sig)
	if err != nil {
		s.metrics.RecordTableFetch(firmware.ProviderACPI, false, 0)
		status := http.StatusInternalServerError
		if errors.Is(err, firmware.ErrNotFound) {
			status = http.StatusNotFound
		}
		sendError(w, err.Error(), status)
		return
	}
	s.metrics.RecordTableFetch(firmware.ProviderACPI, true, len(data))

	resp := ACPIHeaderResponse{TableSize: len(data), Raw: data}
	if header, err := acpi.ParseHeader(data); err == nil {
		resp.Signature = header.Signature
		resp.Length = header.Length
		resp.Revision = header.Revision
		resp.Checksum = header.Checksum
		resp.OEMID = header.OEMID
		resp.OEMTableID = header.OEMTableID
		resp.OEMRevision = header.OEMRevision
		resp.CreatorID = header.CreatorID
		resp.CreatorRevision = header.CreatorRevision
	}
	sendSuccess(w, resp)
}

// handleSMBIOS fetches the SMBIOS table and returns every decoded
// structure. Structures without a registered field decoder carry only
// their header and strings.
func (s *Server) handleSMBIOS(w http.ResponseWriter, r *http.Request) {
	data, err := s.source.GetTable(firmware.ProviderSMBIOS, "DMI")
	if err != nil {
		s.metrics.RecordTableFetch(firmware.ProviderSMBIOS, false, 0)
		status := http.StatusInternalServerError
		if errors.Is(err, firmware.ErrNotFound) {
			status = http.StatusNotFound
		}
		sendError(w, err.Error(), status)
		return
	}
	s.metrics.RecordTableFetch(firmware.ProviderSMBIOS, true, len(data))

	resp := SMBIOSResponse{Structures: []StructureResponse{}}
	start := 0
	if !s.config.Raw {
		if entry, offset := smbios.ParseEntryHeader(data); entry != nil {
			resp.MajorVersion = entry.MajorVersion
			resp.MinorVersion = entry.MinorVersion
			resp.DMIRevision = entry.DMIRevision
			start = offset
		}
	}

	walker := smbios.NewWalker(data, start)
	for {
		structure, ok := walker.Next()
		if !ok {
			break
		}
		sr := StructureResponse{
			Type:    structure.Header.Type,
			Handle:  structure.Header.Handle,
			Length:  structure.Header.Length,
			Strings: structure.Strings,
		}
		if name, known := smbios.TypeName(structure.Header.Type); known {
			sr.TypeName = name
		}
		sr.Fields = fieldResponses(smbios.DecodeFields(
			structure.Header.Type, data, structure.Offset,
			int(structure.Header.Length), structure.Strings))
		resp.Structures = append(resp.Structures, sr)
	}
	s.metrics.RecordStructuresDecoded(len(resp.Structures))
	sendSuccess(w, resp)
}
