// Package serialization persists layer records for the crelu library.
//
// The stream layout is a compact container format: 4 magic bytes, a
// little-endian uint32 format version, a little-endian uint64 header size,
// then a JSON header listing one record per layer. Each record carries its
// own version tag so future layer parameters can be added without breaking
// older readers; unknown JSON fields are ignored on read.
//
// The owning graph executor drives persistence: it collects one LayerRecord
// per layer via the Layer interface's serialization hook and hands the set
// to Write, and feeds records from Read back to the layers on load.
package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Format constants.
const (
	MagicBytes    = "CRLU"
	FormatVersion = 1
	MaxHeaderSize = 1 << 20 // Sanity cap; a layer list never approaches this.
)

// LayerRecord is the persisted form of a single layer: a type/version tag
// plus optional parameters. Parameterless layers persist only the tag.
type LayerRecord struct {
	Type    string          `json:"type"`    // Layer type tag (e.g., "crelu")
	Version uint32          `json:"version"` // Record version for the layer type
	Params  json.RawMessage `json:"params,omitempty"`
}

// Header is the JSON header of a record stream.
type Header struct {
	FormatVersion int           `json:"format_version"` // Version of the container format
	CreatedAt     time.Time     `json:"created_at"`     // When the stream was written
	Layers        []LayerRecord `json:"layers"`         // One record per layer, graph order
}

// Write persists the given layer records to w.
func Write(w io.Writer, layers []LayerRecord) error {
	header := Header{
		FormatVersion: FormatVersion,
		CreatedAt:     time.Now().UTC(),
		Layers:        layers,
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, len(headerJSON))
	}

	if _, err := io.WriteString(w, MagicBytes); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// Read parses a record stream written by Write and returns the layer
// records in graph order.
func Read(r io.Reader) ([]LayerRecord, error) {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != MagicBytes {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidMagic, magic)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("failed to read version: %w", err)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}
	return header.Layers, nil
}
