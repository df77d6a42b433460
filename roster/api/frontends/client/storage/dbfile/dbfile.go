// Package dbfile provides record sources backed by a data file, either the
// dataset embedded in the binary or a JSON or YAML file on disk.
package dbfile

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardanlabs/roster/roster/app/sdk/roster"
	"gopkg.in/yaml.v3"
)

//go:embed users.json
var embedded []byte

// Format identifies how a data file is encoded.
type Format int

// Set of supported data file formats.
const (
	FormatJSON Format = iota
	FormatYAML
)

// DB is a read-only source of raw user records.
type DB struct {
	name   string
	data   []byte
	format Format
}

// NewEmbedded returns the dataset compiled into the binary.
func NewEmbedded() *DB {
	return &DB{
		name:   "embedded",
		data:   embedded,
		format: FormatJSON,
	}
}

// NewDB reads the data file at fileName. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func NewDB(fileName string) (*DB, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("data file read: %w", err)
	}

	format := FormatJSON
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}

	db := DB{
		name:   fileName,
		data:   data,
		format: format,
	}

	return &db, nil
}

// Name identifies where the records come from.
func (db *DB) Name() string {
	return db.name
}

// Records decodes the raw user records.
func (db *DB) Records(ctx context.Context) ([]roster.Record, error) {
	var records []roster.Record

	switch db.format {
	case FormatYAML:
		if err := yaml.NewDecoder(bytes.NewReader(db.data)).Decode(&records); err != nil {
			return nil, fmt.Errorf("yaml decode: %s: %w", db.name, err)
		}

	default:
		if err := json.NewDecoder(bytes.NewReader(db.data)).Decode(&records); err != nil {
			return nil, fmt.Errorf("json decode: %s: %w", db.name, err)
		}
	}

	return records, nil
}
