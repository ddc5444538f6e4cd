// internal/qiime/archive.go
package qiime

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// MediumTypePrefix is the semantic type prefix of MICOM medium artifacts
// (MicomMedium[Global], MicomMedium[PerSample], ...).
const MediumTypePrefix = "MicomMedium"

const maxPayload = 64 << 20

var (
	ErrNoMetadata = errors.New("archive has no <uuid>/metadata.yaml")
	ErrNoData     = errors.New("archive has no table under <uuid>/data/")
)

// Metadata mirrors the artifact's metadata.yaml.
type Metadata struct {
	UUID   string `yaml:"uuid"`
	Type   string `yaml:"type"`
	Format string `yaml:"format"`
}

// Archive is a decoded artifact: its identity plus the raw data table.
type Archive struct {
	UUID     uuid.UUID
	Metadata Metadata
	DataName string // base name of the table inside data/
	Data     []byte
}

// Open reads the artifact at p.
func Open(p string) (*Archive, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()
	return read(&zr.Reader)
}

// Read decodes an artifact from an in-memory or on-disk zip.
func Read(r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return read(zr)
}

func read(zr *zip.Reader) (*Archive, error) {
	var metaFile *zip.File
	for _, f := range zr.File {
		parts := strings.Split(f.Name, "/")
		if len(parts) == 2 && parts[1] == "metadata.yaml" {
			metaFile = f
			break
		}
	}
	if metaFile == nil {
		return nil, ErrNoMetadata
	}
	root := strings.SplitN(metaFile.Name, "/", 2)[0]

	raw, err := readFile(metaFile)
	if err != nil {
		return nil, err
	}
	var md Metadata
	if err := yaml.Unmarshal(raw, &md); err != nil {
		return nil, fmt.Errorf("metadata.yaml: %w", err)
	}

	id, err := uuid.Parse(md.UUID)
	if err != nil {
		return nil, fmt.Errorf("metadata.yaml: bad uuid %q: %w", md.UUID, err)
	}
	if rootID, err := uuid.Parse(root); err != nil || rootID != id {
		return nil, fmt.Errorf("archive root %q does not match uuid %s", root, id)
	}
	if !strings.HasPrefix(md.Type, MediumTypePrefix) {
		return nil, fmt.Errorf("artifact type %q is not a %s", md.Type, MediumTypePrefix)
	}

	dataDir := root + "/data/"
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, dataDir) || f.FileInfo().IsDir() {
			continue
		}
		rel := strings.TrimPrefix(f.Name, dataDir)
		if strings.Contains(rel, "/") || !isTable(rel) {
			continue
		}
		b, err := readFile(f)
		if err != nil {
			return nil, err
		}
		return &Archive{UUID: id, Metadata: md, DataName: rel, Data: b}, nil
	}
	return nil, ErrNoData
}

func isTable(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv", ".tsv", ".txt":
		return true
	}
	return false
}

func readFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }()
	b, err := io.ReadAll(io.LimitReader(rc, maxPayload+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	if len(b) > maxPayload {
		return nil, fmt.Errorf("%s: larger than %d bytes", f.Name, maxPayload)
	}
	return b, nil
}
