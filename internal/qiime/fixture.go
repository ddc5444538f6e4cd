package qiime

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Build assembles an artifact in memory. It is used by tests and by the
// loader's fixtures; it is not a general QIIME writer.
func Build(id, semanticType, dataName string, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := []struct {
		name string
		body []byte
	}{
		{id + "/metadata.yaml", []byte(fmt.Sprintf("uuid: %s\ntype: %s\nformat: MicomMediumDirFmt\n", id, semanticType))},
		{id + "/VERSION", []byte("QIIME 2\narchive: 5\nframework: 2023.9.0\n")},
		{id + "/data/" + dataName, data},
	}
	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(f.body); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
