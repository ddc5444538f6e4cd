// Package qiime reads QIIME 2 artifacts (.qza) that carry a MICOM medium.
//
// An artifact is a zip whose single top-level directory is named by the
// artifact UUID. It holds metadata.yaml (uuid, type, format) and the payload
// under data/. Only the data table is returned; provenance is ignored.
package qiime
