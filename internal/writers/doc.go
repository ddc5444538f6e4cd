// Package writers turns an interpolated medium into a serialized table.
//
// Design:
//   • internal/output owns the renderers (csv/tsv/json/xlsx); this package
//     maps format names to them and owns file placement.
//   • File output is written next to the target and renamed into place, so a
//     failed run never leaves a partial table behind.
package writers
