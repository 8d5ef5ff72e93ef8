// Package manifest defines the format-agnostic batch manifest: a list of
// puzzles, each naming a day, a part, an input file and optionally the
// answer it is expected to produce.
//
// Manifests are written in HCL (the primary format) or YAML. Load accepts
// any mix of files and directories and merges every puzzle it finds into a
// single Manifest, which the executor then runs.
package manifest
