// Package exporter writes the assembled tables to CSV files and drives the
// full export run.
//
// CSVWriter handles the file mechanics: path resolution against the
// downloads directory, directory creation, unconditional overwrite and an
// optional UTF-8 BOM for Excel compatibility.
//
// Driver owns the fixed list of eight exports. It runs them sequentially in
// a fixed order and stops at the first failure, leaving earlier files in
// place and later ones unwritten.
package exporter
