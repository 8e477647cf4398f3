// Package shared holds helpers used by more than one package.
//
// The testutil subpackage provides a buffered slog handler for asserting on
// log output and fixtures for the election results table: the sample rows
// used throughout the tests and helpers that write them to CSV or XLSX
// files in a test temp directory.
package shared
