// Package report renders the election report as text.
//
// The report has five sections printed in a fixed order: party totals,
// constituency winners, the overall winner, vote shares and close contests.
// Tabular sections are drawn with tablewriter using the table's column
// names as headers.
package report
