package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"electionreport/pkg/contracts/domain"
)

// SampleHeader is the header row of the sample election file.
var SampleHeader = []string{
	domain.ColumnConstituency,
	domain.ColumnParty,
	domain.ColumnCandidate,
	domain.ColumnVotes,
}

// SampleRecords returns the rows of the two-constituency sample election.
// North has a close runner-up (Bob, 98 vs 100); South does not.
func SampleRecords() []domain.ElectionRecord {
	return []domain.ElectionRecord{
		{Constituency: "North", Party: "Red", Candidate: "Ann", Votes: 100},
		{Constituency: "North", Party: "Blue", Candidate: "Bob", Votes: 98},
		{Constituency: "South", Party: "Red", Candidate: "Cat", Votes: 50},
		{Constituency: "South", Party: "Blue", Candidate: "Dan", Votes: 10},
	}
}

// RecordsToRows renders records as string rows in SampleHeader order.
func RecordsToRows(records []domain.ElectionRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Constituency,
			r.Party,
			r.Candidate,
			strconv.FormatInt(r.Votes, 10),
		})
	}
	return rows
}

// WriteCSVFile writes header and rows to name inside a fresh temp directory
// and returns the full path.
func WriteCSVFile(t *testing.T, name string, header []string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	w := csv.NewWriter(file)
	if header != nil {
		require.NoError(t, w.Write(header))
	}
	require.NoError(t, w.WriteAll(rows))
	return path
}

// WriteSampleCSV writes the sample election to election_results.csv.
func WriteSampleCSV(t *testing.T) string {
	t.Helper()
	return WriteCSVFile(t, "election_results.csv", SampleHeader, RecordsToRows(SampleRecords()))
}

// WriteRawFile writes content verbatim, for inputs csv.Writer cannot produce.
func WriteRawFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteXLSXFile writes header and rows to the first sheet of a new workbook.
func WriteXLSXFile(t *testing.T, name string, header []string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	all := append([][]string{header}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}
