package dataprocessing

import (
	"electionreport/pkg/contracts/domain"
)

// Table is the in-memory election results table. Rows keep file order.
type Table struct {
	records    []domain.ElectionRecord
	voteShares []float64
}

// NewTable creates a table holding a copy of records
func NewTable(records []domain.ElectionRecord) *Table {
	rows := make([]domain.ElectionRecord, len(records))
	copy(rows, records)
	return &Table{records: rows}
}

// Len returns the number of rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns a copy of the rows in file order
func (t *Table) Records() []domain.ElectionRecord {
	if t == nil {
		return nil
	}
	rows := make([]domain.ElectionRecord, len(t.records))
	copy(rows, t.records)
	return rows
}

// Columns lists the column names, derived columns last
func (t *Table) Columns() []string {
	columns := append([]string(nil), domain.RequiredColumns...)
	if t != nil && t.voteShares != nil {
		columns = append(columns, domain.ColumnVoteShare)
	}
	return columns
}

// HasColumn reports whether the table carries the named column
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns() {
		if c == name {
			return true
		}
	}
	return false
}

// VoteShares returns the derived vote share column, or nil before
// CalculateVoteShare has run.
func (t *Table) VoteShares() []float64 {
	if t == nil || t.voteShares == nil {
		return nil
	}
	shares := make([]float64, len(t.voteShares))
	copy(shares, t.voteShares)
	return shares
}

func (t *Table) setVoteShares(shares []float64) {
	t.voteShares = shares
}
