package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"electionreport/pkg/contracts/domain"
)

// Section labels, in print order
const (
	LabelTotals        = "Total Votes per Party:"
	LabelWinners       = "Winning Party in Each Constituency:"
	LabelOverallWinner = "Overall Election Winner:"
	LabelVoteShare     = "Vote Share:"
	LabelCloseContests = "Close Contests:"
)

// Report holds the results of the five queries
type Report struct {
	Totals        []domain.PartyTotal
	Winners       []domain.ConstituencyWinner
	OverallWinner string
	VoteShares    []domain.VoteShare
	CloseContests []domain.CloseContest
}

// Printer writes a Report as labelled text sections
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print writes every section of r in order and returns the first write error
func (p *Printer) Print(r Report) error {
	w := &errWriter{w: p.out}

	p.section(w, LabelTotals, []string{domain.ColumnParty, domain.ColumnVotes}, totalRows(r.Totals))
	p.section(w, LabelWinners, []string{domain.ColumnConstituency, domain.ColumnParty}, winnerRows(r.Winners))
	fmt.Fprintf(w, "%s %s\n\n", LabelOverallWinner, r.OverallWinner)
	p.section(w, LabelVoteShare,
		[]string{domain.ColumnCandidate, domain.ColumnVotes, domain.ColumnVoteShare},
		shareRows(r.VoteShares))
	p.section(w, LabelCloseContests,
		[]string{domain.ColumnConstituency, domain.ColumnCandidate, domain.ColumnVotes, domain.ColumnVoteMargin},
		contestRows(r.CloseContests))

	return w.err
}

func (p *Printer) section(w io.Writer, label string, header []string, rows [][]string) {
	fmt.Fprintln(w, label)

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	fmt.Fprintln(w)
}

func totalRows(totals []domain.PartyTotal) [][]string {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{t.Party, formatVotes(t.Votes)})
	}
	return rows
}

func winnerRows(winners []domain.ConstituencyWinner) [][]string {
	rows := make([][]string, 0, len(winners))
	for _, w := range winners {
		rows = append(rows, []string{w.Constituency, w.Party})
	}
	return rows
}

func shareRows(shares []domain.VoteShare) [][]string {
	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{s.Candidate, formatVotes(s.Votes), formatPercent(s.Percent)})
	}
	return rows
}

func contestRows(contests []domain.CloseContest) [][]string {
	rows := make([][]string, 0, len(contests))
	for _, c := range contests {
		rows = append(rows, []string{c.Constituency, c.Candidate, formatVotes(c.Votes), formatVotes(c.Margin)})
	}
	return rows
}

// errWriter keeps the first write error and drops later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}
