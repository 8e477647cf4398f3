package domain

// Column names of the election results table. The first four are required
// in every input file; the last two are derived by the analysis queries.
const (
	ColumnConstituency = "Constituency"
	ColumnParty        = "Party"
	ColumnCandidate    = "Candidate"
	ColumnVotes        = "Votes"
	ColumnVoteShare    = "Vote Share (%)"
	ColumnVoteMargin   = "Vote Margin"
)

// RequiredColumns lists the header labels every input file must carry.
// Order in the file does not matter.
var RequiredColumns = []string{
	ColumnConstituency,
	ColumnParty,
	ColumnCandidate,
	ColumnVotes,
}

// ElectionRecord represents one candidate's result in one constituency.
// This is the row type of the election results table.
type ElectionRecord struct {
	Constituency string `json:"constituency" csv:"Constituency"`
	Party        string `json:"party" csv:"Party"`
	Candidate    string `json:"candidate" csv:"Candidate"`
	Votes        int64  `json:"votes" csv:"Votes"`
}

// PartyTotal is the summed vote count of one party across all constituencies.
type PartyTotal struct {
	Party string `json:"party" csv:"Party"`
	Votes int64  `json:"votes" csv:"Votes"`
}

// ConstituencyWinner names the party of the top-voted row in a constituency.
type ConstituencyWinner struct {
	Constituency string `json:"constituency" csv:"Constituency"`
	Party        string `json:"party" csv:"Party"`
}

// VoteShare is a candidate's votes as a percentage of every vote cast in the
// dataset, across all constituencies and parties.
type VoteShare struct {
	Candidate string  `json:"candidate" csv:"Candidate"`
	Votes     int64   `json:"votes" csv:"Votes"`
	Percent   float64 `json:"vote_share_percent" csv:"Vote Share (%)"`
}

// CloseContest is a candidate whose gap to the next-higher candidate in the
// same constituency is under 5% of the candidate's own votes.
type CloseContest struct {
	Constituency string `json:"constituency" csv:"Constituency"`
	Candidate    string `json:"candidate" csv:"Candidate"`
	Votes        int64  `json:"votes" csv:"Votes"`
	Margin       int64  `json:"vote_margin" csv:"Vote Margin"`
}
