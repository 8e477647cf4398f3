package dataprocessing

import (
	"context"
	"log/slog"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "electionreport/internal/errors"
	"electionreport/internal/infrastructure"
	"electionreport/pkg/contracts/domain"
)

// closeContestRatio is the share of a candidate's own votes under which the
// gap to the next-higher candidate counts as close.
const closeContestRatio = 0.05

// Analyzer runs the report queries over a Table
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer. A nil logger falls back to the process logger.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	return &Analyzer{
		logger: infrastructure.WithComponent(logger, "analyzer"),
	}
}

// CalculateTotalVotes sums votes per party. One entry per distinct party,
// sorted by party name.
func (a *Analyzer) CalculateTotalVotes(ctx context.Context, table *Table) []domain.PartyTotal {
	ctx, span := a.startSpan(ctx, "calculate_total_votes", table)
	defer span.End()

	sums := make(map[string]int64)
	for _, r := range table.Records() {
		sums[r.Party] += r.Votes
	}

	totals := make([]domain.PartyTotal, 0, len(sums))
	for party, votes := range sums {
		totals = append(totals, domain.PartyTotal{Party: party, Votes: votes})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Party < totals[j].Party
	})

	span.SetAttributes(attribute.Int("parties", len(totals)))
	a.logger.DebugContext(ctx, "Calculated party totals",
		slog.Int("rows", table.Len()),
		slog.Int("parties", len(totals)))
	return totals
}

// GetWinningParty picks the party of the highest-voted row in each
// constituency. On a tie the row that comes first in the file wins.
// Results are sorted by constituency name.
func (a *Analyzer) GetWinningParty(ctx context.Context, table *Table) []domain.ConstituencyWinner {
	ctx, span := a.startSpan(ctx, "get_winning_party", table)
	defer span.End()

	leaders := make(map[string]domain.ElectionRecord)
	for _, r := range table.Records() {
		best, ok := leaders[r.Constituency]
		if !ok || r.Votes > best.Votes {
			leaders[r.Constituency] = r
		}
	}

	winners := make([]domain.ConstituencyWinner, 0, len(leaders))
	for constituency, r := range leaders {
		winners = append(winners, domain.ConstituencyWinner{
			Constituency: constituency,
			Party:        r.Party,
		})
	}
	sort.Slice(winners, func(i, j int) bool {
		return winners[i].Constituency < winners[j].Constituency
	})

	span.SetAttributes(attribute.Int("constituencies", len(winners)))
	a.logger.DebugContext(ctx, "Determined constituency winners",
		slog.Int("constituencies", len(winners)))
	return winners
}

// DetermineOverallWinner computes the party totals and returns the party
// with the most votes.
func (a *Analyzer) DetermineOverallWinner(ctx context.Context, table *Table) (string, error) {
	totals := a.CalculateTotalVotes(ctx, table)

	ctx, span := a.startSpan(ctx, "determine_overall_winner", table)
	defer span.End()

	winner, err := OverallWinner(totals)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		a.logger.ErrorContext(ctx, "Cannot determine overall winner",
			slog.String("error", err.Error()))
		return "", err
	}

	span.SetAttributes(attribute.String("winner", winner))
	a.logger.InfoContext(ctx, "Determined overall winner",
		slog.String("party", winner))
	return winner, nil
}

// OverallWinner returns the party with the highest total. On a tie the
// party that comes first in totals wins.
func OverallWinner(totals []domain.PartyTotal) (string, error) {
	if len(totals) == 0 {
		return "", apperrors.NewEmptyDataError("overall winner")
	}

	best := totals[0]
	for _, t := range totals[1:] {
		if t.Votes > best.Votes {
			best = t
		}
	}
	return best.Party, nil
}

// CalculateVoteShare attaches each row's share of all votes cast, as a
// percentage, to the table and returns it per candidate in row order. When
// no votes were cast every share is zero.
func (a *Analyzer) CalculateVoteShare(ctx context.Context, table *Table) []domain.VoteShare {
	ctx, span := a.startSpan(ctx, "calculate_vote_share", table)
	defer span.End()

	records := table.Records()

	var grandTotal int64
	for _, r := range records {
		grandTotal += r.Votes
	}

	percents := make([]float64, len(records))
	shares := make([]domain.VoteShare, len(records))
	for i, r := range records {
		if grandTotal != 0 {
			percents[i] = float64(r.Votes) / float64(grandTotal) * 100
		}
		shares[i] = domain.VoteShare{
			Candidate: r.Candidate,
			Votes:     r.Votes,
			Percent:   percents[i],
		}
	}

	if table != nil {
		table.setVoteShares(percents)
	}

	if grandTotal == 0 && len(records) > 0 {
		a.logger.WarnContext(ctx, "No votes cast, all vote shares are zero",
			slog.Int("rows", len(records)))
	}

	span.SetAttributes(attribute.Int64("votes.total", grandTotal))
	a.logger.DebugContext(ctx, "Calculated vote shares",
		slog.Int("rows", len(records)),
		slog.Int64("total_votes", grandTotal))
	return shares
}

// CloseContest finds candidates who trail the next-higher candidate in their
// constituency by less than 5% of their own votes. Rows are ordered by
// constituency, then by votes descending; the leader of each constituency is
// never reported. The table itself is left untouched.
func (a *Analyzer) CloseContest(ctx context.Context, table *Table) []domain.CloseContest {
	ctx, span := a.startSpan(ctx, "close_contest", table)
	defer span.End()

	rows := table.Records()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Constituency != rows[j].Constituency {
			return rows[i].Constituency < rows[j].Constituency
		}
		return rows[i].Votes > rows[j].Votes
	})

	contests := make([]domain.CloseContest, 0)
	for i, r := range rows {
		if i == 0 || rows[i-1].Constituency != r.Constituency {
			continue
		}

		margin := rows[i-1].Votes - r.Votes
		if float64(margin) < closeContestRatio*float64(r.Votes) {
			contests = append(contests, domain.CloseContest{
				Constituency: r.Constituency,
				Candidate:    r.Candidate,
				Votes:        r.Votes,
				Margin:       margin,
			})
		}
	}

	span.SetAttributes(attribute.Int("close_contests", len(contests)))
	a.logger.DebugContext(ctx, "Detected close contests",
		slog.Int("rows", len(rows)),
		slog.Int("close_contests", len(contests)))
	return contests
}

func (a *Analyzer) startSpan(ctx context.Context, operation string, table *Table) (context.Context, trace.Span) {
	return otel.Tracer(infrastructure.TracerName).Start(ctx, "analysis."+operation,
		trace.WithAttributes(attribute.Int("rows", table.Len())))
}
