// Package dataprocessing loads election results into memory and runs the
// report queries over them.
//
// # Loading
//
// LoadFile reads a results file into a Table. Files ending in .xlsx are read
// from the first worksheet of the workbook; anything else is read as
// comma-separated text. In both cases the first row is the header and must
// name the Constituency, Party, Candidate and Votes columns in any order.
//
//	table, err := dataprocessing.LoadFile(ctx, "election_results.csv")
//	if err != nil {
//	    return err
//	}
//
// # Queries
//
// Analyzer runs the five report queries. Every query reads the table in file
// order; only CalculateVoteShare changes it, by attaching the derived
// "Vote Share (%)" column.
//
//	analyzer := dataprocessing.NewAnalyzer(logger)
//	totals := analyzer.CalculateTotalVotes(ctx, table)
//	winner, err := dataprocessing.OverallWinner(totals)
//
// # Error Handling
//
// Loader failures are *errors.AppError values. Unparseable input is
// PARSING and carries "row" and "column" context where one applies.
// DetermineOverallWinner reports EMPTY_DATA on a table with no rows.
package dataprocessing
