package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "electionreport/internal/errors"
	"electionreport/internal/report"
	"electionreport/internal/shared/testutil"
)

func TestRun_SampleElection(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	var out bytes.Buffer

	err := run(context.Background(), logger, testutil.WriteSampleCSV(t), &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Overall Election Winner: Red")

	// North: Bob trails Ann by 2, under 5% of 98
	closeSection := text[strings.Index(text, report.LabelCloseContests):]
	assert.Contains(t, closeSection, "Bob")
	assert.NotContains(t, closeSection, "Dan")
	testutil.AssertNoErrors(t, handler)
}

func TestRun_MissingInput(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	var out bytes.Buffer

	err := run(context.Background(), logger, filepath.Join(t.TempDir(), inputFile), &out)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
	assert.Empty(t, out.String())
}

func TestRun_EmptyTableFails(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	var out bytes.Buffer
	path := testutil.WriteCSVFile(t, inputFile, testutil.SampleHeader, nil)

	err := run(context.Background(), logger, path, &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrEmptyTable))
	assert.Empty(t, out.String())
}

func TestRun_XLSXInput(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	var out bytes.Buffer
	path := testutil.WriteXLSXFile(t, "election_results.xlsx",
		testutil.SampleHeader, testutil.RecordsToRows(testutil.SampleRecords()))

	require.NoError(t, run(context.Background(), logger, path, &out))
	assert.Contains(t, out.String(), report.LabelVoteShare)
}
