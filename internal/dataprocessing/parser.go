package dataprocessing

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "electionreport/internal/errors"
	"electionreport/internal/infrastructure"
	"electionreport/internal/validation"
	"electionreport/pkg/contracts/domain"
)

const utf8BOM = "\ufeff"

// Loader reads election results files into a Table
type Loader struct {
	logger    *slog.Logger
	validator *validation.FileValidator
}

// NewLoader creates a loader. A nil logger falls back to the process logger.
func NewLoader(logger *slog.Logger) *Loader {
	logger = infrastructure.WithComponent(logger, "loader")
	return &Loader{
		logger:    logger,
		validator: validation.NewFileValidator(logger),
	}
}

// LoadFile reads path with a default loader
func LoadFile(ctx context.Context, path string) (*Table, error) {
	return NewLoader(nil).LoadFile(ctx, path)
}

// LoadCSV reads a comma-separated file with a default loader
func LoadCSV(ctx context.Context, path string) (*Table, error) {
	return NewLoader(nil).LoadCSV(ctx, path)
}

// LoadXLSX reads the first worksheet of a workbook with a default loader
func LoadXLSX(ctx context.Context, path string) (*Table, error) {
	return NewLoader(nil).LoadXLSX(ctx, path)
}

// LoadFile checks path, picks the reader from the file extension and loads
// the table.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Table, error) {
	format, err := l.validator.DetectFormat(path)
	if err != nil {
		return nil, err
	}

	if format == validation.FormatXLSX {
		return l.LoadXLSX(ctx, path)
	}
	return l.LoadCSV(ctx, path)
}

// LoadCSV reads a comma-separated results file
func (l *Loader) LoadCSV(ctx context.Context, path string) (table *Table, err error) {
	ctx, span := startLoadSpan(ctx, path, validation.FormatCSV)
	defer func() { endLoadSpan(ctx, span, table, err) }()

	if err = l.validator.ValidateInputFile(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open input file", err).
			WithContext("path", path)
	}
	defer file.Close()

	table, err = LoadCSVReader(file)
	if err != nil {
		l.logger.ErrorContext(ctx, "Failed to parse CSV file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return nil, err
	}

	l.logger.InfoContext(ctx, "Loaded election results",
		slog.String("file", path),
		slog.String("format", string(validation.FormatCSV)),
		slog.Int("rows", table.Len()))
	return table, nil
}

// LoadXLSX reads the first worksheet of an Excel results workbook
func (l *Loader) LoadXLSX(ctx context.Context, path string) (table *Table, err error) {
	ctx, span := startLoadSpan(ctx, path, validation.FormatXLSX)
	defer func() { endLoadSpan(ctx, span, table, err) }()

	if err = l.validator.ValidateInputFile(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no worksheets", nil).
			WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %q", sheets[0]), err).
			WithContext("path", path)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewParsingError("input has no header row", nil).
			WithContext("path", path)
	}

	columns, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.ElectionRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		// GetRows drops trailing empty cells, so short rows are padded
		// rather than rejected.
		record, err := columns.record(row, i+2)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	table = NewTable(records)
	l.logger.InfoContext(ctx, "Loaded election results",
		slog.String("file", path),
		slog.String("format", string(validation.FormatXLSX)),
		slog.String("sheet", sheets[0]),
		slog.Int("rows", table.Len()))
	return table, nil
}

// LoadCSVReader parses comma-separated election results from r. The first
// record is the header. Rows must all have the header's field count.
func LoadCSVReader(r io.Reader) (*Table, error) {
	buffered := bufio.NewReader(r)
	if prefix, err := buffered.Peek(len(utf8BOM)); err == nil && string(prefix) == utf8BOM {
		buffered.Discard(len(utf8BOM))
	}
	reader := csv.NewReader(buffered)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, apperrors.NewParsingError("input has no header row", nil)
	}
	if err != nil {
		return nil, csvParseError(err)
	}

	columns, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var records []domain.ElectionRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvParseError(err)
		}
		if isBlankRow(row) {
			continue
		}

		line, _ := reader.FieldPos(0)
		record, err := columns.record(row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return NewTable(records), nil
}

// columnIndex maps each required column to its position in the header
type columnIndex struct {
	constituency int
	party        int
	candidate    int
	votes        int
}

func mapHeader(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	for _, required := range domain.RequiredColumns {
		if _, ok := positions[required]; !ok {
			return columnIndex{}, apperrors.NewParsingError(
				fmt.Sprintf("missing required column %q", required), nil).
				WithContext("row", 1).
				WithContext("column", required)
		}
	}

	return columnIndex{
		constituency: positions[domain.ColumnConstituency],
		party:        positions[domain.ColumnParty],
		candidate:    positions[domain.ColumnCandidate],
		votes:        positions[domain.ColumnVotes],
	}, nil
}

func (c columnIndex) record(row []string, line int) (domain.ElectionRecord, error) {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	raw := strings.TrimSpace(cell(c.votes))
	votes, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return domain.ElectionRecord{}, apperrors.NewParsingError(
			fmt.Sprintf("invalid vote count %q", raw), err).
			WithContext("row", line).
			WithContext("column", domain.ColumnVotes)
	}

	return domain.ElectionRecord{
		Constituency: cell(c.constituency),
		Party:        cell(c.party),
		Candidate:    cell(c.candidate),
		Votes:        votes,
	}, nil
}

func csvParseError(err error) error {
	appErr := apperrors.NewParsingError("malformed CSV input", err)

	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		appErr.WithContext("row", parseErr.Line)
		if parseErr.Column > 0 {
			appErr.WithContext("column", parseErr.Column)
		}
	}
	return appErr
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func startLoadSpan(ctx context.Context, path string, format validation.InputFormat) (context.Context, trace.Span) {
	return otel.Tracer(infrastructure.TracerName).Start(ctx, "dataprocessing.load",
		trace.WithAttributes(
			attribute.String("file.path", path),
			attribute.String("file.format", string(format)),
		))
}

func endLoadSpan(ctx context.Context, span trace.Span, table *Table, err error) {
	if err != nil {
		infrastructure.RecordError(ctx, err)
	} else {
		span.SetAttributes(attribute.Int("rows", table.Len()))
	}
	span.End()
}
