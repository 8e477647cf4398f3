package validation

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "electionreport/internal/errors"
	"electionreport/internal/shared/testutil"
)

func TestNewFileValidator_NilLogger(t *testing.T) {
	v := NewFileValidator(nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.logger)
}

func TestFileValidator_ValidateInputFile(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		wantType  apperrors.ErrorType
		wantErr   bool
	}{
		{
			name: "readable file",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "election_results.csv")
				require.NoError(t, os.WriteFile(path, []byte("Constituency,Party,Candidate,Votes\n"), 0644))
				return path
			},
		},
		{
			name: "non-existent file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			wantErr:  true,
			wantType: apperrors.ErrTypeNotFound,
		},
		{
			name: "path is directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr:  true,
			wantType: apperrors.ErrTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, handler := testutil.NewTestLogger(t)
			v := NewFileValidator(logger)

			err := v.ValidateInputFile(tt.setupFunc(t))

			if !tt.wantErr {
				assert.NoError(t, err)
				testutil.AssertNoErrors(t, handler)
				return
			}

			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType), "want %s, got %v", tt.wantType, err)
			assert.NotEmpty(t, handler.GetRecordsByLevel(slog.LevelError))
		})
	}
}

func TestFileValidator_ValidateInputFile_NotExistIsUnwrappable(t *testing.T) {
	v := NewFileValidator(nil)

	err := v.ValidateInputFile(filepath.Join(t.TempDir(), "missing.csv"))

	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestFileValidator_DetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    InputFormat
		wantErr bool
	}{
		{path: "election_results.csv", want: FormatCSV},
		{path: "results.CSV", want: FormatCSV},
		{path: "results.txt", want: FormatCSV},
		{path: "results", want: FormatCSV},
		{path: "results.xlsx", want: FormatXLSX},
		{path: "data/Results.XLSX", want: FormatXLSX},
		{path: "data/~$results.xlsx", wantErr: true},
	}

	v := NewFileValidator(nil)
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := v.DetectFormat(tt.path)
			if tt.wantErr {
				assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
