package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/model"
)

var (
	// ErrUnsupportedFormat is returned for files that are not CSV, XLSX, JSON or YAML.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrColumnNotFound is returned when a requested column is not in the header.
	ErrColumnNotFound = errors.New("column not found")
	// ErrEmptyDataset is returned for a file without a header row.
	ErrEmptyDataset = errors.New("dataset has no header row")
)

// DatasetRepository reads a table from a CSV or XLSX file and binds it to
// the chart's category and measure roles.
type DatasetRepository struct {
	filePath       string
	sheet          string
	categoryColumn string
	valueColumn    string

	header []string
	rows   [][]string
}

// DatasetOption configures a DatasetRepository.
type DatasetOption func(*DatasetRepository)

// WithSheet selects the XLSX sheet; the first sheet is used otherwise.
func WithSheet(name string) DatasetOption {
	return func(r *DatasetRepository) { r.sheet = name }
}

// WithCategoryColumn binds the category role to the named column instead of the first column.
func WithCategoryColumn(name string) DatasetOption {
	return func(r *DatasetRepository) { r.categoryColumn = name }
}

// WithValueColumn binds the measure role to the named column instead of the first numeric column.
func WithValueColumn(name string) DatasetOption {
	return func(r *DatasetRepository) { r.valueColumn = name }
}

// NewDatasetRepository creates a repository for filePath. Nothing is read until Load.
func NewDatasetRepository(filePath string, opts ...DatasetOption) *DatasetRepository {
	r := &DatasetRepository{filePath: filePath}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FilePath returns the source file.
func (r *DatasetRepository) FilePath() string {
	return r.filePath
}

// Header returns the column names of the loaded table.
func (r *DatasetRepository) Header() []string {
	return append([]string(nil), r.header...)
}

// Load reads the file. The first row is the header.
func (r *DatasetRepository) Load() error {
	var (
		records [][]string
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(r.filePath)); ext {
	case ".csv":
		records, err = r.readCSV()
	case ".xlsx", ".xlsm":
		records, err = r.readXLSX()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%s: %w", r.filePath, ErrEmptyDataset)
	}

	r.header = make([]string, len(records[0]))
	for i, h := range records[0] {
		r.header[i] = strings.TrimSpace(h)
	}
	r.rows = records[1:]
	return nil
}

func (r *DatasetRepository) readCSV() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func (r *DatasetRepository) readXLSX() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// DataView binds the loaded table to the category and measure roles. When no
// numeric column exists the view has no measure column, which the chart treats
// as missing data.
func (r *DatasetRepository) DataView() (*model.DataView, error) {
	if r.header == nil {
		return nil, fmt.Errorf("%s: %w", r.filePath, ErrEmptyDataset)
	}

	catIdx := 0
	if r.categoryColumn != "" {
		if catIdx = r.columnIndex(r.categoryColumn); catIdx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, r.categoryColumn)
		}
	}
	valIdx := -1
	if r.valueColumn != "" {
		if valIdx = r.columnIndex(r.valueColumn); valIdx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, r.valueColumn)
		}
	} else {
		valIdx = r.firstNumericColumn(catIdx)
	}

	catSource := r.column(catIdx, model.RoleCategory)
	dv := &model.DataView{
		Metadata: model.Metadata{Columns: []model.Column{catSource}},
		Categorical: &model.Categorical{
			Categories: []model.CategoryColumn{{Source: catSource, Values: r.cells(catIdx, categoryCell)}},
		},
	}
	if valIdx >= 0 {
		valSource := r.column(valIdx, model.RoleMeasure)
		dv.Metadata.Columns = append(dv.Metadata.Columns, valSource)
		dv.Categorical.Values = []model.ValueColumn{{Source: valSource, Values: r.cells(valIdx, valueCell)}}
	}
	return dv, nil
}

func (r *DatasetRepository) columnIndex(name string) int {
	for i, h := range r.header {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

func (r *DatasetRepository) column(i int, role string) model.Column {
	return model.Column{
		DisplayName: r.header[i],
		QueryName:   "Table." + r.header[i],
		Roles:       map[string]bool{role: true},
	}
}

// firstNumericColumn returns the first column other than skip whose non-empty
// cells all parse as numbers, or -1.
func (r *DatasetRepository) firstNumericColumn(skip int) int {
	for i := range r.header {
		if i == skip {
			continue
		}
		numeric, seen := true, false
		for _, row := range r.rows {
			cell := cellAt(row, i)
			if cell == "" {
				continue
			}
			seen = true
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
				break
			}
		}
		if numeric && seen {
			return i
		}
	}
	return -1
}

func (r *DatasetRepository) cells(i int, convert func(string) any) []any {
	out := make([]any, len(r.rows))
	for j, row := range r.rows {
		out[j] = convert(cellAt(row, i))
	}
	return out
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func categoryCell(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func valueCell(s string) any {
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
