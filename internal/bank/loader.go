package bank

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"practice-service/internal/constants"
	"practice-service/internal/models"
)

var (
	ErrEmptyBank     = errors.New("bank file has no questions")
	ErrUnknownLayout = errors.New("bank file layout not recognized")
)

const (
	colQuestion      = "Question"
	colOptionA       = "Option A"
	colOptionB       = "Option B"
	colOptionC       = "Option C"
	colOptionD       = "Option D"
	colAnswer        = "Answer"
	colCorrectAnswer = "Correct Answer"
	colExplanation   = "Explanation"
	colDifficulty    = "Difficulty"
	colTopic         = "Topic"
)

var requiredColumns = []string{colQuestion, colOptionA, colOptionB, colOptionC, colOptionD, colAnswer}

// headerlessColumns is the fixed layout of files without a header row.
var headerlessColumns = []string{
	colQuestion, colOptionA, colOptionB, colOptionC, colOptionD, colAnswer,
	"Subject", colTopic, "Year",
}

// Load reads every catalogued (subject, year) file from src. Missing or
// malformed files leave their entry absent; Load itself never fails.
func Load(ctx context.Context, src Source, catalog Catalog, logger *slog.Logger) *Bank {
	sets := make(map[string]map[string][]models.Question, len(catalog.Years))

	for _, subject := range catalog.Subjects {
		for _, year := range catalog.Years {
			if sets[year] == nil {
				sets[year] = make(map[string][]models.Question)
			}

			name, ok := catalog.File(subject, year)
			if !ok {
				continue
			}

			questions, err := loadFile(ctx, src, name, subject, year)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				logger.Warn("bank file not found", "file", name, "subject", subject, "year", year)
				continue
			case err != nil:
				logger.Warn("bank file rejected", "file", name, "subject", subject, "year", year, "error", err)
				continue
			}

			sets[year][subject] = questions
			logger.Debug("bank loaded", "file", name, "subject", subject, "year", year, "questions", len(questions))
		}
	}

	b := New(catalog, sets)
	logger.Info("question banks loaded", "questions", b.Size())
	return b
}

func loadFile(ctx context.Context, src Source, name, subject, year string) ([]models.Question, error) {
	f, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseCSV(f, subject, year)
}

// ParseCSV parses one bank file. Either layout is accepted: a header row naming
// at least Question, Option A-D and Answer (or Correct Answer), or a headerless
// file of exactly nine columns.
func ParseCSV(r io.Reader, subject, year string) ([]models.Question, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyBank
	}
	records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")

	columns, rows, headerless := detectLayout(records)
	if columns == nil {
		return nil, ErrUnknownLayout
	}

	questions := make([]models.Question, 0, len(rows))
	for i, row := range rows {
		if blankRow(row) {
			continue
		}

		line := i + 1
		if !headerless {
			line++
		}

		if headerless && len(row) > len(headerlessColumns) {
			return nil, fmt.Errorf("line %d: %d columns, want %d", line, len(row), len(headerlessColumns))
		}

		q, err := parseRow(row, columns, subject, year)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if headerless {
			q.Explanation = constants.DefaultExplanation
			q.Difficulty = constants.DefaultDifficulty
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}
	return questions, nil
}

// detectLayout returns the column index by name and the data rows. columns is
// nil when neither layout fits.
func detectLayout(records [][]string) (columns map[string]int, rows [][]string, headerless bool) {
	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}
	if _, ok := header[colAnswer]; !ok {
		if i, ok := header[colCorrectAnswer]; ok {
			header[colAnswer] = i
		}
	}

	if hasAll(header, requiredColumns) {
		return header, records[1:], false
	}

	if len(records[0]) == len(headerlessColumns) {
		fixed := make(map[string]int, len(headerlessColumns))
		for i, name := range headerlessColumns {
			fixed[name] = i
		}
		return fixed, records, true
	}

	return nil, nil, false
}

func parseRow(row []string, columns map[string]int, subject, year string) (models.Question, error) {
	for _, name := range requiredColumns {
		if columns[name] >= len(row) {
			return models.Question{}, fmt.Errorf("missing column %q", name)
		}
	}

	q := models.Question{
		Text:        field(row, columns, colQuestion),
		OptionA:     field(row, columns, colOptionA),
		OptionB:     field(row, columns, colOptionB),
		OptionC:     field(row, columns, colOptionC),
		OptionD:     field(row, columns, colOptionD),
		Answer:      field(row, columns, colAnswer),
		Explanation: field(row, columns, colExplanation),
		Difficulty:  field(row, columns, colDifficulty),
		Topic:       field(row, columns, colTopic),
		Subject:     subject,
		Year:        year,
	}
	if q.Text == "" {
		return models.Question{}, errors.New("empty question text")
	}
	return q, nil
}

func field(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func hasAll(header map[string]int, names []string) bool {
	for _, name := range names {
		if _, ok := header[name]; !ok {
			return false
		}
	}
	return true
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
