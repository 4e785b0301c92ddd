package wellbore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadSurveyXLSX reads a deviation survey from the first sheet of an
// Excel workbook. Expected columns: MD, TVD, inclination, azimuth; the
// first row is treated as a header and rows that fail to parse are
// skipped.
func LoadSurveyXLSX(path string) (Survey, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Survey{}, fmt.Errorf("wellbore: open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Survey{}, fmt.Errorf("wellbore: read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return Survey{}, fmt.Errorf("wellbore: sheet %q has no data rows", sheet)
	}

	var survey Survey
	for i := 1; i < len(rows); i++ {
		point, err := parseSurveyRow(rows[i])
		if err != nil {
			continue
		}
		survey.Points = append(survey.Points, point)
	}

	if err := survey.Validate(); err != nil {
		return Survey{}, err
	}
	return survey, nil
}

func parseSurveyRow(row []string) (SurveyPoint, error) {
	if len(row) < 4 {
		return SurveyPoint{}, fmt.Errorf("wellbore: survey row needs 4 columns, got %d", len(row))
	}
	vals := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return SurveyPoint{}, err
		}
		vals[i] = v
	}
	return SurveyPoint{MD: vals[0], TVD: vals[1], Inclination: vals[2], Azimuth: vals[3]}, nil
}
