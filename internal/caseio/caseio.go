// Package caseio loads full analysis cases from YAML documents: fluid,
// deviation survey, completion, inflow model, traverse settings, and
// optional constraints and test points in one file.
package caseio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/petrolab/gonodal/internal/ipr"
	"github.com/petrolab/gonodal/internal/match"
	"github.com/petrolab/gonodal/internal/nodal"
	"github.com/petrolab/gonodal/internal/pvt"
	"github.com/petrolab/gonodal/internal/vlp"
	"github.com/petrolab/gonodal/internal/wellbore"
)

// Case bundles every input of one analysis request.
type Case struct {
	Name        string              `yaml:"name,omitempty"`
	Fluid       pvt.Fluid           `yaml:"fluid"`
	Survey      wellbore.Survey     `yaml:"survey"`
	SurveyFile  string              `yaml:"survey_file,omitempty"` // xlsx alternative to inline points
	Completion  wellbore.Completion `yaml:"completion"`
	IPR         ipr.Model           `yaml:"ipr"`
	VLP         vlp.Settings        `yaml:"vlp"`
	Constraints *nodal.Constraints  `yaml:"constraints,omitempty"`
	TestPoints  []match.TestPoint   `yaml:"test_points,omitempty"`
}

// Load parses a case file. When survey_file is set the deviation survey
// is read from that workbook instead of inline points.
func Load(path string) (*Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("caseio: read %s: %w", path, err)
	}

	var c Case
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("caseio: parse %s: %w", path, err)
	}

	if c.SurveyFile != "" && len(c.Survey.Points) == 0 {
		survey, err := wellbore.LoadSurveyXLSX(c.SurveyFile)
		if err != nil {
			return nil, err
		}
		c.Survey = survey
	}
	return &c, nil
}
