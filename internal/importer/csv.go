package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mwhitman/draftboard/internal/domain"
)

// ProjectionRow is one parsed line of a projections CSV.
type ProjectionRow struct {
	Name         string
	Team         string
	Position     domain.Position
	ByeWeek      *int
	ProjectedPts float64
}

// csvColumns maps sniffed header names to column roles. Projection sheets
// from different sites disagree on header spelling, so matching is loose:
// a header counts as the points column if it contains any of the pts terms.
var (
	nameTerms = []string{"name", "player"}
	teamTerms = []string{"team", "tm"}
	posTerms  = []string{"position", "pos"}
	byeTerms  = []string{"bye"}
	ptsTerms  = []string{"point", "proj", "season", "fpts"}
)

type csvLayout struct {
	name, team, pos, bye, pts int
}

// ParseProjectionsCSV reads a projections sheet. The first row must be a
// header; name, position and a points-like column are required, team and
// bye are optional. Rows that fail to parse are reported with their line
// number; one bad row fails the whole parse so a half-imported sheet can't
// go unnoticed.
func ParseProjectionsCSV(path string) ([]ProjectionRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening projections file: %w", err)
	}
	defer f.Close()
	return parseProjections(f)
}

func parseProjections(r io.Reader) ([]ProjectionRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	layout, err := sniffLayout(header)
	if err != nil {
		return nil, err
	}

	var rows []ProjectionRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row, err := parseRecord(record, layout)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func sniffLayout(header []string) (csvLayout, error) {
	layout := csvLayout{name: -1, team: -1, pos: -1, bye: -1, pts: -1}

	for i, h := range header {
		col := strings.ToLower(strings.TrimSpace(h))
		switch {
		case layout.name == -1 && matchesAny(col, nameTerms):
			layout.name = i
		case layout.team == -1 && matchesAny(col, teamTerms):
			layout.team = i
		case layout.pos == -1 && matchesAny(col, posTerms):
			layout.pos = i
		case layout.bye == -1 && matchesAny(col, byeTerms):
			layout.bye = i
		case layout.pts == -1 && matchesAny(col, ptsTerms):
			layout.pts = i
		}
	}

	var missing []string
	if layout.name == -1 {
		missing = append(missing, "name")
	}
	if layout.pos == -1 {
		missing = append(missing, "position")
	}
	if layout.pts == -1 {
		missing = append(missing, "points")
	}
	if len(missing) > 0 {
		return layout, fmt.Errorf("header is missing required columns: %s", strings.Join(missing, ", "))
	}
	return layout, nil
}

func matchesAny(col string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(col, t) {
			return true
		}
	}
	return false
}

func parseRecord(record []string, layout csvLayout) (ProjectionRow, error) {
	var row ProjectionRow

	field := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	row.Name = field(layout.name)
	if row.Name == "" {
		return row, fmt.Errorf("empty player name")
	}

	pos, err := domain.ParsePosition(field(layout.pos))
	if err != nil {
		return row, err
	}
	row.Position = pos

	row.Team = strings.ToUpper(field(layout.team))

	if bye := field(layout.bye); bye != "" {
		week, err := strconv.Atoi(bye)
		if err != nil {
			return row, fmt.Errorf("invalid bye week %q", bye)
		}
		row.ByeWeek = &week
	}

	ptsStr := field(layout.pts)
	pts, err := strconv.ParseFloat(ptsStr, 64)
	if err != nil {
		return row, fmt.Errorf("invalid projected points %q", ptsStr)
	}
	row.ProjectedPts = pts

	return row, nil
}
