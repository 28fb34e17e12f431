package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// BoardSchema is the top-level JSON structure for board import.
type BoardSchema struct {
	Board   BoardImport    `json:"board"`
	Rules   []RuleImport   `json:"rules,omitempty"`
	Players []PlayerImport `json:"players"`
}

// BoardImport defines the board-level fields in the import file.
type BoardImport struct {
	ShortID string `json:"short_id"`
	Name    string `json:"name"`
	Season  int    `json:"season,omitempty"`
}

// RuleImport defines per-position draft settings.
type RuleImport struct {
	Position    string `json:"position"`
	Slip        *int   `json:"slip,omitempty"`
	RosterLimit *int   `json:"roster_limit,omitempty"`
}

// PlayerImport defines one player in the import file.
type PlayerImport struct {
	Name         string  `json:"name"`
	Team         string  `json:"team,omitempty"`
	Position     string  `json:"position"`
	ByeWeek      *int    `json:"bye_week,omitempty"`
	ProjectedPts float64 `json:"projected_pts"`
}

// LoadBoardSchema reads and decodes a board import file.
func LoadBoardSchema(path string) (*BoardSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var schema BoardSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
