// Package roster imports the team list from a spreadsheet CSV export and
// normalizes its loosely named columns into Team rows.
package roster

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/model"
)

// Source yields the current team roster.
type Source interface {
	Teams(ctx context.Context) ([]model.Team, error)
}

// ErrNoTeams signals a source that parsed cleanly but produced nothing
// usable; the fallback treats it the same as a read failure.
var ErrNoTeams = errors.New("no teams in source")

// CSVSource reads a spreadsheet CSV export from local disk.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSV-backed roster source.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Teams parses the CSV. The header row is mapped case- and
// punctuation-insensitively ("Team Name", "team_name" and "TEAM" all land
// on the name column); rows without a usable name are skipped; a missing
// id is derived by slugging the name.
func (s *CSVSource) Teams(ctx context.Context) ([]model.Team, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open roster %s: %w", s.path, err)
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) ([]model.Team, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // spreadsheet exports ragged rows

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read roster header: %w", err)
	}
	cols := mapColumns(header)

	var teams []model.Team
	seen := map[string]bool{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read roster row: %w", err)
		}

		t := model.Team{
			ID:    field(row, cols.id),
			Name:  field(row, cols.name),
			Track: field(row, cols.track),
		}
		if members := field(row, cols.members); members != "" {
			t.Members = splitMembers(members)
		}
		if t.Name == "" {
			continue
		}
		if t.ID == "" {
			t.ID = Slug(t.Name)
		}
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		teams = append(teams, t)
	}

	if len(teams) == 0 {
		return nil, ErrNoTeams
	}
	return teams, nil
}

type columns struct {
	id, name, members, track int
}

// mapColumns resolves header cells to known fields. Unmatched fields stay
// at -1 and read as empty.
func mapColumns(header []string) columns {
	c := columns{id: -1, name: -1, members: -1, track: -1}
	for i, h := range header {
		switch normalizeHeader(h) {
		case "teamid", "id":
			if c.id < 0 {
				c.id = i
			}
		case "teamname", "team", "name", "projectname":
			if c.name < 0 {
				c.name = i
			}
		case "members", "teammembers", "participants":
			if c.members < 0 {
				c.members = i
			}
		case "track", "theme", "problemstatement", "category":
			if c.track < 0 {
				c.track = i
			}
		}
	}
	return c
}

func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(h)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func splitMembers(s string) []string {
	var members []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	}) {
		if part = strings.TrimSpace(part); part != "" {
			members = append(members, part)
		}
	}
	return members
}

// Slug derives a stable team identifier from a display name.
func Slug(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
