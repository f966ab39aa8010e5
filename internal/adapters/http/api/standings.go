// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"sort"

	"github.com/owenfield/frontoffice/internal/domain/model"
)

// StandingsDependencies defines the interface for standings reads.
type StandingsDependencies interface {
	World(ctx context.Context) (model.World, error)
}

// StandingsHandler serves the professional league table.
type StandingsHandler struct {
	deps StandingsDependencies
}

// NewStandingsHandler creates a new standings handler.
func NewStandingsHandler(deps StandingsDependencies) *StandingsHandler {
	return &StandingsHandler{deps: deps}
}

// standingsRow is one franchise line in the league table.
type standingsRow struct {
	Rank        int     `json:"rank"`
	FranchiseID string  `json:"franchise_id"`
	Name        string  `json:"name"`
	Conference  string  `json:"conference"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinPct      float64 `json:"win_pct"`
	Valuation   float64 `json:"valuation"`
	Trend       string  `json:"trend"`
}

// HandleGetStandings handles GET /standings requests. Rows are ordered by
// win percentage, then wins, then name for a stable table.
func (h *StandingsHandler) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	world, err := h.deps.World(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	rows := make([]standingsRow, 0, len(world.Franchises))
	for _, f := range world.Franchises {
		if f.Amateur {
			continue
		}
		rows = append(rows, standingsRow{
			FranchiseID: f.ID,
			Name:        f.Name,
			Conference:  f.Conference,
			Wins:        f.Wins,
			Losses:      f.Losses,
			WinPct:      f.WinPct(),
			Valuation:   f.Valuation,
			Trend:       string(f.Trend),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].WinPct != rows[j].WinPct {
			return rows[i].WinPct > rows[j].WinPct
		}
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return rows[i].Name < rows[j].Name
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	writeJSON(w, http.StatusOK, rows)
}
