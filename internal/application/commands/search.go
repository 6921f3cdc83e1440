package commands

import (
	"context"
	"sort"
	"strings"

	"daybook/internal/application"
	"daybook/internal/domain"
)

// SearchHit is one entity matching a search query
type SearchHit struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	Score  int    `json:"score"`
}

// SearchCommand looks for a query across every entity kind
type SearchCommand struct {
	session *application.Session
	Query   string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(session *application.Session, query string) *SearchCommand {
	return &SearchCommand{session: session, Query: query}
}

// Execute runs the search command and returns scored, sorted hits
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchHit, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	var candidates []SearchHit
	c.session.View(func(data *domain.Aggregate) {
		candidates = collectCandidates(data)
	})
	return FuzzySort(candidates, c.Query), nil
}

func collectCandidates(data *domain.Aggregate) []SearchHit {
	var hits []SearchHit
	for _, t := range data.Tasks {
		hits = append(hits, SearchHit{Kind: "task", ID: t.ID, Title: t.Text, Detail: t.Category})
	}
	for _, s := range data.Shopping {
		hits = append(hits, SearchHit{Kind: "shopping", ID: s.ID, Title: s.Text, Detail: s.Category})
	}
	for _, i := range data.Ideas {
		hits = append(hits, SearchHit{Kind: "idea", ID: i.ID, Title: i.Title, Detail: i.Text})
	}
	for _, n := range data.Notes {
		hits = append(hits, SearchHit{Kind: "note", ID: n.ID, Title: n.Title, Detail: n.Content})
	}
	for _, e := range data.Events {
		hits = append(hits, SearchHit{Kind: "event", ID: e.ID, Title: e.Text, Detail: e.Location})
	}
	for _, e := range data.Calendar {
		hits = append(hits, SearchHit{Kind: "calendar", ID: e.ID, Title: e.Text, Detail: e.Date})
	}
	for _, h := range data.Habits {
		hits = append(hits, SearchHit{Kind: "habit", ID: h.ID, Title: h.Text, Detail: strings.Join(h.SubHabits, ", ")})
	}
	for _, r := range data.Routines {
		hits = append(hits, SearchHit{Kind: "routine", ID: r.ID, Title: r.Text, Detail: r.StartTime + "-" + r.EndTime})
	}
	return hits
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Substring matches rank above any fuzzy match
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: query characters must appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] != query[queryIdx] {
			continue
		}
		if prevMatchIdx == i-1 {
			score += 10 // consecutive
		}
		if i == 0 {
			score += 15
		}
		if i > 0 && (target[i-1] == ' ' || target[i-1] == '-' || target[i-1] == '/') {
			score += 10 // word start
		}
		score++
		prevMatchIdx = i
		queryIdx++
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores hits against the query, drops non-matches and sorts by score.
// Titles weigh more than details.
func FuzzySort(hits []SearchHit, query string) []SearchHit {
	scored := make([]SearchHit, 0, len(hits))

	for _, h := range hits {
		best := max(FuzzyScore(h.Title, query), FuzzyScore(h.Detail, query)/2)
		if best > 0 {
			h.Score = best
			scored = append(scored, h)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
