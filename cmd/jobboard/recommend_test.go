package main

import (
	"bytes"
	"strings"
	"testing"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/matching"

	"github.com/google/uuid"
)

func TestRenderRecommendations_SkillMatch(t *testing.T) {
	m := matching.Score(matching.Tokenize("go, sql"), matching.Tokenize("go, sql, docker"))
	recs := matching.Recommendations{
		Strategy: matching.StrategySkillMatch,
		Items: []matching.Recommendation{{
			Posting: job.Posting{ID: uuid.New(), Title: "Backend Engineer", CompanyName: "Acme", Location: "Remote"},
			Match:   &m,
			IsSaved: true,
		}},
	}

	var buf bytes.Buffer
	renderRecommendations(&buf, recs)
	out := buf.String()

	for _, want := range []string{"skill_match", "Backend Engineer", "Acme", "66%", "good", "docker", "[saved]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRecommendations_Popularity(t *testing.T) {
	recs := matching.Recommendations{
		Strategy: matching.StrategyPopularity,
		Items: []matching.Recommendation{{
			Posting: job.Posting{ID: uuid.New(), Title: "Data Analyst", CompanyName: "Beta", ApplicationCount: 7},
		}},
	}

	var buf bytes.Buffer
	renderRecommendations(&buf, recs)
	out := buf.String()

	if !strings.Contains(out, "popularity") || !strings.Contains(out, "7 applications") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Match:") {
		t.Fatalf("popularity entries must not show a match line:\n%s", out)
	}
}

func TestRenderRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderRecommendations(&buf, matching.Recommendations{Strategy: matching.StrategyPopularity})
	if !strings.Contains(buf.String(), "No open jobs") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
