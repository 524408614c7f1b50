package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"jobboard/internal/app"
	"jobboard/internal/domain/matching"
	"jobboard/internal/usecase"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	qualityStyles = map[matching.Quality]lipgloss.Style{
		matching.QualityExcellent: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		matching.QualityGood:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		matching.QualityFair:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		matching.QualityWeak:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print ranked job recommendations for a seeker",
	Example: `  jobboard recommend --user 6f1c0e0a-2a4e-4d1b-9a57-0f3b1c2d4e5f
  jobboard recommend --user 6f1c0e0a-2a4e-4d1b-9a57-0f3b1c2d4e5f --limit 5 --q golang`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rawUser, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")
		query, _ := cmd.Flags().GetString("q")
		jobType, _ := cmd.Flags().GetString("job-type")
		location, _ := cmd.Flags().GetString("location")

		params := usecase.RecommendationParams{
			Limit:    limit,
			Query:    query,
			JobType:  jobType,
			Location: location,
		}
		if cmd.Flags().Changed("salary-min") {
			v, _ := cmd.Flags().GetInt("salary-min")
			params.SalaryMin = &v
		}
		if cmd.Flags().Changed("salary-max") {
			v, _ := cmd.Flags().GetInt("salary-max")
			params.SalaryMax = &v
		}

		userID, err := uuid.Parse(strings.TrimSpace(rawUser))
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}

		container, err := app.NewContainer(cfg, log)
		if err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
		defer container.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		recs, err := app.NewUsecases(container).Recommendations.Dashboard(ctx, userID, params)
		if err != nil {
			return err
		}

		renderRecommendations(cmd.OutOrStdout(), recs)
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("user", "", "seeker user id")
	recommendCmd.Flags().Int("limit", 0, "number of recommendations (default from RECOMMENDATION_LIMIT)")
	recommendCmd.Flags().String("q", "", "free text filter")
	recommendCmd.Flags().String("job-type", "", "job type filter")
	recommendCmd.Flags().String("location", "", "location filter")
	recommendCmd.Flags().Int("salary-min", 0, "minimum salary")
	recommendCmd.Flags().Int("salary-max", 0, "maximum salary")
	_ = recommendCmd.MarkFlagRequired("user")
}

func renderRecommendations(w io.Writer, recs matching.Recommendations) {
	if len(recs.Items) == 0 {
		fmt.Fprintln(w, "No open jobs to recommend.")
		return
	}

	heading := fmt.Sprintf("%d recommendations (%s)", len(recs.Items), recs.Strategy)
	fmt.Fprintln(w, titleStyle.Render(heading))

	for i, it := range recs.Items {
		p := it.Posting
		saved := ""
		if it.IsSaved {
			saved = " " + mutedStyle.Render("[saved]")
		}
		fmt.Fprintf(w, "%d. %s%s\n", i+1, p.Title, saved)
		fmt.Fprintf(w, "   %s %s, %s\n", labelStyle.Render("Company:"), p.CompanyName, p.Location)

		if it.Match == nil {
			fmt.Fprintf(w, "   %s %d applications\n", labelStyle.Render("Popularity:"), p.ApplicationCount)
			continue
		}

		m := it.Match
		quality := qualityStyles[m.MatchQuality].Render(string(m.MatchQuality))
		fmt.Fprintf(w, "   %s %d%% %s (%d/%d)\n", labelStyle.Render("Match:"), m.PercentMatch, quality, len(m.MatchedSkills), m.TotalRequired)
		if len(m.MissingSkills) > 0 {
			fmt.Fprintf(w, "   %s %s\n", labelStyle.Render("Missing:"), mutedStyle.Render(strings.Join(m.MissingSkills, ", ")))
		}
	}
}
