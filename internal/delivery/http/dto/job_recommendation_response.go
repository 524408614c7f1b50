package dto

import (
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/matching"

	"github.com/google/uuid"
)

type JobRecommendationListResponse struct {
	Strategy string                      `json:"strategy"`
	Items    []JobRecommendationResponse `json:"items"`
}

type JobRecommendationResponse struct {
	JobResponse
	Match   *MatchResponse `json:"match"`
	IsSaved bool           `json:"is_saved"`
}

type JobResponse struct {
	JobID            uuid.UUID `json:"job_id"`
	Title            string    `json:"title"`
	CompanyName      string    `json:"company_name"`
	Location         string    `json:"location"`
	JobType          string    `json:"job_type"`
	Status           string    `json:"job_status"`
	Deadline         string    `json:"deadline"`
	PostedDate       time.Time `json:"posted_date"`
	SkillsRequired   string    `json:"skills_required"`
	Salary           *int      `json:"salary"`
	ApplicationCount int       `json:"application_count"`
}

type MatchResponse struct {
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	PercentMatch  int      `json:"percent_match"`
	MatchQuality  string   `json:"match_quality"`
	TotalRequired int      `json:"total_required"`
}

type BrowseJobsResponse struct {
	Recommended JobRecommendationListResponse `json:"recommended"`
	Jobs        []JobResponse                 `json:"jobs"`
}

func NewJobResponse(p job.Posting) JobResponse {
	deadline := ""
	if !p.Deadline.IsZero() {
		deadline = p.Deadline.Format(time.DateOnly)
	}
	return JobResponse{
		JobID:            p.ID,
		Title:            p.Title,
		CompanyName:      p.CompanyName,
		Location:         p.Location,
		JobType:          p.JobType,
		Status:           p.Status,
		Deadline:         deadline,
		PostedDate:       p.PostedAt,
		SkillsRequired:   p.SkillsRequired,
		Salary:           p.Salary,
		ApplicationCount: p.ApplicationCount,
	}
}

func NewJobRecommendationListResponse(recs matching.Recommendations) JobRecommendationListResponse {
	items := make([]JobRecommendationResponse, 0, len(recs.Items))
	for _, it := range recs.Items {
		var m *MatchResponse
		if it.Match != nil {
			m = &MatchResponse{
				MatchedSkills: it.Match.MatchedSkills,
				MissingSkills: it.Match.MissingSkills,
				PercentMatch:  it.Match.PercentMatch,
				MatchQuality:  string(it.Match.MatchQuality),
				TotalRequired: it.Match.TotalRequired,
			}
		}
		items = append(items, JobRecommendationResponse{
			JobResponse: NewJobResponse(it.Posting),
			Match:       m,
			IsSaved:     it.IsSaved,
		})
	}
	return JobRecommendationListResponse{Strategy: string(recs.Strategy), Items: items}
}
