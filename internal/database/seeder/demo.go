package seeder

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

var demoNamespace = uuid.MustParse("8f3b3f7e-5d0c-4f7a-9b7e-2c4d1e6a9f10")

// DemoID derives a stable id so reseeding is idempotent.
func DemoID(name string) uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte(name))
}

var (
	DemoSeekerUserID      = DemoID("user:seeker:dina")
	DemoBlankSeekerUserID = DemoID("user:seeker:bayu")
)

const demoSeekerSkills = "go, postgresql, docker, Kubernetes"

type demoEmployer struct {
	Key     string
	Company string
}

type demoPosting struct {
	Key          string
	EmployerKey  string
	Title        string
	Location     string
	JobType      string
	Skills       string
	Qualify      string
	Salary       int
	DeadlineDays int
	PostedDays   int
}

var demoEmployers = []demoEmployer{
	{Key: "acme", Company: "Acme Labs"},
	{Key: "cloudkita", Company: "CloudKita"},
	{Key: "insight", Company: "InsightWorks"},
}

var demoPostings = []demoPosting{
	{Key: "go-backend", EmployerKey: "acme", Title: "Backend Engineer (Go)", Location: "Jakarta", JobType: job.TypeFullTime,
		Skills: "Go, PostgreSQL, Redis, Docker", Qualify: "3+ years building REST APIs", Salary: 18000000, DeadlineDays: 30, PostedDays: 1},
	{Key: "fullstack", EmployerKey: "acme", Title: "Fullstack Engineer", Location: "Bandung", JobType: job.TypeFullTime,
		Skills: "TypeScript, React, Go", Qualify: "Comfortable across the stack", Salary: 15000000, DeadlineDays: 21, PostedDays: 3},
	{Key: "devops", EmployerKey: "cloudkita", Title: "DevOps Engineer", Location: "Remote", JobType: job.TypeRemote,
		Skills: "Docker, Kubernetes, AWS, Terraform", Qualify: "Operated production clusters", Salary: 20000000, DeadlineDays: 14, PostedDays: 2},
	{Key: "sre-intern", EmployerKey: "cloudkita", Title: "SRE Intern", Location: "Remote", JobType: job.TypeInternship,
		Skills: "Linux, Bash", Qualify: "Students welcome", Salary: 3000000, DeadlineDays: 10, PostedDays: 5},
	{Key: "data", EmployerKey: "insight", Title: "Data Engineer", Location: "Surabaya", JobType: job.TypeContract,
		Skills: "Python, SQL, Airflow", Qualify: "Pipeline and warehouse experience", Salary: 16000000, DeadlineDays: 20, PostedDays: 4},
	{Key: "analyst", EmployerKey: "insight", Title: "Data Analyst", Location: "Jakarta", JobType: job.TypePartTime,
		Skills: "", Qualify: "Spreadsheet wizardry", DeadlineDays: 7, PostedDays: 6},
}

func Defaults() []Seeder {
	return []Seeder{EmployersSeeder{}, PostingsSeeder{}, SeekersSeeder{}}
}

type EmployersSeeder struct{}

func (EmployersSeeder) Name() string { return "employers" }

func (EmployersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "employer_profiles", "id", "user_id", "company_name"); err != nil {
		return err
	}
	for _, e := range demoEmployers {
		if _, err := db.Exec(ctx,
			`INSERT INTO employer_profiles (id, user_id, company_name) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
			DemoID("employer:"+e.Key), DemoID("user:employer:"+e.Key), e.Company,
		); err != nil {
			return err
		}
	}
	return nil
}

type PostingsSeeder struct{}

func (PostingsSeeder) Name() string { return "job_postings" }

func (PostingsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_postings",
		"id", "employer_id", "title", "location", "job_type", "job_status",
		"qualifications", "skills_required", "salary", "deadline", "posted_date",
	); err != nil {
		return err
	}
	for _, p := range demoPostings {
		if _, err := db.Exec(ctx,
			`INSERT INTO job_postings (id, employer_id, title, location, job_type, job_status, qualifications, skills_required, salary, deadline, posted_date)
			 VALUES ($1, $2, $3, $4, $5, 'open', $6, NULLIF($7, ''), NULLIF($8::int, 0), CURRENT_DATE + $9::int, now() - make_interval(days => $10::int))
			 ON CONFLICT (id) DO NOTHING`,
			DemoID("posting:"+p.Key), DemoID("employer:"+p.EmployerKey), p.Title, p.Location, p.JobType,
			p.Qualify, p.Skills, p.Salary, p.DeadlineDays, p.PostedDays,
		); err != nil {
			return err
		}
	}
	return nil
}

type SeekersSeeder struct{}

func (SeekersSeeder) Name() string { return "seeker_profiles" }

func (SeekersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "seeker_profiles", "id", "user_id", "full_name", "skills"); err != nil {
		return err
	}

	seekers := []struct {
		UserID uuid.UUID
		Name   string
		Skills string
	}{
		{UserID: DemoSeekerUserID, Name: "Dina Pratama", Skills: demoSeekerSkills},
		{UserID: DemoBlankSeekerUserID, Name: "Bayu Santoso", Skills: ""},
	}
	for _, s := range seekers {
		if _, err := db.Exec(ctx,
			`INSERT INTO seeker_profiles (user_id, full_name, skills) VALUES ($1, $2, NULLIF($3, ''))
			 ON CONFLICT (user_id) DO NOTHING`,
			s.UserID, s.Name, s.Skills,
		); err != nil {
			return err
		}
	}

	// Dina has applied to devops: it drops out of her list and leads Bayu's popularity list.
	_, err := db.Exec(ctx,
		`INSERT INTO job_applications (job_id, applicant_id)
		 SELECT $1, s.id FROM seeker_profiles s WHERE s.user_id = $2
		 ON CONFLICT (job_id, applicant_id) DO NOTHING`,
		DemoID("posting:devops"), DemoSeekerUserID,
	)
	return err
}
