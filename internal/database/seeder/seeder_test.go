package seeder

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/matching"
)

type fakeRows struct {
	cols []string
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.cols)
}

func (r *fakeRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.cols[r.i-1]
	return nil
}

type fakeDB struct {
	columns map[string][]string
	execs   []string
	execErr error
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	f.execs = append(f.execs, query)
	return 1, f.execErr
}

func (f *fakeDB) Query(_ context.Context, _ string, args ...any) (database.Rows, error) {
	return &fakeRows{cols: f.columns[args[0].(string)]}, nil
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }

func fullSchema() map[string][]string {
	return map[string][]string{
		"employer_profiles": {"id", "user_id", "company_name", "created_at"},
		"seeker_profiles":   {"id", "user_id", "full_name", "skills", "created_at"},
		"job_postings": {"id", "employer_id", "title", "location", "job_type", "job_status",
			"qualifications", "skills_required", "salary", "deadline", "posted_date"},
	}
}

type namedSeeder struct {
	name string
	err  error
	ran  *[]string
}

func (s namedSeeder) Name() string { return s.name }

func (s namedSeeder) Run(context.Context, database.DB) error {
	*s.ran = append(*s.ran, s.name)
	return s.err
}

func TestRunner_RunsInOrderAndStopsOnError(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	r := Runner{Seeders: []Seeder{
		namedSeeder{name: "a", ran: &ran},
		nil,
		namedSeeder{name: "b", err: boom, ran: &ran},
		namedSeeder{name: "c", ran: &ran},
	}}

	err := r.Run(context.Background(), &fakeDB{})
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "seed b") {
		t.Fatalf("unexpected err: %v", err)
	}
	if strings.Join(ran, ",") != "a,b" {
		t.Fatalf("unexpected order: %v", ran)
	}
}

func TestRunner_NilDB(t *testing.T) {
	if err := (Runner{}).Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}

func TestDefaults_SeedAgainstMigratedSchema(t *testing.T) {
	db := &fakeDB{columns: fullSchema()}

	if err := (Runner{Seeders: Defaults()}).Run(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := len(demoEmployers) + len(demoPostings) + 2 + 1
	if len(db.execs) != want {
		t.Fatalf("expected %d statements, got %d", want, len(db.execs))
	}
}

func TestEnsureTableColumns_MissingColumn(t *testing.T) {
	db := &fakeDB{columns: map[string][]string{"job_postings": {"id"}}}

	err := PostingsSeeder{}.Run(context.Background(), db)
	if err == nil || !strings.Contains(err.Error(), "job_postings.employer_id") {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(db.execs) != 0 {
		t.Fatalf("no inserts expected before schema check passes")
	}
}

func TestDemoData(t *testing.T) {
	if DemoID("x") != DemoID("x") || DemoID("x") == DemoID("y") {
		t.Fatalf("demo ids must be stable and distinct")
	}

	employers := map[string]bool{}
	for _, e := range demoEmployers {
		employers[e.Key] = true
	}
	seen := map[string]bool{}
	for _, p := range demoPostings {
		if seen[p.Key] {
			t.Fatalf("duplicate posting key %q", p.Key)
		}
		seen[p.Key] = true
		if !employers[p.EmployerKey] {
			t.Fatalf("posting %q references unknown employer %q", p.Key, p.EmployerKey)
		}
		if !job.IsValidType(p.JobType) {
			t.Fatalf("posting %q has invalid job type %q", p.Key, p.JobType)
		}
		if p.DeadlineDays < 0 {
			t.Fatalf("posting %q is already expired", p.Key)
		}
	}

	// the demo seeker must get a skill ranked list
	seekerSkills := matching.Tokenize(demoSeekerSkills)
	best := 0
	for _, p := range demoPostings {
		if pct := matching.Score(seekerSkills, matching.Tokenize(p.Skills)).PercentMatch; pct > best {
			best = pct
		}
	}
	if best == 0 {
		t.Fatalf("demo seeker matches no posting")
	}
}
