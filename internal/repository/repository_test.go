package repository

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"jobboard/internal/database"

	"github.com/google/uuid"
)

type emptyRows struct{}

func (emptyRows) Close()            {}
func (emptyRows) Next() bool        { return false }
func (emptyRows) Scan(...any) error { return nil }
func (emptyRows) Err() error        { return nil }

type countRow struct{ n int }

func (r countRow) Scan(dest ...any) error {
	*(dest[0].(*int)) = r.n
	return nil
}

type recordingDB struct {
	queries []string
	args    [][]any
	count   int
}

func (d *recordingDB) Ping(context.Context) error { return nil }
func (d *recordingDB) Close() error               { return nil }
func (d *recordingDB) SQLDB() *sql.DB             { return nil }

func (d *recordingDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }

func (d *recordingDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	d.queries = append(d.queries, query)
	d.args = append(d.args, args)
	return emptyRows{}, nil
}

func (d *recordingDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	d.queries = append(d.queries, query)
	d.args = append(d.args, args)
	return countRow{n: d.count}
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "go", want: "go"},
		{in: "  100%  ", want: `100\%`},
		{in: "c_sharp", want: `c\_sharp`},
		{in: `a\b`, want: `a\\b`},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := escapeLike(tt.in); got != tt.want {
			t.Fatalf("escapeLike(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestListOpenForSeeker_FilterArgs(t *testing.T) {
	db := &recordingDB{}
	repo := NewPostgresPostingRepository(db)
	minSalary, maxSalary := 5000000, 9000000

	out, err := repo.ListOpenForSeeker(context.Background(), uuid.New(), PostingFilter{
		Query:     " 100%_go ",
		JobType:   " full_time ",
		Location:  "jak_",
		SalaryMin: &minSalary,
		SalaryMax: &maxSalary,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no rows, got %d", len(out))
	}

	args := db.args[0]
	if args[1] != `100\%\_go` || args[2] != "full_time" || args[3] != `jak\_` {
		t.Fatalf("unexpected text args: %v", args[1:4])
	}
	if args[4] != &minSalary || args[5] != &maxSalary {
		t.Fatalf("expected salary bounds passed through, got %v %v", args[4], args[5])
	}
	if !strings.Contains(db.queries[0], `ESCAPE '\'`) || !strings.Contains(db.queries[0], "p.salary >= $5") {
		t.Fatalf("unexpected query: %s", db.queries[0])
	}
}

func TestListOpenForSeeker_NoSalaryBounds(t *testing.T) {
	db := &recordingDB{}
	repo := NewPostgresPostingRepository(db)

	if _, err := repo.ListOpenForSeeker(context.Background(), uuid.New(), PostingFilter{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if bound, ok := db.args[0][4].(*int); !ok || bound != nil {
		t.Fatalf("expected nil *int for missing salary_min, got %#v", db.args[0][4])
	}
}

func TestSavedJobs_CountAndListShareFilter(t *testing.T) {
	db := &recordingDB{count: 12}
	repo := NewPostgresSavedJobRepository(db)
	f := SavedJobFilter{Search: "50%", Status: "open", Limit: 10, Offset: 10}

	total, err := repo.CountByUserID(context.Background(), uuid.New(), f)
	if err != nil || total != 12 {
		t.Fatalf("expected total 12, got %d err=%v", total, err)
	}
	if _, err := repo.ListByUserID(context.Background(), uuid.New(), f); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(db.args[0]) != 5 || len(db.args[1]) != 7 {
		t.Fatalf("unexpected arg counts: count=%d list=%d", len(db.args[0]), len(db.args[1]))
	}
	if db.args[0][1] != `50\%` || db.args[1][1] != `50\%` {
		t.Fatalf("expected escaped search in both queries, got %v %v", db.args[0][1], db.args[1][1])
	}
	if db.args[1][5] != 10 || db.args[1][6] != 10 {
		t.Fatalf("unexpected window: limit=%v offset=%v", db.args[1][5], db.args[1][6])
	}
	if !strings.HasPrefix(db.queries[0], "SELECT COUNT(*)") {
		t.Fatalf("expected a separate count query, got %s", db.queries[0])
	}
}
