package migration

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoad_OrdersAndIgnoresUnrelated(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__saved_jobs.sql": {Data: []byte("CREATE TABLE b();")},
		"V1__init.sql":       {Data: []byte("  CREATE TABLE a();\n")},
		"README.md":          {Data: []byte("docs")},
	}

	migs, err := Load(fsys)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[0].Name != "init" || migs[1].Version != 2 {
		t.Fatalf("unexpected order: %+v", migs)
	}
	if migs[0].SQL != "CREATE TABLE a();" {
		t.Fatalf("expected trimmed sql, got %q", migs[0].SQL)
	}
	if len(migs[0].Checksum) != 64 {
		t.Fatalf("expected sha256 hex checksum, got %q", migs[0].Checksum)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{
			name: "duplicate version",
			fsys: fstest.MapFS{
				"V1__a.sql":  {Data: []byte("SELECT 1;")},
				"V01__b.sql": {Data: []byte("SELECT 2;")},
			},
			want: "duplicate migration version",
		},
		{
			name: "empty file",
			fsys: fstest.MapFS{"V1__a.sql": {Data: []byte("   ")}},
			want: "empty migration file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.fsys)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q error, got %v", tt.want, err)
			}
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	r := NewRunner(nil)
	migs, err := Load(r.FS)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) == 0 {
		t.Fatalf("expected embedded migrations")
	}
	if migs[0].Version != 1 {
		t.Fatalf("expected first migration version 1, got %d", migs[0].Version)
	}
	last := migs[len(migs)-1]
	if last.Version != 3 || !strings.Contains(last.SQL, "salary") {
		t.Fatalf("expected V3 to add job_postings.salary, got V%d %q", last.Version, last.Name)
	}
}
