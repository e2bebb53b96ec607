package runstore

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/serieslab/internal/domain"
)

func sampleReport(started time.Time) domain.ReportArtifact {
	return domain.ReportArtifact{
		Label:     "exp-maclaurin",
		Base:      1.2,
		Reference: 3.320117,
		StartedAt: started,
		Records: []domain.IterationRecord{
			{Index: 1, Approximation: 1, TermsUsed: 1},
			{Index: 2, Approximation: 2.2, TermsUsed: 2, ApproxError: 1.2, TrueError: 1.120117, Digits: 1, HasEstimate: true},
		},
	}
}

func TestSaveReport_WritesTimestampedFile(t *testing.T) {
	tmp := t.TempDir()
	started := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	store := NewJSONStore(tmp, domain.DefaultConfig())
	id, err := store.SaveReport(sampleReport(started))
	if err != nil {
		t.Fatal(err)
	}

	want := "20260314T092653Z_exp-maclaurin"
	if id != want {
		t.Errorf("id = %q, want %q", id, want)
	}

	path := filepath.Join(tmp, "runs", id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected artifact at %s: %v", path, err)
	}

	var got domain.ReportArtifact
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if got.Label != "exp-maclaurin" || len(got.Records) != 2 {
		t.Errorf("round-tripped artifact mismatch: %+v", got)
	}
	if got.Records[1].Digits != 1 || !got.Records[1].HasEstimate {
		t.Errorf("second record lost fields: %+v", got.Records[1])
	}
}

func TestSaveReport_ZeroStartUsesClock(t *testing.T) {
	tmp := t.TempDir()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(func() time.Time { return fixed }))
	id, err := store.SaveReport(sampleReport(time.Time{}))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(id, "20260102T030405Z_") {
		t.Errorf("id %q not derived from injected clock", id)
	}
}

func TestSaveReport_CustomRunsDir(t *testing.T) {
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.RunsDir = "artifacts"

	store := NewJSONStore(tmp, cfg)
	id, err := store.SaveReport(sampleReport(time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "artifacts", id+".json")); err != nil {
		t.Errorf("expected artifact under artifacts/: %v", err)
	}
}

func TestSaveReport_IndexLine(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIndex(true))

	id, err := store.SaveReport(sampleReport(time.Now()))
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(tmp, "runs", "index.jsonl"))
	if err != nil {
		t.Fatalf("expected index.jsonl: %v", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		t.Fatalf("index is empty")
	}
	var entry struct {
		ID   string `json:"id"`
		Rows int    `json:"rows"`
	}
	if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
		t.Fatalf("index line not valid JSON: %v", err)
	}
	if entry.ID != id || entry.Rows != 2 {
		t.Errorf("index entry mismatch: %+v", entry)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"exp-maclaurin", "exp-maclaurin"},
		{"Exp Maclaurin", "exp-maclaurin"},
		{"  weird__name.json  ", "weird-name-json"},
		{"", ""},
		{"___", ""},
	}
	for _, c := range cases {
		if got := slugify(c.input); got != c.want {
			t.Errorf("slugify(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
