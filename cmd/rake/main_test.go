package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cognicore/rake/pkg/rake/config"
)

const sampleText = "Feature extraction is not that complex. There are many algorithms available that can help you with feature extraction. Rapid Automatic Keyword Extraction is one of those."

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunExtractText(t *testing.T) {
	doc := writeTemp(t, "doc.txt", sampleText)

	var out bytes.Buffer
	if err := runExtract([]string{"-top", "2", doc}, &out); err != nil {
		t.Fatalf("runExtract: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out.String())
	}
	if !strings.HasSuffix(lines[0], "rapid automatic keyword extraction") {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestRunExtractJSONAscending(t *testing.T) {
	doc := writeTemp(t, "doc.txt", "Feature extraction is not that complex.")
	stops := writeTemp(t, "stop.txt", "is\nnot\nthat\n")

	var out bytes.Buffer
	if err := runExtract([]string{"-format", "json", "-order", "asc", "-stopwords", stops, doc}, &out); err != nil {
		t.Fatalf("runExtract: %v", err)
	}

	var resp struct {
		ID         string `json:"id"`
		Keyphrases []struct {
			Phrase string  `json:"phrase"`
			Score  float64 `json:"score"`
		} `json:"keyphrases"`
	}
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v (%s)", err, out.String())
	}
	if len(resp.Keyphrases) != 2 || resp.Keyphrases[0].Phrase != "complex" || resp.Keyphrases[1].Score != 4 {
		t.Errorf("unexpected keyphrases: %+v", resp.Keyphrases)
	}
}

func TestRunExtractPositionalLanguage(t *testing.T) {
	doc := writeTemp(t, "doc.txt", "RAKE adalah algoritma untuk mengekstraksi kata kunci dari teks")

	var out bytes.Buffer
	if err := runExtract([]string{doc, "id"}, &out); err != nil {
		t.Fatalf("runExtract: %v", err)
	}
	if !strings.Contains(out.String(), "mengekstraksi kata kunci") {
		t.Errorf("expected Indonesian phrase in output, got %q", out.String())
	}
	if strings.Contains(out.String(), "adalah") {
		t.Errorf("Indonesian stopword leaked: %q", out.String())
	}
}

func TestRunExtractMissingDocument(t *testing.T) {
	if err := runExtract(nil, &bytes.Buffer{}); !errors.Is(err, errUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestRunExtractRejectsFlagsAfterDocument(t *testing.T) {
	doc := writeTemp(t, "doc.txt", sampleText)

	tests := [][]string{
		{doc, "-top", "5"},
		{doc, "-top"},
		{doc, "id", "extra"},
	}
	for _, args := range tests {
		var out bytes.Buffer
		if err := runExtract(args, &out); !errors.Is(err, errUsage) {
			t.Errorf("runExtract(%q): expected errUsage, got %v", args, err)
		}
		if out.Len() != 0 {
			t.Errorf("runExtract(%q): nothing should be extracted, got %q", args, out.String())
		}
	}
}

func TestRunExtractUnreadableDocument(t *testing.T) {
	var out bytes.Buffer
	err := runExtract([]string{filepath.Join(t.TempDir(), "missing.txt")}, &out)
	if err == nil || errors.Is(err, errUsage) {
		t.Errorf("expected read error, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("no output expected on failure, got %q", out.String())
	}
}

func TestRunExtractInvalidOrder(t *testing.T) {
	doc := writeTemp(t, "doc.txt", sampleText)
	if err := runExtract([]string{"-order", "up", doc}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid order")
	}
}

func TestRunExtractHTML(t *testing.T) {
	doc := writeTemp(t, "doc.html", "<html><body><p>Keyword <i>extraction</i></p><script>var hidden;</script></body></html>")

	var out bytes.Buffer
	if err := runExtract([]string{"-html", doc}, &out); err != nil {
		t.Fatalf("runExtract: %v", err)
	}
	if !strings.Contains(out.String(), "keyword extraction") || strings.Contains(out.String(), "hidden") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestImportAndExtractFromStore(t *testing.T) {
	db := filepath.Join(t.TempDir(), "stop.db")
	list := writeTemp(t, "fr.txt", "le\nest\n")

	var out bytes.Buffer
	if err := runImport([]string{"-db", db, "-lang", "FR", list}, &out); err != nil {
		t.Fatalf("runImport: %v", err)
	}
	if !strings.Contains(out.String(), `stored 2 stopwords for "fr"`) {
		t.Errorf("unexpected import output %q", out.String())
	}

	out.Reset()
	if err := runLanguages([]string{"-db", db}, &out); err != nil {
		t.Fatalf("runLanguages: %v", err)
	}
	if !strings.Contains(out.String(), "fr\tstored\t2") || !strings.Contains(out.String(), "en\tbuiltin") {
		t.Errorf("unexpected languages output %q", out.String())
	}

	doc := writeTemp(t, "doc.txt", "le chat est noir")
	out.Reset()
	if err := runExtract([]string{"-db", db, "-lang", "fr", doc}, &out); err != nil {
		t.Fatalf("runExtract: %v", err)
	}
	if strings.Contains(out.String(), "le ") || !strings.Contains(out.String(), "chat") {
		t.Errorf("stored list not applied: %q", out.String())
	}
}

func TestRunImportMissingArgs(t *testing.T) {
	if err := runImport([]string{"-lang", "fr"}, &bytes.Buffer{}); !errors.Is(err, errUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestBuildRakeNonExistentStoplist(t *testing.T) {
	cfg := config.Default()
	cfg.StopwordsFile = filepath.Join(t.TempDir(), "nonexistent.txt")

	if _, _, err := buildRake(context.Background(), cfg, nil, nil); err == nil {
		t.Error("buildRake should fail with non-existent stoplist")
	}
}

func TestOpenStoreInvalidPath(t *testing.T) {
	if _, err := openStore(context.Background(), "/nonexistent/directory/test.db"); err == nil {
		t.Error("openStore should fail with invalid DB path")
	}
}

func TestResolvePrecedence(t *testing.T) {
	cfgPath := writeTemp(t, "rake.yaml", "language: id\ntop: 7\norder: asc\n")
	t.Setenv("RAKE_TOP", "3")

	flags := newCommonFlags("test")
	if err := flags.fs.Parse([]string{"-config", cfgPath, "-order", "desc"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := flags.resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if cfg.Language != "id" {
		t.Errorf("Language = %q, want id from file", cfg.Language)
	}
	if cfg.Top != 3 {
		t.Errorf("Top = %d, want 3 from env", cfg.Top)
	}
	if cfg.Order != config.OrderDesc {
		t.Errorf("Order = %q, want desc from flag", cfg.Order)
	}
}

func TestRunBatch(t *testing.T) {
	input := writeTemp(t, "docs.jsonl",
		`{"id":"one","text":"Feature extraction is not that complex."}`+"\n"+
			`{"id":"two","text":"is not that"}`+"\n")
	stops := writeTemp(t, "stop.txt", "is\nnot\nthat\n")

	var out bytes.Buffer
	if err := runBatch([]string{"-stopwords", stops, input}, &out); err != nil {
		t.Fatalf("runBatch: %v", err)
	}

	dec := json.NewDecoder(&out)
	var got []struct {
		ID         string `json:"id"`
		Keyphrases []struct {
			Phrase string `json:"phrase"`
		} `json:"keyphrases"`
	}
	for dec.More() {
		var line struct {
			ID         string `json:"id"`
			Keyphrases []struct {
				Phrase string `json:"phrase"`
			} `json:"keyphrases"`
		}
		if err := dec.Decode(&line); err != nil {
			t.Fatalf("decode: %v", err)
		}
		got = append(got, line)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 result lines, got %d", len(got))
	}
	if got[0].ID != "one" || len(got[0].Keyphrases) != 2 || got[0].Keyphrases[0].Phrase != "feature extraction" {
		t.Errorf("unexpected first result: %+v", got[0])
	}
	if got[1].Keyphrases == nil || len(got[1].Keyphrases) != 0 {
		t.Errorf("expected empty keyphrase list, got %+v", got[1].Keyphrases)
	}
}

func TestRunBatchMissingInput(t *testing.T) {
	if err := runBatch(nil, &bytes.Buffer{}); !errors.Is(err, errUsage) {
		t.Errorf("expected errUsage, got %v", err)
	}
}

func TestRunExtractEmptyStopwordFile(t *testing.T) {
	doc := writeTemp(t, "doc.txt", "Feature extraction is not that complex.")
	stops := writeTemp(t, "stop.txt", "\n")

	var out bytes.Buffer
	if err := runExtract([]string{"-stopwords", stops, doc}, &out); err != nil {
		t.Fatalf("runExtract: %v", err)
	}
	if got := strings.TrimSpace(out.String()); !strings.HasSuffix(got, "feature extraction is not that complex") || strings.Contains(got, "\n") {
		t.Errorf("an empty stopword file should leave one whole-sentence phrase, got %q", got)
	}
}
