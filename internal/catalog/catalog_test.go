package catalog_test

import (
	"testing"

	"github.com/saulo-duarte/careercoach/internal/catalog"
)

func TestIcon(t *testing.T) {
	if got := catalog.Icon("Python"); got != "🐍" {
		t.Errorf("expected python icon, got %q", got)
	}
	if got := catalog.Icon("Cobol"); got != "📚" {
		t.Errorf("expected default icon for unknown category, got %q", got)
	}
}

func TestFallbackCategories(t *testing.T) {
	cats := catalog.FallbackCategories()
	if len(cats) != 7 {
		t.Fatalf("expected 7 fallback categories, got %d", len(cats))
	}
	for _, c := range cats {
		if c.Icon == "" || c.QuestionCount <= 0 || len(c.Difficulties) == 0 {
			t.Errorf("incomplete fallback entry: %+v", c)
		}
	}

	cats[0].Difficulties[0] = "Impossible"
	if catalog.FallbackCategories()[0].Difficulties[0] != catalog.Easy {
		t.Error("fallback profile must not share slices between calls")
	}
}

func TestSeedQuestionsAreValid(t *testing.T) {
	for _, q := range catalog.SeedQuestions() {
		if !q.Category.IsValid() {
			t.Errorf("invalid category %q", q.Category)
		}
		if !q.Difficulty.IsValid() {
			t.Errorf("invalid difficulty %q", q.Difficulty)
		}
		if len(q.Options) < 2 {
			t.Errorf("question %q has fewer than two options", q.Prompt)
		}
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			t.Errorf("question %q has out-of-range answer %d", q.Prompt, q.CorrectOption)
		}
	}
}

func TestParseCategory(t *testing.T) {
	cases := map[string]catalog.Category{
		"DSA":           catalog.DSA,
		" node.js ":     catalog.NodeJS,
		"system design": catalog.SystemDesign,
		"CLOUD":         catalog.Cloud,
	}
	for in, want := range cases {
		got, ok := catalog.ParseCategory(in)
		if !ok || got != want {
			t.Errorf("ParseCategory(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := catalog.ParseCategory("Cooking"); ok {
		t.Error("unknown categories must not parse")
	}
}
