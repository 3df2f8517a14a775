package resume_test

import (
	"errors"
	"testing"

	"github.com/saulo-duarte/careercoach/internal/resume"
)

func TestParseAnalysis(t *testing.T) {
	t.Run("PlainJSON", func(t *testing.T) {
		a, err := resume.ParseAnalysis(`{"atsScore": 81, "suggestions": ["a"], "missingKeywords": ["go"], "strengths": ["b"]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ATSScore != 81 || a.Source != resume.SourceAI || a.MissingKeywords[0] != "go" {
			t.Errorf("unexpected analysis %+v", a)
		}
	})

	t.Run("FencedWithProse", func(t *testing.T) {
		raw := "Here you go:\n```json\n{\"atsScore\": 70.6, \"suggestions\": [], \"missingKeywords\": [], \"strengths\": [\"uses {braces} well\"]}\n```"
		a, err := resume.ParseAnalysis(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ATSScore != 71 {
			t.Errorf("expected rounded 71, got %d", a.ATSScore)
		}
	})

	t.Run("MissingField", func(t *testing.T) {
		_, err := resume.ParseAnalysis(`{"atsScore": 81, "suggestions": ["a"], "strengths": ["b"]}`)
		if !errors.Is(err, resume.ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("WrongType", func(t *testing.T) {
		_, err := resume.ParseAnalysis(`{"atsScore": "high", "suggestions": [], "missingKeywords": [], "strengths": []}`)
		if !errors.Is(err, resume.ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("NoObject", func(t *testing.T) {
		if _, err := resume.ParseAnalysis("I cannot help with that."); !errors.Is(err, resume.ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})
}

func TestRecoverAnalysis(t *testing.T) {
	a, ok := resume.RecoverAnalysis(`{"atsScore": 88, "suggestions": ["unterminated`)
	if !ok {
		t.Fatal("expected the score to be recovered")
	}
	if a.ATSScore != 88 || a.Source != resume.SourceRecovered {
		t.Errorf("unexpected analysis %+v", a)
	}
	if len(a.Suggestions) == 0 || len(a.Strengths) == 0 || len(a.MissingKeywords) == 0 {
		t.Error("recovered analysis must carry generic lists")
	}

	if _, ok := resume.RecoverAnalysis("score: 88"); ok {
		t.Error("text without an atsScore field must not be recovered")
	}
}

func TestFallback(t *testing.T) {
	t.Run("KeywordsFromJobDescription", func(t *testing.T) {
		allowed := map[string]bool{"react": true, "aws": true, "docker": true}
		for i := 0; i < 50; i++ {
			a := resume.Fallback("React AWS Docker", func(n int) int { return (i * 7) % n })
			if a.ATSScore < 75 || a.ATSScore > 94 {
				t.Fatalf("score %d outside the job description bound", a.ATSScore)
			}
			for _, k := range a.MissingKeywords {
				if !allowed[k] {
					t.Fatalf("unexpected keyword %q", k)
				}
			}
		}
	})

	t.Run("WholeWordsOnly", func(t *testing.T) {
		got := resume.MatchKeywords("JavaScript, Java, java, Reactive systems, Node.js, SQL, Git, AWS")
		want := []string{"javascript", "java", "node", "sql"}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
			}
		}
	})

	t.Run("NoJobDescription", func(t *testing.T) {
		low := resume.Fallback("", func(n int) int { return 0 })
		high := resume.Fallback("", func(n int) int { return n - 1 })
		if low.ATSScore != 70 || high.ATSScore != 94 {
			t.Errorf("expected bounds 70..94, got %d..%d", low.ATSScore, high.ATSScore)
		}
		if len(low.MissingKeywords) != 5 || len(low.Suggestions) != 5 {
			t.Errorf("unexpected default lists %+v", low)
		}
	})
}
