// Package scoring computes resume quality scores and job-fit rank scores
// from extracted document text. Both scorers are pure functions of their
// inputs once text is in hand; the extraction cache is the only shared state.
package scoring

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/jonathan/ats-engine/internal/extraction"
	"github.com/jonathan/ats-engine/internal/sections"
	"github.com/jonathan/ats-engine/internal/tokenize"
	"github.com/jonathan/ats-engine/internal/types"
)

// Sub-score weights for the resume quality score. They sum to 100 when every
// component is at its maximum.
const (
	structureWeight   = 40
	volumeWeight      = 20
	vocabularyWeight  = 30
	actionWeight      = 10
	actionConsolation = 3 // never zero, to avoid a cliff-edge penalty
)

// Quality score thresholds.
const (
	sectionTarget     = 3
	shortResumeWords  = 250
	longResumeWords   = 1200
	shortVolumeFactor = 0.4
	longVolumeFactor  = 0.6
	vocabularyTarget  = 120
	sparseVocabulary  = 80
	scannedTextChars  = 80
)

// actionVerbs indicate achievement-oriented language. The list is stable
// under the stemmer, so membership checks hit the token set directly.
var actionVerbs = []string{
	"built", "designed", "implemented", "led", "optimized", "improved",
	"launched", "delivered", "migrated", "reduced", "increased",
}

// Options configures a Scorer.
type Options struct {
	Logger *slog.Logger
	// RankConcurrency bounds concurrent rank calls in RankAll. Zero means
	// the default.
	RankConcurrency int
}

// defaultRankConcurrency bounds RankAll when no limit is configured.
const defaultRankConcurrency = 8

// Scorer computes resume quality and job-fit scores. Safe for concurrent use.
type Scorer struct {
	cache       *extraction.Cache
	log         *slog.Logger
	concurrency int
}

// New creates a Scorer reading resume text through the given extraction cache.
func New(cache *extraction.Cache, opts *Options) *Scorer {
	s := &Scorer{cache: cache, log: slog.Default(), concurrency: defaultRankConcurrency}
	if opts != nil {
		if opts.Logger != nil {
			s.log = opts.Logger
		}
		if opts.RankConcurrency > 0 {
			s.concurrency = opts.RankConcurrency
		}
	}
	return s
}

// ScoreResume rates the structural quality of an applicant's resume on a
// 0-100 scale with improvement suggestions. Matched and missing keywords are
// the section labels found and absent: the score communicates structural
// completeness, not job relevance.
func (s *Scorer) ScoreResume(ctx context.Context, applicant types.Applicant) types.ScoreResult {
	text := s.cache.Text(ctx, applicant.ResumePath)
	if strings.TrimSpace(text) == "" {
		return types.ScoreResult{
			Score:           0,
			MatchedKeywords: []string{},
			MissingKeywords: []string{"Resume file missing or unreadable"},
			Suggestions: []string{
				"Upload a resume (DOCX or text-based PDF).",
				"Ensure the file opens and contains selectable text (not just images).",
			},
		}
	}

	var suggestions []string
	if len(text) < scannedTextChars {
		suggestions = append(suggestions, "Your resume text seems very short. If it's a scanned PDF, export as text-based PDF or upload DOCX.")
	}

	tokens := tokenize.Tokenize(text)
	found := sections.Detect(text)
	s.log.Debug("scoring resume",
		slog.String("path", applicant.ResumePath),
		slog.Int("chars", len(text)),
		slog.Int("sections", len(found)),
		slog.Int("unique_tokens", tokens.Len()))

	score := 0

	structurePct := math.Min(1.0, float64(len(found))/float64(sectionTarget))
	if len(found) < sectionTarget {
		suggestions = append(suggestions, "Add clear sections: Experience, Education, and Skills.")
	}
	if !found[sections.Summary] && !found[sections.Profile] {
		suggestions = append(suggestions, "Add a brief Summary/Profile at the top to frame your experience.")
	}
	score += int(math.Round(structurePct * structureWeight))

	words := tokenize.WordCount(text)
	volumePct := 1.0
	switch {
	case words < shortResumeWords:
		volumePct = shortVolumeFactor
		suggestions = append(suggestions, "Increase content (aim for 1-2 pages with concrete details).")
	case words > longResumeWords:
		volumePct = longVolumeFactor
		suggestions = append(suggestions, "Trim content (keep it concise and focused).")
	}
	score += int(math.Round(volumePct * volumeWeight))

	vocabularyPct := math.Min(1.0, float64(tokens.Len())/vocabularyTarget)
	if tokens.Len() < sparseVocabulary {
		suggestions = append(suggestions, "Enrich your Skills and Experience sections with relevant keywords and tools.")
	}
	score += int(math.Round(vocabularyPct * vocabularyWeight))

	if hasActionLanguage(tokens) {
		score += actionWeight
	} else {
		score += actionConsolation
		suggestions = append(suggestions, `Use action verbs and measurable results (e.g., "Improved X by Y%").`)
	}

	matched := make([]string, 0, len(found))
	missing := make([]string, 0)
	for _, label := range sections.AllLabels() {
		if found[label] {
			matched = append(matched, string(label))
		} else {
			missing = append(missing, string(label))
		}
	}

	return types.ScoreResult{
		Score:           clampScore(score),
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Suggestions:     dedupe(suggestions),
	}
}

func hasActionLanguage(tokens tokenize.Set) bool {
	for _, verb := range actionVerbs {
		if tokens.Contains(verb) {
			return true
		}
	}
	return false
}

// clampScore bounds a score to [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// dedupe removes duplicate suggestions while preserving first-seen order.
func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
