package scoring

import (
	"context"
	"log/slog"
	"math"

	"github.com/jonathan/ats-engine/internal/tokenize"
	"github.com/jonathan/ats-engine/internal/types"
)

// Coverage weights for the job-fit score. Skills dominate; title and
// qualifications are secondary signals; experience text is the least
// comparable field and carries the smallest weight.
const (
	skillsWeight         = 0.60
	titleWeight          = 0.15
	qualificationsWeight = 0.15
	experienceWeight     = 0.10
)

// maxRankKeywords caps the matched and missing keyword lists of a RankResult.
const maxRankKeywords = 10

// Rank scores how well one applicant's resume and cover letter match a job's
// stated requirements. It never fails: unreadable resumes and empty job
// fields resolve to well-formed results, and any internal fault converts to
// the neutral zero result so one bad resume cannot abort scoring an entire
// applicant list. Results are never cached — job and resume content can
// change between calls and staleness would silently misrank candidates.
func (s *Scorer) Rank(ctx context.Context, applicant types.Applicant, job types.Job, coverLetter string) (result types.RankResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("rank computation failed",
				slog.String("resume", applicant.ResumePath), slog.Any("panic", r))
			result = neutralRankResult()
		}
	}()

	resume := tokenize.Tokenize(s.cache.Text(ctx, applicant.ResumePath))
	combined := resume.Union(tokenize.Tokenize(coverLetter))

	jobSkills := tokenize.Tokenize(job.Skills)
	jobTitle := tokenize.Tokenize(job.Title)
	jobQuals := tokenize.Tokenize(job.Qualifications)
	jobExp := tokenize.Tokenize(job.Experience)

	weighted := 100.0 * (skillsWeight*coverage(jobSkills, combined) +
		titleWeight*coverage(jobTitle, combined) +
		qualificationsWeight*coverage(jobQuals, combined) +
		experienceWeight*coverage(jobExp, combined))

	jobKeywords := jobSkills.Union(jobTitle).Union(jobQuals).Union(jobExp)
	matched := make([]string, 0, maxRankKeywords)
	missing := make([]string, 0, maxRankKeywords)
	for _, keyword := range jobKeywords.Sorted() {
		if combined.Contains(keyword) {
			if len(matched) < maxRankKeywords {
				matched = append(matched, keyword)
			}
		} else if len(missing) < maxRankKeywords {
			missing = append(missing, keyword)
		}
	}

	return types.RankResult{
		Score:           clampScore(int(math.Round(weighted))),
		MatchedKeywords: matched,
		MissingKeywords: missing,
	}
}

// coverage is the fraction of distinct desired tokens present in have. An
// empty desired set covers fully: a job field with no stated requirement
// cannot be unmet.
func coverage(desired, have tokenize.Set) float64 {
	if desired.Len() == 0 {
		return 1.0
	}
	hit := 0
	for tok := range desired {
		if have.Contains(tok) {
			hit++
		}
	}
	return float64(hit) / float64(desired.Len())
}

func neutralRankResult() types.RankResult {
	return types.RankResult{
		Score:           0,
		MatchedKeywords: []string{},
		MissingKeywords: []string{},
	}
}
