// Package sections detects the structural sections of a resume by matching
// heading lines against a fixed synonym taxonomy.
package sections

import (
	"strings"
	"unicode"
)

// Label is one of the fixed resume structural categories.
type Label string

// The closed set of section labels.
const (
	Experience Label = "experience"
	Education  Label = "education"
	Skills     Label = "skills"
	Projects   Label = "projects"
	Summary    Label = "summary"
	Profile    Label = "profile"
)

// AllLabels returns every label in stable display order.
func AllLabels() []Label {
	return []Label{Experience, Education, Skills, Projects, Summary, Profile}
}

// headingSynonyms maps each label to the heading phrases that announce it.
var headingSynonyms = map[Label][]string{
	Experience: {"experience", "work experience", "professional experience", "work history", "employment history"},
	Education:  {"education", "academic", "academics", "education & certifications", "academic background"},
	Skills:     {"skills", "technical skills", "technologies", "tooling", "core skills", "key skills"},
	Projects:   {"projects", "project work", "personal projects", "academic projects", "selected projects"},
	Summary:    {"summary", "professional summary", "career summary", "objective", "about me"},
	Profile:    {"profile", "professional profile", "summary profile"},
}

// normalizedSynonyms holds the heading phrases pre-normalized. Built once at
// init and read-only afterwards, so concurrent detection needs no locking.
var normalizedSynonyms map[Label]map[string]struct{}

func init() {
	normalizedSynonyms = make(map[Label]map[string]struct{}, len(headingSynonyms))
	for label, phrases := range headingSynonyms {
		set := make(map[string]struct{}, len(phrases))
		for _, phrase := range phrases {
			set[NormalizeHeading(phrase)] = struct{}{}
		}
		normalizedSynonyms[label] = set
	}
}

// maxHeadingLen is the longest line still considered a heading candidate.
const maxHeadingLen = 120

// Detect scans text for section headings and returns the set of labels found.
// Lines are matched exactly against normalized synonym phrases; if no line
// matches anywhere, the whole normalized body is searched for each phrase as
// a substring so resumes without discrete heading lines still register.
func Detect(text string) map[Label]bool {
	found := make(map[Label]bool)
	if strings.TrimSpace(text) == "" {
		return found
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) > maxHeadingLen {
			continue
		}
		heading := NormalizeHeading(trimmed)
		if heading == "" {
			continue
		}
		for label, phrases := range normalizedSynonyms {
			if _, ok := phrases[heading]; ok {
				found[label] = true
			}
		}
	}

	if len(found) == 0 {
		body := NormalizeHeading(text)
		for label, phrases := range normalizedSynonyms {
			for phrase := range phrases {
				if strings.Contains(body, phrase) {
					found[label] = true
					break
				}
			}
		}
	}

	return found
}

// NormalizeHeading lowers letters and digits, folds whitespace and the
// separators '/', '&', '-' into single spaces, and drops everything else.
func NormalizeHeading(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || r == '/' || r == '&' || r == '-':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
