package analyzer

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// requiredSections are the sections a complete CV is expected to carry.
var requiredSections = []string{"summary", "experience", "education", "skills"}

// idealTokens is the token count at which the length factor saturates at 100.
const idealTokens = 200

var (
	tokenPattern = regexp.MustCompile(`[a-z0-9+#.]{2,}`)
	yearPattern  = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
)

// ScoreBreakdown exposes the overall 0-100 score plus every sub-score and raw
// count behind it.
type ScoreBreakdown struct {
	OverallScore            int      `json:"overall_score"`
	RequiredSectionsPresent []string `json:"required_sections_present"`
	RequiredSectionsMissing []string `json:"required_sections_missing"`
	SectionCompletenessPct  int      `json:"section_completeness_pct"`
	LengthTokens            int      `json:"length_tokens"`
	LengthScorePct          int      `json:"length_score_pct"`
	JDKeywordsOverlap       []string `json:"jd_keywords_overlap,omitempty"`
	JDKeywordsCoveragePct   int      `json:"jd_keywords_coverage_pct"`
	StructureBulletsCount   int      `json:"structure_bullets_count"`
	StructureHasYears       bool     `json:"structure_has_years"`
	StructureScorePct       int      `json:"structure_score_pct"`
	TargetRole              *string  `json:"target_role,omitempty"`
}

func tokenize(s string) []string {
	return tokenPattern.FindAllString(strings.ToLower(s), -1)
}

// keywordSet keeps tokens of length >= 3 as the keyword vocabulary of a text.
func keywordSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, tok := range tokenize(s) {
		if len(tok) >= 3 {
			set[tok] = true
		}
	}
	return set
}

func roundPct(weight float64, pct int) int {
	return int(math.Round(weight * float64(pct)))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Score computes the weighted heuristic score of a segmented CV. The factors
// are section completeness (45%), length adequacy (20%), job-description
// keyword coverage (25%, zero when no job description is given) and a
// structural bullet/year check (10%). No factor failure is fatal.
func Score(seg *Segmentation, jobDescription, targetRole *string) *ScoreBreakdown {
	bd := &ScoreBreakdown{TargetRole: targetRole}
	score := 0

	// 1) kelengkapan section wajib
	var present, missing []string
	for _, key := range requiredSections {
		if body, ok := seg.Body(key); ok && strings.TrimSpace(body) != "" {
			present = append(present, key)
		} else {
			missing = append(missing, key)
		}
	}
	completeness := int(math.Round(100 * float64(len(present)) / float64(len(requiredSections))))
	score += roundPct(0.45, completeness)
	bd.RequiredSectionsPresent = present
	bd.RequiredSectionsMissing = missing
	bd.SectionCompletenessPct = completeness

	// 2) panjang konten
	totalTokens := 0
	for _, body := range seg.Bodies() {
		totalTokens += len(strings.Fields(body))
	}
	lengthScore := 100
	if totalTokens < idealTokens {
		lengthScore = totalTokens * 100 / idealTokens
	}
	lengthScore = clamp(lengthScore, 0, 100)
	score += roundPct(0.20, lengthScore)
	bd.LengthTokens = totalTokens
	bd.LengthScorePct = lengthScore

	// 3) cakupan kata kunci job description (recall, bukan precision)
	jdScore := 0
	if jobDescription != nil && *jobDescription != "" {
		jdKeywords := keywordSet(*jobDescription)
		cvKeywords := keywordSet(strings.Join(seg.Bodies(), " "))
		if len(jdKeywords) > 0 {
			var overlap []string
			for kw := range jdKeywords {
				if cvKeywords[kw] {
					overlap = append(overlap, kw)
				}
			}
			sort.Strings(overlap)
			jdScore = len(overlap) * 100 / len(jdKeywords)
			bd.JDKeywordsOverlap = overlap
		}
	}
	score += roundPct(0.25, jdScore)
	bd.JDKeywordsCoveragePct = jdScore

	// 4) struktur: bullet dan tahun
	bullets := 0
	for _, body := range seg.Bodies() {
		bullets += strings.Count(body, "\n-") + strings.Count(body, "•")
	}
	joined := strings.Join(seg.Bodies(), " ")
	hasYears := yearPattern.MatchString(joined)
	structureScore := 0
	if bullets >= 5 {
		structureScore += 50
	}
	if hasYears {
		structureScore += 50
	}
	score += roundPct(0.10, structureScore)
	bd.StructureBulletsCount = bullets
	bd.StructureHasYears = hasYears
	bd.StructureScorePct = structureScore

	bd.OverallScore = clamp(score, 0, 100)
	return bd
}
