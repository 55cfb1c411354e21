package analyzer

import (
	"sort"
	"strings"
)

// jobDomain maps a job family to the keywords that signal it and the title
// recommended when it ranks. The slice order is the declared taxonomy order
// and doubles as the tie-breaker when domains have equal hit counts.
type jobDomain struct {
	name     string
	title    string
	keywords []string
}

var jobDomains = []jobDomain{
	{"data", "Data Analyst / Data Scientist (Junior)", []string{"python", "pandas", "numpy", "sql", "power bi", "tableau", "machine learning"}},
	{"backend", "Backend Engineer (Python)", []string{"python", "django", "flask", "fastapi", "rest", "postgres", "mysql"}},
	{"frontend", "Frontend Engineer", []string{"html", "css", "javascript", "react", "vue", "typescript"}},
	{"mobile", "Mobile Developer", []string{"kotlin", "swift", "flutter", "react native"}},
	{"cloud_devops", "Cloud/DevOps Engineer (Junior)", []string{"docker", "kubernetes", "aws", "gcp", "azure", "ci/cd"}},
	{"ai", "Machine Learning Engineer / AI Engineer", []string{"pytorch", "tensorflow", "llm", "nlp", "computer vision"}},
}

// JobRecommendation is one suggested job family with the skills that matched.
type JobRecommendation struct {
	Title         string   `json:"title"`
	Reason        string   `json:"reason"`
	MatchedSkills []string `json:"matched_skills"`
}

// Recommend ranks job domains by how many of their keywords occur in the CV
// text and returns at most topK recommendations, never fewer than one. Hits
// are literal case-insensitive substring matches over the concatenated
// section bodies. When nothing matches a single generic recommendation is
// returned instead of an empty list.
func Recommend(seg *Segmentation, topK int) []JobRecommendation {
	text := strings.ToLower(strings.Join(seg.Bodies(), " "))

	type domainHits struct {
		domain jobDomain
		hits   []string
	}
	ranked := make([]domainHits, 0, len(jobDomains))
	for _, d := range jobDomains {
		var hits []string
		for _, kw := range d.keywords {
			if strings.Contains(text, kw) {
				hits = append(hits, kw)
			}
		}
		ranked = append(ranked, domainHits{domain: d, hits: hits})
	}

	// stable sort agar urutan taksonomi jadi pemecah seri
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].hits) > len(ranked[j].hits)
	})

	var recs []JobRecommendation
	for _, dh := range ranked {
		if len(dh.hits) == 0 {
			continue
		}
		sort.Strings(dh.hits)
		recs = append(recs, JobRecommendation{
			Title:         dh.domain.title,
			Reason:        "Matched skills found: " + strings.Join(dh.hits, ", "),
			MatchedSkills: dh.hits,
		})
	}

	if len(recs) == 0 {
		recs = append(recs, JobRecommendation{
			Title:         "Generalist Software/IT Role",
			Reason:        "No dominant skill keywords detected. Consider enriching the Skills and Projects sections.",
			MatchedSkills: []string{},
		})
	}

	if topK < 1 {
		topK = 1
	}
	if len(recs) > topK {
		recs = recs[:topK]
	}
	return recs
}
