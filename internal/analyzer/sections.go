package analyzer

import (
	"regexp"
	"strings"
)

// sectionPattern pairs a section key with the compiled alias pattern that
// classifies a header line. Matching walks the slice in order and the first
// match wins, so classification stays deterministic.
type sectionPattern struct {
	key     string
	pattern *regexp.Regexp
}

var sectionPatterns = []sectionPattern{
	{"summary", regexp.MustCompile(`(?i)\bsummary\b|\bprofile\b|\bobjective\b`)},
	{"experience", regexp.MustCompile(`(?i)\bexperience\b|\bwork experience\b|\bprofessional experience\b|\bemployment\b|\bexperiences\b`)},
	{"education", regexp.MustCompile(`(?i)\beducation\b|\bacademic\b|\bqualification\b`)},
	{"skills", regexp.MustCompile(`(?i)\bskills\b|\btechnical skills\b|\bcompetencies\b`)},
	{"projects", regexp.MustCompile(`(?i)\bprojects\b|\bportfolio\b`)},
	{"certifications", regexp.MustCompile(`(?i)\bcertifications\b|\blicenses\b|\bcertificates\b`)},
	{"awards", regexp.MustCompile(`(?i)\bawards\b|\bachievements\b|\bhonors\b`)},
	{"contact", regexp.MustCompile(`(?i)\bcontact\b|\bcontact information\b|\bcontacts\b`)},
	{"languages", regexp.MustCompile(`(?i)\blanguages\b|\blanguage\b`)},
	{"publications", regexp.MustCompile(`(?i)\bpublications\b`)},
	{"interests", regexp.MustCompile(`(?i)\binterests\b|\bhobbies\b`)},
}

// sectionOrder is the canonical output order for known section keys.
var sectionOrder = []string{
	"contact",
	"summary",
	"skills",
	"experience",
	"projects",
	"education",
	"certifications",
	"awards",
	"languages",
	"publications",
	"interests",
}

var horizontalSpace = regexp.MustCompile(`[ \t]+`)

// Section is one named, contiguous region of CV text.
type Section struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// Segmentation is the ordered result of splitting CV text into sections.
type Segmentation struct {
	Sections       []Section `json:"sections"`
	Present        []string  `json:"present_sections"`
	Missing        []string  `json:"missing_sections"`
	TokensEstimate int       `json:"tokens_estimate"`
}

// Body returns the body of the named section, if present.
func (s *Segmentation) Body(name string) (string, bool) {
	for _, sec := range s.Sections {
		if sec.Name == name {
			return sec.Body, true
		}
	}
	return "", false
}

// Bodies returns every section body in output order.
func (s *Segmentation) Bodies() []string {
	out := make([]string, len(s.Sections))
	for i, sec := range s.Sections {
		out[i] = sec.Body
	}
	return out
}

type headerMark struct {
	line int
	key  string
}

// Segment partitions raw CV text into named sections by detecting header
// lines. When no header is detected anywhere the whole trimmed input becomes
// the summary section, so non-empty input never yields zero sections.
func Segment(text string) *Segmentation {
	norm := horizontalSpace.ReplaceAllString(text, " ")
	rawLines := strings.Split(norm, "\n")
	lines := make([]string, len(rawLines))
	for i, ln := range rawLines {
		lines[i] = strings.TrimSpace(ln)
	}

	var headers []headerMark
	for idx, ln := range lines {
		// heuristik header: baris pendek yang cocok dengan salah satu alias
		if len(ln) < 1 || len(ln) > 80 {
			continue
		}
		for _, sp := range sectionPatterns {
			if sp.pattern.MatchString(ln) {
				headers = append(headers, headerMark{line: idx, key: sp.key})
				break
			}
		}
	}

	bodies := map[string]string{}
	var discovered []string
	if len(headers) == 0 {
		bodies["summary"] = strings.TrimSpace(text)
		discovered = []string{"summary"}
	} else {
		for i, h := range headers {
			start := h.line + 1
			end := len(lines)
			if i+1 < len(headers) {
				end = headers[i+1].line
			}
			chunk := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
			if chunk == "" {
				continue
			}
			if existing, ok := bodies[h.key]; ok {
				bodies[h.key] = existing + "\n\n" + chunk
			} else {
				bodies[h.key] = chunk
				discovered = append(discovered, h.key)
			}
		}
	}

	seg := &Segmentation{}
	seen := map[string]bool{}
	for _, key := range sectionOrder {
		if body, ok := bodies[key]; ok {
			seg.Sections = append(seg.Sections, Section{Name: key, Body: body})
			seen[key] = true
		}
	}
	for _, key := range discovered {
		if !seen[key] {
			seg.Sections = append(seg.Sections, Section{Name: key, Body: bodies[key]})
		}
	}

	for _, sec := range seg.Sections {
		seg.Present = append(seg.Present, sec.Name)
	}
	for _, key := range sectionOrder {
		if _, ok := bodies[key]; !ok {
			seg.Missing = append(seg.Missing, key)
		}
	}

	seg.TokensEstimate = len(strings.Fields(text))
	if seg.TokensEstimate < 1 {
		seg.TokensEstimate = 1
	}
	return seg
}
