package skills

import (
	"regexp"
	"sort"
	"strings"
)

// Extractor finds explicit technology skills in plain CV text using a
// multilingual skill list with canonical normalization. Lexical only —
// document parsing and semantic inference live outside this service.
type Extractor struct {
	patterns map[string]*regexp.Regexp // skill -> compiled matcher
}

// commonSkills is the recognized tech vocabulary, including RU/UZ
// transliterations that normalize to canonical English names.
var commonSkills = []string{
	// Languages
	"python", "пайтон", "питон", "piton", "payton",
	"javascript", "джаваскрипт", "js", "typescript", "тайпскрипт", "ts",
	"java", "джава", "c++", "c#", "go", "golang", "rust", "раст", "php", "ruby", "swift", "kotlin",
	// Frontend
	"react", "реакт", "vue", "angular", "ангуляр", "svelte", "next.js", "nuxt.js", "html", "css", "sass", "less", "tailwind",
	// Backend
	"node.js", "express", "nest.js", "django", "джанго", "flask", "фласк", "fastapi", "фастапи", "spring boot", "laravel", "rails", ".net",
	// Data / AI
	"sql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch", "cassandra",
	"machine learning", "ml", "deep learning", "dl", "nlp", "computer vision", "tensorflow", "pytorch",
	"scikit-learn", "pandas", "numpy", "opencv", "llm", "transformers",
	// DevOps / Cloud
	"docker", "докер", "kubernetes", "k8s", "кубернетес", "aws", "azure", "gcp", "terraform", "ansible", "jenkins", "gitlab ci",
	"git", "гит", "linux", "bash", "powershell",
	// Architecture / Concepts
	"rest api", "graphql", "grpc", "microservices", "tdd", "bdd",
	"agile", "scrum", "kanban", "jira", "confluence",
}

// canonicalNames maps aliases and transliterations to the standard name.
var canonicalNames = map[string]string{
	"пайтон": "python", "питон": "python", "piton": "python", "payton": "python",
	"джаваскрипт": "javascript", "js": "javascript",
	"тайпскрипт": "typescript", "ts": "typescript",
	"джава": "java",
	"раст":  "rust",
	"реакт": "react",
	"ангуляр": "angular",
	"джанго":  "django",
	"фласк":   "flask",
	"фастапи": "fastapi",
	"докер":   "docker",
	"k8s": "kubernetes", "кубернетес": "kubernetes",
	"ml": "machine learning", "dl": "deep learning",
	"гит":    "git",
	"golang": "go",
}

var experienceRe = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?|лет|года?|yil)`)

func NewExtractor() *Extractor {
	e := &Extractor{patterns: make(map[string]*regexp.Regexp, len(commonSkills))}
	for _, skill := range commonSkills {
		e.patterns[skill] = compileSkillPattern(skill)
	}
	return e
}

// compileSkillPattern builds a whole-word matcher, except for skills
// containing symbols like "c++" or "next.js" where word boundaries
// would not hold.
func compileSkillPattern(skill string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(skill)
	if strings.ContainsAny(skill, "+#.") {
		return regexp.MustCompile(quoted)
	}
	return regexp.MustCompile(`(^|[^\p{L}\p{N}_])` + quoted + `($|[^\p{L}\p{N}_])`)
}

// Extract returns the canonical skill names found in text, sorted.
func (e *Extractor) Extract(text string) []string {
	if text == "" {
		return nil
	}

	textLower := strings.ToLower(text)
	found := make(map[string]struct{})
	for skill, pattern := range e.patterns {
		if pattern.MatchString(textLower) {
			canonical := skill
			if c, ok := canonicalNames[skill]; ok {
				canonical = c
			}
			found[canonical] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ExperienceYears estimates years of experience from phrases like
// "5 years", "3+ yrs", "7 лет". Returns the largest number mentioned,
// or 0 when nothing matches.
func ExperienceYears(text string) float64 {
	max := 0
	for _, m := range experienceRe.FindAllStringSubmatch(strings.ToLower(text), -1) {
		n := 0
		for _, r := range m[1] {
			n = n*10 + int(r-'0')
		}
		if n > max && n < 60 {
			max = n
		}
	}
	return float64(max)
}
