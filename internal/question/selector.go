package question

import (
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"hirelens/internal/model"
	"hirelens/internal/skills"
)

// distribution controls the theory/case mix per seniority level.
type distribution struct {
	theoryRatio float64
	maxPerSkill int
}

var levelDistribution = map[model.SeniorityLevel]distribution{
	model.LevelJunior: {theoryRatio: 0.7, maxPerSkill: 1},
	model.LevelMiddle: {theoryRatio: 0.5, maxPerSkill: 1},
	model.LevelSenior: {theoryRatio: 0.3, maxPerSkill: 1},
}

var levelDifficulty = map[model.SeniorityLevel]model.Difficulty{
	model.LevelJunior: model.DifficultyEasy,
	model.LevelMiddle: model.DifficultyMedium,
	model.LevelSenior: model.DifficultyHard,
}

// softSkillsCount is appended on top of the technical question limit.
const softSkillsCount = 3

// maxSkillsConsidered caps overlong CV skill lists before selection.
const maxSkillsConsidered = 10

// Selector picks level-appropriate interview questions for a candidate.
// The rand source is injected so selection is reproducible in tests;
// scoring downstream never depends on it.
type Selector struct {
	bank *Bank
	rng  *rand.Rand
	log  *zap.Logger
}

func NewSelector(bank *Bank, rng *rand.Rand, log *zap.Logger) *Selector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Selector{bank: bank, rng: rng, log: log}
}

// Select builds a question set for the detected level and skills.
// Rules: only skills the candidate has, level-appropriate difficulty,
// balanced theory/case mix, capped questions per skill, deduped.
func (s *Selector) Select(level skills.LevelResult, maxTotal int, lang string) model.QuestionSet {
	dist := levelDistribution[level.Level]
	difficulty := levelDifficulty[level.Level]

	candidateSkills := normalizeSkills(level.Skills)
	if len(candidateSkills) > maxSkillsConsidered {
		candidateSkills = candidateSkills[:maxSkillsConsidered]
	}
	// Shuffle so the same leading skills don't always dominate the set.
	s.rng.Shuffle(len(candidateSkills), func(i, j int) {
		candidateSkills[i], candidateSkills[j] = candidateSkills[j], candidateSkills[i]
	})

	var selected []model.Question
	for _, skill := range candidateSkills {
		selected = append(selected, s.pickForSkill(skill, difficulty, dist.theoryRatio, dist.maxPerSkill, lang)...)
	}

	selected = dedupe(selected)
	if len(selected) > maxTotal {
		s.rng.Shuffle(len(selected), func(i, j int) {
			selected[i], selected[j] = selected[j], selected[i]
		})
		selected = selected[:maxTotal]
	}

	// Soft-skills questions ride on top of the technical limit.
	soft := s.pickForSkill("soft_skills", difficulty, 0.5, softSkillsCount, lang)
	selected = append(selected, soft...)

	s.log.Info("questions selected",
		zap.String("level", string(level.Level)),
		zap.String("lang", lang),
		zap.Int("skills", len(candidateSkills)),
		zap.Int("questions", len(selected)))

	return model.QuestionSet{
		CandidateName: level.CandidateName,
		Level:         string(level.Level),
		Questions:     selected,
	}
}

// pickForSkill draws up to max questions for one skill, split between
// theory and case by ratio. Falls back to any language when the
// requested one has no questions for the skill.
func (s *Selector) pickForSkill(skill string, difficulty model.Difficulty, theoryRatio float64, max int, lang string) []model.Question {
	theoryWant := int(float64(max)*theoryRatio + 0.5)
	caseWant := max - theoryWant

	qType := model.QuestionTheory
	caseType := model.QuestionCase
	if skill == "soft_skills" {
		qType, caseType = model.QuestionSoft, model.QuestionSoft
		theoryWant, caseWant = max, 0
	}

	out := s.draw(skill, difficulty, qType, lang, theoryWant)
	if caseWant > 0 {
		out = append(out, s.draw(skill, difficulty, caseType, lang, caseWant)...)
	}

	// A skill with nothing at the target difficulty degrades to medium
	// before being skipped entirely.
	if len(out) == 0 && difficulty != model.DifficultyMedium {
		out = s.draw(skill, model.DifficultyMedium, qType, lang, max)
	}
	return out
}

func (s *Selector) draw(skill string, difficulty model.Difficulty, qType model.QuestionType, lang string, n int) []model.Question {
	if n <= 0 {
		return nil
	}
	pool := s.bank.Find(skill, difficulty, qType, lang)
	if len(pool) == 0 && lang != "" {
		pool = s.bank.Find(skill, difficulty, qType, "")
	}
	if len(pool) <= n {
		return pool
	}
	picked := make([]model.Question, len(pool))
	copy(picked, pool)
	s.rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	return picked[:n]
}

func normalizeSkills(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		sl := strings.ToLower(strings.TrimSpace(s))
		if sl == "" {
			continue
		}
		if _, ok := seen[sl]; ok {
			continue
		}
		seen[sl] = struct{}{}
		out = append(out, sl)
	}
	return out
}

func dedupe(questions []model.Question) []model.Question {
	type key struct {
		skill string
		text  string
		diff  model.Difficulty
		typ   model.QuestionType
	}
	seen := make(map[key]struct{}, len(questions))
	out := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		k := key{strings.ToLower(q.Skill), strings.TrimSpace(q.Text), q.Difficulty, q.Type}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, q)
	}
	return out
}
