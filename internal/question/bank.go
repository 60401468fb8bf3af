package question

import (
	"strings"

	"hirelens/internal/model"
)

// Bank is the in-memory question store indexed by skill, difficulty and
// type. Contents are fixed at construction; lookups are read-only.
type Bank struct {
	questions []model.Question
	bySkill   map[string][]model.Question
}

// NewBank builds the default seeded bank.
func NewBank() *Bank {
	return NewBankWith(defaultQuestions())
}

// NewBankWith builds a bank over the given questions.
func NewBankWith(questions []model.Question) *Bank {
	b := &Bank{
		questions: questions,
		bySkill:   make(map[string][]model.Question),
	}
	for _, q := range questions {
		key := strings.ToLower(q.Skill)
		b.bySkill[key] = append(b.bySkill[key], q)
	}
	return b
}

// All returns every question in the bank.
func (b *Bank) All() []model.Question {
	return b.questions
}

// Find returns questions matching skill, difficulty, type and language.
// Empty lang matches any language.
func (b *Bank) Find(skill string, difficulty model.Difficulty, qType model.QuestionType, lang string) []model.Question {
	var out []model.Question
	for _, q := range b.bySkill[strings.ToLower(skill)] {
		if q.Difficulty != difficulty || q.Type != qType {
			continue
		}
		if lang != "" && q.Lang != lang {
			continue
		}
		out = append(out, q)
	}
	return out
}

func defaultQuestions() []model.Question {
	return []model.Question{
		// Python
		{ID: 1, Skill: "python", Difficulty: model.DifficultyEasy, Type: model.QuestionTheory, Lang: "ru",
			Text: "Что такое list comprehension в Python и когда его использовать?", ExpectedTopics: []string{"list comprehension", "syntax", "performance"}},
		{ID: 1001, Skill: "python", Difficulty: model.DifficultyEasy, Type: model.QuestionTheory, Lang: "en",
			Text: "What is list comprehension in Python?", ExpectedTopics: []string{"list comprehension", "syntax", "performance"}},
		{ID: 2, Skill: "python", Difficulty: model.DifficultyEasy, Type: model.QuestionCase, Lang: "ru",
			Text: "Напишите функцию, которая находит все уникальные элементы в списке.", ExpectedTopics: []string{"set", "list", "uniqueness"}},
		{ID: 1002, Skill: "python", Difficulty: model.DifficultyEasy, Type: model.QuestionCase, Lang: "en",
			Text: "Write a function that finds all unique elements in a list.", ExpectedTopics: []string{"set", "list", "uniqueness"}},
		{ID: 3, Skill: "python", Difficulty: model.DifficultyMedium, Type: model.QuestionTheory, Lang: "ru",
			Text: "Объясните разницу между @staticmethod и @classmethod.", ExpectedTopics: []string{"decorators", "methods", "oop"}},
		{ID: 1003, Skill: "python", Difficulty: model.DifficultyMedium, Type: model.QuestionTheory, Lang: "en",
			Text: "Explain the difference between @staticmethod and @classmethod.", ExpectedTopics: []string{"decorators", "methods", "oop"}},
		{ID: 4, Skill: "python", Difficulty: model.DifficultyMedium, Type: model.QuestionCase, Lang: "en",
			Text: "How would you optimize code that processes a large CSV file?", ExpectedTopics: []string{"generators", "memory", "performance"}},
		{ID: 5, Skill: "python", Difficulty: model.DifficultyHard, Type: model.QuestionTheory, Lang: "en",
			Text: "Explain how the GIL works and its impact on multithreading.", ExpectedTopics: []string{"gil", "threading", "concurrency"}},
		{ID: 6, Skill: "python", Difficulty: model.DifficultyHard, Type: model.QuestionCase, Lang: "en",
			Text: "Design a caching system with TTL for API requests.", ExpectedTopics: []string{"caching", "ttl", "design patterns"}},

		// JavaScript
		{ID: 10, Skill: "javascript", Difficulty: model.DifficultyEasy, Type: model.QuestionTheory, Lang: "en",
			Text: "What is the difference between var, let and const?", ExpectedTopics: []string{"scope", "hoisting", "const"}},
		{ID: 11, Skill: "javascript", Difficulty: model.DifficultyMedium, Type: model.QuestionTheory, Lang: "en",
			Text: "Explain the event loop and how asynchronous callbacks are scheduled.", ExpectedTopics: []string{"event loop", "callback", "promise"}},
		{ID: 12, Skill: "javascript", Difficulty: model.DifficultyMedium, Type: model.QuestionCase, Lang: "en",
			Text: "A page freezes while rendering a large list. How do you fix it?", ExpectedTopics: []string{"virtualization", "debounce", "performance"}},
		{ID: 13, Skill: "javascript", Difficulty: model.DifficultyHard, Type: model.QuestionCase, Lang: "en",
			Text: "Design state management for a large single-page application.", ExpectedTopics: []string{"state", "redux", "immutability"}},

		// SQL
		{ID: 20, Skill: "sql", Difficulty: model.DifficultyEasy, Type: model.QuestionTheory, Lang: "en",
			Text: "What is the difference between INNER JOIN and LEFT JOIN?", ExpectedTopics: []string{"join", "null", "rows"}},
		{ID: 21, Skill: "sql", Difficulty: model.DifficultyMedium, Type: model.QuestionCase, Lang: "en",
			Text: "A query over a large table is slow. Walk through how you would speed it up.", ExpectedTopics: []string{"index", "explain", "query plan"}},
		{ID: 22, Skill: "sql", Difficulty: model.DifficultyHard, Type: model.QuestionTheory, Lang: "en",
			Text: "Explain transaction isolation levels and the anomalies each prevents.", ExpectedTopics: []string{"isolation", "phantom", "serializable"}},

		// Go
		{ID: 30, Skill: "go", Difficulty: model.DifficultyEasy, Type: model.QuestionTheory, Lang: "en",
			Text: "What are goroutines and how do they differ from OS threads?", ExpectedTopics: []string{"goroutine", "scheduler", "stack"}},
		{ID: 31, Skill: "go", Difficulty: model.DifficultyMedium, Type: model.QuestionTheory, Lang: "en",
			Text: "How do channels work and when would you use a buffered channel?", ExpectedTopics: []string{"channel", "buffer", "blocking"}},
		{ID: 32, Skill: "go", Difficulty: model.DifficultyHard, Type: model.QuestionCase, Lang: "en",
			Text: "Design a worker pool that processes jobs with bounded concurrency and graceful shutdown.", ExpectedTopics: []string{"worker pool", "context", "waitgroup"}},

		// Docker
		{ID: 40, Skill: "docker", Difficulty: model.DifficultyEasy, Type: model.QuestionTheory, Lang: "en",
			Text: "What is the difference between a container and a virtual machine?", ExpectedTopics: []string{"container", "kernel", "isolation"}},
		{ID: 41, Skill: "docker", Difficulty: model.DifficultyMedium, Type: model.QuestionCase, Lang: "en",
			Text: "Your image is 2 GB. How do you shrink it?", ExpectedTopics: []string{"multi-stage", "layers", "alpine"}},

		// React
		{ID: 50, Skill: "react", Difficulty: model.DifficultyEasy, Type: model.QuestionTheory, Lang: "en",
			Text: "What are hooks and why were they introduced?", ExpectedTopics: []string{"hooks", "state", "lifecycle"}},
		{ID: 51, Skill: "react", Difficulty: model.DifficultyMedium, Type: model.QuestionCase, Lang: "en",
			Text: "A component re-renders too often. How do you diagnose and fix it?", ExpectedTopics: []string{"memo", "profiler", "dependencies"}},

		// Soft skills
		{ID: 90, Skill: "soft_skills", Difficulty: model.DifficultyEasy, Type: model.QuestionSoft, Lang: "en",
			Text: "Tell us about a time you disagreed with a teammate. How was it resolved?", ExpectedTopics: nil},
		{ID: 91, Skill: "soft_skills", Difficulty: model.DifficultyMedium, Type: model.QuestionSoft, Lang: "en",
			Text: "How do you handle a deadline you know the team will miss?", ExpectedTopics: nil},
		{ID: 92, Skill: "soft_skills", Difficulty: model.DifficultyHard, Type: model.QuestionSoft, Lang: "en",
			Text: "Describe a project failure you were responsible for and what you changed afterwards.", ExpectedTopics: nil},
		{ID: 93, Skill: "soft_skills", Difficulty: model.DifficultyEasy, Type: model.QuestionSoft, Lang: "ru",
			Text: "Расскажите о ситуации, когда вы не согласились с коллегой. Как решили конфликт?", ExpectedTopics: nil},
	}
}
