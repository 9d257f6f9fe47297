package models

import (
	"math"
	"time"
)

// 인지 능력 카테고리
type Category string

const (
	CategoryMemory         Category = "memory"
	CategoryFocus          Category = "focus"
	CategoryProblemSolving Category = "problem_solving"
	CategoryCreativity     Category = "creativity"
	CategoryLanguage       Category = "language"
	CategoryMixed          Category = "mixed"
)

// SkillCategories are the five dimensions of a cognitive profile, in display order.
var SkillCategories = []Category{
	CategoryMemory,
	CategoryFocus,
	CategoryProblemSolving,
	CategoryCreativity,
	CategoryLanguage,
}

func (c Category) Valid() bool {
	return c == CategoryMixed || c.IsSkill()
}

// IsSkill reports whether c has its own score in the cognitive profile.
func (c Category) IsSkill() bool {
	for _, s := range SkillCategories {
		if s == c {
			return true
		}
	}
	return false
}

type CognitiveProfile struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	MemoryScore         int       `json:"memory_score"`
	FocusScore          int       `json:"focus_score"`
	ProblemSolvingScore int       `json:"problem_solving_score"`
	CreativityScore     int       `json:"creativity_score"`
	LanguageScore       int       `json:"language_score"`
	LastUpdated         time.Time `json:"last_updated"`
}

// Score returns the score of a skill category, false for mixed or unknown.
func (p *CognitiveProfile) Score(c Category) (int, bool) {
	switch c {
	case CategoryMemory:
		return p.MemoryScore, true
	case CategoryFocus:
		return p.FocusScore, true
	case CategoryProblemSolving:
		return p.ProblemSolvingScore, true
	case CategoryCreativity:
		return p.CreativityScore, true
	case CategoryLanguage:
		return p.LanguageScore, true
	}
	return 0, false
}

func (p *CognitiveProfile) SetScore(c Category, score int) bool {
	switch c {
	case CategoryMemory:
		p.MemoryScore = score
	case CategoryFocus:
		p.FocusScore = score
	case CategoryProblemSolving:
		p.ProblemSolvingScore = score
	case CategoryCreativity:
		p.CreativityScore = score
	case CategoryLanguage:
		p.LanguageScore = score
	default:
		return false
	}
	return true
}

// BrainHealthScore is the rounded mean of the five category scores.
func (p *CognitiveProfile) BrainHealthScore() int {
	sum := 0
	for _, c := range SkillCategories {
		s, _ := p.Score(c)
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(SkillCategories))))
}
