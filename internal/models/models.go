package models

import (
	"time"
)

type Question struct {
	Text        string `json:"question"`
	OptionA     string `json:"option_a"`
	OptionB     string `json:"option_b"`
	OptionC     string `json:"option_c"`
	OptionD     string `json:"option_d"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	Topic       string `json:"topic,omitempty"`
	Subject     string `json:"subject"`
	Year        string `json:"year"`
}

// Options returns the four labeled options keyed by label.
func (q Question) Options() map[string]string {
	return map[string]string{
		"A": q.OptionA,
		"B": q.OptionB,
		"C": q.OptionC,
		"D": q.OptionD,
	}
}

// Session is the server-held state of a user's active or most recent quiz.
type Session struct {
	Questions    []Question     `json:"selected_questions"`
	Deadline     time.Time      `json:"end_time"`
	TimerMinutes int            `json:"timer_minutes"`
	Subject      string         `json:"subject"`
	Year         string         `json:"year"`
	StartedAt    time.Time      `json:"started_at"`
	LastResult   *ResultSummary `json:"last_result,omitempty"`
}

type ResultSummary struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type AnswerRecord struct {
	Question      string            `json:"question"`
	UserAnswer    *string           `json:"user_answer"`
	CorrectAnswer string            `json:"correct_answer"`
	IsCorrect     bool              `json:"is_correct"`
	Explanation   string            `json:"explanation"`
	Options       map[string]string `json:"options"`
}

type Report struct {
	Answers    []AnswerRecord `json:"user_answers"`
	Score      int            `json:"score"`
	Total      int            `json:"total"`
	Percentage float64        `json:"percentage"`
	Subject    string         `json:"subject"`
	Year       string         `json:"year"`
}

type TimeRemaining struct {
	Minutes      int  `json:"minutes"`
	Seconds      int  `json:"seconds"`
	TotalSeconds int  `json:"total_seconds"`
	TimeUp       bool `json:"time_up"`
}

type Attempt struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"-"`
	Subject     string    `json:"subject"`
	Year        string    `json:"year"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Percentage  float64   `json:"percentage"`
	CompletedAt time.Time `json:"completed_at"`
}

type Overview struct {
	Years              []string        `json:"years"`
	Subjects           []string        `json:"subjects"`
	AvailableYearsData map[string]bool `json:"available_years_data"`
}

type Dashboard struct {
	Subjects           []string       `json:"subjects"`
	LastResult         *ResultSummary `json:"last_result,omitempty"`
	PerformanceHistory []Attempt      `json:"performance_history"`
}
