package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"practice-service/internal/models"
)

// Param accepts a JSON string or number and keeps its raw text, so that
// numeric parsing errors are reported by the service, not the binder.
type Param string

func (p *Param) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Param(s)
		return nil
	}
	*p = Param(data)
	return nil
}

type StartQuizRequest struct {
	Subject      string `json:"subject" example:"Physics"`
	Year         string `json:"year" example:"2024"`
	NumQuestions Param  `json:"num_questions" swaggertype:"string" example:"10"`
	Timer        Param  `json:"timer" swaggertype:"string" example:"60"`
}

// QuestionView is a question as shown while the quiz is running.
type QuestionView struct {
	Question string            `json:"question"`
	Options  map[string]string `json:"options"`
}

type StartQuizResponse struct {
	Subject      string         `json:"subject"`
	Year         string         `json:"year"`
	NumQuestions int            `json:"num_questions"`
	TimerMinutes int            `json:"timer"`
	EndTime      time.Time      `json:"end_time"`
	Questions    []QuestionView `json:"questions"`
}

func NewStartQuizResponse(session *models.Session) StartQuizResponse {
	questions := make([]QuestionView, len(session.Questions))
	for i, q := range session.Questions {
		questions[i] = QuestionView{
			Question: q.Text,
			Options:  q.Options(),
		}
	}

	return StartQuizResponse{
		Subject:      session.Subject,
		Year:         session.Year,
		NumQuestions: len(session.Questions),
		TimerMinutes: session.TimerMinutes,
		EndTime:      session.Deadline,
		Questions:    questions,
	}
}

type SubmitAnswersRequest struct {
	Answers map[string]string `json:"answers"`
}
