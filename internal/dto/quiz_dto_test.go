package dto

import (
	"encoding/json"
	"testing"
	"time"

	"practice-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartQuizRequest_AcceptsStringsAndNumbers(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		wantCount Param
		wantTimer Param
	}{
		{name: "numbers", body: `{"num_questions": 5, "timer": 30}`, wantCount: "5", wantTimer: "30"},
		{name: "strings", body: `{"num_questions": "5", "timer": "30"}`, wantCount: "5", wantTimer: "30"},
		{name: "garbage kept raw", body: `{"num_questions": "five"}`, wantCount: "five", wantTimer: ""},
		{name: "null", body: `{"num_questions": null, "timer": null}`, wantCount: "", wantTimer: ""},
		{name: "fraction kept raw", body: `{"num_questions": 2.5}`, wantCount: "2.5", wantTimer: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req StartQuizRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.wantCount, req.NumQuestions)
			assert.Equal(t, tc.wantTimer, req.Timer)
		})
	}
}

func TestNewStartQuizResponse_HidesAnswers(t *testing.T) {
	session := &models.Session{
		Questions: []models.Question{
			{Text: "Unit of force?", OptionA: "Newton", OptionB: "Joule", OptionC: "Watt", OptionD: "Pascal", Answer: "A", Explanation: "F = ma"},
		},
		Deadline:     time.Date(2026, 1, 1, 12, 30, 0, 0, time.UTC),
		TimerMinutes: 30,
		Subject:      "Physics",
		Year:         "2024",
	}

	resp := NewStartQuizResponse(session)
	assert.Equal(t, 1, resp.NumQuestions)
	assert.Equal(t, "Newton", resp.Questions[0].Options["A"])

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "F = ma")
	assert.NotContains(t, string(data), `"answer"`)
}
