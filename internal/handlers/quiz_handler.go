package handlers

import (
	"errors"
	"net/http"
	"strings"

	"practice-service/internal/constants"
	"practice-service/internal/dto"
	"practice-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const maxFormMemory = 8 << 20

type QuizHandler struct {
	quizService *service.QuizService
}

func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// Overview godoc
// @Summary List subjects and years
// @Description Selectable subjects and years, with a flag per year telling whether any subject has questions.
// @Tags Quiz
// @Produce json
// @Success 200 {object} models.Overview
// @Router / [get]
func (h *QuizHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.quizService.Overview())
}

// StartQuiz godoc
// @Summary Start a quiz
// @Description Draws a random question set and starts the timer. Replaces any quiz in progress.
// @Tags Quiz
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body dto.StartQuizRequest true "Quiz parameters"
// @Success 200 {object} dto.StartQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz [post]
func (h *QuizHandler) StartQuiz(c *gin.Context) {
	var req service.StartRequest

	if c.ContentType() == binding.MIMEJSON {
		var body dto.StartQuizRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			dto.JsonError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		req = service.StartRequest{
			Subject:      body.Subject,
			Year:         body.Year,
			NumQuestions: string(body.NumQuestions),
			TimerMinutes: string(body.Timer),
		}
	} else {
		req = service.StartRequest{
			Subject:      c.PostForm("subject"),
			Year:         c.PostForm("year"),
			NumQuestions: c.PostForm("num_questions"),
			TimerMinutes: c.PostForm("timer"),
		}
	}

	session, err := h.quizService.StartQuiz(c.Request.Context(), sessionID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStartQuizResponse(session))
}

// GetTimeRemaining godoc
// @Summary Time left in the current quiz
// @Tags Quiz
// @Produce json
// @Success 200 {object} models.TimeRemaining
// @Failure 400 {object} dto.ErrorResponse
// @Router /get_time_remaining [get]
func (h *QuizHandler) GetTimeRemaining(c *gin.Context) {
	left, err := h.quizService.TimeRemaining(c.Request.Context(), sessionID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, left)
}

// SubmitAnswers godoc
// @Summary Score the current quiz
// @Description Answers are keyed by question text, either as JSON or as form fields named answer_<question text>.
// @Tags Quiz
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body dto.SubmitAnswersRequest true "Answers by question text"
// @Success 200 {object} models.Report
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /result [post]
func (h *QuizHandler) SubmitAnswers(c *gin.Context) {
	answers := make(map[string]string)

	if c.ContentType() == binding.MIMEJSON {
		var body dto.SubmitAnswersRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			dto.JsonError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		for text, label := range body.Answers {
			answers[text] = label
		}
	} else {
		err := c.Request.ParseMultipartForm(maxFormMemory)
		if err != nil && !errors.Is(err, http.ErrNotMultipart) {
			dto.JsonError(c, http.StatusBadRequest, "Invalid form data")
			return
		}
		for key, values := range c.Request.PostForm {
			text, ok := strings.CutPrefix(key, constants.AnswerFieldPrefix)
			if ok && len(values) > 0 {
				answers[text] = values[0]
			}
		}
	}

	report, err := h.quizService.Score(c.Request.Context(), sessionID(c), answers)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Dashboard godoc
// @Summary Last result and recent attempts
// @Tags Quiz
// @Produce json
// @Success 200 {object} models.Dashboard
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (h *QuizHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.quizService.Dashboard(c.Request.Context(), sessionID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// respondError answers client errors with 400 and hands everything else to
// middleware.ErrorHandler, which logs it and renders a 500.
func (h *QuizHandler) respondError(c *gin.Context, err error) {
	respondError(c, err)
}

func respondError(c *gin.Context, err error) {
	if service.IsClientError(err) {
		dto.JsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.Status(http.StatusInternalServerError)
	c.Error(err)
}

func sessionID(c *gin.Context) string {
	return c.GetString(constants.SessionContextKey)
}
