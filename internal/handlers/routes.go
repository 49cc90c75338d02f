package handlers

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRouter, quizHandler *QuizHandler, timerHandler *TimerHandler) {
	router.GET("/", quizHandler.Overview)
	router.POST("/quiz", quizHandler.StartQuiz)
	router.GET("/get_time_remaining", quizHandler.GetTimeRemaining)
	router.POST("/result", quizHandler.SubmitAnswers)
	router.GET("/dashboard", quizHandler.Dashboard)
	router.GET("/ws/timer", timerHandler.StreamTimeRemaining)
}
