package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"story-service/internal/adaptive"
	"story-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// CreateSession starts a new three-question story session
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req struct {
		ChildName     string `json:"child_name" binding:"required"`
		Age           int    `json:"age"`
		Theme         string `json:"theme" binding:"required"`
		LearningFocus string `json:"learning_focus" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	if req.Age == 0 {
		req.Age = 6
	}

	session, err := h.Service.CreateSession(context.Background(), req.ChildName, req.Age, req.Theme, req.LearningFocus)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create session",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session":   session,
		"next_step": "Answer the question in the first story part",
	})
}

// GetSession retrieves session information
func (h *SessionHandler) GetSession(c *gin.Context) {
	id := c.Param("id")
	session, err := h.Service.GetSession(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitAnswer grades the pending question and returns the next story part
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	sessionID := c.Param("id")

	var req struct {
		Answer       string  `json:"answer" binding:"required"`
		ResponseTime float64 `json:"response_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	outcome, err := h.Service.SubmitAnswer(context.Background(), sessionID, req.Answer, req.ResponseTime)
	if err != nil {
		switch {
		case errors.Is(err, adaptive.ErrSessionComplete):
			c.JSON(http.StatusConflict, gin.H{"error": "Session already completed"})
		case errors.Is(err, adaptive.ErrNoPendingQuestion):
			c.JSON(http.StatusConflict, gin.H{"error": "No pending question to answer"})
		default:
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Failed to process answer",
				"details": err.Error(),
			})
		}
		return
	}

	response := gin.H{
		"is_correct":  outcome.Result.IsCorrect,
		"explanation": outcome.Result.Explanation,
		"difficulty":  outcome.Session.Difficulty,
		"progress":    outcome.Progress,
		"is_complete": outcome.Session.Status == adaptive.StatusCompleted,
	}
	if outcome.NextPart != nil {
		response["next_part"] = outcome.NextPart.Text
		response["next_question"] = outcome.NextPart.Question
	}
	if outcome.Emotion != nil {
		response["detected_emotion"] = outcome.Emotion.DetectedEmotion
		if len(outcome.Emotion.NewAchievements) > 0 {
			response["new_achievements"] = outcome.Emotion.NewAchievements
		}
	}
	if outcome.Session.Status == adaptive.StatusCompleted {
		response["completion_message"] = "Story completed! Great adventure!"
		response["success_rate"] = adaptive.SessionSuccessRate(outcome.Session)
	}

	c.JSON(http.StatusOK, response)
}

// GetSessionProgress provides progress and the story so far
func (h *SessionHandler) GetSessionProgress(c *gin.Context) {
	sessionID := c.Param("id")

	session, err := h.Service.GetSession(context.Background(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":       sessionID,
		"progress":         adaptive.Progress(session),
		"difficulty":       session.Difficulty,
		"status":           session.Status,
		"success_rate":     adaptive.SessionSuccessRate(session),
		"story_so_far":     adaptive.StoryText(session),
		"session_duration": time.Since(session.StartTime).Minutes(),
	})
}

// GetSessionsByChild lists a child's sessions
func (h *SessionHandler) GetSessionsByChild(c *gin.Context) {
	name := c.Param("name")
	sessions, err := h.Service.SessionsForChild(context.Background(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list sessions",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// HealthCheck endpoint for the story service
func (h *SessionHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   "story-service",
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}

func intQuery(c *gin.Context, key string, def int) int {
	value, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return value
}
