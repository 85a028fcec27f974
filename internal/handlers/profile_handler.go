package handlers

import (
	"context"
	"errors"
	"net/http"

	"story-service/internal/adaptive"
	"story-service/internal/models"
	"story-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	Service *service.ProfileService
}

func NewProfileHandler(s *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: s}
}

// GetProfile retrieves a child's learning profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	name := c.Param("name")
	profile := h.Service.GetProfile(name)
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PostInteraction records one story interaction and runs the full adaptive
// update: metrics, difficulty, emotion, achievements
func (h *ProfileHandler) PostInteraction(c *gin.Context) {
	name := c.Param("name")

	var req struct {
		Age             int                    `json:"age"`
		Theme           string                 `json:"theme" binding:"required"`
		LearningFocus   string                 `json:"learning_focus" binding:"required"`
		Response        string                 `json:"response"`
		Correct         *bool                  `json:"correct"`
		ResponseTime    *float64               `json:"response_time"`
		EngagementScore *float64               `json:"engagement_score"`
		Comprehension   *float64               `json:"comprehension"`
		SessionDuration float64                `json:"session_duration"`
		StoryCompleted  bool                   `json:"story_completed"`
		NewWordsLearned int                    `json:"new_words_learned"`
		Confidence      int                    `json:"confidence"`
		StoryParams     map[string]interface{} `json:"story_params"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid interaction format",
			"details": err.Error(),
		})
		return
	}
	if req.Age == 0 {
		req.Age = 6
	}

	interaction := &models.Interaction{
		Theme:           req.Theme,
		LearningFocus:   req.LearningFocus,
		Response:        req.Response,
		Correct:         req.Correct,
		ResponseTime:    req.ResponseTime,
		EngagementScore: req.EngagementScore,
		Comprehension:   req.Comprehension,
		SessionDuration: req.SessionDuration,
		StoryCompleted:  req.StoryCompleted,
		NewWordsLearned: req.NewWordsLearned,
		Confidence:      req.Confidence,
	}

	outcome, err := h.Service.ProcessInteraction(context.Background(), name, req.Age, interaction, req.StoryParams)
	if err != nil {
		if errors.Is(err, adaptive.ErrInvalidInteraction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process interaction",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":          outcome.Profile,
		"detected_emotion": outcome.Emotion.DetectedEmotion,
		"new_achievements": outcome.Emotion.NewAchievements,
		"prompt_guidance":  outcome.Emotion.PromptGuidance,
	})
}

// GetRecommendations returns ranked story suggestions for a child
func (h *ProfileHandler) GetRecommendations(c *gin.Context) {
	name := c.Param("name")
	age := intQuery(c, "age", 6)

	recommendations := h.Service.Recommendations(name, age)
	c.JSON(http.StatusOK, gin.H{
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}

// GetStoryParameters returns the adaptive bundle for story generation
func (h *ProfileHandler) GetStoryParameters(c *gin.Context) {
	name := c.Param("name")
	theme := c.DefaultQuery("theme", "dragons")
	age := intQuery(c, "age", 6)

	params := h.Service.StoryParameters(name, age, theme)
	c.JSON(http.StatusOK, gin.H{
		"parameters": params,
		"theme":      theme,
	})
}

// GetAchievements lists earned achievements and progress toward open ones
func (h *ProfileHandler) GetAchievements(c *gin.Context) {
	name := c.Param("name")
	age := intQuery(c, "age", 6)

	earned, progress := h.Service.AchievementProgress(name, age)
	history, err := h.Service.AchievementHistory(context.Background(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load achievement history",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"earned":   earned,
		"progress": progress,
		"history":  history,
	})
}

// ListProfiles returns stored profiles for parent dashboards
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	limit := int64(intQuery(c, "limit", 50))

	profiles, err := h.Service.ListProfiles(context.Background(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list profiles",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profiles": profiles,
		"count":    len(profiles),
	})
}
