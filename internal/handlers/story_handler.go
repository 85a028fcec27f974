package handlers

import (
	"context"
	"net/http"

	"story-service/internal/service"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	Service *service.StoryService
}

func NewStoryHandler(s *service.StoryService) *StoryHandler {
	return &StoryHandler{Service: s}
}

// GenerateStory produces a complete adventure tuned to the child's profile
func (h *StoryHandler) GenerateStory(c *gin.Context) {
	var req struct {
		ChildName     string `json:"child_name" binding:"required"`
		Age           int    `json:"age"`
		Theme         string `json:"theme" binding:"required"`
		LearningFocus string `json:"learning_focus"`
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

	result, err := h.Service.GenerateAdaptiveStory(context.Background(), req.ChildName, req.Age, req.Theme, req.LearningFocus)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate story",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// AssessComprehension scores a retelling against the story's target words
func (h *StoryHandler) AssessComprehension(c *gin.Context) {
	var req struct {
		Response        string   `json:"response" binding:"required"`
		VocabularyWords []string `json:"vocabulary_words" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	score := h.Service.ComprehensionFor(req.Response, req.VocabularyWords)
	c.JSON(http.StatusOK, gin.H{
		"comprehension_score": score,
		"words_checked":       len(req.VocabularyWords),
	})
}
