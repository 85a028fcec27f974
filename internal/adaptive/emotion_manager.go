package adaptive

import (
	"story-service/internal/models"
)

// EmotionResult is everything the emotion pipeline produces for one
// interaction.
type EmotionResult struct {
	DetectedEmotion     string                                `json:"detected_emotion"`
	NewAchievements     []models.Achievement                  `json:"new_achievements"`
	StoryModifications  map[string]interface{}                `json:"story_modifications"`
	PromptGuidance      string                                `json:"prompt_guidance"`
	AchievementProgress map[string]models.AchievementProgress `json:"achievement_progress"`
}

// EmotionManager sequences emotion detection, achievement checks and story
// branching on each interaction.
type EmotionManager struct {
	detector     *EmotionDetector
	branching    *BranchingEngine
	achievements *AchievementSystem
}

func NewEmotionManager() *EmotionManager {
	return &EmotionManager{
		detector:     NewEmotionDetector(),
		branching:    NewBranchingEngine(),
		achievements: NewAchievementSystem(),
	}
}

// Progress reports counter-backed progress toward not-yet-earned
// achievements.
func (m *EmotionManager) Progress(profile *models.LearnerProfile) map[string]models.AchievementProgress {
	return m.achievements.ProgressTowards(profile)
}

// Process detects the interaction's emotion, records it in the profile's
// ring buffer (last 10), checks achievements and computes the story-shaping
// directives for the story-generation collaborator.
func (m *EmotionManager) Process(profile *models.LearnerProfile, interaction *models.Interaction, storyParams map[string]interface{}) *EmotionResult {
	emotion := m.detector.Detect(interaction, profile.EmotionMetrics.RecentEmotions)

	profile.EmotionMetrics.CurrentEmotion = string(emotion)
	profile.EmotionMetrics.RecentEmotions = append(profile.EmotionMetrics.RecentEmotions, string(emotion))
	if n := len(profile.EmotionMetrics.RecentEmotions); n > 10 {
		profile.EmotionMetrics.RecentEmotions = profile.EmotionMetrics.RecentEmotions[n-10:]
	}

	newAchievements := m.achievements.CheckNew(profile, interaction)

	return &EmotionResult{
		DetectedEmotion:     string(emotion),
		NewAchievements:     newAchievements,
		StoryModifications:  m.branching.StoryModifications(emotion, storyParams),
		PromptGuidance:      m.branching.PromptGuidance(emotion),
		AchievementProgress: m.achievements.ProgressTowards(profile),
	}
}
