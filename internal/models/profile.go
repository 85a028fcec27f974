package models

import "time"

// LearningMetrics tracks learning progress per profile. The EMA fields stay
// inside [0,1]; the skill levels stay inside [1,4] and never decrease.
type LearningMetrics struct {
	SuccessRate         float64 `bson:"success_rate" json:"success_rate"`
	EngagementLevel     float64 `bson:"engagement_level" json:"engagement_level"`
	ComprehensionScore  float64 `bson:"comprehension_score" json:"comprehension_score"`
	ResponseTimeAvg     float64 `bson:"response_time_avg" json:"response_time_avg"`
	MathLevel           float64 `bson:"math_level" json:"math_level"`
	VocabularyLevel     float64 `bson:"vocabulary_level" json:"vocabulary_level"`
	ProblemSolvingLevel float64 `bson:"problem_solving_level" json:"problem_solving_level"`
}

// AchievementStats holds the cumulative counters achievement predicates
// evaluate against.
type AchievementStats struct {
	StoriesCompleted        int             `bson:"stories_completed" json:"stories_completed"`
	MathProblemsSolved      int             `bson:"math_problems_solved" json:"math_problems_solved"`
	VocabularyWordsLearned  int             `bson:"vocabulary_words_learned" json:"vocabulary_words_learned"`
	CurrentStreak           int             `bson:"current_streak" json:"current_streak"`
	ThemesExplored          map[string]bool `bson:"themes_explored" json:"themes_explored"`
	QuickResponses          int             `bson:"quick_responses" json:"quick_responses"`
	CreativeResponses       int             `bson:"creative_responses" json:"creative_responses"`
	QuestionsAsked          int             `bson:"questions_asked" json:"questions_asked"`
	ChallengesOvercome      int             `bson:"challenges_overcome" json:"challenges_overcome"`
	SessionDates            map[string]bool `bson:"session_dates" json:"session_dates"`
}

// EmotionMetrics tracks emotional engagement over time. RecentEmotions is a
// ring buffer holding at most the last 10 detected emotions, most recent last.
type EmotionMetrics struct {
	CurrentEmotion string   `bson:"current_emotion" json:"current_emotion"`
	RecentEmotions []string `bson:"recent_emotions" json:"recent_emotions"`
}

// LearnerProfile is the persistent per-child state. Exactly one profile
// exists per distinct child identity (keyed by a hash of the lowered name).
type LearnerProfile struct {
	ID                 string             `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Age                int                `bson:"age" json:"age"`
	LearningStyle      string             `bson:"learning_style" json:"learning_style"`
	DifficultyLevel    int                `bson:"difficulty_level" json:"difficulty_level"`
	LearningMetrics    LearningMetrics    `bson:"learning_metrics" json:"learning_metrics"`
	InteractionHistory []Interaction      `bson:"interaction_history" json:"interaction_history"`
	Achievements       []string           `bson:"achievements" json:"achievements"`
	AchievementStats   AchievementStats   `bson:"achievement_stats" json:"achievement_stats"`
	InterestGraph      map[string]float64 `bson:"interest_graph" json:"interest_graph"`
	EmotionMetrics     EmotionMetrics     `bson:"emotion_metrics" json:"emotion_metrics"`
	LastUpdated        time.Time          `bson:"last_updated" json:"last_updated"`
}

// Clone returns a deep copy of the profile. Callers that hand profile data
// past the per-profile lock (JSON responses, persistence writes) work on a
// clone so in-flight mutations stay invisible.
func (p *LearnerProfile) Clone() *LearnerProfile {
	clone := *p
	clone.InteractionHistory = append([]Interaction(nil), p.InteractionHistory...)
	clone.Achievements = append([]string(nil), p.Achievements...)
	clone.AchievementStats.ThemesExplored = copyBoolMap(p.AchievementStats.ThemesExplored)
	clone.AchievementStats.SessionDates = copyBoolMap(p.AchievementStats.SessionDates)
	clone.InterestGraph = make(map[string]float64, len(p.InterestGraph))
	for k, v := range p.InterestGraph {
		clone.InterestGraph[k] = v
	}
	clone.EmotionMetrics.RecentEmotions = append([]string(nil), p.EmotionMetrics.RecentEmotions...)
	return &clone
}

func copyBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// NewLearnerProfile creates a profile with defaults: mixed style, beginner
// difficulty, skill levels at 1, empty maps.
func NewLearnerProfile(key, name string, age int) *LearnerProfile {
	return &LearnerProfile{
		ID:              key,
		Name:            name,
		Age:             age,
		LearningStyle:   "mixed",
		DifficultyLevel: 1,
		LearningMetrics: LearningMetrics{
			MathLevel:           1,
			VocabularyLevel:     1,
			ProblemSolvingLevel: 1,
		},
		InteractionHistory: []Interaction{},
		Achievements:       []string{},
		AchievementStats: AchievementStats{
			ThemesExplored: map[string]bool{},
			SessionDates:   map[string]bool{},
		},
		InterestGraph: map[string]float64{},
		EmotionMetrics: EmotionMetrics{
			CurrentEmotion: "neutral",
			RecentEmotions: []string{},
		},
		LastUpdated: time.Now(),
	}
}
