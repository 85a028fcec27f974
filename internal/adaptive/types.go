package adaptive

// Stage is the per-session difficulty within a single three-question story.
// It is decoupled on purpose from the profile's long-run difficulty level.
type Stage string

const (
	StageEasy   Stage = "easy"
	StageMedium Stage = "medium"
	StageHard   Stage = "hard"
)

// Long-run profile difficulty, 1 (beginner) through 4 (expert).
const (
	LevelBeginner     = 1
	LevelIntermediate = 2
	LevelAdvanced     = 3
	LevelExpert       = 4
)

// LearningStyle is the dominant learning modality detected from response
// text history.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleMixed       LearningStyle = "mixed"
)

// Emotion is one discrete emotional engagement state.
type Emotion string

const (
	EmotionExcited    Emotion = "excited"
	EmotionCurious    Emotion = "curious"
	EmotionConfident  Emotion = "confident"
	EmotionFrustrated Emotion = "frustrated"
	EmotionBored      Emotion = "bored"
	EmotionNeutral    Emotion = "neutral"
)

// Branch is a named story-shaping directive chosen from detected emotion.
type Branch string

const (
	BranchEncouraging Branch = "encouraging"
	BranchChallenging Branch = "challenging"
	BranchComforting  Branch = "comforting"
	BranchEnergizing  Branch = "energizing"
	BranchSimplifying Branch = "simplifying"
)
