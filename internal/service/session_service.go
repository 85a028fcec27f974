package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"story-service/internal/adaptive"
	"story-service/internal/models"
	"story-service/internal/repository"
	"story-service/internal/story"

	"github.com/google/uuid"
)

// AnswerOutcome is everything one answered question produced: the graded
// result, the updated session, the next story part when the session is still
// running, and the profile-side emotion pipeline output.
type AnswerOutcome struct {
	Result   *models.QuestionResult  `json:"result"`
	Session  *models.StorySession    `json:"session"`
	NextPart *story.Part             `json:"next_part,omitempty"`
	Emotion  *adaptive.EmotionResult `json:"emotion,omitempty"`
	Progress int                     `json:"progress"`
}

// SessionService runs three-question story sessions: part generation through
// the story collaborator, answer grading, the per-session difficulty state
// machine, and feeding each answer back into the child's profile.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*models.StorySession

	manager   *adaptive.SessionManager
	branching *adaptive.BranchingEngine
	generator story.Generator
	fallback  *story.FallbackGenerator
	safety    story.SafetyValidator
	profiles  *ProfileService
	repo      *repository.SessionRepository
}

// NewSessionService wires the service. generator may be nil, in which case
// every part comes from the built-in fallback templates; repo may be nil for
// memory-only operation.
func NewSessionService(profiles *ProfileService, generator story.Generator, safety story.SafetyValidator, repo *repository.SessionRepository) *SessionService {
	if safety == nil {
		safety = story.ApproveAll{}
	}
	return &SessionService{
		sessions:  map[string]*models.StorySession{},
		manager:   adaptive.NewSessionManager(),
		branching: adaptive.NewBranchingEngine(),
		generator: generator,
		fallback:  story.NewFallbackGenerator(),
		safety:    safety,
		profiles:  profiles,
		repo:      repo,
	}
}

// CreateSession starts a new session at the easy stage and generates its
// first story part.
func (s *SessionService) CreateSession(ctx context.Context, childName string, age int, theme, learningFocus string) (*models.StorySession, error) {
	s.profiles.GetOrCreateProfile(childName, age)

	session := s.manager.NewSession(uuid.NewString(), childName, theme, learningFocus)
	if err := s.appendPart(ctx, session); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Create(ctx, session); err != nil {
			log.Printf("session create failed for %s: %v", session.ID, err)
		}
	}
	return session, nil
}

// GetSession returns a session by id, falling back to the durable store for
// sessions that outlived this process.
func (s *SessionService) GetSession(ctx context.Context, id string) (*models.StorySession, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return session, nil
	}
	if s.repo != nil {
		session, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if session != nil {
			s.mu.Lock()
			s.sessions[id] = session
			s.mu.Unlock()
			return session, nil
		}
	}
	return nil, fmt.Errorf("session %s not found", id)
}

// SubmitAnswer grades the pending question, advances the session and feeds
// the result into the child's profile. The next part is generated before the
// response returns so the client never polls.
func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID, answer string, responseTime float64) (*AnswerOutcome, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.manager.ProcessAnswer(session, answer, responseTime)
	if err != nil {
		return nil, err
	}

	outcome := &AnswerOutcome{Result: result, Session: session, Progress: adaptive.Progress(session)}

	if session.Status != adaptive.StatusCompleted {
		if err := s.appendPart(ctx, session); err != nil {
			return nil, err
		}
		outcome.NextPart = &story.Part{
			Text:     session.StoryParts[len(session.StoryParts)-1],
			Question: session.Questions[len(session.Questions)-1],
		}
	}

	outcome.Emotion = s.recordInteraction(ctx, session, result, responseTime, answer)

	if s.repo != nil {
		if err := s.repo.Update(ctx, session); err != nil {
			log.Printf("session update failed for %s: %v", session.ID, err)
		}
	}
	return outcome, nil
}

// SessionsForChild lists a child's past sessions from the durable store.
func (s *SessionService) SessionsForChild(ctx context.Context, childName string) ([]models.StorySession, error) {
	if s.repo == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		var out []models.StorySession
		for _, session := range s.sessions {
			if session.ChildName == childName {
				out = append(out, *session)
			}
		}
		return out, nil
	}
	return s.repo.FindByChild(ctx, childName)
}

// appendPart generates the next story part at the session's current
// difficulty and attaches it. Generation failures and safety rejections fall
// back to the built-in templates rather than surfacing to the child.
func (s *SessionService) appendPart(ctx context.Context, session *models.StorySession) error {
	partNumber := len(session.StoryParts) + 1
	req := story.PartRequest{
		Session:    session,
		PartNumber: partNumber,
		Params:     s.manager.ParamsFor(adaptive.NormalizeFocus(session.LearningFocus), adaptive.Stage(session.Difficulty)),
		Guidance:   s.currentGuidance(session.ChildName),
	}

	part, err := s.generate(ctx, req)
	if err != nil {
		return err
	}

	part.Question.PartNumber = partNumber
	part.Question.Difficulty = session.Difficulty
	session.StoryParts = append(session.StoryParts, part.Text)
	session.Questions = append(session.Questions, part.Question)
	return nil
}

func (s *SessionService) generate(ctx context.Context, req story.PartRequest) (*story.Part, error) {
	if s.generator != nil {
		part, err := s.generator.GeneratePart(ctx, req)
		if err == nil {
			ok, verr := s.safety.Validate(ctx, part.Text)
			if verr == nil && ok {
				return part, nil
			}
			if verr != nil {
				log.Printf("safety check failed for session %s part %d: %v", req.Session.ID, req.PartNumber, verr)
			}
		} else {
			log.Printf("generation failed for session %s part %d: %v", req.Session.ID, req.PartNumber, err)
		}
	}
	return s.fallback.GeneratePart(ctx, req)
}

// currentGuidance reads the child's current emotion and returns the matching
// prompt guidance for the generator.
func (s *SessionService) currentGuidance(childName string) string {
	profile := s.profiles.GetProfile(childName)
	if profile == nil || profile.EmotionMetrics.CurrentEmotion == "" {
		return ""
	}
	return s.branching.PromptGuidance(adaptive.Emotion(profile.EmotionMetrics.CurrentEmotion))
}

// recordInteraction turns one graded answer into a profile interaction and
// runs the adaptive pipeline. Profile failures are logged, not surfaced: the
// session result is already committed.
func (s *SessionService) recordInteraction(ctx context.Context, session *models.StorySession, result *models.QuestionResult, responseTime float64, answer string) *adaptive.EmotionResult {
	age := 6
	if profile := s.profiles.GetProfile(session.ChildName); profile != nil {
		age = profile.Age
	}

	correct := result.IsCorrect
	interaction := &models.Interaction{
		Theme:          session.Theme,
		LearningFocus:  session.LearningFocus,
		Response:       answer,
		Correct:        &correct,
		ResponseTime:   &responseTime,
		StoryCompleted: session.Status == adaptive.StatusCompleted,
		Timestamp:      time.Now(),
	}
	if interaction.StoryCompleted {
		interaction.SessionDuration = time.Since(session.StartTime).Seconds()
	}

	storyParams := map[string]interface{}{
		"theme":          session.Theme,
		"learning_focus": session.LearningFocus,
		"difficulty":     session.Difficulty,
	}
	outcome, err := s.profiles.ProcessInteraction(ctx, session.ChildName, age, interaction, storyParams)
	if err != nil {
		log.Printf("profile update failed for session %s: %v", session.ID, err)
		return nil
	}
	return outcome.Emotion
}
