package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	contentModel "learnhub_backend/internals/features/courses/content/model"
	progressModel "learnhub_backend/internals/features/courses/progress/model"
)

/* =========================================================
   LEGACY QUIZ PAYLOAD (JSON blob on the section)
========================================================= */

// LegacyQuizPayload is the JSON shape some sections carry instead of
// relational quiz rows. Storage stays separate from relational quizzes on
// purpose; merging the two paths risks silently breaking old content.
type LegacyQuizPayload struct {
	IsQuiz    bool                 `json:"isQuiz"`
	Questions []LegacyQuizQuestion `json:"questions"`
}

type LegacyQuizQuestion struct {
	ID              string             `json:"id"`
	Options         []LegacyQuizOption `json:"options"`
	CorrectOptionID string             `json:"correctOptionId"`
}

type LegacyQuizOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

/* =========================================================
   SERVICE
========================================================= */

type LegacyQuizService struct {
	DB *gorm.DB
}

func NewLegacyQuizService(db *gorm.DB) *LegacyQuizService {
	return &LegacyQuizService{DB: db}
}

// Submit auto-grades a legacy quiz synchronously.
// Score = 100 × (answers matching correctOptionId) / totalQuestions, raw
// float, no rounding. An empty question list is not an error: it scores 0
// and still marks the section completed. The result lands as an upsert on
// the (user, section) progress row.
func (s *LegacyQuizService) Submit(ctx context.Context, sectionID, userID uuid.UUID, answers map[string]string) (float64, error) {
	var section contentModel.SectionModel
	if err := s.DB.WithContext(ctx).
		First(&section, "section_id = ?", sectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fiber.NewError(fiber.StatusNotFound, "Section not found")
		}
		log.Printf("[ERROR] load section: %v", err)
		return 0, err
	}

	payload, err := parseLegacyPayload(section.SectionQuizPayload)
	if err != nil {
		return 0, err
	}

	score := scoreLegacyQuiz(payload, answers)

	now := time.Now().UTC()
	progress := progressModel.ProgressModel{
		ProgressUserID:      userID,
		ProgressSectionID:   sectionID,
		ProgressIsCompleted: true,
		ProgressScore:       &score,
	}
	if err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "progress_user_id"}, {Name: "progress_section_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"progress_is_completed": true,
				"progress_score":        score,
				"progress_updated_at":   now,
			}),
		}).
		Create(&progress).Error; err != nil {
		log.Printf("[ERROR] upsert progress: %v", err)
		return 0, err
	}

	return score, nil
}

func parseLegacyPayload(raw []byte) (*LegacyQuizPayload, error) {
	if len(raw) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Section does not hold a quiz")
	}
	var payload LegacyQuizPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Stored quiz payload is malformed")
	}
	if !payload.IsQuiz {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Section does not hold a quiz")
	}
	return &payload, nil
}

func scoreLegacyQuiz(payload *LegacyQuizPayload, answers map[string]string) float64 {
	total := len(payload.Questions)
	if total == 0 {
		// vacuously scored: no questions means nothing to get wrong
		return 0
	}

	correct := 0
	for _, q := range payload.Questions {
		if selected, ok := answers[q.ID]; ok && selected == q.CorrectOptionID {
			correct++
		}
	}
	return 100 * float64(correct) / float64(total)
}
