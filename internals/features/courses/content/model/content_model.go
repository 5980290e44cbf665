package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =============================================================================
   Content hierarchy: learning_paths → levels → chapters → sections
   Authoring CRUD lives outside this core; the models exist for the ownership
   join (grading authorization) and the legacy quiz payload on sections.
============================================================================= */

type LearningPathModel struct {
	LearningPathID          uuid.UUID `json:"learning_path_id" gorm:"column:learning_path_id;type:uuid;primaryKey"`
	LearningPathOwnerUserID uuid.UUID `json:"learning_path_owner_user_id" gorm:"column:learning_path_owner_user_id;type:uuid;not null;index:idx_lp_owner"`
	LearningPathTitle       string    `json:"learning_path_title" gorm:"column:learning_path_title;type:varchar(255);not null"`
	LearningPathPrice       int64     `json:"learning_path_price" gorm:"column:learning_path_price;not null;default:0"`
	LearningPathCreatedAt   time.Time `json:"learning_path_created_at" gorm:"column:learning_path_created_at;autoCreateTime"`
	LearningPathUpdatedAt   time.Time `json:"learning_path_updated_at" gorm:"column:learning_path_updated_at;autoUpdateTime"`
}

func (LearningPathModel) TableName() string { return "learning_paths" }

func (m *LearningPathModel) BeforeCreate(_ *gorm.DB) error {
	if m.LearningPathID == uuid.Nil {
		m.LearningPathID = uuid.New()
	}
	return nil
}

type LevelModel struct {
	LevelID             uuid.UUID `json:"level_id" gorm:"column:level_id;type:uuid;primaryKey"`
	LevelLearningPathID uuid.UUID `json:"level_learning_path_id" gorm:"column:level_learning_path_id;type:uuid;not null;index:idx_level_path"`
	LevelTitle          string    `json:"level_title" gorm:"column:level_title;type:varchar(255);not null"`
	LevelPosition       int       `json:"level_position" gorm:"column:level_position;not null;default:1"`
	LevelCreatedAt      time.Time `json:"level_created_at" gorm:"column:level_created_at;autoCreateTime"`
	LevelUpdatedAt      time.Time `json:"level_updated_at" gorm:"column:level_updated_at;autoUpdateTime"`
}

func (LevelModel) TableName() string { return "levels" }

func (m *LevelModel) BeforeCreate(_ *gorm.DB) error {
	if m.LevelID == uuid.Nil {
		m.LevelID = uuid.New()
	}
	return nil
}

type ChapterModel struct {
	ChapterID        uuid.UUID `json:"chapter_id" gorm:"column:chapter_id;type:uuid;primaryKey"`
	ChapterLevelID   uuid.UUID `json:"chapter_level_id" gorm:"column:chapter_level_id;type:uuid;not null;index:idx_chapter_level"`
	ChapterTitle     string    `json:"chapter_title" gorm:"column:chapter_title;type:varchar(255);not null"`
	ChapterPosition  int       `json:"chapter_position" gorm:"column:chapter_position;not null;default:1"`
	ChapterCreatedAt time.Time `json:"chapter_created_at" gorm:"column:chapter_created_at;autoCreateTime"`
	ChapterUpdatedAt time.Time `json:"chapter_updated_at" gorm:"column:chapter_updated_at;autoUpdateTime"`
}

func (ChapterModel) TableName() string { return "chapters" }

func (m *ChapterModel) BeforeCreate(_ *gorm.DB) error {
	if m.ChapterID == uuid.Nil {
		m.ChapterID = uuid.New()
	}
	return nil
}

// SectionModel is the smallest consumable content unit. A section may carry a
// legacy quiz encoded as a JSON payload in section_quiz_payload; relational
// quizzes reference the section from the quizzes table instead. Both forms
// coexist and keep separate storage paths.
type SectionModel struct {
	SectionID          uuid.UUID      `json:"section_id" gorm:"column:section_id;type:uuid;primaryKey"`
	SectionChapterID   uuid.UUID      `json:"section_chapter_id" gorm:"column:section_chapter_id;type:uuid;not null;index:idx_section_chapter"`
	SectionTitle       string         `json:"section_title" gorm:"column:section_title;type:varchar(255);not null"`
	SectionPosition    int            `json:"section_position" gorm:"column:section_position;not null;default:1"`
	SectionQuizPayload datatypes.JSON `json:"section_quiz_payload,omitempty" gorm:"column:section_quiz_payload"`
	SectionCreatedAt   time.Time      `json:"section_created_at" gorm:"column:section_created_at;autoCreateTime"`
	SectionUpdatedAt   time.Time      `json:"section_updated_at" gorm:"column:section_updated_at;autoUpdateTime"`
}

func (SectionModel) TableName() string { return "sections" }

func (m *SectionModel) BeforeCreate(_ *gorm.DB) error {
	if m.SectionID == uuid.Nil {
		m.SectionID = uuid.New()
	}
	return nil
}
