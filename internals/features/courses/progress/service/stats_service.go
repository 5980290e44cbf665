package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type scoreAggregate struct {
	Total float64
	Count int64
}

// CourseAverage is the mean of every finalized score inside one learning
// path: graded relational submissions plus legacy quiz scores on progress
// rows. A course with no scored work reports 0, not null — downstream
// display code relies on "0 means no data".
func (s *StatsService) CourseAverage(ctx context.Context, learningPathID uuid.UUID) (float64, error) {
	var graded scoreAggregate
	err := s.DB.WithContext(ctx).
		Table("quiz_submissions").
		Select("COALESCE(SUM(quiz_submission_score), 0) AS total, COUNT(quiz_submission_score) AS count").
		Joins("JOIN quizzes ON quizzes.quiz_id = quiz_submissions.quiz_submission_quiz_id").
		Joins("JOIN sections ON sections.section_id = quizzes.quiz_section_id").
		Joins("JOIN chapters ON chapters.chapter_id = sections.section_chapter_id").
		Joins("JOIN levels ON levels.level_id = chapters.chapter_level_id").
		Where("levels.level_learning_path_id = ?", learningPathID).
		Where("quiz_submissions.quiz_submission_score IS NOT NULL").
		Scan(&graded).Error
	if err != nil {
		log.Printf("[ERROR] course graded aggregate: %v", err)
		return 0, err
	}

	var legacy scoreAggregate
	err = s.DB.WithContext(ctx).
		Table("progress").
		Select("COALESCE(SUM(progress_score), 0) AS total, COUNT(progress_score) AS count").
		Joins("JOIN sections ON sections.section_id = progress.progress_section_id").
		Joins("JOIN chapters ON chapters.chapter_id = sections.section_chapter_id").
		Joins("JOIN levels ON levels.level_id = chapters.chapter_level_id").
		Where("levels.level_learning_path_id = ?", learningPathID).
		Where("progress.progress_score IS NOT NULL").
		Scan(&legacy).Error
	if err != nil {
		log.Printf("[ERROR] course legacy aggregate: %v", err)
		return 0, err
	}

	return mean(graded, legacy), nil
}

// StudentAverage is the same blend scoped to one learner across the whole
// platform. 0 when the learner has no scored work yet.
func (s *StatsService) StudentAverage(ctx context.Context, userID uuid.UUID) (float64, error) {
	var graded scoreAggregate
	err := s.DB.WithContext(ctx).
		Table("quiz_submissions").
		Select("COALESCE(SUM(quiz_submission_score), 0) AS total, COUNT(quiz_submission_score) AS count").
		Where("quiz_submission_user_id = ?", userID).
		Where("quiz_submission_score IS NOT NULL").
		Scan(&graded).Error
	if err != nil {
		log.Printf("[ERROR] student graded aggregate: %v", err)
		return 0, err
	}

	var legacy scoreAggregate
	err = s.DB.WithContext(ctx).
		Table("progress").
		Select("COALESCE(SUM(progress_score), 0) AS total, COUNT(progress_score) AS count").
		Where("progress_user_id = ?", userID).
		Where("progress_score IS NOT NULL").
		Scan(&legacy).Error
	if err != nil {
		log.Printf("[ERROR] student legacy aggregate: %v", err)
		return 0, err
	}

	return mean(graded, legacy), nil
}

func mean(parts ...scoreAggregate) float64 {
	var total float64
	var count int64
	for _, p := range parts {
		total += p.Total
		count += p.Count
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
