package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/quizzes/dto"
	qmodel "learnhub_backend/internals/features/courses/quizzes/model"
	"learnhub_backend/internals/features/courses/quizzes/service"
	helper "learnhub_backend/internals/helpers"
)

type GradingController struct {
	DB          *gorm.DB
	Grading     *service.GradingService
	Submissions *service.SubmissionService
}

func NewGradingController(db *gorm.DB) *GradingController {
	return &GradingController{
		DB:          db,
		Grading:     service.NewGradingService(db),
		Submissions: service.NewSubmissionService(db),
	}
}

// PUT /api/t/submissions/:submissionId/grade
func (ctrl *GradingController) Grade(c *fiber.Ctx) error {
	callerID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	callerRole := helper.GetUserRole(c)

	submissionID, err := uuid.Parse(c.Params("submissionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	var req dto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	grades := make(map[uuid.UUID]service.GradeInput, len(req.Grades))
	for questionID, entry := range req.ParsedGrades() {
		grades[questionID] = service.GradeInput{
			Score:    entry.Score,
			Feedback: entry.Feedback,
		}
	}

	finalScore, err := ctrl.Grading.Grade(c.UserContext(), submissionID, callerID, callerRole, grades)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Submission graded", fiber.Map{
		"final_score": finalScore,
		"status":      qmodel.SubmissionGraded,
	})
}

// GET /api/t/quizzes/:quizId/submissions
func (ctrl *GradingController) ListForQuiz(c *fiber.Ctx) error {
	callerID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	callerRole := helper.GetUserRole(c)

	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	ownerID, err := service.LearningPathOwnerForQuiz(c.UserContext(), ctrl.DB, quizID)
	if err != nil {
		if service.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.FromFiberError(c, err)
	}
	if !service.CanManageCourse(callerRole, callerID, ownerID) {
		return helper.Error(c, fiber.StatusForbidden, "You do not manage this course")
	}

	submissions, err := ctrl.Submissions.ListForQuiz(c.UserContext(), quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Submissions fetched", fiber.Map{
		"submissions": submissions,
	})
}
