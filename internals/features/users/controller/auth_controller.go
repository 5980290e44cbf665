package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnhub_backend/internals/configs"
	"learnhub_backend/internals/constants"
	"learnhub_backend/internals/features/users/dto"
	"learnhub_backend/internals/features/users/model"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var existing model.UserModel
	err := ctrl.DB.First(&existing, "user_email = ?", email).Error
	if err == nil {
		return helper.Error(c, fiber.StatusConflict, "Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] check email: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	user := model.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     constants.RoleUser,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		log.Printf("[ERROR] create user: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Account created", fiber.Map{
		"user_id": user.UserID,
	})
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_email = ? AND user_is_active = ?", email, true).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := signAccessToken(&user)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Signed in", fiber.Map{
		"access_token": token,
		"user": fiber.Map{
			"user_id":   user.UserID,
			"user_name": user.UserName,
			"user_role": user.UserRole,
		},
	})
}

func signAccessToken(user *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
