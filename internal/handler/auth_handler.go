/**
* Name: 			auth_handler.go
* Description: 		회원가입, 로그인 핸들러
* Workflow: 		요청 검증 -> bcrypt 해싱/비교 -> 사용자 저장/조회 -> JWT 발급
 */
package handler

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"BrainTrainer/internal/auth"
	"BrainTrainer/internal/models"
	"BrainTrainer/internal/storage"

	"github.com/gin-gonic/gin"
)

const minPasswordLength = 6

// /signup 요청 바디
type SignupRequest struct {
	Email    string `json:"email" example:"gildong@example.com"`
	Username string `json:"username" example:"new_user"`
	Password string `json:"password" example:"password123"`
	FullName string `json:"full_name" example:"Hong Gildong"`
}

// /login 요청 바디
type LoginRequest struct {
	Username string `json:"username" example:"my_user"`
	Password string `json:"password" example:"password123"`
}

type SignupResponse struct {
	Message string      `json:"message" example:"User created successfully"`
	User    models.User `json:"user"`
}

type LoginSuccessResponse struct {
	Token string      `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  models.User `json:"user"`
}

// Signup godoc
// @Summary      회원가입 (Signup)
// @Description  새로운 사용자 계정을 생성합니다. 인지 프로필(모든 항목 50점)과 기본 설정이 함께 생성됩니다.
// @Description  서버에 초대 코드가 설정된 경우 `X-Invite-Code` 헤더가 필요합니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.SignupRequest true "회원가입 요청 정보"
// @Param        X-Invite-Code header string false "초대 코드"
// @Success      200 {object} handler.SignupResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      403 {object} handler.ErrorResponse "초대 코드 불일치"
// @Failure      409 {object} handler.ErrorResponse "사용자명 또는 이메일 중복"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// " "으로 입력되는 케이스 방지
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || strings.TrimSpace(req.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and Password cannot be empty"})
		return
	}
	if len(req.Password) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), req.Email, req.Username, hashed, strings.TrimSpace(req.FullName))
	if err != nil {
		if errors.Is(err, storage.ErrUsernameExists) || errors.Is(err, storage.ErrEmailExists) {
			h.respondError(c, err)
			return
		}
		h.log.Error("failed to create user", "username", req.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user (database error)"})
		return
	}

	h.log.Info("user signed up", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusOK, SignupResponse{Message: "User created successfully", User: user})
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  사용자명과 비밀번호로 로그인하고 JWT 토큰을 발급받습니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "로그인 요청 정보"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 요청"
// @Failure      401 {object} handler.ErrorResponse "인증 실패 (자격 증명 오류)"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON parsing error: " + err.Error()})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	user, err := h.store.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.log.Error("GetUserByUsername failed", "username", req.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, LoginSuccessResponse{Token: token, User: user})
}
