package user

import (
	"errors"
	"net/http"

	"github.com/cbda-academy/exam-api/internal/dto"
	"github.com/cbda-academy/exam-api/internal/service"
	"github.com/cbda-academy/exam-api/internal/verification"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
	verifier    *verification.Service
}

func NewAuthController(authService service.AuthService, verifier *verification.Service) *AuthController {
	return &AuthController{authService: authService, verifier: verifier}
}

// Login godoc
// @Summary Log a user in
// @Description Checks email and password; returns the user profile. Unverified users are returned with verified=false so the client can prompt for a code.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid credentials"})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Login failed", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Register godoc
// @Summary Register a new student
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequest true "New account data"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.authService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Email already registered"})
			return
		}
		log.Error().Err(err).Msg("Register: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Registration failed", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// RequestCode godoc
// @Summary Send a verification code to an email address
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RequestCodeRequest true "Target email and display name"
// @Success 202 "Code issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /auth/request-code [post]
func (c *AuthController) RequestCode(ctx *gin.Context) {
	var req dto.RequestCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.verifier.RequestCode(ctx.Request.Context(), req.Email, req.Name); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("RequestCode: failed to issue code")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to send verification code"})
		return
	}
	ctx.Status(http.StatusAccepted)
}

// VerifyCode godoc
// @Summary Check a verification code
// @Description A matching code is consumed; it cannot be used twice.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyCodeRequest true "Email and 6-digit code"
// @Success 200 "Code accepted"
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired code"
// @Router /auth/verify-code [post]
func (c *AuthController) VerifyCode(ctx *gin.Context) {
	var req dto.VerifyCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	ok, err := c.verifier.Verify(ctx.Request.Context(), req.Email, req.Code)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("VerifyCode: store error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Verification failed"})
		return
	}
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid or expired verification code"})
		return
	}
	ctx.Status(http.StatusOK)
}

// ChangeEmail godoc
// @Summary Change a user's email address
// @Description Requires a verification code previously sent to the new address.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangeEmailRequest true "User, new email and verification code"
// @Success 200 "Email updated"
// @Failure 400 {object} dto.ErrorResponse "Code rejected or email already in use"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/change-email [post]
func (c *AuthController) ChangeEmail(ctx *gin.Context) {
	var req dto.ChangeEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	err := c.authService.ChangeEmail(ctx.Request.Context(), req)
	switch {
	case err == nil:
		ctx.Status(http.StatusOK)
	case errors.Is(err, service.ErrCodeRejected):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid or expired verification code"})
	case errors.Is(err, service.ErrEmailTaken):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Email already in use"})
	case errors.Is(err, service.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
	default:
		log.Error().Err(err).Str("user_id", req.UserID).Msg("ChangeEmail: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to change email", Details: []string{err.Error()}})
	}
}
