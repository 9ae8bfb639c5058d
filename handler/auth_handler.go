package handler

import (
	"errors"
	"net/http"

	"main/dto"
	"main/middleware"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// setTokenCookie installs the bearer credential the way the session gate
// expects it: HttpOnly, Secure, SameSite=Strict, lifetime matching the token.
func setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, token,
		int(utils.TokenExpiration.Seconds()), "/", "", true, true)
}

func clearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", true, true)
}

func SignupHandler(c *gin.Context, users *usecase.UserService) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := users.Register(c.Request.Context(), req.Email, req.Password, req.UserName)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			utils.BadRequest(c, "User already exists")
		case errors.Is(err, usecase.ErrInvalidInput):
			utils.BadRequest(c, err.Error())
		default:
			logrus.WithError(err).Error("signup failed")
			utils.InternalError(c, "Internal Server Error")
		}
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	setTokenCookie(c, token)
	utils.Created(c, "User registered successfully", dto.ToUserResponse(user))
}

func LoginHandler(c *gin.Context, users *usecase.UserService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.Unauthorized(c, "Invalid credentials")
			return
		}
		logrus.WithError(err).Error("login failed")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	setTokenCookie(c, token)
	utils.Success(c, gin.H{
		"message": "Login successful",
		"user":    dto.ToUserResponse(user),
	})
}

// LogoutHandler clears the cookie and, when a revocation store is configured,
// blacklists the presented token until its natural expiry. The client always
// gets a 200; a failed blacklist write is only logged.
func LogoutHandler(c *gin.Context) {
	if token, err := c.Cookie(middleware.TokenCookieName); err == nil && token != "" {
		if err := services.BlacklistToken(c.Request.Context(), token); err != nil {
			logrus.WithError(err).Warn("failed to blacklist token on logout")
		}
	}

	clearTokenCookie(c)
	utils.Success(c, gin.H{"message": "Logged out"})
}

func MeHandler(c *gin.Context, users *usecase.UserService) {
	userID := c.GetString("user_id")

	user, err := users.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		logrus.WithError(err).Error("failed to fetch user profile")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Success(c, gin.H{"user": dto.ToUserResponse(user)})
}
