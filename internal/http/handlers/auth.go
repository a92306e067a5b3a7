package handlers

import (
	"net/http"
	"time"

	"wanderstay/internal/domain"
	"wanderstay/internal/domain/models"
	"wanderstay/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUser is the user payload returned from login/register.
type AuthUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

func authUserFrom(u models.User) AuthUser {
	return AuthUser{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
		Status:   u.Status,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByLogin(req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong email/username or password"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to query user", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong email/username or password"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(env.TokenTTL).Unix(),
	})
	tokenString, err := token.SignedString([]byte(env.JWTSecret))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  authUserFrom(user),
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "name, username, email and password are required", nil)
		return
	}

	repo := repositories.UserRepository{}
	exists, err := repo.ExistsByEmailOrUsername(req.Email, req.Username)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to check user", err)
		return
	}
	if exists {
		RespondError(c, http.StatusBadRequest, "email or username already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         "user",
		Status:       "active",
	}
	id, err := repo.Create(user)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save user", err)
		return
	}
	user.ID = id

	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"user":    authUserFrom(user),
	})
}
