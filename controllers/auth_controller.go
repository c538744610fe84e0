package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"motosync-api/models"
	"motosync-api/repositories"
	"motosync-api/services"
	"motosync-api/utils"
)

type AuthController struct {
	repo      *repositories.SnapshotRepository
	jwtSecret string
}

func NewAuthController(repo *repositories.SnapshotRepository, jwtSecret string) *AuthController {
	return &AuthController{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

type RegisterRequest struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"senha" binding:"required,min=6"`
	Role     string `json:"cargo" binding:"required"`
	YardName string `json:"patio"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the shape the mobile client reads after login; it
// routes on cargo and stores the whole payload under its "user" key.
type LoginResponse struct {
	Token    string      `json:"token"`
	UserID   int         `json:"idUsuario"`
	Name     string      `json:"nome"`
	Email    string      `json:"email"`
	Role     models.Role `json:"cargo"`
	YardName string      `json:"patio,omitempty"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := ac.repo.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var user *models.User
	email := strings.ToLower(strings.TrimSpace(req.Email))
	for i := range snap.Users {
		if strings.ToLower(snap.Users[i].Email) == email {
			user = &snap.Users[i]
			break
		}
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := ac.generateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		YardName: user.YardName,
	})
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidEmail(req.Email) {
		utils.SendValidationError(c, "Invalid email address")
		return
	}

	role := models.Role(strings.ToUpper(strings.TrimSpace(req.Role)))
	if role != models.RoleAdmin && role != models.RoleYardOperator {
		utils.SendValidationError(c, "cargo must be ADMIN or OPERADOR_PATIO")
		return
	}
	if role == models.RoleYardOperator && strings.TrimSpace(req.YardName) == "" {
		utils.SendValidationError(c, "OPERADOR_PATIO requires a yard")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	var created models.User
	err = ac.repo.Update(func(snap *repositories.Snapshot) error {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		for _, u := range snap.Users {
			if strings.ToLower(u.Email) == email {
				return errEmailTaken
			}
		}

		// An operator account must point at a yard that exists.
		if req.YardName != "" {
			if !yardExists(snap.Yards, req.YardName) {
				return services.ErrUnknownYard
			}
		}

		created = models.User{
			ID:       services.NextUserID(snap.Users),
			Name:     strings.TrimSpace(req.Name),
			Email:    email,
			Password: string(hashed),
			Role:     role,
			YardName: strings.TrimSpace(req.YardName),
		}
		snap.Users = append(snap.Users, created)
		return nil
	})
	if err != nil {
		switch err {
		case errEmailTaken:
			utils.SendError(c, http.StatusConflict, "Email already registered")
		case services.ErrUnknownYard:
			utils.SendValidationError(c, err.Error())
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	created.Password = ""
	c.JSON(http.StatusCreated, created)
}

// GetProfile returns the authenticated user.
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	snap, err := ac.repo.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	for _, u := range snap.Users {
		if u.ID == userID {
			u.Password = ""
			c.JSON(http.StatusOK, u)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
}

func (ac *AuthController) generateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"cargo": string(user.Role),
		"jti":   uuid.New().String(),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(72 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
