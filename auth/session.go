package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/JamesBarr456/tienda-api/store"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type sessionRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /auth/session
// CreateSession looks the account up by email and issues a JWT for it.
// This is the whole of the session layer: one id-producing contract.
func CreateSession(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := users.ByEmail(req.Email)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		token, err := issueToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id":    user.ID,
			"token":      token,
			"expires_at": time.Now().Add(24 * time.Hour),
		})
	}
}

func issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
