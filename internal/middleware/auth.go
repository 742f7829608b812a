package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/codetok-app/backend/internal/models"
	"github.com/codetok-app/backend/internal/repositories"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware checks the bearer token and stores the user's claims in the
// request context. Local HS256 JWTs are tried first; when a Firebase client
// is configured, a Firebase ID token is accepted as a fallback and resolved
// to a local user record.
func AuthMiddleware(firebaseAuth *fbauth.Client, userRepo repositories.UserRepository, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}
			tokenString := parts[1]

			claims := &models.JwtCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})
			if err == nil && token.Valid {
				c.Set("user", claims)
				return next(c)
			}

			if firebaseAuth != nil {
				if fbClaims, fbErr := verifyFirebaseToken(c, firebaseAuth, userRepo, tokenString); fbErr == nil {
					c.Set("user", fbClaims)
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		}
	}
}

// verifyFirebaseToken validates a Firebase ID token and maps it onto the
// local user it belongs to
func verifyFirebaseToken(c echo.Context, firebaseAuth *fbauth.Client, userRepo repositories.UserRepository, idToken string) (*models.JwtCustomClaims, error) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := userRepo.GetUserByFirebaseUID(token.UID)
	if err != nil {
		return nil, err
	}

	return &models.JwtCustomClaims{UserID: user.ID, Email: user.Email}, nil
}
