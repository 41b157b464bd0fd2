package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"hirehub-backend/config"
	"hirehub-backend/internal/delivery/http/response"
	"hirehub-backend/internal/domain"
	"hirehub-backend/pkg/apperror"
	"hirehub-backend/pkg/auth"
	"hirehub-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const AuthCookieName = "auth_token"

var (
	errNoToken      = errors.New("no token")
	errInvalidToken = errors.New("invalid token")
	errUnknownUser  = errors.New("user not found")
)

var authFailureMessages = map[error]string{
	errNoToken:      "Authorization header or auth_token cookie required",
	errInvalidToken: "Invalid token",
	errUnknownUser:  "User not found",
}

// reject answers 401 for credential failures. Anything else, such as the user lookup failing,
// goes to the error handler as a 500.
func reject(c *gin.Context, err error) {
	if msg, ok := authFailureMessages[err]; ok {
		response.Error(c, http.StatusUnauthorized, msg, nil)
	} else {
		c.Error(err)
	}
	c.Abort()
}

// AuthMiddleware rejects requests without a valid token
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, jwksProvider, cfg, authUC); err != nil {
			reject(c, err)
			return
		}
		c.Next()
	}
}

// OptionalAuth lets anonymous requests through but still rejects a bad token
func OptionalAuth(jwksProvider *auth.Provider, cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, jwksProvider, cfg, authUC); err != nil && !errors.Is(err, errNoToken) {
			reject(c, err)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}

// authenticate validates the token and loads the user; the role always comes from the database
func authenticate(c *gin.Context, jwksProvider *auth.Provider, cfg *config.Config, authUC domain.AuthUsecase) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return errNoToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			if cfg.JWTSecret == "" {
				return nil, fmt.Errorf("HS256 token received but JWT_SECRET is not configured")
			}
			return []byte(cfg.JWTSecret), nil
		case *jwt.SigningMethodRSA:
			if !jwksProvider.Enabled() {
				return nil, fmt.Errorf("RS256 token received but JWKS_URL is not configured")
			}
			return jwksProvider.KeyFunc(token)
		}
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	})
	if err != nil || !token.Valid {
		logger.Log.DebugContext(c.Request.Context(), "Token validation failed", "error", err)
		return errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errInvalidToken
	}
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)

	user, err := authUC.GetCurrentUser(c.Request.Context(), sub)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusUnauthorized {
			return errUnknownUser
		}
		return err
	}

	c.Set(string(domain.KeyUserID), user.ID)
	c.Set(string(domain.KeyUserEmail), email)
	c.Set(string(domain.KeyUserRole), user.Role)
	c.Set(string(domain.KeyUserName), user.Username)
	return nil
}

// ViewerFromContext reads the identity set by the auth middlewares; anonymous when unset
func ViewerFromContext(c *gin.Context) domain.Viewer {
	return domain.Viewer{
		UserID:   c.GetString(string(domain.KeyUserID)),
		Username: c.GetString(string(domain.KeyUserName)),
		Role:     c.GetString(string(domain.KeyUserRole)),
	}
}
