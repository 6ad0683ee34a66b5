package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"talenthub_backend/internals/configs"
)

const expirySkew = 30 * time.Second

// AuthMiddleware verifies the bearer token, checks the user is still active
// and stores {user_id, userRole} in locals. Token issuance lives elsewhere;
// this only verifies.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims, err := parseClaims(tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}
		if err := validateTokenExpiry(claims, expirySkew); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		role, err := extractRole(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing role")
		}

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
		}

		storeClaimsToLocals(c, userID, role, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware is for public routes: no token means anonymous, a
// valid token still populates locals so owners see their own private records.
// An invalid token is treated as anonymous, not rejected.
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}

		claims, err := parseClaims(tokenString)
		if err != nil {
			log.Printf("[WARN] optional auth: token parse failed: %v", err)
			return c.Next()
		}
		if err := validateTokenExpiry(claims, expirySkew); err != nil {
			return c.Next()
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return c.Next()
		}
		role, err := extractRole(claims)
		if err != nil {
			return c.Next()
		}
		if err := ensureUserActive(db, userID); err != nil {
			return c.Next()
		}

		storeClaimsToLocals(c, userID, role, claims)
		return c.Next()
	}
}

func parseClaims(tokenString string) (jwt.MapClaims, error) {
	secretKey := configs.JWTSecret
	if secretKey == "" {
		return nil, errors.New("missing JWT secret")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}); err != nil {
		return nil, err
	}
	return claims, nil
}
