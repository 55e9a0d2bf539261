// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"os"

	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JwtMiddleware verifies the bearer token issued by the external auth
// provider and stashes the verified claims for the handlers.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	ctx.Locals("user_id", claims["user_id"])
	if email, ok := claims["email"].(string); ok {
		ctx.Locals("email", email)
	}
	if role, ok := claims["role"].(string); ok {
		ctx.Locals("role", role)
	}
	return ctx.Next()
}

// OwnerFromCtx builds the submitter identity from verified claims.
func OwnerFromCtx(ctx *fiber.Ctx) (entity.OwnerRef, error) {
	idStr, _ := ctx.Locals("user_id").(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return entity.OwnerRef{}, apperrors.Validationf("invalid user id in token")
	}
	email, _ := ctx.Locals("email").(string)
	return entity.OwnerRef{Id: id, Email: email}, nil
}

// AdminActorFromCtx builds the explicit admin capability passed into
// privileged lifecycle operations. Non-admin tokens get a 403 upstream.
func AdminActorFromCtx(ctx *fiber.Ctx) (entity.AdminActor, error) {
	role, _ := ctx.Locals("role").(string)
	if role != "admin" {
		return entity.AdminActor{}, apperrors.PolicyViolationf("admin privileges required")
	}
	idStr, _ := ctx.Locals("user_id").(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return entity.AdminActor{}, apperrors.Validationf("invalid user id in token")
	}
	email, _ := ctx.Locals("email").(string)
	return entity.AdminActor{Id: id, Email: email}, nil
}
