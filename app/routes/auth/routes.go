package auth

import (
	"strings"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authAPI := app.Group("/api/auth")

	// Public routes
	authAPI.Post("/login", LoginAPI)
	authAPI.Post("/logout", LogoutAPI)

	// Protected routes
	authAPI.Use(AuthMiddleware)
	authAPI.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates JWT and sets user context
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	tokenString := c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	// Validate JWT token
	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	// Create user object from claims
	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsActive:  true,
	}

	// Convert role names to role objects
	roles := make([]*models.Role, len(claims.Roles))
	for i, roleName := range claims.Roles {
		roles[i] = &models.Role{Name: roleName}
	}
	user.Roles = roles

	// Set user context
	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user_roles", roles)
	c.Locals("user", user)

	return c.Next()
}

// RoleMiddleware checks if the authenticated user holds one of the required roles
func RoleMiddleware(required ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles, ok := c.Locals("user_roles").([]*models.Role)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No roles found"})
		}

		for _, role := range roles {
			for _, name := range required {
				if role.Name == name {
					return c.Next()
				}
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}
