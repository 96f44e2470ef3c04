package users

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
	"github.com/heberxp77/AsistenciaWeb/app/validation"
)

func GetUsersAPI(c *fiber.Ctx) error {
	role := models.Role(c.Query("role"))
	if role != "" && !models.ValidRole(role) {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}

	users, err := database.GetAllUsers(config.GetDB(), role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	if c.QueryBool("active_only") {
		filtered := make([]*models.User, 0, len(users))
		for _, user := range users {
			if user.IsActive {
				filtered = append(filtered, user)
			}
		}
		users = filtered
	}

	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}

func CreateUserAPI(c *fiber.Ctx) error {
	type CreateUserRequest struct {
		Email       string      `json:"email" validate:"required,email"`
		Password    string      `json:"password" validate:"required,min=8"`
		DisplayName string      `json:"displayName" validate:"required"`
		Role        models.Role `json:"role" validate:"required,oneof=admin teacher area_manager"`
		PhotoURL    *string     `json:"photoURL,omitempty"`
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Email:       req.Email,
		Password:    hashedPassword,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		PhotoURL:    req.PhotoURL,
		IsActive:    true,
	}

	if err := database.CreateUser(config.GetDB(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

func UpdateUserAPI(c *fiber.Ctx) error {
	type UpdateUserRequest struct {
		Email       string      `json:"email" validate:"required,email"`
		DisplayName string      `json:"displayName" validate:"required"`
		Role        models.Role `json:"role" validate:"required,oneof=admin teacher area_manager"`
		PhotoURL    *string     `json:"photoURL,omitempty"`
		Active      bool        `json:"active"`
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user := &models.User{
		ID:          c.Params("id"),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		PhotoURL:    req.PhotoURL,
		IsActive:    req.Active,
	}

	if err := database.UpdateUser(config.GetDB(), user); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    user,
	})
}

func DeleteUserAPI(c *fiber.Ctx) error {
	if c.Params("id") == c.Locals("user_id").(string) {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot delete your own account"})
	}
	if err := database.DeleteUser(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
