package admin

import (
	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

type RegisterUserRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// RegisterUser creates a player or subadmin under the acting account.
// Account management is a thin collaborator of the ledger: only the ledger
// and settlement engines ever touch the balance afterwards.
func RegisterUser(c *fiber.Ctx) error {
	var req RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Name == "" {
		return helpers.JSONError(c, "NAME_REQUIRED")
	}
	if req.Role != models.RolePlayer && req.Role != models.RoleSubadmin {
		return helpers.JSONError(c, "ROLE_MUST_BE_PLAYER_OR_SUBADMIN")
	}

	actor, ok := c.Locals("actor").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACTOR_SESSION")
	}

	// Subadmins only manage players; subadmin accounts hang off an admin.
	if req.Role == models.RoleSubadmin && actor.Role != models.RoleAdmin {
		return helpers.JSONError(c, "ONLY_ADMIN_CAN_CREATE_SUBADMIN")
	}

	assignedTo := actor.ID
	user := models.User{
		UserCode:   helpers.GenerateUserCode(req.Role),
		Name:       req.Name,
		Role:       req.Role,
		Balance:    0,
		AssignedTo: &assignedTo,
		IsActive:   true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_USER")
	}

	return helpers.JSONSuccess(c, "User registered successfully", fiber.Map{
		"user_code":   user.UserCode,
		"name":        user.Name,
		"role":        user.Role,
		"assigned_to": actor.UserCode,
	})
}
