package admin

import (
	"matka/database"
	"matka/helpers"
	"matka/ledger"
	"matka/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

type SetCommissionRequest struct {
	UserCode string `json:"user_code"`
	RateBps  int64  `json:"rate_bps"` // x10000, 10000 = 100%
}

// SetCommission configures the revenue-share rate for one subadmin.
func SetCommission(c *fiber.Ctx) error {
	var req SetCommissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.RateBps <= 0 || req.RateBps > ledger.RateScale {
		return helpers.JSONError(c, "RATE_MUST_BE_WITHIN_SCALE")
	}

	actor, ok := c.Locals("actor").(models.User)
	if !ok || actor.Role != models.RoleAdmin {
		return helpers.JSONError(c, "ONLY_ADMIN_CAN_SET_COMMISSION")
	}

	var subadmin models.User
	if err := database.DB.
		Where("user_code = ? AND role = ? AND is_active = true", req.UserCode, models.RoleSubadmin).
		First(&subadmin).Error; err != nil {
		return helpers.JSONError(c, "SUBADMIN_NOT_FOUND")
	}

	rate := models.CommissionRate{SubadminID: subadmin.ID, RateBps: req.RateBps}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subadmin_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate_bps", "updated_at"}),
	}).Create(&rate).Error
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_SET_COMMISSION")
	}

	return helpers.JSONSuccess(c, "Commission rate updated", fiber.Map{
		"user_code": subadmin.UserCode,
		"rate_bps":  req.RateBps,
	})
}
