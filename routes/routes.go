package routes

import (
	"matka/controllers/admin"
	"matka/controllers/bet"
	"matka/controllers/market"
	"matka/controllers/user"
	"matka/controllers/wallet"
	"matka/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	adminroutes := app.Group("/admin", middlewares.AdminAuth)
	adminroutes.Post("/users/register", admin.RegisterUser)
	adminroutes.Post("/transaction", admin.Transaction)
	adminroutes.Post("/selffund", admin.SelfFund)
	adminroutes.Post("/commission", admin.SetCommission)
	adminroutes.Post("/wallet/review", wallet.Review)

	marketroutes := app.Group("/market", middlewares.AdminAuth)
	marketroutes.Post("/create", market.Create)
	marketroutes.Post("/transition", market.Transition)
	marketroutes.Post("/declare", market.Declare)
	marketroutes.Get("/:id/summary", market.Summary)

	playerroutes := app.Group("/user", middlewares.PlayerAuth)
	playerroutes.Post("/balance", user.Balance)
	playerroutes.Get("/history", user.History)
	playerroutes.Post("/wallet/request", wallet.Create)

	betroutes := app.Group("/bet", middlewares.PlayerAuth)
	betroutes.Post("/place", bet.Place)
}
