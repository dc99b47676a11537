package router

import (
	"github.com/dawid-walter/basketo-shopper-order/internal/config"
	"github.com/dawid-walter/basketo-shopper-order/internal/cooldown"
	"github.com/dawid-walter/basketo-shopper-order/internal/network/handlers"
	"github.com/dawid-walter/basketo-shopper-order/internal/network/middleware"
	"github.com/dawid-walter/basketo-shopper-order/internal/services"
	"github.com/dawid-walter/basketo-shopper-order/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config   config.Config
	Sessions storage.SessionStorage
	Auth     services.AuthService
	Orders   services.OrdersService
	Contact  services.ContactService
}

func NewRouter(config config.Config, sessions storage.SessionStorage, auth services.AuthService,
	orders services.OrdersService, contact services.ContactService) *Router {
	return &Router{
		Config:   config,
		Sessions: sessions,
		Auth:     auth,
		Orders:   orders,
		Contact:  contact,
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := jwtauth.New("HS256", []byte(router.Config.Server.SessionSecret), nil)

	r := chi.NewRouter()
	r.Use(middleware.LogHandle)
	r.Get("/healthz", handlers.HealthHandler())

	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verify(ja, jwtauth.TokenFromCookie))
		r.Use(middleware.Sessions(ja, router.Sessions, router.Config.Server.CookieSecure))

		r.Get("/login", handlers.LoginPageHandler(router.Config.Server.AuthFlow))
		r.Post("/login/back", handlers.BackToLoginHandler())
		if router.Config.Server.AuthFlow == config.AuthFlowOrderNumber {
			r.Post("/login", handlers.RequestPinByOrderHandler(router.Auth))
			r.Get("/verify-pin", handlers.VerifyPinPageHandler())
			r.Post("/verify-pin", handlers.VerifyOrderPinHandler(router.Auth, router.Orders))
			r.Post("/verify-pin/resend", handlers.ResendOrderPinHandler(router.Auth))
		} else {
			r.Post("/login", handlers.RequestPinHandler(router.Auth))
			r.Post("/login/verify", handlers.VerifyPinHandler(router.Auth))
			r.Post("/login/resend", handlers.ResendPinHandler(router.Auth))
			r.Get("/login/cooldown", handlers.CooldownHandler(cooldown.NewCountdown))
		}
		r.Post("/logout", handlers.LogoutHandler())

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession)
			r.Get("/orders", handlers.OrdersHandler(router.Orders))
			r.Get("/order/{orderNumber}", handlers.OrderHandler(router.Orders))
			r.Get("/contact", handlers.ContactPageHandler())
			r.Post("/contact", handlers.SendContactHandler(router.Contact))
		})

		r.Get("/", handlers.FallbackHandler())
		r.NotFound(handlers.FallbackHandler())
	})
	return r
}
