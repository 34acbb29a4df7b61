// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"comerciojusto/config"
	"comerciojusto/internal/delivery/http/middleware"
	"comerciojusto/internal/delivery/http/router/handler"
	"comerciojusto/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	CatalogHandler    *handler.CatalogHandler
	AuthHandler       *handler.AuthHandler
	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	DashboardHandler  *handler.DashboardHandler
	ProfileHandler    *handler.ProfileHandler
	AdminHandler      *handler.AdminHandler
	MessageHandler    *handler.MessageHandler
	HealthHandler     *handler.HealthHandler
	SessionMiddleware *middleware.SessionMiddleware
	Collectors        *metrics.Collectors `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg        *config.Config
	catalog    *handler.CatalogHandler
	auth       *handler.AuthHandler
	cart       *handler.CartHandler
	checkout   *handler.CheckoutHandler
	dashboard  *handler.DashboardHandler
	profile    *handler.ProfileHandler
	admin      *handler.AdminHandler
	message    *handler.MessageHandler
	health     *handler.HealthHandler
	session    *middleware.SessionMiddleware
	collectors *metrics.Collectors
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:        params.Config,
		catalog:    params.CatalogHandler,
		auth:       params.AuthHandler,
		cart:       params.CartHandler,
		checkout:   params.CheckoutHandler,
		dashboard:  params.DashboardHandler,
		profile:    params.ProfileHandler,
		admin:      params.AdminHandler,
		message:    params.MessageHandler,
		health:     params.HealthHandler,
		session:    params.SessionMiddleware,
		collectors: params.Collectors,
	}
}

// RegisterRoutes sets up all the routes of the storefront.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Machine endpoints, outside the session
	e.GET("/health", r.health.HealthCheck)
	e.POST("/webhook/stripe/", r.checkout.Webhook)
	if r.cfg.Metrics.Enabled && r.collectors != nil {
		e.GET("/metrics", echo.WrapHandler(r.collectors.Handler()))
	}

	site := e.Group("", r.session.Load)
	{
		site.GET("/", r.catalog.Index)
		site.GET("/produto/:id/", r.catalog.ProductDetail)
		site.POST("/produto/:id/", r.catalog.AddReview)
		site.GET("/produto/:id/qrcode.png", r.catalog.ProductQRCode)
		site.GET("/perfil/:id/", r.catalog.PublicProfile)
		site.GET("/media/*", r.profile.Media)

		site.GET("/login/", r.auth.LoginPage)
		site.POST("/login/", r.auth.Login)
		site.POST("/login/google/", r.auth.GoogleLogin)
		site.GET("/cadastro/", r.auth.RegisterPage)
		site.POST("/cadastro/", r.auth.Register)
		site.GET("/logout/", r.auth.Logout)
		site.GET("/acesso-negado/", r.auth.AccessDenied)

		site.POST("/carrinho/adicionar/", r.cart.Add)
		site.GET("/carrinho/", r.cart.View)
		site.POST("/carrinho/", r.cart.Remove)

		site.POST("/pagamento/", r.checkout.Create)
		site.GET("/sucesso/", r.checkout.Success)
		site.GET("/cancelado/", r.checkout.Cancel)
	}

	// Pages that need a logged-in user. Guards go on the routes: a guarded group would
	// also catch unknown paths and send them to the login page.
	login := r.session.RequireLogin
	{
		site.GET("/pos-login/", r.auth.PostLogin, login)
		site.GET("/completar-cadastro-social/", r.auth.CompleteSignupPage, login)
		site.POST("/completar-cadastro-social/", r.auth.CompleteSignup, login)
		site.POST("/desconectar-google/", r.auth.DisconnectGoogle, login)

		site.GET("/dashboard/", r.dashboard.Show, login)
		site.POST("/dashboard/", r.dashboard.Submit, login)
		site.GET("/meu-perfil/", r.profile.Edit, login)
		site.POST("/meu-perfil/", r.profile.Update, login)

		site.GET("/caixa-entrada/", r.message.Inbox, login)
		site.POST("/caixa-entrada/", r.message.InboxAction, login)
		site.GET("/conversa/:usuario_id/", r.message.Conversation, login)
		site.POST("/conversa/:usuario_id/", r.message.Reply, login)
		site.POST("/mensagem/enviar/:id/", r.message.Send, login)
		site.POST("/mensagem/marcar-lida/:id/", r.message.MarkRead, login)
	}

	// Certification review
	admin := []echo.MiddlewareFunc{login, r.session.RequireAdmin}
	{
		site.GET("/admin/certificacoes/", r.admin.Certifications, admin...)
		site.POST("/admin/certificacoes/", r.admin.ReviewCertification, admin...)
	}
}
