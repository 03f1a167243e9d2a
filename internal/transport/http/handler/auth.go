package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/transport/http/views"
	"github.com/ErlanBelekov/wanderstore/internal/usecase"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.Session, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	cookies     Cookies
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, cookies Cookies, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		cookies:     cookies,
		logger:      logger.With("component", "auth_handler"),
	}
}

type loginForm struct {
	Email    string `form:"email"    binding:"required"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	Name     string `form:"name"     binding:"required,max=100"`
	Email    string `form:"email"    binding:"required,email,max=254"`
	Password string `form:"password" binding:"required,min=6"`
	Color    string `form:"color"    binding:"omitempty,oneof=teal coral gold olive navy plum"`
}

// GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", page(c, "Log in", nil))
}

// POST /login
// Unknown emails and wrong passwords get the same 401 page.
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", page(c, "Log in", gin.H{
			"Error": errLoginFieldsMissing,
			"Email": form.Email,
		}))
		return
	}

	session, err := h.authUsecase.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if domain.KindOf(err) == domain.KindAuth {
			c.HTML(http.StatusUnauthorized, "login.html", page(c, "Log in", gin.H{
				"Error": errInvalidCredentials,
				"Email": form.Email,
			}))
			return
		}
		renderError(c, h.logger, err, errPageNotFound)
		return
	}

	h.cookies.set(c, session)
	c.Redirect(http.StatusFound, "/")
}

// GET /register
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", page(c, "Register", registerData(registerForm{}, "", false)))
}

// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	h.register(c, false)
}

// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.clear(c)
	c.Redirect(http.StatusFound, "/login")
}

// register backs both /register and /new. member selects the
// "add family member" wording of the form.
func (h *AuthHandler) register(c *gin.Context, member bool) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", page(c, "Register", registerData(form, bindMessage(err), member)))
		return
	}

	session, err := h.authUsecase.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Color:    form.Color,
	})
	if err != nil {
		switch domain.KindOf(err) {
		case domain.KindConflict:
			c.HTML(http.StatusConflict, "register.html", page(c, "Register", registerData(form, errEmailTaken, member)))
		case domain.KindValidation:
			c.HTML(http.StatusBadRequest, "register.html", page(c, "Register", registerData(form, validationMessage(err), member)))
		default:
			renderError(c, h.logger, err, errPageNotFound)
		}
		return
	}

	h.cookies.set(c, session)
	c.Redirect(http.StatusFound, "/")
}

func registerData(form registerForm, msg string, member bool) gin.H {
	color := form.Color
	if color == "" {
		color = views.Colors[0]
	}
	return gin.H{
		"Error":  msg,
		"Name":   form.Name,
		"Email":  form.Email,
		"Color":  color,
		"Colors": views.Colors,
		"Member": member,
	}
}
