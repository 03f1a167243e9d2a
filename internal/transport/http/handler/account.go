package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/reqctx"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type switchUserForm struct {
	User int64  `form:"user"`
	Add  string `form:"add"`
}

// POST /user
// add=new opens the family member form. Selecting the signed-in user is a
// no-op; selecting anyone else signs out so they can log in as themselves.
func (h *AuthHandler) SwitchUser(c *gin.Context) {
	var form switchUserForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, h.logger, fmt.Errorf("%w: %v", domain.ErrValidation, err), errPageNotFound)
		return
	}

	if form.Add == "new" {
		c.HTML(http.StatusOK, "register.html", page(c, "Add family member", registerData(registerForm{}, "", true)))
		return
	}

	id, _ := reqctx.Identity(c.Request.Context())
	if form.User == id.UserID {
		c.Redirect(http.StatusFound, "/")
		return
	}

	h.logger.InfoContext(c.Request.Context(), "switching user requires login", "from", id.UserID, "to", form.User)
	h.cookies.clear(c)
	c.Redirect(http.StatusFound, "/login")
}

// POST /new
// Registers a family member and switches the session to them.
func (h *AuthHandler) NewMember(c *gin.Context) {
	h.register(c, true)
}

func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errBadRequest
	}

	fe := verrs[0]
	field := fieldLabel(fe.Field())
	numeric := fe.Kind() >= reflect.Int && fe.Kind() <= reflect.Float64
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return "Enter a valid email address."
	case "min":
		if numeric {
			return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
	case "max":
		if numeric {
			return fmt.Sprintf("The %s must be at most %s.", field, fe.Param())
		}
		return fmt.Sprintf("The %s must be at most %s characters.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("Pick one of the offered %ss.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

// fieldLabel turns a Go field name like ProductID into "product id".
func fieldLabel(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(rune(name[i-1])) {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// validationMessage returns the detail a usecase attached to ErrValidation.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	i := strings.Index(msg, prefix)
	if i < 0 {
		return errBadRequest
	}
	detail := msg[i+len(prefix):]
	if detail == "" {
		return errBadRequest
	}
	return strings.ToUpper(detail[:1]) + detail[1:] + "."
}
