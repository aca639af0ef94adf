package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const principalKey = "principal"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "No token provided, authorization denied", http.StatusUnauthorized)
	errBadToken     = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errInactive     = pkg.NewDomainErrorSimple("UNAUTHORIZED", "User account is inactive", http.StatusUnauthorized)
	errRoleDenied   = pkg.NewDomainErrorSimple("FORBIDDEN", "Your role is not allowed to perform this action", http.StatusForbidden)
)

// Authenticate resolves the bearer token into a Principal stored on the context.
func Authenticate(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		principal, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrInactiveUser):
				c.AbortWithStatusJSON(errInactive.HTTPStatus, errInactive.ToHTTPError())
			case errors.Is(err, usecase.ErrUnauthorized):
				c.AbortWithStatusJSON(errBadToken.HTTPStatus, errBadToken.ToHTTPError())
			default:
				log.WithError(err).Error("[auth][middleware] token check failed")
				appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			}
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not listed. It must run after Authenticate.
func RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if !slices.Contains(roles, p.Role) {
			c.AbortWithStatusJSON(errRoleDenied.HTTPStatus, errRoleDenied.ToHTTPError())
			return
		}
		c.Next()
	}
}

func CurrentPrincipal(c *gin.Context) (usecase.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return usecase.Principal{}, false
	}
	p, ok := v.(usecase.Principal)
	return p, ok
}

// Subject returns the authenticated caller, or a zero Subject on public routes.
func Subject(c *gin.Context) access.Subject {
	p, _ := CurrentPrincipal(c)
	return p.Subject
}

// SetPrincipal is used by tests and internal callers that authenticate out of band.
func SetPrincipal(c *gin.Context, p usecase.Principal) {
	c.Set(principalKey, p)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
