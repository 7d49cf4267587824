package serverutils

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/access"
)

const identityLocalsKey = "identity"

// IdentityResolver resolves a bearer token to an identity. Unknown, expired,
// or missing tokens resolve to the anonymous identity without error.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) access.Identity
}

// IdentityMiddleware resolves the caller once per request and stashes the
// result in Locals. It never rejects a request; endpoints that need an
// authenticated caller enforce that themselves.
func IdentityMiddleware(resolver IdentityResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := ""
		authHeader := ctx.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		identity := resolver.Resolve(ctx.Context(), token)
		ctx.Locals(identityLocalsKey, identity)
		return ctx.Next()
	}
}

// IdentityFromCtx returns the identity stored by IdentityMiddleware, or the
// anonymous identity when the middleware did not run.
func IdentityFromCtx(ctx *fiber.Ctx) access.Identity {
	if identity, ok := ctx.Locals(identityLocalsKey).(access.Identity); ok {
		return identity
	}
	return access.Anonymous()
}
