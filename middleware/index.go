package middleware

import (
	"errors"
	"strings"
	"time"

	"movie_ticket_booking/config"
	"movie_ticket_booking/constants"
	"movie_ticket_booking/model"
	"movie_ticket_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type principalClaims struct {
	UserId   uint   `json:"userId"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
	Verified bool   `json:"verified"`
	jwt.RegisteredClaims
}

// SignToken issues the access token the auth handlers hand out.
func SignToken(user *model.User, ttl time.Duration) (string, error) {
	claims := principalClaims{
		UserId:   user.ID,
		Role:     user.Role,
		Active:   user.Active,
		Verified: user.Verified,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Config("JWT_SECRET")))
}

// Protected verifies the token and attaches the principal to the request.
// It authenticates only; authorization is AccessAllowedTo's job and must be
// declared after this in the route chain.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.NewError(constants.MISSING_TOKEN, fiber.StatusUnauthorized)
		}

		claims := new(principalClaims)
		jwtToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(config.Config("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.NewError(constants.INVALID_TOKEN, fiber.StatusUnauthorized)
		}

		if !claims.Active {
			return utils.NewError(constants.FORBIDDEN, fiber.StatusForbidden)
		}

		c.Locals(constants.LocalPrincipal, &model.Principal{
			UserId:   claims.UserId,
			Role:     claims.Role,
			Active:   claims.Active,
			Verified: claims.Verified,
		})
		return c.Next()
	}
}

// PrincipalFromCtx returns the authenticated principal, nil when the route
// never ran Protected.
func PrincipalFromCtx(c *fiber.Ctx) *model.Principal {
	p, _ := c.Locals(constants.LocalPrincipal).(*model.Principal)
	return p
}

// AccessAllowedTo permits only the given roles. A missing principal means the
// route chain was wired without Protected, which is a server fault and fails
// loud rather than letting the request through.
func AccessAllowedTo(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *fiber.Ctx) error {
		principal := PrincipalFromCtx(c)
		if principal == nil {
			return utils.NewError("access control invoked without an authenticated principal", fiber.StatusInternalServerError)
		}
		if !allowed[principal.Role] {
			return utils.NewError(constants.FORBIDDEN, fiber.StatusForbidden)
		}
		return c.Next()
	}
}
