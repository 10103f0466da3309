package v1handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pcbinspect/internal/config"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/logger"
	"pcbinspect/pkg/serrors"
)

type CtxKey string

// OperatorIDKey is the context key of the authenticated operator.
const OperatorIDKey CtxKey = "OperatorID"

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying RS256 tokens.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates bearer tokens issued by the jwt command.
type SecHandler struct {
	parser *jwt.Parser
	keyFn  jwt.Keyfunc
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return nil, errors.New("jwt public key is required")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not parse RSA public key")
	}

	return &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
		keyFn: func(*jwt.Token) (any, error) { return key, nil },
	}, nil
}

// HandleBearerAuth verifies token and stores the operator in the returned
// context. The token subject must be a UUID.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, s.keyFn); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, OperatorIDKey, domain.OperatorID(id)), nil
}

// Middleware rejects requests without a valid Authorization bearer token.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			s.reject(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			s.reject(w, r, err)

			return
		}

		ctx = logger.WithFields(ctx, zap.Stringer("operator", GetOperatorIDFromContext(ctx)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *SecHandler) reject(w http.ResponseWriter, r *http.Request, err error) {
	(&Handler{}).writeError(w, r, err)
}

// GetOperatorIDFromContext returns the authenticated operator, or the zero
// value outside an authenticated request.
func GetOperatorIDFromContext(ctx context.Context) domain.OperatorID {
	id, _ := ctx.Value(OperatorIDKey).(domain.OperatorID)

	return id
}
