package providers

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

const minPrefixedKeyLength = 20

var keyPrefixes = map[Provider]string{
	Anthropic:  "sk-ant-",
	OpenRouter: "sk-or-",
}

// ValidateKey checks that key has the shape the provider issues.
// It never contacts the provider.
func ValidateKey(p Provider, key string) error {
	return validateKeyAt(p, key, time.Now())
}

func validateKeyAt(p Provider, key string, now time.Time) error {
	if _, ok := endpoints[p]; !ok {
		return types.NewError(types.ErrUnsupportedProvider, fmt.Sprintf("unsupported provider: %q", p))
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return invalidKey(p, "API key is empty")
	}

	if prefix, ok := keyPrefixes[p]; ok {
		if !strings.HasPrefix(key, prefix) {
			return invalidKey(p, fmt.Sprintf("API key must start with %q", prefix))
		}
		if len(key) < minPrefixedKeyLength {
			return invalidKey(p, "API key is too short")
		}
		return nil
	}

	return validateJWTKey(p, key, now)
}

// validateJWTKey accepts a structurally valid JWT whose exp, if present, is
// in the future. The signature is not verified.
func validateJWTKey(p Provider, key string, now time.Time) error {
	if strings.Count(key, ".") != 2 {
		return invalidKey(p, "API key must be a JWT with three segments")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return invalidKey(p, "API key is not a valid JWT").WithCause(err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return invalidKey(p, "API key has a malformed expiry").WithCause(err)
	}
	if exp != nil && !exp.After(now) {
		return invalidKey(p, fmt.Sprintf("API key expired at %s", exp.UTC().Format(time.RFC3339)))
	}
	return nil
}

func invalidKey(p Provider, msg string) *types.Error {
	return types.NewError(types.ErrInvalidAPIKey, msg).WithProvider(string(p))
}
