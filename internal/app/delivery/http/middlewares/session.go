package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"trekora-service/internal/app/models"
	"trekora-service/internal/pkg/constvars"
	"trekora-service/internal/pkg/exceptions"
	"trekora-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// SessionRequired rejects requests without a valid bearer token backed by an
// active redis session. The decoded session data is placed on the request
// context for downstream handlers.
func (m *Middlewares) SessionRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorizationHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authorizationHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("missing authorization header")))
			return
		}

		tokenString := strings.TrimPrefix(authorizationHeader, "Bearer ")
		if tokenString == authorizationHeader || tokenString == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("malformed authorization header")))
			return
		}

		sessionID, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
		rawSession, err := m.RedisRepository.Get(r.Context(), sessionKey)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if rawSession == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(fmt.Errorf("session %s", sessionID)))
			return
		}

		sessionData := &models.SessionData{}
		if err := json.Unmarshal([]byte(rawSession), sessionData); err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
