// Package handler contains the HTTP handlers for the API
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/buzzdeck/buzzdeck/internal/api/middleware"
	"github.com/buzzdeck/buzzdeck/internal/api/response"
	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// It writes the error response itself and reports whether the handler
// should continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		fields := make(map[string]string)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[strings.ToLower(fe.Field())] = validationMessage(fe)
			}
		}
		response.ValidationError(w, "validation failed", fields)
		return false
	}

	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return "invalid value"
	}
}

// sessionContext pulls the session out of the request context, for routes
// that are authenticated but not workspace-scoped.
func sessionContext(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return nil, false
	}
	return session, true
}

// requestContext pulls the session and resolved workspace out of the
// request context. Both are set by middleware on every protected route; a
// miss means the route is wired wrong, answered as a 401.
func requestContext(w http.ResponseWriter, r *http.Request) (*domain.Session, uuid.UUID, bool) {
	session, ok := sessionContext(w, r)
	if !ok {
		return nil, uuid.Nil, false
	}
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return nil, uuid.Nil, false
	}
	return session, workspaceID, true
}
