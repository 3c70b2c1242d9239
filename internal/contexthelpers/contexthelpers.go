// Package contexthelpers provides typed accessors for request-scoped values.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const CurrentProfileIDContextKey = contextKey("currentProfileID")
const CurrentPathContextKey = contextKey("currentPath")

// SetCurrentProfileID stores the active profile id on the request context.
func SetCurrentProfileID(r *http.Request, profileID int) *http.Request {
	ctx := context.WithValue(r.Context(), CurrentProfileIDContextKey, profileID)
	return r.WithContext(ctx)
}

// CurrentProfileID returns the active profile id or 0 when none is set.
func CurrentProfileID(ctx context.Context) int {
	profileID, ok := ctx.Value(CurrentProfileIDContextKey).(int)
	if !ok {
		return 0
	}
	return profileID
}

// SetCurrentPath stores the request path on the request context.
func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := context.WithValue(r.Context(), CurrentPathContextKey, currentPath)
	return r.WithContext(ctx)
}

// CurrentPath returns the request path stored with [SetCurrentPath].
func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(CurrentPathContextKey).(string)
	if !ok {
		return ""
	}
	return currentPath
}
