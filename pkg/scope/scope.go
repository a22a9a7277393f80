package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"localization-srv/internal/model"
)

// HeaderName carries the base64 encoded JSON scope.
const HeaderName = "X-Scope"

type ctxKey struct{}

// Anonymous is the scope of a request without an X-Scope header.
func Anonymous() model.Scope {
	return model.Scope{UserID: model.AnonymousUserID}
}

func CreateScopeHeader(scope model.Scope) (string, error) {
	jsonData, err := json.Marshal(scope)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(jsonData), nil
}

// ParseScopeHeader decodes an X-Scope value. An empty header yields the anonymous scope.
func ParseScopeHeader(scopeHeader string) (model.Scope, error) {
	if scopeHeader == "" {
		return Anonymous(), nil
	}

	jsonData, err := base64.StdEncoding.DecodeString(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	var scope model.Scope
	if err := json.Unmarshal(jsonData, &scope); err != nil {
		return model.Scope{}, err
	}
	if scope.UserID == "" {
		scope.UserID = model.AnonymousUserID
	}
	return scope, nil
}

func SetScopeToContext(ctx context.Context, scope model.Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, scope)
}

// GetScopeFromContext returns the scope stored in ctx, or the anonymous scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	if sc, ok := ctx.Value(ctxKey{}).(model.Scope); ok {
		return sc
	}
	return Anonymous()
}
