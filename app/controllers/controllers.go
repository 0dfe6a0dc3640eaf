// Package controllers is the HTTP layer: decode input, ask the policy, call
// the service, shape the response. No business rules live here.
package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"shopapi/app/policies"
	"shopapi/pkg/auth"
	"shopapi/pkg/logger"
	"shopapi/pkg/response"
)

// authorize runs the policy check and writes the 401/403 response on denial.
// Returns true when the request may proceed.
func authorize(w http.ResponseWriter, r *http.Request, action policies.Action, resource policies.Resource, ownerID uint) bool {
	switch policies.Decide(auth.FromCtx(r.Context()), action, resource, ownerID) {
	case policies.Unauthenticated:
		response.Unauthorized(w)
		return false
	case policies.Forbidden:
		response.Forbidden(w)
		return false
	}
	return true
}

// pathID parses the {id} route parameter. ok=false means the response was
// already written.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.NotFound(w)
		return 0, false
	}
	return uint(id), true
}

// pageLimit reads pagination parameters; zero values let the repository
// apply its defaults.
func pageLimit(q url.Values) (int, int) {
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return page, limit
}

// fail maps a repository/service error onto 404 or 500.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	logger.WithCtx(r.Context()).Error("request failed", "error", err)
	response.Error(w, http.StatusInternalServerError, "Internal Server Error")
}
