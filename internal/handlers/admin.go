// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptpress/internal/middleware"
	"promptpress/internal/store"
)

// Admin handles user management endpoints. All routes are mounted behind
// the admin-role guard.
type Admin struct {
	userStore *store.UserStore
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(userStore *store.UserStore) *Admin {
	return &Admin{userStore: userStore}
}

// Users handles GET /api/admin/users.
func (a *Admin) Users(w http.ResponseWriter, r *http.Request) {
	users, err := a.userStore.List()
	if err != nil {
		slog.Error("list users failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not list users")
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	respondJSON(w, http.StatusOK, map[string]any{"users": out})
}

// ResetTwoFA handles POST /api/admin/users/{id}/reset-2fa. It clears another
// user's TOTP enrollment, forcing re-setup on next login.
func (a *Admin) ResetTwoFA(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	// Admins cannot reset their own 2FA through this endpoint.
	if targetID == sess.UserID {
		respondError(w, http.StatusForbidden, "cannot reset your own two-factor authentication")
		return
	}

	target, err := a.userStore.FindByID(targetID)
	if err != nil {
		slog.Error("find user failed", "error", err, "user", targetID)
		respondError(w, http.StatusInternalServerError, "could not reset two-factor authentication")
		return
	}
	if target == nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}

	if err := a.userStore.ResetTOTP(targetID); err != nil {
		slog.Error("reset 2fa failed", "error", err, "user", targetID)
		respondError(w, http.StatusInternalServerError, "could not reset two-factor authentication")
		return
	}

	slog.Info("2fa reset by admin", "admin", sess.Email, "target_user", targetID)
	respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
