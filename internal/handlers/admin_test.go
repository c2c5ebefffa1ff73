package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"promptpress/internal/models"
)

func TestAdminUsersList(t *testing.T) {
	env := newTestEnv(t)
	admin := NewAdmin(env.UserStore)

	email := "admin-list@handler-test.local"
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	user, err := env.UserStore.Create(email, "longenough", "Admin", models.RoleAdmin)
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req = req.WithContext(ctxWithSession(req.Context(), testSession(user.ID, email, "admin", true)))
	rr := httptest.NewRecorder()
	admin.Users(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}

	var resp struct {
		Users []userResponse `json:"users"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for _, u := range resp.Users {
		if u.Email == email {
			found = true
			if u.Role != "admin" {
				t.Errorf("role: got %q, want admin", u.Role)
			}
		}
	}
	if !found {
		t.Error("created admin missing from user list")
	}
}

func TestAdminResetTwoFA(t *testing.T) {
	env := newTestEnv(t)
	admin := NewAdmin(env.UserStore)

	adminEmail := "admin-reset@handler-test.local"
	targetEmail := "admin-reset-target@handler-test.local"
	t.Cleanup(func() { cleanUsers(t, env.DB, adminEmail, targetEmail) })

	adminUser, err := env.UserStore.Create(adminEmail, "longenough", "Admin", models.RoleAdmin)
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	target, err := env.UserStore.Create(targetEmail, "longenough", "Target", models.RoleUser)
	if err != nil {
		t.Fatalf("create target: %v", err)
	}
	if err := env.UserStore.SetTOTPSecret(target.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("set totp secret: %v", err)
	}
	if err := env.UserStore.EnableTOTP(target.ID); err != nil {
		t.Fatalf("enable totp: %v", err)
	}

	sess := testSession(adminUser.ID, adminEmail, "admin", true)

	// Resetting yourself is forbidden.
	selfID := adminUser.ID.String()
	req := withChiURLParamAndSession(httptest.NewRequest(http.MethodPost, "/api/admin/users/"+selfID+"/reset-2fa", nil), "id", selfID, sess)
	rr := httptest.NewRecorder()
	admin.ResetTwoFA(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Errorf("self reset: got %d, want 403", rr.Code)
	}

	// Unknown user is a 404.
	randomID := uuid.NewString()
	req = withChiURLParamAndSession(httptest.NewRequest(http.MethodPost, "/api/admin/users/"+randomID+"/reset-2fa", nil), "id", randomID, sess)
	rr = httptest.NewRecorder()
	admin.ResetTwoFA(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown user: got %d, want 404", rr.Code)
	}

	// Resetting the target clears enrollment.
	targetID := target.ID.String()
	req = withChiURLParamAndSession(httptest.NewRequest(http.MethodPost, "/api/admin/users/"+targetID+"/reset-2fa", nil), "id", targetID, sess)
	rr = httptest.NewRecorder()
	admin.ResetTwoFA(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("reset: got %d: %s", rr.Code, rr.Body.String())
	}

	after, err := env.UserStore.FindByID(target.ID)
	if err != nil || after == nil {
		t.Fatalf("reload target: %v", err)
	}
	if after.TOTPEnabled {
		t.Error("totp should be disabled after reset")
	}
	if after.TOTPSecret != nil {
		t.Error("totp secret should be cleared after reset")
	}
}
