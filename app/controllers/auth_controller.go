package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/oussama2210/intimate-essentials-shop/app/consts"
	"github.com/oussama2210/intimate-essentials-shop/app/models"
)

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin handles POST /api/admin/login.
func (server *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.respondError(w, http.StatusBadRequest, consts.ErrCodeValidation, "Invalid JSON payload")
		return
	}
	if err := server.validate.Struct(req); err != nil {
		server.respondValidationError(w, consts.ErrCodeValidation, err)
		return
	}

	adminModel := models.AdminUser{}
	admin, err := adminModel.FindByEmail(server.DB, req.Email)
	if err != nil || !ComparePassword(req.Password, admin.Password) {
		// Same response for unknown email and wrong password.
		server.respondError(w, http.StatusUnauthorized, consts.ErrCodeInvalidCredentials, "Invalid email or password")
		return
	}

	session, _ := server.Sessions.Get(r, sessionAdmin)
	session.Values["admin_id"] = admin.ID
	if err := session.Save(r, w); err != nil {
		log.Println("admin session save error:", err)
		server.respondError(w, http.StatusInternalServerError, consts.ErrCodeInternal, "Failed to create session")
		return
	}

	server.respondMessage(w, http.StatusOK, map[string]string{
		"id":    admin.ID,
		"name":  admin.Name,
		"email": admin.Email,
	}, "Logged in")
}

// AdminLogout handles POST /api/admin/logout.
func (server *Server) AdminLogout(w http.ResponseWriter, r *http.Request) {
	session, _ := server.Sessions.Get(r, sessionAdmin)
	delete(session.Values, "admin_id")
	session.Options.MaxAge = -1
	_ = session.Save(r, w)

	server.respondMessage(w, http.StatusOK, nil, "Logged out")
}
