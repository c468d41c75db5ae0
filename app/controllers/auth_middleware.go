package controllers

import (
	"net/http"

	"github.com/oussama2210/intimate-essentials-shop/app/consts"
)

// AdminRequired guards the back-office endpoints behind the admin session.
func (server *Server) AdminRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := server.Sessions.Get(r, sessionAdmin)
		if err != nil || session.Values["admin_id"] == nil {
			server.respondError(w, http.StatusUnauthorized, consts.ErrCodeUnauthorized, "Admin login required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
