package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/oussama2210/intimate-essentials-shop/app/consts"
)

// GetWilayas handles GET /api/wilayas. Served from the in-memory catalog;
// the database mirror exists only for foreign keys.
func (server *Server) GetWilayas(w http.ResponseWriter, r *http.Request) {
	wilayas := server.Catalog.Wilayas()
	count := len(wilayas)
	_ = server.render.JSON(w, http.StatusOK, Result{Success: true, Data: wilayas, Count: &count})
}

// GetWilayaByID handles GET /api/wilayas/{id}.
func (server *Server) GetWilayaByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 || id > 58 {
		server.respondError(w, http.StatusBadRequest, consts.ErrCodeValidation, "Invalid wilaya ID")
		return
	}

	wilaya, err := server.Catalog.WilayaByID(id)
	if err != nil {
		server.respondError(w, http.StatusNotFound, consts.ErrCodeNotFound, "Wilaya not found")
		return
	}

	server.respondData(w, http.StatusOK, wilaya)
}

// GetBaladiyasByWilaya handles GET /api/wilayas/{id}/baladiyas.
func (server *Server) GetBaladiyasByWilaya(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 || id > 58 {
		server.respondError(w, http.StatusBadRequest, consts.ErrCodeValidation, "Invalid wilaya ID")
		return
	}

	wilaya, err := server.Catalog.WilayaByID(id)
	if err != nil {
		server.respondError(w, http.StatusNotFound, consts.ErrCodeNotFound, "Wilaya not found")
		return
	}

	baladiyas, err := server.Catalog.BaladiyasByWilaya(id)
	if err != nil {
		server.respondError(w, http.StatusNotFound, consts.ErrCodeNotFound, "Wilaya not found")
		return
	}

	count := len(baladiyas)
	_ = server.render.JSON(w, http.StatusOK, Result{
		Success: true,
		Data: map[string]interface{}{
			"wilaya":    wilaya,
			"baladiyas": baladiyas,
		},
		Count: &count,
	})
}
