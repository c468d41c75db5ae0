package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/oussama2210/intimate-essentials-shop/app/consts"
	"github.com/oussama2210/intimate-essentials-shop/app/models"
)

// Products handles GET /api/products with page-based pagination.
func (server *Server) Products(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page <= 0 {
		page = 1
	}

	perPage := 9

	productModel := models.Product{}
	products, totalRows, err := productModel.GetProducts(server.DB, perPage, page)
	if err != nil {
		log.Println("list products error:", err)
		server.respondError(w, http.StatusInternalServerError, consts.ErrCodeInternal, "Failed to fetch products")
		return
	}

	_ = server.render.JSON(w, http.StatusOK, Result{
		Success: true,
		Data: map[string]interface{}{
			"products":  products,
			"totalRows": totalRows,
			"page":      page,
			"perPage":   perPage,
		},
	})
}

// GetProductBySlug handles GET /api/products/{slug}.
func (server *Server) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	productModel := models.Product{}
	product, err := productModel.FindBySlug(server.DB, vars["slug"])
	if err != nil {
		server.respondError(w, http.StatusNotFound, consts.ErrCodeNotFound, "Product not found")
		return
	}

	server.respondData(w, http.StatusOK, product)
}
