package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (server *Server) initializeRoutes() {
	server.Router = mux.NewRouter()

	api := server.Router.PathPrefix("/api").Subrouter()

	// Storefront
	api.HandleFunc("/products", server.Products).Methods("GET")
	api.HandleFunc("/products/{slug}", server.GetProductBySlug).Methods("GET")

	api.HandleFunc("/wilayas", server.GetWilayas).Methods("GET")
	api.HandleFunc("/wilayas/{id}", server.GetWilayaByID).Methods("GET")
	api.HandleFunc("/wilayas/{id}/baladiyas", server.GetBaladiyasByWilaya).Methods("GET")

	api.HandleFunc("/delivery/calculate", server.CalculateDeliveryCost).Methods("POST")

	api.HandleFunc("/orders", server.CreateOrder).Methods("POST")
	api.HandleFunc("/orders/tracking/{trackingNumber}", server.GetOrderByTracking).Methods("GET")

	// Back office
	api.HandleFunc("/admin/login", server.AdminLogin).Methods("POST")
	api.HandleFunc("/admin/logout", server.AdminLogout).Methods("POST")
	api.Handle("/orders", server.AdminRequired(http.HandlerFunc(server.GetOrders))).Methods("GET")
	api.Handle("/orders/{id}/status", server.AdminRequired(http.HandlerFunc(server.UpdateOrderStatus))).Methods("PATCH")
}
