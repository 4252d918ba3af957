package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shopapp/shopapp-backend/internal/api/recovery"
	"github.com/shopapp/shopapp-backend/internal/auth"
	"github.com/shopapp/shopapp-backend/internal/health"
	"github.com/shopapp/shopapp-backend/internal/services"
	"github.com/shopapp/shopapp-backend/internal/store"
)

// NewRouter wires middlewares, services and command routes. Commands are
// POSTs with the dtoIn in the body; the identity middleware runs on every
// request, the profile gate per command route. healthSrc is the cached
// store health flag; nil means no checker is running.
func NewRouter(st store.Store, healthSrc health.Source) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)
	router.Use(auth.Middleware)

	listSvc := services.NewListService(st)
	listHandler := NewListHandler(listSvc)
	itemHandler := NewItemHandler(listSvc)

	gate := auth.RequireProfile(auth.CommandProfiles)

	command := func(path string, h http.HandlerFunc) {
		router.Handle(path, gate(h)).Methods("POST")
	}
	command("/shoppingList/create", listHandler.Create)
	command("/shoppingList/get", listHandler.Get)
	command("/shoppingList/list", listHandler.List)
	command("/shoppingList/update", listHandler.Update)
	command("/shoppingList/delete", listHandler.Delete)
	command("/shoppingList/addMember", listHandler.AddMember)
	command("/shoppingItem/add", itemHandler.Add)

	router.HandleFunc("/health", NewHealthHandler(healthSrc).Check).Methods("GET")

	return router
}
