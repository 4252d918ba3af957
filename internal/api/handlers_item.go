package api

import (
	"net/http"

	"github.com/shopapp/shopapp-backend/internal/api/respond"
	"github.com/shopapp/shopapp-backend/internal/api/validate"
	"github.com/shopapp/shopapp-backend/internal/auth"
	"github.com/shopapp/shopapp-backend/internal/services"
)

// ItemHandler is the HTTP transport for the shoppingItem/* commands.
type ItemHandler struct {
	svc *services.ListService
}

func NewItemHandler(svc *services.ListService) *ItemHandler { return &ItemHandler{svc: svc} }

var addItemSchema = validate.Schema{
	{Field: "listId", Required: true, Type: validate.TypeString},
	{Field: "name", Required: true, Type: validate.TypeString},
	{Field: "quantity", Type: validate.TypeNumber},
	{Field: "unit", Type: validate.TypeString},
}

// Add POST /shoppingItem/add
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	dtoIn, err := decodeDtoIn(r)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if errs := validate.DtoIn(addItemSchema, dtoIn); errs != nil {
		respond.WriteValidationErrors(w, errs, dtoIn)
		return
	}

	var quantity *float64
	if q, ok := dtoIn["quantity"].(float64); ok {
		quantity = &q
	}

	caller := auth.IdentityFromContext(r.Context())
	listID := dtoIn["listId"].(string)
	item, err := h.svc.AddItem(r.Context(), caller.ID,
		listID, dtoIn["name"].(string), quantity, optionalString(dtoIn, "unit"))
	if err != nil {
		writeCommandError(w, "shoppingItem/add", err)
		return
	}
	respond.WriteResult(w, respond.Envelope{"item": itemDTO{Item: *item, ListID: listID}})
}
