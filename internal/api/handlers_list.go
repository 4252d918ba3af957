package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/shopapp/shopapp-backend/internal/api/respond"
	"github.com/shopapp/shopapp-backend/internal/api/validate"
	"github.com/shopapp/shopapp-backend/internal/auth"
	"github.com/shopapp/shopapp-backend/internal/model"
	"github.com/shopapp/shopapp-backend/internal/services"
)

// ListHandler is the HTTP transport for the shoppingList/* commands.
type ListHandler struct {
	svc *services.ListService
}

func NewListHandler(svc *services.ListService) *ListHandler { return &ListHandler{svc: svc} }

var (
	createSchema = validate.Schema{
		{Field: "name", Required: true, Type: validate.TypeString},
		{Field: "description", Type: validate.TypeString},
	}
	getSchema = validate.Schema{
		{Field: "id", Required: true, Type: validate.TypeString},
	}
	listSchema = validate.Schema{
		{Field: "ownedOnly", Type: validate.TypeBoolean},
	}
	updateSchema = validate.Schema{
		{Field: "id", Required: true, Type: validate.TypeString},
		{Field: "name", Type: validate.TypeString},
		{Field: "description", Type: validate.TypeString},
	}
	deleteSchema = validate.Schema{
		{Field: "id", Required: true, Type: validate.TypeString},
	}
	addMemberSchema = validate.Schema{
		{Field: "listId", Required: true, Type: validate.TypeString},
		{Field: "userId", Required: true, Type: validate.TypeString},
		{Field: "role", Required: true, Type: validate.TypeString, Enum: []string{string(model.RoleMember), string(model.RoleViewer)}},
	}
)

// decodeDtoIn reads the JSON command body. An empty body decodes to an
// empty dtoIn, matching commands whose fields are all optional.
func decodeDtoIn(r *http.Request) (map[string]interface{}, error) {
	var dtoIn map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&dtoIn); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]interface{}{}, nil
		}
		return nil, err
	}
	if dtoIn == nil {
		dtoIn = map[string]interface{}{}
	}
	return dtoIn, nil
}

// writeCommandError maps domain errors onto the errorMap envelope. Store
// failures are logged here and surface as a generic system error.
func writeCommandError(w http.ResponseWriter, command string, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, "Shopping list does not exist")
	case errors.Is(err, model.ErrForbidden):
		respond.WriteForbidden(w, "User is not allowed to access this shopping list")
	default:
		log.Error().Err(err).Str("command", command).Msg("command failed")
		respond.WriteInternalError(w, "Unexpected system error")
	}
}

// optionalString returns the field as *string when it is present and
// non-null. The schema has already rejected non-string values.
func optionalString(dtoIn map[string]interface{}, field string) *string {
	if v, ok := dtoIn[field].(string); ok {
		return &v
	}
	return nil
}

// Create POST /shoppingList/create
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	dtoIn, err := decodeDtoIn(r)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if errs := validate.DtoIn(createSchema, dtoIn); errs != nil {
		respond.WriteValidationErrors(w, errs, dtoIn)
		return
	}

	caller := auth.IdentityFromContext(r.Context())
	l, err := h.svc.CreateList(r.Context(), caller.ID, dtoIn["name"].(string), optionalString(dtoIn, "description"))
	if err != nil {
		writeCommandError(w, "shoppingList/create", err)
		return
	}
	respond.WriteResult(w, respond.Envelope{"shoppingList": shoppingListDTO(l)})
}

// Get POST /shoppingList/get
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	dtoIn, err := decodeDtoIn(r)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if errs := validate.DtoIn(getSchema, dtoIn); errs != nil {
		respond.WriteValidationErrors(w, errs, dtoIn)
		return
	}

	caller := auth.IdentityFromContext(r.Context())
	l, err := h.svc.GetList(r.Context(), caller.ID, dtoIn["id"].(string))
	if err != nil {
		writeCommandError(w, "shoppingList/get", err)
		return
	}
	respond.WriteResult(w, respond.Envelope{"shoppingList": shoppingListDTO(l)})
}

// List POST /shoppingList/list
func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	dtoIn, err := decodeDtoIn(r)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if errs := validate.DtoIn(listSchema, dtoIn); errs != nil {
		respond.WriteValidationErrors(w, errs, dtoIn)
		return
	}
	ownedOnly, _ := dtoIn["ownedOnly"].(bool)

	caller := auth.IdentityFromContext(r.Context())
	lists, err := h.svc.ListLists(r.Context(), caller.ID, ownedOnly)
	if err != nil {
		writeCommandError(w, "shoppingList/list", err)
		return
	}
	respond.WriteResult(w, respond.Envelope{"itemList": shoppingListsDTO(lists)})
}

// Update POST /shoppingList/update
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	dtoIn, err := decodeDtoIn(r)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if errs := validate.DtoIn(updateSchema, dtoIn); errs != nil {
		respond.WriteValidationErrors(w, errs, dtoIn)
		return
	}

	patch := services.ListPatch{
		Name:        optionalString(dtoIn, "name"),
		Description: optionalString(dtoIn, "description"),
	}
	// An explicit JSON null clears the description; an absent field leaves
	// it untouched.
	if v, present := dtoIn["description"]; present && v == nil {
		patch.ClearDescription = true
	}

	caller := auth.IdentityFromContext(r.Context())
	l, err := h.svc.UpdateList(r.Context(), caller.ID, dtoIn["id"].(string), patch)
	if err != nil {
		writeCommandError(w, "shoppingList/update", err)
		return
	}
	respond.WriteResult(w, respond.Envelope{"shoppingList": shoppingListDTO(l)})
}

// Delete POST /shoppingList/delete
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	dtoIn, err := decodeDtoIn(r)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if errs := validate.DtoIn(deleteSchema, dtoIn); errs != nil {
		respond.WriteValidationErrors(w, errs, dtoIn)
		return
	}

	caller := auth.IdentityFromContext(r.Context())
	if err := h.svc.DeleteList(r.Context(), caller.ID, dtoIn["id"].(string)); err != nil {
		writeCommandError(w, "shoppingList/delete", err)
		return
	}
	respond.WriteResult(w, respond.Envelope{})
}

// AddMember POST /shoppingList/addMember
func (h *ListHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	dtoIn, err := decodeDtoIn(r)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if errs := validate.DtoIn(addMemberSchema, dtoIn); errs != nil {
		respond.WriteValidationErrors(w, errs, dtoIn)
		return
	}

	caller := auth.IdentityFromContext(r.Context())
	l, err := h.svc.AddMember(r.Context(), caller.ID,
		dtoIn["listId"].(string), dtoIn["userId"].(string), model.Role(dtoIn["role"].(string)))
	if err != nil {
		writeCommandError(w, "shoppingList/addMember", err)
		return
	}
	respond.WriteResult(w, respond.Envelope{"shoppingList": shoppingListDTO(l)})
}
