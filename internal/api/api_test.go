package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopapp/shopapp-backend/internal/store/memstore"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(memstore.New(), nil))
	t.Cleanup(srv.Close)
	return srv
}

// call posts dtoIn to a command with the identity headers set and decodes
// the envelope.
func call(t *testing.T, srv *httptest.Server, userID, profiles, command string, dtoIn map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()

	body, err := json.Marshal(dtoIn)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, srv.URL+command, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	if profiles != "" {
		req.Header.Set("X-User-Profiles", profiles)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func createList(t *testing.T, srv *httptest.Server, userID, name string) string {
	t.Helper()
	status, body := call(t, srv, userID, "Operatives", "/shoppingList/create", map[string]interface{}{"name": name})
	require.Equal(t, http.StatusOK, status)
	list := body["shoppingList"].(map[string]interface{})
	return list["id"].(string)
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	srv := newTestServer(t)

	status, body := call(t, srv, "u1", "Operatives", "/shoppingList/create", map[string]interface{}{
		"name":        "Groceries",
		"description": "weekly shop",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["errorMap"])

	created := body["shoppingList"].(map[string]interface{})
	assert.Equal(t, "Groceries", created["name"])
	assert.Equal(t, "weekly shop", created["description"])
	assert.Equal(t, "u1", created["ownerId"])

	members := created["members"].([]interface{})
	require.Len(t, members, 1)
	assert.Equal(t, map[string]interface{}{"userId": "u1", "role": "owner"}, members[0])

	status, body = call(t, srv, "u1", "Operatives", "/shoppingList/get", map[string]interface{}{
		"id": created["id"],
	})
	require.Equal(t, http.StatusOK, status)
	got := body["shoppingList"].(map[string]interface{})
	assert.Equal(t, created["id"], got["id"])
	assert.Equal(t, "Groceries", got["name"])
	assert.Equal(t, "weekly shop", got["description"])
	assert.Equal(t, []interface{}{}, got["items"])
}

func TestUnauthenticatedPrecedesValidation(t *testing.T) {
	srv := newTestServer(t)

	// Invalid body on every command; the missing identity must win.
	for _, command := range []string{
		"/shoppingList/create",
		"/shoppingList/get",
		"/shoppingList/list",
		"/shoppingList/update",
		"/shoppingList/delete",
		"/shoppingList/addMember",
		"/shoppingItem/add",
	} {
		status, body := call(t, srv, "", "", command, map[string]interface{}{"bogus": true})
		assert.Equal(t, http.StatusUnauthorized, status, command)
		errorMap := body["errorMap"].(map[string]interface{})
		assert.Contains(t, errorMap, "auth", command)
	}
}

func TestProfileGate(t *testing.T) {
	srv := newTestServer(t)

	status, body := call(t, srv, "u1", "Visitors", "/shoppingList/create", map[string]interface{}{"name": "Groceries"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, body["errorMap"].(map[string]interface{}), "auth")

	status, _ = call(t, srv, "u1", "Authorities", "/shoppingList/create", map[string]interface{}{"name": "Groceries"})
	assert.Equal(t, http.StatusOK, status)
}

func TestValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	status, body := call(t, srv, "u1", "Operatives", "/shoppingList/addMember", map[string]interface{}{
		"role": "owner",
	})
	require.Equal(t, http.StatusBadRequest, status)

	errorMap := body["errorMap"].(map[string]interface{})
	validation := errorMap["validation"].(map[string]interface{})
	assert.Equal(t, "Field is required", validation["listId"])
	assert.Equal(t, "Field is required", validation["userId"])
	assert.Equal(t, "Field must be one of: member, viewer", validation["role"])

	// dtoIn is echoed back alongside the violations.
	assert.Equal(t, map[string]interface{}{"role": "owner"}, body["dtoIn"])
}

func TestGetMissingList(t *testing.T) {
	srv := newTestServer(t)

	status, body := call(t, srv, "u1", "Operatives", "/shoppingList/get", map[string]interface{}{
		"id": "5f1f77bcf86cd799439011aa",
	})
	require.Equal(t, http.StatusNotFound, status)
	errorMap := body["errorMap"].(map[string]interface{})
	assert.Contains(t, errorMap, "notFound")
}

func TestResourceGate(t *testing.T) {
	srv := newTestServer(t)
	listID := createList(t, srv, "u1", "Groceries")

	// Stranger with a valid profile cannot read.
	status, _ := call(t, srv, "u2", "Operatives", "/shoppingList/get", map[string]interface{}{"id": listID})
	assert.Equal(t, http.StatusForbidden, status)

	// Non-owner cannot add members.
	status, _ = call(t, srv, "u2", "Operatives", "/shoppingList/addMember", map[string]interface{}{
		"listId": listID, "userId": "u3", "role": "member",
	})
	assert.Equal(t, http.StatusForbidden, status)

	// Owner shares the list; the member can read but still not manage.
	status, _ = call(t, srv, "u1", "Operatives", "/shoppingList/addMember", map[string]interface{}{
		"listId": listID, "userId": "u2", "role": "member",
	})
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, srv, "u2", "Operatives", "/shoppingList/get", map[string]interface{}{"id": listID})
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, srv, "u2", "Operatives", "/shoppingList/delete", map[string]interface{}{"id": listID})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, srv, "u2", "Operatives", "/shoppingList/update", map[string]interface{}{
		"id": listID, "name": "Taken over",
	})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAddMemberIdempotent(t *testing.T) {
	srv := newTestServer(t)
	listID := createList(t, srv, "u1", "Groceries")

	dtoIn := map[string]interface{}{"listId": listID, "userId": "u2", "role": "member"}
	status, body := call(t, srv, "u1", "Operatives", "/shoppingList/addMember", dtoIn)
	require.Equal(t, http.StatusOK, status)
	first := body["shoppingList"].(map[string]interface{})
	require.Len(t, first["members"].([]interface{}), 2)

	status, body = call(t, srv, "u1", "Operatives", "/shoppingList/addMember", dtoIn)
	require.Equal(t, http.StatusOK, status)
	second := body["shoppingList"].(map[string]interface{})
	assert.Len(t, second["members"].([]interface{}), 2)
}

func TestUpdatePartialAndClear(t *testing.T) {
	srv := newTestServer(t)

	status, body := call(t, srv, "u1", "Operatives", "/shoppingList/create", map[string]interface{}{
		"name": "Groceries", "description": "weekly shop",
	})
	require.Equal(t, http.StatusOK, status)
	listID := body["shoppingList"].(map[string]interface{})["id"].(string)

	// Name only leaves the description untouched.
	status, body = call(t, srv, "u1", "Operatives", "/shoppingList/update", map[string]interface{}{
		"id": listID, "name": "Essentials",
	})
	require.Equal(t, http.StatusOK, status)
	updated := body["shoppingList"].(map[string]interface{})
	assert.Equal(t, "Essentials", updated["name"])
	assert.Equal(t, "weekly shop", updated["description"])

	// No mutable fields is a successful no-op.
	status, body = call(t, srv, "u1", "Operatives", "/shoppingList/update", map[string]interface{}{"id": listID})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Essentials", body["shoppingList"].(map[string]interface{})["name"])

	// Explicit null clears the description.
	status, body = call(t, srv, "u1", "Operatives", "/shoppingList/update", map[string]interface{}{
		"id": listID, "description": nil,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, body["shoppingList"].(map[string]interface{})["description"])
}

func TestDeleteList(t *testing.T) {
	srv := newTestServer(t)
	listID := createList(t, srv, "u1", "Groceries")

	status, body := call(t, srv, "u1", "Operatives", "/shoppingList/delete", map[string]interface{}{"id": listID})
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["errorMap"])

	status, _ = call(t, srv, "u1", "Operatives", "/shoppingList/get", map[string]interface{}{"id": listID})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListCommand(t *testing.T) {
	srv := newTestServer(t)

	ownListID := createList(t, srv, "u1", "Groceries")
	sharedListID := createList(t, srv, "u2", "Hardware")
	status, _ := call(t, srv, "u2", "Operatives", "/shoppingList/addMember", map[string]interface{}{
		"listId": sharedListID, "userId": "u1", "role": "viewer",
	})
	require.Equal(t, http.StatusOK, status)

	status, body := call(t, srv, "u1", "Operatives", "/shoppingList/list", map[string]interface{}{})
	require.Equal(t, http.StatusOK, status)
	itemList := body["itemList"].([]interface{})
	require.Len(t, itemList, 2)
	// Newest first.
	assert.Equal(t, sharedListID, itemList[0].(map[string]interface{})["id"])
	assert.Equal(t, ownListID, itemList[1].(map[string]interface{})["id"])

	status, body = call(t, srv, "u1", "Operatives", "/shoppingList/list", map[string]interface{}{"ownedOnly": true})
	require.Equal(t, http.StatusOK, status)
	itemList = body["itemList"].([]interface{})
	require.Len(t, itemList, 1)
	assert.Equal(t, ownListID, itemList[0].(map[string]interface{})["id"])
}

func TestAddItem(t *testing.T) {
	srv := newTestServer(t)
	listID := createList(t, srv, "u1", "Groceries")

	status, body := call(t, srv, "u1", "Operatives", "/shoppingItem/add", map[string]interface{}{
		"listId": listID, "name": "milk", "quantity": 2, "unit": "l",
	})
	require.Equal(t, http.StatusOK, status)

	item := body["item"].(map[string]interface{})
	assert.NotEmpty(t, item["id"])
	assert.Equal(t, listID, item["listId"])
	assert.Equal(t, "milk", item["name"])
	assert.Equal(t, 2.0, item["quantity"])
	assert.Equal(t, "l", item["unit"])
	assert.Equal(t, false, item["isPurchased"])

	// Optional fields default to null on the wire.
	status, body = call(t, srv, "u1", "Operatives", "/shoppingItem/add", map[string]interface{}{
		"listId": listID, "name": "bread",
	})
	require.Equal(t, http.StatusOK, status)
	item = body["item"].(map[string]interface{})
	assert.Nil(t, item["quantity"])
	assert.Nil(t, item["unit"])

	status, body = call(t, srv, "u1", "Operatives", "/shoppingList/get", map[string]interface{}{"id": listID})
	require.Equal(t, http.StatusOK, status)
	items := body["shoppingList"].(map[string]interface{})["items"].([]interface{})
	assert.Len(t, items, 2)
}

func TestExtraFieldsIgnored(t *testing.T) {
	srv := newTestServer(t)

	status, _ := call(t, srv, "u1", "Operatives", "/shoppingList/create", map[string]interface{}{
		"name": "Groceries", "unexpected": 42, "nested": map[string]interface{}{"x": true},
	})
	assert.Equal(t, http.StatusOK, status)
}

type staticHealth bool

func (s staticHealth) IsHealthy() bool { return bool(s) }

func TestHealthEndpoint(t *testing.T) {
	getHealth := func(srv *httptest.Server) int {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		return resp.StatusCode
	}

	// No checker wired: liveness only.
	srv := newTestServer(t)
	assert.Equal(t, http.StatusOK, getHealth(srv))

	// The route reports the cached flag, never probing the store itself.
	up := httptest.NewServer(NewRouter(memstore.New(), staticHealth(true)))
	t.Cleanup(up.Close)
	assert.Equal(t, http.StatusOK, getHealth(up))

	down := httptest.NewServer(NewRouter(memstore.New(), staticHealth(false)))
	t.Cleanup(down.Close)
	assert.Equal(t, http.StatusServiceUnavailable, getHealth(down))
}
