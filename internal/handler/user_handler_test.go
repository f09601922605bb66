package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateUser_ReturnsIDAndToken(t *testing.T) {
	req := require.New(t)
	engine := setupAPI(t)

	rec := doRequest(engine, http.MethodPost, "/api/v1/users", "", map[string]string{"name": "alice"})
	req.Equal(http.StatusCreated, rec.Code)

	var body createdUser
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	req.Equal("alice", body.Name)
	req.NotEmpty(body.ID)
	req.NotEmpty(body.Token)
}

func TestCreateUser_RequiresNoToken(t *testing.T) {
	req := require.New(t)
	engine := setupAPI(t)

	rec := doRequest(engine, http.MethodPost, "/api/v1/users", "garbage-token", map[string]string{"name": "bob"})
	req.Equal(http.StatusCreated, rec.Code)
}

func TestListUsers_OmitsTokens(t *testing.T) {
	req := require.New(t)
	engine := setupAPI(t)
	alice := createUser(t, engine, "alice")

	bob := createUser(t, engine, "bob")
	rec := doRequest(engine, http.MethodDelete, "/api/v1/users/"+bob.ID, bob.Token, nil)
	req.Equal(http.StatusNoContent, rec.Code)

	rec = doRequest(engine, http.MethodGet, "/api/v1/users", alice.Token, nil)
	req.Equal(http.StatusOK, rec.Code)

	var users []createdUser
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &users))
	req.Len(users, 1)
	req.Equal(alice.ID, users[0].ID)
	req.Empty(users[0].Token, "tokens never leave on list")
}

func TestGetUser_SelfOnly(t *testing.T) {
	req := require.New(t)
	engine := setupAPI(t)
	alice := createUser(t, engine, "alice")
	bob := createUser(t, engine, "bob")

	rec := doRequest(engine, http.MethodGet, "/api/v1/users/"+alice.ID, alice.Token, nil)
	req.Equal(http.StatusOK, rec.Code)

	rec = doRequest(engine, http.MethodGet, "/api/v1/users/"+alice.ID, bob.Token, nil)
	req.Equal(http.StatusUnauthorized, rec.Code)
	req.Equal("Unauthorized", rec.Body.String())
}

func TestDeleteUser_InvalidatesToken(t *testing.T) {
	req := require.New(t)
	engine := setupAPI(t)
	alice := createUser(t, engine, "alice")

	rec := doRequest(engine, http.MethodDelete, "/api/v1/users/"+alice.ID, alice.Token, nil)
	req.Equal(http.StatusNoContent, rec.Code)

	// The token still verifies cryptographically, but the subject is gone.
	rec = doRequest(engine, http.MethodGet, "/api/v1/users/"+alice.ID, alice.Token, nil)
	req.Equal(http.StatusUnauthorized, rec.Code)
	req.Equal("Unauthorized", rec.Body.String())
}

func TestMissingToken_Unauthorized(t *testing.T) {
	req := require.New(t)
	engine := setupAPI(t)

	rec := doRequest(engine, http.MethodGet, "/api/v1/users", "", nil)
	req.Equal(http.StatusUnauthorized, rec.Code)
	req.Equal("Unauthorized", rec.Body.String())
}
