package kommo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/site-leads/internal/entity"
)

func siteLead() entity.Lead {
	return entity.Lead{
		ID:      1,
		Name:    "João",
		Email:   "joao@example.com",
		Phone:   "11999990000",
		Company: "Padaria do João",
		Message: "Orçamento",
		Source:  "google",
	}
}

func TestCreateLeadReusesExistingContact(t *testing.T) {
	var leadBody []leadRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/contacts":
			assert.Equal(t, "11999990000", r.URL.Query().Get("query"))
			w.Write([]byte(`{"_embedded":{"contacts":[{"id":55}]}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/leads":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&leadBody))
			w.Write([]byte(`{"_embedded":{"leads":[{"id":9001}]}}`))
		default:
			t.Errorf("chamada inesperada %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "tok", 123)
	id, err := c.CreateLead(context.Background(), siteLead())

	require.NoError(t, err)
	assert.Equal(t, 9001, id)
	require.Len(t, leadBody, 1)
	assert.Equal(t, "João - Padaria do João", leadBody[0].Name)
	assert.Equal(t, 123, leadBody[0].StatusID)
	assert.Equal(t, []contactRef{{ID: 55}}, leadBody[0].Embedded.Contacts)
}

func TestCreateLeadCreatesContactWhenMissing(t *testing.T) {
	var contactBody []contactRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/contacts":
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPost && r.URL.Path == "/contacts":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&contactBody))
			w.Write([]byte(`{"_embedded":{"contacts":[{"id":77}]}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/leads":
			w.Write([]byte(`{"_embedded":{"leads":[{"id":1}]}}`))
		}
	}))
	defer srv.Close()

	lead := siteLead()
	lead.Phone = entity.NotProvided
	lead.Company = entity.NotProvided

	id, err := NewClient(srv.URL, "tok", 0).CreateLead(context.Background(), lead)

	require.NoError(t, err)
	assert.Equal(t, 1, id)
	require.Len(t, contactBody, 1)
	// sem telefone, só o email vai para o contato
	require.Len(t, contactBody[0].CustomFieldsValues, 1)
	assert.Equal(t, "EMAIL", contactBody[0].CustomFieldsValues[0].FieldCode)
}

func TestCreateLeadPropagatesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/contacts" && r.Method == http.MethodGet {
			w.Write([]byte(`{"_embedded":{"contacts":[{"id":5}]}}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"title":"Unauthorized"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "tok", 0).CreateLead(context.Background(), siteLead())
	assert.ErrorContains(t, err, "401")
}

func TestCreateLeadNotConfigured(t *testing.T) {
	c := NewClient("", "", 0)
	assert.False(t, c.Configured())

	_, err := c.CreateLead(context.Background(), siteLead())
	assert.Error(t, err)
}
