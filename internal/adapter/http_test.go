// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/shop-console/internal/config"
	"github.com/MKhiriev/shop-console/internal/logger"
	"github.com/MKhiriev/shop-console/internal/utils"
	"github.com/MKhiriev/shop-console/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubBackend mounts routes under /api on a chi router and returns an
// adapter pointed at it.
func newStubBackend(t *testing.T, routes func(r chi.Router)) *httpServerAdapter {
	t.Helper()

	r := chi.NewRouter()
	r.Route("/api", routes)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return newTestAdapter(t, srv.URL+"/api")
}

func newTestAdapter(t *testing.T, address string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: address}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func readBody(t *testing.T, r *http.Request) string {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	return string(data)
}

// ── Authenticate ────────────────────────────────────────────────────────────

func TestAuthenticate_Success(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Post("/users/authenticate", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.JSONEq(t, `{"email":"alice@example.com","password":"secret"}`, readBody(t, r))
			_, _ = w.Write([]byte("true"))
		})
	})

	body, err := a.Authenticate(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "true", body)
}

func TestAuthenticate_Unauthorized(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Post("/users/authenticate", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("bad credentials"))
		})
	})

	_, err := a.Authenticate(context.Background(), models.Credentials{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Equal(t, "bad credentials", err.Error())
}

// ── Users ───────────────────────────────────────────────────────────────────

func TestCreateUser_SendsBody(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Post("/users/createUser", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.JSONEq(t, `{"name":"Bob","age":31,"email":"bob@example.com","password":"pw"}`, readBody(t, r))
			w.WriteHeader(http.StatusOK)
		})
	})

	err := a.CreateUser(context.Background(), models.User{Name: "Bob", Age: 31, Email: "bob@example.com", Password: "pw"})
	assert.NoError(t, err)
}

func TestCreateUser_Conflict(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Post("/users/createUser", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte("email already used\n"))
		})
	})

	err := a.CreateUser(context.Background(), models.User{Name: "Bob"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "email already used\n", err.Error(), "body is kept verbatim")
}

func TestListUsers_NoUserEmailHeader(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Get("/users/readAllUsers", func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Values(UserEmailHeader))
			_, _ = w.Write([]byte(`[{"name":"Bob"}]`))
		})
	})

	body, err := a.ListUsers(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Bob"}]`, string(body))
}

// ── Products ────────────────────────────────────────────────────────────────

func TestListProducts_SendsUserEmail(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Get("/products/readAllProducts", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "alice@example.com", r.Header.Get(UserEmailHeader))
			_, _ = w.Write([]byte(`[]`))
		})
	})

	body, err := a.ListProducts(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

// An unauthenticated session still sends the header, empty.
func TestListProducts_EmptyUserEmailStillSent(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Get("/products/readAllProducts", func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.Header, http.CanonicalHeaderKey(UserEmailHeader))
			assert.Empty(t, r.Header.Get(UserEmailHeader))
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("who are you"))
		})
	})

	_, err := a.ListProducts(context.Background(), "")

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "who are you", err.Error())
}

func TestGetProduct_PathParam(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "numeric", id: "42"},
		{name: "with space", id: "x y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newStubBackend(t, func(r chi.Router) {
				r.Get("/products/readProductById/{id}", func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, tt.id, chi.URLParam(r, "id"))
					assert.Equal(t, "alice@example.com", r.Header.Get(UserEmailHeader))
					_, _ = w.Write([]byte(`{"id":"42","name":"Milk"}`))
				})
			})

			body, err := a.GetProduct(context.Background(), "alice@example.com", tt.id)

			require.NoError(t, err)
			assert.JSONEq(t, `{"id":"42","name":"Milk"}`, string(body))
		})
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Get("/products/readProductById/{id}", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such product", http.StatusNotFound)
		})
	})

	_, err := a.GetProduct(context.Background(), "alice@example.com", "404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProduct_SendsBodyWithoutID(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Post("/products/create", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "alice@example.com", r.Header.Get(UserEmailHeader))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.JSONEq(t, `{"name":"Milk","price":2.5,"expirationDate":"2025-01-01"}`, readBody(t, r))
			w.WriteHeader(http.StatusOK)
		})
	})

	err := a.CreateProduct(context.Background(), "alice@example.com",
		models.NewProduct{Name: "Milk", Price: 2.50, ExpirationDate: "2025-01-01"})
	assert.NoError(t, err)
}

func TestCreateProduct_BadRequest(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Post("/products/create", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"price must be positive"}`))
		})
	})

	err := a.CreateProduct(context.Background(), "alice@example.com", models.NewProduct{Name: "Milk", Price: -1})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, `{"error":"price must be positive"}`, err.Error())
}

func TestUpdateProduct_PutsFullProduct(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Put("/products/updateProduct", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "alice@example.com", r.Header.Get(UserEmailHeader))
			assert.JSONEq(t, `{"id":"7","name":"Bread","price":1.25,"expirationDate":"2025-03-01"}`, readBody(t, r))
		})
	})

	err := a.UpdateProduct(context.Background(), "alice@example.com",
		models.Product{ID: "7", Name: "Bread", Price: 1.25, ExpirationDate: "2025-03-01"})
	assert.NoError(t, err)
}

func TestUpdateProduct_EmptyIDIsStillSent(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Put("/products/updateProduct", func(w http.ResponseWriter, r *http.Request) {
			assert.JSONEq(t, `{"id":"","name":"Bread","price":1,"expirationDate":"2025-03-01"}`, readBody(t, r))
		})
	})

	err := a.UpdateProduct(context.Background(), "alice@example.com",
		models.Product{Name: "Bread", Price: 1, ExpirationDate: "2025-03-01"})
	assert.NoError(t, err)
}

func TestDeleteProduct(t *testing.T) {
	var gotPath string
	a := newStubBackend(t, func(r chi.Router) {
		r.Delete("/products/deleteProduct/{id}", func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.Equal(t, "alice@example.com", r.Header.Get(UserEmailHeader))
		})
	})

	err := a.DeleteProduct(context.Background(), "alice@example.com", "42")

	require.NoError(t, err)
	assert.Equal(t, "/api/products/deleteProduct/42", gotPath)
}

func TestMostExpensiveProducts(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Get("/products/most-expensive-products", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "alice@example.com", r.Header.Get(UserEmailHeader))
			_, _ = w.Write([]byte(`[{"name":"Caviar"}]`))
		})
	})

	body, err := a.MostExpensiveProducts(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Caviar"}]`, string(body))
}

// ── transport behaviour ─────────────────────────────────────────────────────

// Only 200 counts as success; other 2xx codes are failures too.
func TestSend_NonOKSuccessStatusIsFailure(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Post("/users/createUser", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("created"))
		})
	})

	err := a.CreateUser(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, "created", err.Error())
}

func TestSend_SetsRequestID(t *testing.T) {
	var got string
	a := newStubBackend(t, func(r chi.Router) {
		r.Get("/users/readAllUsers", func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get(utils.RequestIDHeader)
			_, _ = w.Write([]byte(`[]`))
		})
	})

	_, err := a.ListUsers(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestSend_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	address := srv.URL
	srv.Close()

	a := newTestAdapter(t, address)
	_, err := a.ListUsers(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)

	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

func TestSend_CancelledContext(t *testing.T) {
	a := newStubBackend(t, func(r chi.Router) {
		r.Get("/users/readAllUsers", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.ListUsers(ctx)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSend_Timeout(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/users/readAllUsers", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL + "/api",
		RequestTimeout: 20 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:8080/api", want: "http://localhost:8080/api"},
		{name: "trailing slash", raw: "http://localhost:8080/api/", want: "http://localhost:8080/api"},
		{name: "bare host port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "spaces", raw: "  https://shop.example.com  ", want: "https://shop.example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: " "}, logger.Nop())
	assert.Error(t, err)
	assert.Nil(t, a)
}

func TestHTTPError_JSONBodyPreserved(t *testing.T) {
	err := &HTTPError{StatusCode: http.StatusTeapot, Body: `{"a":1}`}

	var v map[string]int
	require.NoError(t, json.Unmarshal([]byte(err.Error()), &v))
	assert.Equal(t, 1, v["a"])
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}
