package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vastra-store/vastra/app/models"
	"github.com/vastra-store/vastra/app/utils/cartstore"
)

func newGuestCartFixture(t *testing.T) (*GuestCartHandler, *fakeProductRepo) {
	t.Helper()
	backend := cartstore.NewSessionBackend(securecookie.GenerateRandomKey(64))
	repo := newFakeProductRepo()
	return NewGuestCartHandler(testRender, backend, repo), repo
}

// carryCookies copies the session cookie from a response onto the next request,
// standing in for the browser.
func carryCookies(req *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestGuestCartEmptyByDefault(t *testing.T) {
	handler, _ := newGuestCartFixture(t)

	rec := httptest.NewRecorder()
	handler.Get(rec, httptest.NewRequest(http.MethodGet, "/api/v1/guest-cart", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["count"])
}

func TestGuestCartAddPersistsAcrossRequests(t *testing.T) {
	handler, repo := newGuestCartFixture(t)
	require.NoError(t, repo.Create(context.Background(),
		&models.Product{ID: "p1", Price: decimal.NewFromInt(300)}))

	first := httptest.NewRecorder()
	handler.Add(first, postJSON("/api/v1/guest-cart", `{"productId":"p1","size":"M"}`))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.Add(second, carryCookies(
		postJSON("/api/v1/guest-cart", `{"productId":"p1","size":"M"}`), first))
	require.Equal(t, http.StatusOK, second.Code)

	get := httptest.NewRecorder()
	handler.Get(get, carryCookies(
		httptest.NewRequest(http.MethodGet, "/api/v1/guest-cart", nil), second))

	body := decodeBody(t, get)
	assert.Equal(t, float64(2), body["count"])

	cart := body["cart"].(map[string]interface{})
	sizes := cart["p1"].(map[string]interface{})
	assert.Equal(t, float64(2), sizes["M"])
}

func TestGuestCartAddRequiresSize(t *testing.T) {
	handler, _ := newGuestCartFixture(t)

	rec := httptest.NewRecorder()
	handler.Add(rec, postJSON("/api/v1/guest-cart", `{"productId":"p1"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please select a size", decodeBody(t, rec)["message"])
}

func TestGuestCartUpdateZeroPrunes(t *testing.T) {
	handler, _ := newGuestCartFixture(t)

	add := httptest.NewRecorder()
	handler.Add(add, postJSON("/api/v1/guest-cart", `{"productId":"p1","size":"M"}`))
	require.Equal(t, http.StatusOK, add.Code)

	update := httptest.NewRecorder()
	handler.Update(update, carryCookies(
		putJSON("/api/v1/guest-cart", `{"productId":"p1","size":"M","quantity":0}`), add))
	require.Equal(t, http.StatusOK, update.Code)

	body := decodeBody(t, update)
	assert.Equal(t, float64(0), body["count"])
	assert.Empty(t, body["cart"].(map[string]interface{}))
}

func TestGuestCartUpdateRejectsNegativeQuantity(t *testing.T) {
	handler, _ := newGuestCartFixture(t)

	rec := httptest.NewRecorder()
	handler.Update(rec, putJSON("/api/v1/guest-cart",
		`{"productId":"p1","size":"M","quantity":-1}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGuestCartAmountSkipsUnknownProducts(t *testing.T) {
	handler, repo := newGuestCartFixture(t)
	require.NoError(t, repo.Create(context.Background(),
		&models.Product{ID: "p1", Price: decimal.NewFromInt(300)}))

	first := httptest.NewRecorder()
	handler.Add(first, postJSON("/api/v1/guest-cart", `{"productId":"p1","size":"M"}`))

	second := httptest.NewRecorder()
	handler.Add(second, carryCookies(
		postJSON("/api/v1/guest-cart", `{"productId":"deleted","size":"M"}`), first))

	body := decodeBody(t, second)
	assert.Equal(t, float64(2), body["count"])
	amount, err := decimal.NewFromString(body["amount"].(string))
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(300)), "got %s", amount)
}
