package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericwalterlaw/cryptish/internal/model"
	"github.com/ericwalterlaw/cryptish/internal/session"
)

func authedSession() session.Session {
	return session.Session{Token: "tok-123", User: model.User{Name: "Ada", Email: "ada@example.com"}}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"token":"tok-123","user":{"name":"Ada","email":"ada@example.com"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	sess, err := c.Login(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "tok-123", sess.Token)
	assert.Equal(t, "Ada", sess.User.Name)
}

func TestLogin_BackendMessageSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Invalid credentials"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestRegister_PasswordMismatchIsLocal(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Register(context.Background(), "Ada", "ada@example.com", "pw1", "pw2")
	require.ErrorIs(t, err, ErrPasswordMismatch)
	assert.False(t, called, "mismatch must be rejected before any request")
}

func TestFetchPortfolio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/portfolio", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{
			"totalValue": 12500.5,
			"totalGain": 500.5,
			"gainPercentage": 4.17,
			"assets": [
				{"symbol":"btc","name":"Bitcoin","amount":0.25,"currentPrice":50000,"avgPrice":48000,"value":12500,"allocation":100},
				{"symbol":"eth","name":"Ethereum","amount":2,"currentPrice":3000,"avgPrice":null}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	snap, err := c.FetchPortfolio(context.Background(), authedSession())
	require.NoError(t, err)

	assert.Equal(t, 12500.5, snap.TotalValue)
	require.Len(t, snap.Assets, 2)

	// Missing value derives from amount * currentPrice; null avgPrice
	// coerces to 0 here and is normalized at valuation time.
	eth := snap.Assets[1]
	assert.Equal(t, 6000.0, eth.Value)
	assert.Equal(t, 0.0, eth.AvgPrice)
}

func TestFetchPortfolio_Unauthenticated(t *testing.T) {
	c := NewClient("http://localhost:0", "")
	_, err := c.FetchPortfolio(context.Background(), session.Session{})
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestFetchPortfolio_NonSuccessDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	snap, err := c.FetchPortfolio(context.Background(), authedSession())
	require.Error(t, err)
	assert.Equal(t, model.EmptyPortfolio(), snap)
}

func TestFetchTransactions_Defaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/transactions", r.URL.Path)
		w.Write([]byte(`[
			{"id":"t1","date":"2024-03-05T14:30:00Z","type":"BUY","symbol":"btc","amount":0.5,"price":40000,"fee":12,"total":20012,"status":"completed"},
			{"id":"t2","date":"2024-03-06","type":"sell","symbol":"eth","amount":2,"price":3000}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	records, err := c.FetchTransactions(context.Background(), authedSession())
	require.NoError(t, err)
	require.Len(t, records, 2)

	t1 := records[0]
	assert.Equal(t, model.TransactionBuy, t1.Type)
	assert.Equal(t, model.StatusCompleted, t1.Status)
	assert.Equal(t, 20012.0, t1.Total)
	assert.Equal(t, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC), t1.Date)

	// Absent fee -> 0, absent total -> amount*price, absent status -> pending.
	t2 := records[1]
	assert.Equal(t, model.TransactionSell, t2.Type)
	assert.Equal(t, 0.0, t2.Fee)
	assert.Equal(t, 6000.0, t2.Total)
	assert.Equal(t, model.StatusPending, t2.Status)
}

func TestUpdateProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/profile", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"user":{"name":"Ada L","email":"ada@example.com"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	updated, err := c.UpdateProfile(context.Background(), authedSession(), model.User{Name: "Ada L", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ada L", updated.Name)
}
