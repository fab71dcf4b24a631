package gameapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckyroad/casinohub/internal/gameapi"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func TestTransportAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"errorCode":0,"message":"ok"}`))
	}))
	defer srv.Close()

	transport := gameapi.NewTransport(srv.URL, staticToken("tok123"))
	_, err := transport.Get(context.Background(), "/status")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestTransportOmitsEmptyToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"errorCode":0,"message":"ok"}`))
	}))
	defer srv.Close()

	transport := gameapi.NewTransport(srv.URL, staticToken(""))
	_, err := transport.Get(context.Background(), "/status")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestTransportBusinessError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"errorCode":9,"message":""}`))
	}))
	defer srv.Close()

	transport := gameapi.NewTransport(srv.URL, staticToken(""))
	_, err := transport.Post(context.Background(), "/games/list", map[string]string{"vendorCode": "GHOST"})
	require.Error(t, err)

	ge, ok := gameapi.AsError(err)
	require.True(t, ok)
	assert.Equal(t, gameapi.ErrorKindBusiness, ge.Kind)
	assert.Equal(t, gameapi.CodeVendorNotFound, ge.Code)
	// Empty message falls back to the code table
	assert.Contains(t, ge.Message, "vendor not found")
}

func TestTransportHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"errorCode":422,"message":"missing required parameters"}`))
	}))
	defer srv.Close()

	transport := gameapi.NewTransport(srv.URL, staticToken(""))
	_, err := transport.Post(context.Background(), "/game/launch-url", nil)
	require.Error(t, err)

	ge, ok := gameapi.AsError(err)
	require.True(t, ok)
	assert.Equal(t, gameapi.ErrorKindHTTPStatus, ge.Kind)
	assert.Equal(t, 422, ge.Code)
	assert.Equal(t, "missing required parameters", ge.Message)
}

func TestTransportParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	transport := gameapi.NewTransport(srv.URL, staticToken(""))
	_, err := transport.Get(context.Background(), "/status")
	require.Error(t, err)
	assert.True(t, gameapi.IsKind(err, gameapi.ErrorKindParse))
}

func TestTransportNon2xxNonJSONIsHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`Bad Gateway`))
	}))
	defer srv.Close()

	transport := gameapi.NewTransport(srv.URL, staticToken(""))
	_, err := transport.Get(context.Background(), "/status")
	require.Error(t, err)

	ge, ok := gameapi.AsError(err)
	require.True(t, ok)
	assert.Equal(t, gameapi.ErrorKindHTTPStatus, ge.Kind)
	assert.Equal(t, http.StatusBadGateway, ge.Code)
}

func TestTransportNetworkError(t *testing.T) {
	// Point at a closed server
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	transport := gameapi.NewTransport(srv.URL, staticToken(""))
	_, err := transport.Get(context.Background(), "/status")
	require.Error(t, err)
	assert.True(t, gameapi.IsKind(err, gameapi.ErrorKindNetwork))
}

func TestTransportTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	transport := gameapi.NewTransport(srv.URL, staticToken(""))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := transport.Get(ctx, "/status")
	require.Error(t, err)
	assert.True(t, gameapi.IsKind(err, gameapi.ErrorKindTimeout))
}

func TestClientGamesTreatsVendorNotFoundAsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"errorCode":9,"message":"vendor not found"}`))
	}))
	defer srv.Close()

	client := gameapi.NewClient(srv.URL, staticToken(""))
	games, err := client.Games(context.Background(), "GHOST", "en")
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestClientCreateUserSurfacesAlreadyExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"errorCode":1,"message":"user already exists"}`))
	}))
	defer srv.Close()

	client := gameapi.NewClient(srv.URL, staticToken(""))
	err := client.CreateUser(context.Background(), "u123")
	require.Error(t, err)
	assert.True(t, gameapi.IsBusinessCode(err, gameapi.CodeAlreadyExists))
}

func TestClientBalanceDecodesNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"errorCode":0,"message":42.5}`))
	}))
	defer srv.Close()

	client := gameapi.NewClient(srv.URL, staticToken(""))
	balance, err := client.Balance(context.Background(), "u123", "")
	require.NoError(t, err)
	assert.Equal(t, 42.5, balance)
}

func TestClientLaunchURLRejectsEmptyURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"errorCode":0,"message":""}`))
	}))
	defer srv.Close()

	client := gameapi.NewClient(srv.URL, staticToken(""))
	_, err := client.LaunchURL(context.Background(), "slot-pragmatic", "GAME001", "u123", "en", "")
	require.Error(t, err)
	assert.True(t, gameapi.IsBusinessCode(err, gameapi.CodeLaunchFailed))
}
