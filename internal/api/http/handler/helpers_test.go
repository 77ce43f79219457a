package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/studentportal-server/internal/api/http/context"
	"github.com/dtroode/studentportal-server/internal/model"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

type authRecord struct {
	flow    string
	outcome string
}

type recordingObserver struct {
	seen []authRecord
}

func (o *recordingObserver) ObserveAuth(flow, outcome string) {
	o.seen = append(o.seen, authRecord{flow: flow, outcome: outcome})
}

func newRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	return httptest.NewRequest(method, target, r)
}

func withSession(cm *httpcontext.Manager, r *http.Request, session model.SessionService) *http.Request {
	return r.WithContext(cm.SetSessionToContext(r.Context(), session))
}

func withParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
