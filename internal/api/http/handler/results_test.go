package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	httpcontext "github.com/dtroode/studentportal-server/internal/api/http/context"
	"github.com/dtroode/studentportal-server/internal/mocks"
	"github.com/dtroode/studentportal-server/internal/model"
	"github.com/dtroode/studentportal-server/internal/results"
	"github.com/dtroode/studentportal-server/internal/testutil"
)

var fixedTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func TestResults_ByRollNo(t *testing.T) {
	records := results.Builtin()

	tests := []struct {
		name        string
		param       string
		setup       func(s *mocks.ResultsService)
		wantStatus  int
		wantMessage string
	}{
		{
			name:  "found",
			param: "2024-001",
			setup: func(s *mocks.ResultsService) {
				s.On("FetchByRollNumber", "2024-001").Return(records[0], nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "not found",
			param: "9999-999",
			setup: func(s *mocks.ResultsService) {
				s.On("FetchByRollNumber", "9999-999").Return(model.ResultRecord{}, model.ErrNoResults)
			},
			wantStatus:  http.StatusNotFound,
			wantMessage: "No results found for this roll number.",
		},
		{
			name:        "blank",
			param:       "%20%20",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Please enter a roll number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewResultsService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := NewResults(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

			rec := httptest.NewRecorder()
			h.ByRollNo(rec, withParams(newRequest(http.MethodGet, "/api/results/x", ""), "rollNo", tt.param))

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantMessage, env.Message)
			if tt.wantStatus == http.StatusOK {
				var got model.ResultRecord
				require.NoError(t, json.Unmarshal(env.Data, &got))
				assert.Equal(t, "Ali Ahmed", got.StudentName)
			}
		})
	}
}

func TestResults_Mine(t *testing.T) {
	cm := httpcontext.NewManager()
	svc := mocks.NewResultsService(t)
	svc.On("FetchByRollNumber", "2024-002").Return(results.Builtin()[1], nil)

	session := mocks.NewSessionService(t)
	session.On("Current").Return(model.Session{Token: "t", Account: model.Account{RollNo: "2024-002"}}, true)

	rec := httptest.NewRecorder()
	NewResults(svc, cm, testutil.MakeNoopLogger()).
		Mine(rec, withSession(cm, newRequest(http.MethodGet, "/api/session/results", ""), session))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2024-002")
}

func TestResults_All(t *testing.T) {
	svc := mocks.NewResultsService(t)
	svc.On("FetchAll").Return(results.Builtin())

	rec := httptest.NewRecorder()
	NewResults(svc, httpcontext.NewManager(), testutil.MakeNoopLogger()).
		All(rec, newRequest(http.MethodGet, "/api/results", ""))

	var got []model.ResultRecord
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Len(t, got, 3)
}

func TestResults_Export(t *testing.T) {
	svc := mocks.NewResultsService(t)
	svc.On("FetchAll").Return(results.Builtin())

	rec := httptest.NewRecorder()
	NewResults(svc, httpcontext.NewManager(), testutil.MakeNoopLogger()).
		Export(rec, newRequest(http.MethodGet, "/api/results/export", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), exportFileName)

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(results.SheetName)
	require.NoError(t, err)
	assert.Equal(t, "Roll No", rows[0][0])
	assert.Greater(t, len(rows), 3)
}
