package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/dtroode/studentportal-server/internal/api/http/response"
	"github.com/dtroode/studentportal-server/internal/logger"
	"github.com/dtroode/studentportal-server/internal/model"
	"github.com/dtroode/studentportal-server/internal/results"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFileName  = "results.xlsx"
)

// ResultsService looks up exam results.
type ResultsService interface {
	FetchByRollNumber(rollNo string) (model.ResultRecord, error)
	FetchAll() []model.ResultRecord
}

// Results handles result lookup endpoints.
type Results struct {
	service        ResultsService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewResults creates a new Results handler.
func NewResults(service ResultsService, contextManager model.ContextManager, logger *logger.Logger) *Results {
	return &Results{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

// ByRollNo returns the record of the roll number in the path.
func (h *Results) ByRollNo(w http.ResponseWriter, r *http.Request) {
	rollNo := pathParam(r, "rollNo")
	if strings.TrimSpace(rollNo) == "" {
		response.Error(w, model.ErrRollNoRequired, model.MsgResultsFailed)
		return
	}

	h.fetch(w, rollNo)
}

// Mine returns the record of the session's own roll number.
func (h *Results) Mine(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(h.contextManager, r)
	if err != nil {
		response.Error(w, err, model.MsgResultsFailed)
		return
	}

	current, ok := session.Current()
	if !ok {
		response.Error(w, model.ErrNotAuthenticated, model.MsgResultsFailed)
		return
	}

	h.fetch(w, current.Account.RollNo)
}

func (h *Results) fetch(w http.ResponseWriter, rollNo string) {
	record, err := h.service.FetchByRollNumber(rollNo)
	if err != nil {
		response.Error(w, err, model.MsgResultsFailed)
		return
	}
	response.OK(w, record, "")
}

// All returns every record.
func (h *Results) All(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.service.FetchAll(), "")
}

// Export returns every record as an XLSX workbook.
func (h *Results) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := results.WriteXLSX(&buf, h.service.FetchAll()); err != nil {
		h.logger.Error("Results handler: export failed",
			"error", err.Error())
		response.Error(w, err, model.MsgResultsFailed)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
