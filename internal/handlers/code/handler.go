package code

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/code-review-relay.net/internal/core/ports/primary"
	"gitlab.com/code-review-relay.net/internal/core/services/review"
	"gitlab.com/code-review-relay.net/internal/core/services/run"
	"gitlab.com/code-review-relay.net/internal/handlers"
	"gitlab.com/code-review-relay.net/internal/static/errs"
)

// CodeHandler handles run and review API requests
type CodeHandler struct {
	runService    run.IRunService
	reviewService review.IReviewService
	logger        primary.Logger
}

// NewCodeHandler creates a new code handler
func NewCodeHandler(runService run.IRunService, reviewService review.IReviewService, logger primary.Logger) *CodeHandler {
	return &CodeHandler{
		runService:    runService,
		reviewService: reviewService,
		logger:        logger,
	}
}

// RegisterRoutes registers the API routes for CodeHandler
func (h *CodeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/languages", h.GetLanguages).Methods("GET")
	router.HandleFunc("/api/run", h.RunCode).Methods("POST")
	router.HandleFunc("/api/review", h.ReviewCode).Methods("POST")
}

// GetLanguages relays the sandbox's language list
func (h *CodeHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	list, err := h.runService.Languages(r.Context())
	if err != nil {
		h.fail(w, r, "Failed to get languages", err)
		return
	}

	contentType := list.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(list.Body)
}

// RunCode runs the submission against its testcases
func (h *CodeHandler) RunCode(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	report, err := h.runService.Run(r.Context(), req.toDomain())
	if err != nil {
		h.fail(w, r, "Failed to run code", err)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, report)
}

// ReviewCode runs the submission and relays the review service's verdict
func (h *CodeHandler) ReviewCode(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	verdict, err := h.reviewService.Review(r.Context(), req.toDomain())
	if err != nil {
		h.fail(w, r, "Failed to review code", err)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, verdict)
}

func (h *CodeHandler) decode(w http.ResponseWriter, r *http.Request) (*RunRequest, bool) {
	req := newRunRequest()
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.logger.Error("Failed to decode request", "requestId", handlers.RequestID(r.Context()), "error", err)
		handlers.ResponseError(w, "Invalid request", http.StatusBadRequest)
		return nil, false
	}
	if err := req.validate(); err != nil {
		h.logger.Warn("Rejected request", "requestId", handlers.RequestID(r.Context()), "error", err)
		handlers.ResponseError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return req, true
}

func (h *CodeHandler) fail(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.logger.Error(message, "requestId", handlers.RequestID(r.Context()), "error", err)

	code := http.StatusInternalServerError
	if errors.Is(err, errs.ErrTransport) || errors.Is(err, errs.ErrMalformedResponse) {
		code = http.StatusBadGateway
	}
	handlers.ResponseError(w, message, code)
}
