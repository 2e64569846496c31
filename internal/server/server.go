// Package server exposes the comparison engine as a small JSON service.
package server

import (
	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/offerlens/offercompare/internal/calculation"
	"github.com/offerlens/offercompare/internal/domain"
	"github.com/offerlens/offercompare/internal/refdata"
)

// CompareRequest is the POST /compare body: a filing status plus the
// merged set of real and simulated offers.
type CompareRequest struct {
	MaritalStatus domain.MaritalStatus `json:"marital_status"`
	Offers        []*domain.Offer      `json:"offers"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Server wires the engine and rent cache behind a fasthttp handler.
type Server struct {
	engine *calculation.ComparisonEngine
	rents  *refdata.RentCache
	log    *zap.SugaredLogger
}

// New creates a server. The rent cache may be nil; rows then carry no
// rent deduction.
func New(engine *calculation.ComparisonEngine, rents *refdata.RentCache, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{engine: engine, rents: rents, log: log}
}

// Handle routes one request.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case "/compare":
		s.handleCompare(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Offers) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "at least one offer is required")
		return
	}
	if req.MaritalStatus == "" {
		req.MaritalStatus = domain.MaritalSingle
	}

	in := calculation.ComparisonInput{
		MaritalStatus: req.MaritalStatus,
		Offers:        req.Offers,
	}
	if s.rents != nil {
		in.Rent = s.rents.Get
	}

	comparison := s.engine.BuildComparison(in)
	s.log.Debugw("comparison served", "offers", len(req.Offers), "rows", len(comparison.Rows))
	writeJSON(ctx, fasthttp.StatusOK, comparison)
}

// ListenAndServe blocks serving on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Infow("comparison service listening", "addr", addr)
	return fasthttp.ListenAndServe(addr, s.Handle)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, payload any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	data, err := json.Marshal(payload)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
