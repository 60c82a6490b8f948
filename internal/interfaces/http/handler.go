package httpinterface

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/btcqr/internal/core/application"
	"github.com/tdex-network/btcqr/internal/core/domain"
	"go.uber.org/ratelimit"
)

const (
	maxBodySize = 1 << 20

	kindInvalidRequest = "InvalidRequest"

	headerDescriptorType = "X-Descriptor-Type"
	headerHint           = "X-Qr-Hint"
	headerRequestID      = "X-Request-Id"
)

type handler struct {
	qrSvc   application.QRService
	limiter ratelimit.Limiter
}

func newHandler(opts ServiceOpts) http.Handler {
	limiter := ratelimit.NewUnlimited()
	if opts.RenderRateLimit > 0 {
		limiter = ratelimit.New(opts.RenderRateLimit)
	}
	h := &handler{opts.QRSvc, limiter}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/seed", h.seed)
	mux.HandleFunc("POST /v1/descriptor", h.descriptor)
	mux.HandleFunc("POST /v1/transaction", h.transaction)
	mux.HandleFunc("GET /v1/suggest", h.suggest)
	mux.HandleFunc("GET /v1/classify", h.classify)
	mux.HandleFunc("POST /v1/export", h.export)
	if opts.MetricsGatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(
			opts.MetricsGatherer, promhttp.HandlerOpts{},
		))
	}

	return withRequestID(mux)
}

type seedRequest struct {
	Words  []string `json:"words"`
	Phrase string   `json:"phrase"`
}

type descriptorRequest struct {
	Descriptor string `json:"descriptor"`
}

type transactionRequest struct {
	Format  string `json:"format"`
	Address string `json:"address"`
	Amount  string `json:"amount"`
	Label   string `json:"label"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type classifyResponse struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Valid bool   `json:"valid"`
}

type exportResponse struct {
	Path string `json:"path"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (h *handler) seed(w http.ResponseWriter, req *http.Request) {
	body := seedRequest{}
	if !decodeBody(w, req, &body) {
		return
	}

	words := body.Words
	if len(words) <= 0 {
		words = strings.Fields(body.Phrase)
	}
	seed, err := domain.NewSeedPhrase(len(words))
	if err != nil {
		writeError(w, err)
		return
	}
	for i, word := range words {
		if err := seed.SetWord(i, word); err != nil {
			writeError(w, err)
			return
		}
	}

	h.generate(w, req, seed)
}

func (h *handler) descriptor(w http.ResponseWriter, req *http.Request) {
	body := descriptorRequest{}
	if !decodeBody(w, req, &body) {
		return
	}

	info := h.qrSvc.ClassifyDescriptor(body.Descriptor)
	if info.Valid {
		w.Header().Set(headerDescriptorType, info.Type.String())
	}
	h.generate(w, req, domain.Descriptor(body.Descriptor))
}

func (h *handler) transaction(w http.ResponseWriter, req *http.Request) {
	body := transactionRequest{}
	if !decodeBody(w, req, &body) {
		return
	}

	format, err := domain.ParseTransactionFormat(body.Format)
	if err != nil {
		writeBadRequest(w, err)
		return
	}
	form, _ := domain.NewTransactionForm(format)
	form.Address = body.Address
	form.Amount = body.Amount
	form.Label = body.Label
	form.Message = body.Message
	form.Data = body.Data

	h.generate(w, req, form)
}

func (h *handler) suggest(w http.ResponseWriter, req *http.Request) {
	suggestions := h.qrSvc.Suggest(req.URL.Query().Get("prefix"))
	writeJSON(w, http.StatusOK, suggestResponse{suggestions})
}

func (h *handler) classify(w http.ResponseWriter, req *http.Request) {
	info := h.qrSvc.ClassifyDescriptor(req.URL.Query().Get("descriptor"))
	writeJSON(w, http.StatusOK, classifyResponse{
		Type:  info.Type.String(),
		Label: info.Label,
		Valid: info.Valid,
	})
}

// export stores the most recently generated QR code on the daemon's disk.
func (h *handler) export(w http.ResponseWriter, req *http.Request) {
	path, err := h.qrSvc.Export(h.qrSvc.Latest())
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNothingToExport):
			writeJSON(w, http.StatusConflict, errorResponse{
				Error: application.UserMessage(err), Kind: kindInvalidRequest,
			})
		case errors.Is(err, application.ErrExportNotSupported):
			writeJSON(w, http.StatusNotImplemented, errorResponse{
				Error: application.UserMessage(err), Kind: kindInvalidRequest,
			})
		default:
			writeError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, exportResponse{path})
}

func (h *handler) generate(
	w http.ResponseWriter, req *http.Request, enc domain.Encoder,
) {
	h.limiter.Take()

	artifact, err := h.qrSvc.Generate(req.Context(), enc)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", artifact.Filename),
	)
	w.Header().Set(headerHint, artifact.Hint)
	w.WriteHeader(http.StatusOK)
	w.Write(artifact.Image)
}

func decodeBody(w http.ResponseWriter, req *http.Request, body interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(body); err != nil {
		writeBadRequest(w, fmt.Errorf("invalid request body: %s", err))
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)

	status := http.StatusBadRequest
	switch {
	case kind == domain.KindPayloadTooLarge:
		status = http.StatusUnprocessableEntity
	case errors.Is(err, application.ErrRenderFailed), kind == domain.KindInternal:
		status = http.StatusInternalServerError
		log.WithError(err).Warn("http: failed to generate qr code")
	}

	writeJSON(w, status, errorResponse{
		Error: application.UserMessage(err),
		Kind:  string(kind),
	})
}

func writeBadRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error: err.Error(),
		Kind:  kindInvalidRequest,
	})
}

func writeJSON(w http.ResponseWriter, status int, resp interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.WithError(err).Debug("http: failed to write response")
	}
}
