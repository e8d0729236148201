package api

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bnema/tinyguard/internal/application/usecase"
	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/logging"
)

type tabIDKey struct{}

// tabIDParam parses {tabID} once for every tab route.
func tabIDParam(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "tabID"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, errInvalidTabID)
			return
		}
		ctx := context.WithValue(r.Context(), tabIDKey{}, entity.TabID(id))
		ctx = logging.WithTabID(ctx, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tabIDFrom(r *http.Request) entity.TabID {
	id, _ := r.Context().Value(tabIDKey{}).(entity.TabID)
	return id
}

// ReportRequestBody is the body of POST /v1/tabs/{tabID}/requests.
type ReportRequestBody struct {
	URL      string `json:"url"`
	PageURL  string `json:"pageUrl,omitempty"`
	PageHost string `json:"pageHost,omitempty"`
}

// ReportRequestResponse tells the caller how the request was classified.
type ReportRequestResponse struct {
	Recorded bool                    `json:"recorded"`
	Event    *entity.ClassifiedEvent `json:"event,omitempty"`
}

func (h *handlers) reportRequest(w http.ResponseWriter, r *http.Request) {
	var body ReportRequestBody
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	out := h.deps.ReportRequest.Execute(r.Context(), usecase.ReportRequestInput{
		TabID:    tabIDFrom(r),
		URL:      body.URL,
		PageURL:  body.PageURL,
		PageHost: body.PageHost,
	})

	resp := ReportRequestResponse{Recorded: out.Recorded}
	if out.Recorded {
		resp.Event = &out.Event
	}
	writeJSON(w, http.StatusAccepted, resp)
}

func (h *handlers) scanData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.ScanData.Execute(r.Context(), tabIDFrom(r)))
}

func (h *handlers) settled(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"settled": h.deps.Aggregator.Settled(tabIDFrom(r))})
}

func (h *handlers) endSession(w http.ResponseWriter, r *http.Request) {
	h.deps.Aggregator.EndSession(tabIDFrom(r))
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) listTabs(w http.ResponseWriter, _ *http.Request) {
	tabs := h.deps.Aggregator.Tabs()
	slices.Sort(tabs)
	if tabs == nil {
		tabs = []entity.TabID{}
	}
	writeJSON(w, http.StatusOK, map[string][]entity.TabID{"tabs": tabs})
}

// BlockingBody is the body of PUT /v1/blocking.
type BlockingBody struct {
	Enabled *bool `json:"enabled"`
}

func (h *handlers) getBlocking(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": h.deps.GetBlocking.Execute(r.Context())})
}

func (h *handlers) setBlocking(w http.ResponseWriter, r *http.Request) {
	var body BlockingBody
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Enabled == nil {
		writeError(w, http.StatusBadRequest, errMissingEnabled)
		return
	}

	out, err := h.deps.SetBlocking.Execute(r.Context(), *body.Enabled)
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("failed to persist blocking flag")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) diagnostics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Diagnostics.Execute(r.Context()))
}

func (h *handlers) reloadCatalog(w http.ResponseWriter, r *http.Request) {
	if h.deps.ReloadCatalog == nil {
		writeError(w, http.StatusServiceUnavailable, errReloadUnavailable)
		return
	}

	n, err := h.deps.ReloadCatalog.Execute(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"trackers": n})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errInvalidBody
	}
	return nil
}
