package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"cupid_fragments/internal/amenities"
	"cupid_fragments/internal/app"
	"cupid_fragments/internal/domain"
	"cupid_fragments/internal/profileheader"
	"cupid_fragments/internal/style"
)

// Fragments is what the handlers need from the fragment service.
type Fragments interface {
	Amenities(ctx context.Context, id int64, q app.AmenitiesQuery) (domain.Fragment, error)
	Header(ctx context.Context, id int64, q app.HeaderQuery) (domain.Fragment, error)
	RenderAmenities(p amenities.Props) (domain.Fragment, error)
	RenderHeader(p profileheader.Profile) (domain.Fragment, error)
}

type Handlers struct {
	F Fragments
	// QAHooks is the qaHook default when a request does not set it.
	QAHooks bool
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// amenitiesRequest is the JSON body of POST /v1/render/amenities. Items
// holds markup strings for single lists and group objects for grouped
// ones; groups is accepted as an alias for the grouped form.
type amenitiesRequest struct {
	Columns  int               `json:"columns"`
	ListType string            `json:"listType"`
	QAHook   *bool             `json:"qaHook"`
	Items    json.RawMessage   `json:"items"`
	Groups   []amenities.Group `json:"groups"`
}

func (req amenitiesRequest) props(qaDefault bool) (amenities.Props, error) {
	p := amenities.Props{
		Columns:  style.Columns(req.Columns),
		ListType: style.ListType(req.ListType),
		QAHook:   qaDefault,
		Groups:   req.Groups,
	}
	if req.QAHook != nil {
		p.QAHook = *req.QAHook
	}
	if len(req.Items) == 0 || string(req.Items) == "null" {
		return p, nil
	}
	if p.ListType == style.ListGrouped {
		var groups []amenities.Group
		if err := json.Unmarshal(req.Items, &groups); err != nil {
			return p, fmt.Errorf("grouped items must be group objects: %w", err)
		}
		p.Groups = append(p.Groups, groups...)
		return p, nil
	}
	if err := json.Unmarshal(req.Items, &p.Items); err != nil {
		return p, fmt.Errorf("items must be markup strings: %w", err)
	}
	return p, nil
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/properties/{id}/amenities", h.getAmenities)
		r.Get("/properties/{id}/header", h.getHeader)
		r.Post("/render/amenities", h.renderAmenities)
		r.Post("/render/header", h.renderHeader)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem responses.
func writeError(w http.ResponseWriter, r *http.Request, kind string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
	case errors.Is(err, style.ErrInvalidVariant),
		errors.Is(err, amenities.ErrMixedItems),
		errors.Is(err, profileheader.ErrNameRequired):
		writeProblem(w, http.StatusBadRequest, "Invalid fragment input", err.Error())
	default:
		log.Error().Err(err).Str("fragment", kind).Str("path", r.URL.Path).Msg("render fragment failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeFragment(w http.ResponseWriter, r *http.Request, f domain.Fragment) {
	w.Header().Set("ETag", f.ETag)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == f.ETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(f.HTML)); err != nil {
		log.Error().Err(err).Msg("failed to write fragment body")
	}
}

func propertyID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return 0, false
	}
	return id, true
}

func (h *Handlers) getAmenities(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r)
	if !ok {
		return
	}
	qs := r.URL.Query()

	q := app.AmenitiesQuery{QAHook: h.QAHooks}
	n := 0
	if v := qs.Get("columns"); v != "" {
		var err error
		if n, err = strconv.Atoi(v); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid columns", "columns must be 1, 2 or 3")
			return
		}
	}
	cols, err := style.ParseColumns(n)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid columns", err.Error())
		return
	}
	q.Columns = cols
	if q.ListType, err = style.ParseListType(qs.Get("listType")); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid listType", err.Error())
		return
	}
	if v := qs.Get("qaHook"); v != "" {
		if q.QAHook, err = strconv.ParseBool(v); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid qaHook", "qaHook must be a boolean")
			return
		}
	}

	f, err := h.F.Amenities(r.Context(), id, q)
	if err != nil {
		writeError(w, r, "amenities", err)
		return
	}
	writeFragment(w, r, f)
}

func (h *Handlers) getHeader(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r)
	if !ok {
		return
	}
	qs := r.URL.Query()

	var q app.HeaderQuery
	var err error
	if q.Alignment, err = style.ParseAlignment(qs.Get("alignment")); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid alignment", err.Error())
		return
	}
	if v := qs.Get("interestsLimit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid interestsLimit", "interestsLimit must be a non-negative integer")
			return
		}
		q.InterestsLimit = &n
	}

	f, err := h.F.Header(r.Context(), id, q)
	if err != nil {
		writeError(w, r, "header", err)
		return
	}
	writeFragment(w, r, f)
}

func (h *Handlers) renderAmenities(w http.ResponseWriter, r *http.Request) {
	var req amenitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	p, err := req.props(h.QAHooks)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid items", err.Error())
		return
	}

	f, err := h.F.RenderAmenities(p)
	if err != nil {
		writeError(w, r, "amenities", err)
		return
	}
	writeFragment(w, r, f)
}

func (h *Handlers) renderHeader(w http.ResponseWriter, r *http.Request) {
	var p profileheader.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}

	f, err := h.F.RenderHeader(p)
	if err != nil {
		writeError(w, r, "header", err)
		return
	}
	writeFragment(w, r, f)
}
