// ABOUTME: Resource CRUD handlers for the development gateway
// ABOUTME: Records are JSON documents scoped to the signed-in user
package devserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/harperreed/billfold/db"
)

func (s *Server) requireResource(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !Resources[chi.URLParam(r, "resource")] {
			writeError(w, http.StatusNotFound, codeNotFound, "Unable to locate request.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recordID parses the {id} path param. Invalid ids answer 404.
func recordID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, codeNotFound, "Not Found.")
		return 0, false
	}
	return id, true
}

func (s *Server) recordError(w http.ResponseWriter, err error) {
	if errors.Is(err, db.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "Not Found.")
		return
	}
	s.logger.Error("record operation failed", "err", err)
	writeError(w, http.StatusInternalServerError, codeInternal, err.Error())
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	records, err := s.records.List(r.Context(), user.ID, chi.URLParam(r, "resource"))
	if err != nil {
		s.recordError(w, err)
		return
	}

	docs := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		docs = append(docs, rec.Document())
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := decodeObject(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Body must be a JSON object")
		return
	}

	user := userFrom(r.Context())
	rec, err := s.records.Create(r.Context(), user.ID, chi.URLParam(r, "resource"), body)
	if err != nil {
		s.recordError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec.Document())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	user := userFrom(r.Context())
	rec, err := s.records.Get(r.Context(), user.ID, chi.URLParam(r, "resource"), id)
	if err != nil {
		s.recordError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec.Document())
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	body, err := decodeObject(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Body must be a JSON object")
		return
	}

	user := userFrom(r.Context())
	rec, err := s.records.Patch(r.Context(), user.ID, chi.URLParam(r, "resource"), id, body)
	if err != nil {
		s.recordError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec.Document())
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	user := userFrom(r.Context())
	if err := s.records.Delete(r.Context(), user.ID, chi.URLParam(r, "resource"), id); err != nil {
		s.recordError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
