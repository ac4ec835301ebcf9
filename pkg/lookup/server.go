package lookup

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/grooveshop/storefront/pkg/common"
)

// Server exposes the three lookup tables under one mux:
//
//	GET/POST    /{table}
//	PUT/DELETE  /{table}/{id}
//
// where table is artists, labels or genres.
type Server struct {
	stores map[string]*Store
}

func NewServer(db Querier) *Server {
	return &Server{stores: map[string]*Store{
		"artists": NewStore(db, Artists),
		"labels":  NewStore(db, Labels),
		"genres":  NewStore(db, Genres),
	}}
}

func (s *Server) store(w http.ResponseWriter, req *http.Request) *Store {
	st, ok := s.stores[req.PathValue("table")]
	if !ok {
		common.WriteError(w, http.StatusNotFound, "Unknown lookup table")
		return nil
	}
	return st
}

func writeLookupError(w http.ResponseWriter, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(apiErr.Status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": apiErr.Message, "code": apiErr.Code})
		return
	}
	common.WriteError(w, http.StatusInternalServerError, err.Error())
}

type namePayload struct {
	Name string `json:"name"`
}

func (s *Server) List(w http.ResponseWriter, req *http.Request) {
	st := s.store(w, req)
	if st == nil {
		return
	}
	entries, err := st.List(req.Context())
	if err != nil {
		writeLookupError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}

func (s *Server) Create(w http.ResponseWriter, req *http.Request) {
	st := s.store(w, req)
	if st == nil {
		return
	}
	var payload namePayload
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	entry, err := st.Create(req.Context(), payload.Name)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(entry)
}

func (s *Server) Rename(w http.ResponseWriter, req *http.Request) {
	st := s.store(w, req)
	if st == nil {
		return
	}
	id, err := strconv.ParseInt(req.PathValue("id"), 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var payload namePayload
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	entry, err := st.Rename(req.Context(), id, payload.Name)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entry)
}

func (s *Server) Delete(w http.ResponseWriter, req *http.Request) {
	st := s.store(w, req)
	if st == nil {
		return
	}
	id, err := strconv.ParseInt(req.PathValue("id"), 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := st.Delete(req.Context(), id); err != nil {
		writeLookupError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) Handler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{table}", s.List)
	mux.HandleFunc("POST /{table}", s.Create)
	mux.HandleFunc("PUT /{table}/{id}", s.Rename)
	mux.HandleFunc("DELETE /{table}/{id}", s.Delete)
	return mux
}
