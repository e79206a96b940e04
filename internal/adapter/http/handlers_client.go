package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/courseflow/courseflow-backend/internal/domain"
	"github.com/courseflow/courseflow-backend/internal/usecase/client"
)

type clientRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
	Notes string `json:"notes"`
}

type clientResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone,omitempty"`
	Email string    `json:"email,omitempty"`
	Notes string    `json:"notes,omitempty"`
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:    c.ID,
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
		Notes: c.Notes,
	}
}

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	created, err := s.clients.Create(r.Context(), client.Input{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toClientResponse(created))
}

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	clients, err := s.clients.List(r.Context(), limit, offset)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]clientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", err.Error())
		return
	}

	found, err := s.clients.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toClientResponse(found))
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", err.Error())
		return
	}

	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	updated, err := s.clients.Update(r.Context(), id, client.Input{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toClientResponse(updated))
}

func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", err.Error())
		return
	}

	if err := s.clients.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
