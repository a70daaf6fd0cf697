package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkordes/tour-ops/internal/domain"
)

// assetListResponse is the envelope for GET /assets.
type assetListResponse struct {
	Data       []assetResponse `json:"data"`
	Pagination pagination      `json:"pagination"`
}

// CreateAsset handles POST /api/v1/assets.
func (s *Server) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var body assetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "request body must be valid JSON")
		return
	}
	asset, err := requestToAsset(&body)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.assets.Create(r.Context(), asset)
	if err != nil {
		writeError(w, err, "asset not found")
		return
	}

	writeJSON(w, http.StatusCreated, assetToResponse(created))
}

// ListAssets handles GET /api/v1/assets.
// Supports ?type= to restrict by asset type and ?page=/?limit= pagination
// (defaults: page=1, limit=20, max=100).
func (s *Server) ListAssets(w http.ResponseWriter, r *http.Request) {
	params := queryPagination(r)
	assetType := domain.AssetType(r.URL.Query().Get("type"))

	assets, total, err := s.assets.ListPaged(r.Context(), assetType, params)
	if err != nil {
		writeError(w, err, "asset not found")
		return
	}

	data := make([]assetResponse, len(assets))
	for i, a := range assets {
		data[i] = assetToResponse(a)
	}
	writeJSON(w, http.StatusOK, assetListResponse{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetAsset handles GET /api/v1/assets/{id}.
func (s *Server) GetAsset(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	asset, err := s.assets.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "asset not found")
		return
	}

	writeJSON(w, http.StatusOK, assetToResponse(asset))
}

// UpdateAsset handles PUT /api/v1/assets/{id}.
func (s *Server) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var body assetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "request body must be valid JSON")
		return
	}
	asset, err := requestToAsset(&body)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	asset.ID = id

	updated, err := s.assets.Update(r.Context(), asset)
	if err != nil {
		writeError(w, err, "asset not found")
		return
	}

	writeJSON(w, http.StatusOK, assetToResponse(updated))
}

// DeleteAsset handles DELETE /api/v1/assets/{id}.
func (s *Server) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := s.assets.Delete(r.Context(), id); err != nil {
		writeError(w, err, "asset not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
