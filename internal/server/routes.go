// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"net/http"

	"github.com/pdiddy/base-converter/internal/convert"
	"github.com/pdiddy/base-converter/pkg/types"
)

// convertResponse is the body of GET /api/convert. Values is empty when the
// input does not parse.
type convertResponse struct {
	Input  string        `json:"input"`
	Base   types.Base    `json:"base"`
	Valid  bool          `json:"valid"`
	Values []types.Entry `json:"values"`
}

func (s *Server) handleBases(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.Descriptors())
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := types.Decimal
	if raw := q.Get("base"); raw != "" {
		b, err := types.ParseBase(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		from = b
	}

	input := q.Get("value")
	values := convert.ConvertFrom(input, from)
	writeJSON(w, http.StatusOK, convertResponse{
		Input:  input,
		Base:   from,
		Valid:  !values.IsEmpty(),
		Values: values.Entries(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
