package handle

import (
	"encoding/json"
	"net/http"

	"github.com/xuemaozhang/AI-math24/api/internal/game"
)

type checkReq struct {
	numbersPayload
	Expression string `json:"expression"`
}

type checkResp struct {
	Valid      bool     `json:"valid"`
	Value      *float64 `json:"value"`
	Errors     []string `json:"errors"`
	Hints      []string `json:"hints"`
	Normalized *string  `json:"normalized_expression"`
}

// Check validates a submitted expression. Parse, evaluation, and
// number-usage failures are part of the structured result and always come
// back as 200; only schema violations are client errors.
func (h *Handle) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Expression == "" {
		http.Error(w, "expression is required", http.StatusBadRequest)
		return
	}

	res := game.Check(game.CheckRequest{
		Numbers:    req.Numbers,
		Target:     req.target(),
		Mode:       req.Mode,
		Expression: req.Expression,
	})
	writeJSON(w, http.StatusOK, checkResp{
		Valid:      res.Valid,
		Value:      res.Value,
		Errors:     res.Errors,
		Hints:      res.Hints,
		Normalized: res.Normalized,
	})
}
