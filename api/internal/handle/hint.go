package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/xuemaozhang/AI-math24/api/internal/hint"
)

// hintTimeout bounds the outbound provider call.
const hintTimeout = 30 * time.Second

type hintReq struct {
	numbersPayload
	Expression string  `json:"expression"`
	Solution   *string `json:"solution"`
}

type hintResp struct {
	Hint  string `json:"hint"`
	Model string `json:"model"`
}

// Hint asks the configured model for a hint. A provider failure is the one
// collaborator error that is not absorbed locally; it surfaces as 502.
func (h *Handle) Hint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), hintTimeout)
	defer cancel()

	solution := ""
	if req.Solution != nil {
		solution = *req.Solution
	}
	out, err := h.hints.Hint(ctx, hint.Request{
		Numbers:    req.Numbers,
		Target:     req.target(),
		Mode:       req.Mode,
		Expression: req.Expression,
		Solution:   solution,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Hint: out.Hint, Model: out.Model})
}
