// Package handle implements the HTTP endpoints of the Math 24 backend.
package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xuemaozhang/AI-math24/api/internal/hint"
)

type Handle struct {
	hints *hint.Service
}

func New(hints *hint.Service) *Handle {
	return &Handle{hints: hints}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// numbersPayload is the shared request base of /check and /hint.
type numbersPayload struct {
	Numbers []int  `json:"numbers"`
	Target  *int   `json:"target,omitempty"`
	Mode    string `json:"mode,omitempty"`
}

func (p *numbersPayload) validate() error {
	if len(p.Numbers) < 1 || len(p.Numbers) > 8 {
		return errors.New("numbers must contain between 1 and 8 values")
	}
	for _, n := range p.Numbers {
		if n <= 0 {
			return errors.New("Numbers must be positive")
		}
	}
	switch p.Mode {
	case "", "easy", "hard":
	default:
		return errors.New(`mode must be "easy" or "hard"`)
	}
	return nil
}

func (p *numbersPayload) target() int {
	if p.Target != nil {
		return *p.Target
	}
	return 24
}

// Health reports liveness.
func (h *Handle) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
