package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"seedqr/internal/artifact"
	"seedqr/internal/audit"
	"seedqr/internal/cryptocore"
	"seedqr/internal/dispatch"
	"seedqr/internal/secret"
	"seedqr/internal/seedphrase"
	"seedqr/internal/shamir"
)

// Server handles HTTP requests: a thin struct holding injected dependencies
// plus one handler method per route.
type Server struct {
	audit *audit.Log
	cfg   *Config
}

// NewServer creates a new server instance.
func NewServer(auditLog *audit.Log, cfg *Config) *Server {
	return &Server{audit: auditLog, cfg: cfg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func toQRPayload(e envelopeJSON) artifact.QRPayload {
	return artifact.QRPayload{DataType: artifact.DataType(e.DataType), Content: e.Content}
}

func fromQRPayload(p artifact.QRPayload) envelopeJSON {
	return envelopeJSON{DataType: string(p.DataType), Content: p.Content}
}

// Handler returns the HTTP handler with all routes, wrapped in auth
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/v1/encrypt", s.handleEncrypt)
	mux.HandleFunc("/v1/decrypt", s.handleDecrypt)
	mux.HandleFunc("/v1/split", s.handleSplit)
	mux.HandleFunc("/v1/reconstruct", s.handleReconstruct)
	mux.HandleFunc("/v1/validate-seed", s.handleValidateSeed)

	return authMiddleware(s.cfg.AuthTokens, mux)
}

func (s *Server) logOp(operation, outcome string) {
	label := uuid.NewString()
	if err := s.audit.Record(operation, label, outcome); err != nil {
		log.Printf("[audit] record failed: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "seedqrd"})
}

func (s *Server) handleEncrypt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	var req EncryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, EncryptResponse{Status: "error", Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Phrase == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, EncryptResponse{Status: "error", Error: "missing phrase or password"})
		return
	}

	var payload artifact.QRPayload
	var err error

	if req.DecoyPhrase != "" {
		layered, lerr := cryptocore.EncryptWithDecoy(
			secret.NewText(req.Phrase), req.Password,
			secret.NewText(req.DecoyPhrase), req.DecoyPassword,
			req.DecoyHint,
		)
		if lerr != nil {
			s.logOp("encrypt", "error")
			writeJSON(w, http.StatusBadRequest, EncryptResponse{Status: "error", Error: lerr.Error()})
			return
		}
		payload, err = artifact.WrapLayered(layered)
	} else {
		env, eerr := cryptocore.Encrypt(secret.NewText(req.Phrase), req.Password)
		if eerr != nil {
			s.logOp("encrypt", "error")
			writeJSON(w, http.StatusBadRequest, EncryptResponse{Status: "error", Error: eerr.Error()})
			return
		}
		payload, err = artifact.WrapEncrypted(env)
	}
	if err != nil {
		s.logOp("encrypt", "error")
		writeJSON(w, http.StatusInternalServerError, EncryptResponse{Status: "error", Error: "failed to build envelope"})
		return
	}

	env := fromQRPayload(payload)
	s.logOp("encrypt", "ok")
	writeJSON(w, http.StatusOK, EncryptResponse{Status: "ok", Envelope: &env})
}

func (s *Server) handleDecrypt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	var req DecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, DecryptResponse{Status: "error", Error: "invalid JSON: " + err.Error()})
		return
	}

	data, err := artifact.Encode(toQRPayload(req.Envelope))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, DecryptResponse{Status: "error", Error: "invalid envelope"})
		return
	}

	res, err := dispatch.DecryptDispatch(dispatch.BytesSource(data), func() (string, error) { return req.Password, nil })
	if err != nil {
		s.logOp("decrypt", "failed")
		writeJSON(w, http.StatusUnauthorized, DecryptResponse{Status: "error", Error: err.Error()})
		return
	}
	defer res.Plaintext.Zero()

	s.logOp("decrypt", "ok")
	writeJSON(w, http.StatusOK, DecryptResponse{Status: "ok", Phrase: res.Plaintext.String(), IsReal: res.IsReal})
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, SplitResponse{Status: "error", Error: "invalid JSON: " + err.Error()})
		return
	}

	shares, err := shamir.Split([]byte(req.Phrase), req.Threshold, req.Total)
	if err != nil {
		s.logOp("split", "error")
		writeJSON(w, http.StatusBadRequest, SplitResponse{Status: "error", Error: err.Error()})
		return
	}

	out := make([]envelopeJSON, len(shares))
	for i, sh := range shares {
		payload, werr := artifact.WrapShamir(sh)
		if werr != nil {
			s.logOp("split", "error")
			writeJSON(w, http.StatusInternalServerError, SplitResponse{Status: "error", Error: "failed to wrap share"})
			return
		}
		out[i] = fromQRPayload(payload)
	}

	s.logOp("split", "ok")
	writeJSON(w, http.StatusOK, SplitResponse{Status: "ok", Shares: out, Summary: shamir.Summary(shares)})
}

func (s *Server) handleReconstruct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	var req ReconstructRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ReconstructResponse{Status: "error", Error: "invalid JSON: " + err.Error()})
		return
	}

	sources := make([]dispatch.Source, 0, len(req.Shares))
	for _, e := range req.Shares {
		data, err := artifact.Encode(toQRPayload(e))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ReconstructResponse{Status: "error", Error: "invalid share envelope"})
			return
		}
		sources = append(sources, dispatch.BytesSource(data))
	}

	plaintext, err := dispatch.ReconstructDispatch(sources, 0)
	if err != nil {
		s.logOp("reconstruct", "failed")
		writeJSON(w, http.StatusBadRequest, ReconstructResponse{Status: "error", Error: err.Error()})
		return
	}

	s.logOp("reconstruct", "ok")
	writeJSON(w, http.StatusOK, ReconstructResponse{Status: "ok", Phrase: string(plaintext)})
}

func (s *Server) handleValidateSeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	var req ValidateSeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ValidateSeedResponse{Status: "error", Error: "invalid JSON: " + err.Error()})
		return
	}

	v := seedphrase.New()
	res, err := v.Validate(req.Phrase)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ValidateSeedResponse{Status: "error", Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ValidateSeedResponse{
		Status:         "ok",
		WordCount:      res.WordCount,
		NonstandardLen: res.NonstandardLen,
		UnknownWords:   res.UnknownWords,
		Suggestions:    res.Suggestions,
	})
}
