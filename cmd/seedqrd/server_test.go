package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"seedqr/internal/audit"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audit.db")
	log, err := audit.Open(path)
	if err != nil {
		t.Fatalf("open audit: %v", err)
	}
	t.Cleanup(func() { log.Close() })

	cfg := defaultConfig()
	cfg.AuthTokens = nil
	return NewServer(log, cfg)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEncryptDecryptEndpointsRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/v1/encrypt", EncryptRequest{
		Phrase:   "witch collapse practice feed shame open",
		Password: "hunter2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("encrypt: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var encResp EncryptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &encResp); err != nil {
		t.Fatalf("decode encrypt response: %v", err)
	}
	if encResp.Status != "ok" || encResp.Envelope == nil {
		t.Fatalf("unexpected encrypt response: %+v", encResp)
	}

	rec2 := doJSON(t, h, http.MethodPost, "/v1/decrypt", DecryptRequest{
		Envelope: *encResp.Envelope,
		Password: "hunter2",
	})
	if rec2.Code != http.StatusOK {
		t.Fatalf("decrypt: expected 200, got %d: %s", rec2.Code, rec2.Body.String())
	}
	var decResp DecryptResponse
	if err := json.Unmarshal(rec2.Body.Bytes(), &decResp); err != nil {
		t.Fatalf("decode decrypt response: %v", err)
	}
	if decResp.Phrase != "witch collapse practice feed shame open" {
		t.Fatalf("unexpected phrase: %q", decResp.Phrase)
	}
	if !decResp.IsReal {
		t.Fatal("expected IsReal=true")
	}
}

func TestDecryptEndpointWrongPassword(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/v1/encrypt", EncryptRequest{
		Phrase:   "abandon ability able",
		Password: "correct",
	})
	var encResp EncryptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &encResp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec2 := doJSON(t, h, http.MethodPost, "/v1/decrypt", DecryptRequest{
		Envelope: *encResp.Envelope,
		Password: "wrong",
	})
	if rec2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec2.Code)
	}
}

func TestSplitReconstructEndpointsRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/v1/split", SplitRequest{
		Phrase:    "legal winner thank year wave sausage",
		Threshold: 2,
		Total:     3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("split: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var splitResp SplitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &splitResp); err != nil {
		t.Fatalf("decode split response: %v", err)
	}
	if len(splitResp.Shares) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(splitResp.Shares))
	}

	rec2 := doJSON(t, h, http.MethodPost, "/v1/reconstruct", ReconstructRequest{
		Shares: splitResp.Shares[:2],
	})
	if rec2.Code != http.StatusOK {
		t.Fatalf("reconstruct: expected 200, got %d: %s", rec2.Code, rec2.Body.String())
	}
	var reconResp ReconstructResponse
	if err := json.Unmarshal(rec2.Body.Bytes(), &reconResp); err != nil {
		t.Fatalf("decode reconstruct response: %v", err)
	}
	if reconResp.Phrase != "legal winner thank year wave sausage" {
		t.Fatalf("unexpected phrase: %q", reconResp.Phrase)
	}
}

func TestValidateSeedEndpoint(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/v1/validate-seed", ValidateSeedRequest{
		Phrase: "abandon ability able",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var res ValidateSeedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.WordCount != 3 || !res.NonstandardLen {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	log, err := audit.Open(path)
	if err != nil {
		t.Fatalf("open audit: %v", err)
	}
	defer log.Close()

	cfg := defaultConfig()
	cfg.AuthTokens = []string{"secret-token"}
	srv := NewServer(log, cfg)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/v1/validate-seed", ValidateSeedRequest{Phrase: "abandon"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
