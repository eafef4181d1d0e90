package main

import (
	"crypto/tls"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"seedqr/internal/audit"
)

func main() {
	cfg := defaultConfig()

	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTPS server port")
	flag.StringVar(&cfg.AuditDB, "audit-db", cfg.AuditDB, "sqlite audit log path")
	flag.StringVar(&cfg.CertFile, "cert", cfg.CertFile, "TLS certificate file")
	flag.StringVar(&cfg.KeyFile, "key", cfg.KeyFile, "TLS private key file")

	var authTokensFlag string
	flag.StringVar(&authTokensFlag, "tokens", "", "comma-separated API tokens (empty = no auth)")

	var httpMode bool
	flag.BoolVar(&httpMode, "http", false, "use HTTP instead of HTTPS (dev only)")

	flag.Parse()

	if envTokens := os.Getenv("SEEDQRD_TOKENS"); envTokens != "" {
		authTokensFlag = envTokens
	}

	if authTokensFlag != "" {
		cfg.AuthTokens = strings.Split(authTokensFlag, ",")
		for i := range cfg.AuthTokens {
			cfg.AuthTokens[i] = strings.TrimSpace(cfg.AuthTokens[i])
		}
		log.Printf("[auth] %d API tokens configured", len(cfg.AuthTokens))
	} else {
		log.Printf("[auth] WARNING: no API tokens configured, running in open mode")
	}

	auditLog, err := audit.Open(cfg.AuditDB)
	if err != nil {
		log.Fatalf("failed to open audit log: %v", err)
	}
	defer auditLog.Close()
	log.Printf("[audit] logging to %s", cfg.AuditDB)

	srv := NewServer(auditLog, cfg)
	handler := srv.Handler()

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if httpMode {
		log.Printf("[server] starting HTTP server on :%d (DEV MODE)", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
	} else {
		if _, err := os.Stat(cfg.CertFile); os.IsNotExist(err) {
			log.Printf("[tls] certificate file not found: %s", cfg.CertFile)
			log.Printf("[tls] to generate a self-signed cert for testing:")
			log.Printf("      openssl req -x509 -newkey rsa:4096 -keyout server.key -out server.crt -days 365 -nodes -subj '/CN=localhost'")
			log.Fatal("[tls] cannot start HTTPS server without certificates")
		}

		tlsConfig := &tls.Config{
			MinVersion:               tls.VersionTLS12,
			PreferServerCipherSuites: true,
			CipherSuites: []uint16{
				tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
				tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
				tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
				tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
			},
		}
		httpSrv.TLSConfig = tlsConfig

		log.Printf("[server] starting HTTPS server on :%d", cfg.Port)
		if err := httpSrv.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile); err != nil {
			log.Fatalf("HTTPS server error: %v", err)
		}
	}
}
