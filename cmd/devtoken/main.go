// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command devtoken mints an RS256 access token the API accepts, for local
// development against a key pair that stands in for the identity provider.
//
// Usage:
//
//	devtoken -key ./keys/private.pem -sub 0192f1d0-... [-email dev@learnhub.app] [-ttl 1h]
//
// The printed token goes into "Authorization: Bearer <token>". Whether the
// identity may write master data is still decided by its users.profile role.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/taibuivan/learnhub/internal/platform/sec"
)

func main() {
	keyPath := flag.String("key", "./keys/private.pem", "PEM encoded RSA private key")
	issuer := flag.String("iss", "learnhub.app", "token issuer, must match JWT_ISSUER")
	subject := flag.String("sub", "", "identity id (required)")
	email := flag.String("email", "", "optional email claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *subject == "" {
		log.Error("missing_subject", slog.String("hint", "pass -sub <identity id>"))
		os.Exit(2)
	}

	privateKey, err := sec.LoadPrivateKey(*keyPath)
	if err != nil {
		log.Error("load_private_key_failed", slog.Any("error", err))
		os.Exit(1)
	}

	tokens, err := sec.NewTokenService(privateKey, nil, *issuer)
	if err != nil {
		log.Error("token_service_failed", slog.Any("error", err))
		os.Exit(1)
	}

	token, err := tokens.GenerateAccessToken(*subject, *email, *ttl)
	if err != nil {
		log.Error("sign_token_failed", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Println(token)
}
