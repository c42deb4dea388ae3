// Command campushub-token issues a signed bearer token for local testing of the API.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"campusHub/internal/config"
	"campusHub/internal/lib/token"
	"campusHub/internal/session"
)

func main() {
	var (
		configPath string
		sub        string
		name       string
		email      string
		ttl        time.Duration
	)

	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to config file")
	flag.StringVar(&sub, "sub", "", "identity-provider user id")
	flag.StringVar(&name, "name", "", "display name")
	flag.StringVar(&email, "email", "", "email address")
	flag.DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if configPath == "" {
		log.Fatal("config path is empty")
	}
	if sub == "" {
		log.Fatal("-sub is required")
	}

	cfg := config.MustLoadPath(configPath)

	tokens := token.NewManager(cfg.Auth.TokenSecret, cfg.Auth.Issuer)

	signed, err := tokens.Issue(session.Session{
		UserID: sub,
		Name:   name,
		Email:  email,
	}, ttl)
	if err != nil {
		log.Fatalf("cannot issue token: %s", err)
	}

	fmt.Println(signed)
}
