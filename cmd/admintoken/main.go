// Command admintoken prints a bearer token for the admin endpoints, signed
// with ADMIN_JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"crypto_dashboard/internal/app/config"
	jwtmw "crypto_dashboard/internal/platform/jwt"
)

func main() {
	subject := flag.String("sub", "ops", "token subject")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.AdminJWTSecret == "" {
		log.Fatal("ADMIN_JWT_SECRET is not set")
	}

	token, err := jwtmw.NewGenerator(cfg.AdminJWTSecret, *ttl).GenerateToken(*subject)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
