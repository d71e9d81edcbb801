// Command devtoken mints an HS256 bearer token accepted by the API when it runs
// without OIDC_ISSUER, signed with the same JWT_SECRET the server reads.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/GlebRadaev/charity/internal/config"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/rs/zerolog/log"
)

func main() {
	uid := flag.String("uid", "", "user id (token subject)")
	email := flag.String("email", "", "user email")
	name := flag.String("name", "", "display name")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")

	cfg := config.New()
	if *uid == "" {
		log.Fatal().Msg("-uid is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}

	token, err := auth.NewJWTVerifier(cfg.JWTSecret).GenerateToken(
		auth.Identity{ID: *uid, Email: *email, Name: *name},
		time.Now().Add(*ttl),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Can't sign token")
	}
	fmt.Fprintln(os.Stdout, token)
}
