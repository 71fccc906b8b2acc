package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/cosmiccommons/c3site/shared/config"
	"github.com/cosmiccommons/c3site/shared/domain"
	"github.com/cosmiccommons/c3site/shared/jwt"
)

func main() {
	var configFolder, subject string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&subject, "subject", "admin", "token subject")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	token, err := jwt.New(cfg.JwtKey(), cfg.JwtTTL()).NewToken(domain.Principal{Subject: subject, Admin: true})
	if err != nil {
		log.Fatalf("Failed to mint admin token: %v", err)
	}

	fmt.Println("Admin token (valid for " + cfg.JwtTTL().String() + "):")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Send it as a cookie named accessToken or as:")
	fmt.Printf("Authorization: Bearer %s\n", token)
}
