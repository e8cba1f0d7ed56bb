package main

import (
	"log"
	"net/http"

	"invoiceflow/internal/api"
	"invoiceflow/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	h := api.NewServer(cfg)
	log.Printf("invoiceflow api listening on %s data_in=%s", cfg.APIAddr, cfg.DataInRoot)
	if err := http.ListenAndServe(cfg.APIAddr, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
