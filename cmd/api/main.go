package main

import (
	"context"
	"log"

	"herobanner/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config and open the database.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	api, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api: %v", err)
	}
	defer api.Close()

	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("api server: %v", err)
	}
}
