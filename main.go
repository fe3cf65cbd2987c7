package main

import (
	"context"
	"log"

	"github.com/FrozenSaturn/pawsome/api"
	"github.com/FrozenSaturn/pawsome/config"
	"github.com/FrozenSaturn/pawsome/repository"
	"github.com/FrozenSaturn/pawsome/services"
)

func main() {
	// Load application configuration
	config.LoadConfig()

	// Seed the in-memory store. Nothing persists: a restart brings the
	// collections back to these seed values.
	store := repository.NewStore()
	log.Println("INFO: [Main] Store initialized.")

	// Select the chat responder variant.
	responder, err := newResponder()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize chat responder: %v", err)
	}

	handler := api.NewAPIHandler(store, responder)
	r := api.NewRouter(handler)
	log.Println("INFO: [Main] Routes registered.")

	serverPort := ":" + config.AppConfig.Server.Port
	if config.AppConfig.Server.Port == "" {
		log.Println("WARN: [Main] Server port not configured, using default :3000.")
		serverPort = ":3000"
	}
	log.Printf("INFO: [Main] Starting server on port %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}

func newResponder() (services.Responder, error) {
	switch config.AppConfig.LLM.Responder {
	case "static":
		log.Println("INFO: [Main] Using static keyword responder for PawBuddy.")
		return services.NewStaticResponder(), nil
	default:
		log.Printf("INFO: [Main] Using Gemini responder for PawBuddy (model '%s').", config.AppConfig.LLM.Model)
		return services.NewGeminiResponder(context.Background(), config.AppConfig.LLM)
	}
}
