package main

import (
	"log"

	"cowriter/internal/config"
	ui "cowriter/internal/ui"
	"cowriter/processing/inference"
)

func newInferenceClient(cfg *config.Config) *inference.Client {
	return inference.NewClient(cfg.GetEndpoint(), cfg.GetModel(), cfg.GetSystemPrompt())
}

func main() {
	cfg := config.NewDefaultConfig()

	client := newInferenceClient(cfg)
	log.Printf("using model %s at %s", client.Model(), client.Endpoint())

	app := ui.CreateApp(client, cfg)

	app.Run()
}
