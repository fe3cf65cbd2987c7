package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// LLMConfig holds the chat relay settings. APIKeyEnv names the
// environment variable carrying the credential; the resolved key
// itself never appears in config files.
type LLMConfig struct {
	Responder       string  `mapstructure:"responder"` // "gemini" or "static"
	APIKeyEnv       string  `mapstructure:"api_key_env"`
	APIKey          string  `mapstructure:"-"`
	Model           string  `mapstructure:"model"`
	Temperature     float32 `mapstructure:"temperature"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens"`
	TimeoutSeconds  int     `mapstructure:"timeout_seconds"`
	PersonaPrompt   string  `mapstructure:"persona_prompt"`
	PersonaAck      string  `mapstructure:"persona_ack"`
}

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	LLM LLMConfig `mapstructure:"llm"`
}

// AppConfig is the global configuration instance.
var AppConfig Config

// LoadConfig loads configuration from config.yaml and environment
// variables. A missing config file is fine: defaults plus environment
// cover everything, including running with the chat relay degraded
// when no credential is set.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../config") // for running from test directories

	viper.SetDefault("server.port", "3000")
	viper.SetDefault("llm.responder", "gemini")
	viper.SetDefault("llm.api_key_env", "GEMINI_API_KEY")
	viper.SetDefault("llm.model", "gemini-1.5-flash")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.max_output_tokens", 500)
	viper.SetDefault("llm.timeout_seconds", 30)
	viper.SetDefault("llm.persona_prompt", defaultPersonaPrompt)
	viper.SetDefault("llm.persona_ack", defaultPersonaAck)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("WARN: [Config] Configuration file (config.yaml) not found. Using environment variables and defaults.")
		} else {
			log.Fatalf("FATAL: [Config] Error reading configuration file: %v", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("FATAL: [Config] Failed to unmarshal configuration into AppConfig struct: %v", err)
	}

	// Environment variable overrides
	if port := os.Getenv("SERVER_PORT"); port != "" {
		AppConfig.Server.Port = port
		log.Printf("INFO: [Config] Server port overridden by environment variable SERVER_PORT: %s", port)
	}
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SERVER_PORT") == "" {
		AppConfig.Server.Port = port
		log.Printf("INFO: [Config] Server port overridden by environment variable PORT: %s", port)
	}

	// Resolve the LLM credential from the named environment variable.
	if AppConfig.LLM.APIKeyEnv != "" {
		AppConfig.LLM.APIKey = os.Getenv(AppConfig.LLM.APIKeyEnv)
	}
	if AppConfig.LLM.APIKey == "" {
		log.Printf("WARN: [Config] LLM API key (env var '%s') is not set. PawBuddy chat will report itself unavailable.", AppConfig.LLM.APIKeyEnv)
	} else {
		log.Printf("INFO: [Config] Loaded LLM API key from environment variable '%s'.", AppConfig.LLM.APIKeyEnv)
	}

	log.Println("INFO: [Config] Configuration loading complete.")
}

const defaultPersonaPrompt = "You are PawBuddy, the friendly AI pet assistant for the North Dumdum pet community in Kolkata. " +
	"You help residents with questions about local veterinarians, pet adoption, volunteering, stray animal rescue, and pet-friendly places in North Dumdum, Birati, and Dum Dum Park. " +
	"Keep answers short, warm, and practical, and suggest the community's Action Board for rescue coordination when relevant."

const defaultPersonaAck = "Got it! I'm PawBuddy, the North Dumdum pet assistant. I'll keep my answers short, friendly, and focused on local pet care, adoption, rescue, and volunteering. How can I help?"
