package app

import "os"

type Config struct {
	HTTPAddr string
	LogLevel string

	// Azure OpenAI
	OpenAIEndpoint   string
	OpenAIAPIKey     string
	OpenAIDeployment string

	// Local schema re-validation of model output (defense in depth on top of
	// the provider's strict response format)
	ValidateResponses bool

	// Error monitoring
	SentryDSN string
}

func LoadConfigFromEnv() Config {
	return Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		// Azure OpenAI
		OpenAIEndpoint:   getenv("AZURE_OPENAI_ENDPOINT", ""),
		OpenAIAPIKey:     getenv("AZURE_OPENAI_API_KEY", ""),
		OpenAIDeployment: getenv("AZURE_OPENAI_DEPLOYMENT", ""),

		ValidateResponses: getenvBool("VALIDATE_RESPONSES", false),

		SentryDSN: os.Getenv("SENTRY_DSN"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return def
}
