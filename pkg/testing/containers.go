package testing

import "os"

const (
	DefaultPGImage = "postgres:17.5"
	DefaultESImage = "docker.elastic.co/elasticsearch/elasticsearch:8.12.0"
)

// image lets CI pin container images through the environment.
func image(envKey, fallback string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}
