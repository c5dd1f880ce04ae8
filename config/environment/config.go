package environment

import "os"

func GetOpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func GetChannelSecret() string {
	return os.Getenv("CHANNEL_SECRET")
}

func GetChannelAccessToken() string {
	return os.Getenv("CHANNEL_ACCESS_TOKEN")
}

// GetPlacesDir returns the directory holding the per-city place JSON files.
func GetPlacesDir() string {
	if dir := os.Getenv("PLACES_DIR"); dir != "" {
		return dir
	}
	return "data"
}

// GetDefaultCity is the owning city assumed for districts the bot cannot map.
func GetDefaultCity() string {
	if city := os.Getenv("CITY_DEFAULT"); city != "" {
		return city
	}
	return "台北"
}

// GetAssetBaseURL is the public HTTPS base serving the category imagemap
// images. LINE fetches imagemap tiles itself, so this must be reachable from
// outside.
func GetAssetBaseURL() string {
	if base := os.Getenv("ASSET_BASE_URL"); base != "" {
		return base
	}
	return "https://today-go-where-api-898860726599.asia-east1.run.app/imgmap/categories"
}

// ShouldSkipVerify disables signature verification and outbound delivery for
// local development.
func ShouldSkipVerify() bool {
	return os.Getenv("SKIP_SIGNATURE_VERIFY") == "true"
}

func GetPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
