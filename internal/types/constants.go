package types

const (
	ContextUserKey = "user"

	TokenCookieName = "token"
	TokenQueryParam = "token"
)

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// AllowedOrigins is the development defaults plus the client URL and any
// configured extras, without duplicates.
func AllowedOrigins(clientURL string, extra []string) []string {
	origins := make([]string, 0, len(defaultOrigins)+len(extra)+1)
	seen := make(map[string]bool)

	add := func(origin string) {
		if origin == "" || seen[origin] {
			return
		}
		seen[origin] = true
		origins = append(origins, origin)
	}

	for _, origin := range defaultOrigins {
		add(origin)
	}
	add(clientURL)
	for _, origin := range extra {
		add(origin)
	}

	return origins
}
