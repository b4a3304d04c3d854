package feed

import (
	"net/url"
	"strings"
)

// DomainName derives a display name from a feed URL, used when a feed
// supplies no title: "https://www.example.com/rss" -> "Example Com".
func DomainName(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" {
		return "Unknown Source"
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")

	parts := strings.Split(host, ".")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
