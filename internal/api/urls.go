package api

import "strings"

// defaultImage is returned for empty upload paths.
const defaultImage = "default-user.png"

// ToAbsoluteURL turns a relative upload path into a full URL. Already-absolute
// URLs and local blob previews pass through unchanged; empty input yields the
// default placeholder.
func (c *Client) ToAbsoluteURL(raw string) string {
	if raw == "" {
		return defaultImage
	}
	if strings.HasPrefix(raw, "http") || strings.HasPrefix(raw, "blob") {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return c.assetBaseURL + raw
}
