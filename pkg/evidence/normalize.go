package evidence

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"regexp"
	"strings"
)

var embeddedURLRe = regexp.MustCompile(`https?://[^\s)<>"']+`)

// Query parameters that tag the visitor, not the content. Stripping them
// makes the same passage shared through different channels hash identically.
var trackingParams = map[string]bool{
	"gclid":  true,
	"fbclid": true,
	"igshid": true,
	"mc_cid": true,
	"mc_eid": true,
	"ref":    true,
}

// Normalize canonicalizes an excerpt for hashing: lowercase, tracking
// parameters stripped from embedded URLs, whitespace runs collapsed.
func Normalize(excerpt string) string {
	s := strings.ToLower(excerpt)
	s = embeddedURLRe.ReplaceAllStringFunc(s, stripTracking)
	return strings.Join(strings.Fields(s), " ")
}

// ContentHash is the hex SHA-256 digest of the normalized excerpt. It is the
// per-task deduplication key and must stay stable across runs.
func ContentHash(excerpt string) string {
	sum := sha256.Sum256([]byte(Normalize(excerpt)))
	return hex.EncodeToString(sum[:])
}

func stripTracking(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	q := u.Query()
	changed := false
	for key := range q {
		if trackingParams[key] || strings.HasPrefix(key, "utm_") {
			q.Del(key)
			changed = true
		}
	}
	if u.Fragment != "" {
		u.Fragment = ""
		changed = true
	}
	if !changed {
		return raw
	}
	u.RawQuery = q.Encode()
	return u.String()
}
