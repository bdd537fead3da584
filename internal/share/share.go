// Package share builds outbound share links for social platforms.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Platform identifies a share target.
type Platform string

const (
	Facebook Platform = "facebook"
	Twitter  Platform = "twitter"
	LinkedIn Platform = "linkedin"
	WhatsApp Platform = "whatsapp"
	Telegram Platform = "telegram"
)

// ErrUnknownPlatform is returned for platforms without a share endpoint.
var ErrUnknownPlatform = errors.New("unknown share platform")

// Platforms lists the supported platforms in display order.
var Platforms = []Platform{Facebook, Twitter, LinkedIn, WhatsApp, Telegram}

// ParsePlatform accepts a platform name case-insensitively; "x" is Twitter.
func ParsePlatform(name string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(name)))
	if p == "x" {
		return Twitter, nil
	}
	for _, known := range Platforms {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
}

// URL returns the share link for a page on the given platform. Title and
// page URL are query-escaped.
func URL(platform Platform, title, pageURL string) (string, error) {
	switch platform {
	case Facebook:
		return endpoint("https://www.facebook.com/sharer/sharer.php", "u", pageURL), nil
	case Twitter:
		return endpoint("https://twitter.com/intent/tweet", "text", title, "url", pageURL), nil
	case LinkedIn:
		return endpoint("https://www.linkedin.com/sharing/share-offsite/", "url", pageURL), nil
	case WhatsApp:
		return endpoint("https://api.whatsapp.com/send", "text", title+" "+pageURL), nil
	case Telegram:
		return endpoint("https://t.me/share/url", "url", pageURL, "text", title), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}
}

// endpoint appends kv pairs in the given order. url.Values would sort them.
func endpoint(base string, kv ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for i := 0; i+1 < len(kv); i += 2 {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(kv[i])
		b.WriteByte('=')
		b.WriteString(escape(kv[i+1]))
	}
	return b.String()
}

// escape percent-encodes like encodeURIComponent: spaces become %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
