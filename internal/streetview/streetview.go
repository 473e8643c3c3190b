// Package streetview builds signed Street View Static API request URLs.
//
// A signature is HMAC-SHA1 over the request path and raw query, keyed with
// the URL-safe base64 decoded signing secret, and appended as the last query
// parameter. The query is signed byte for byte, so parameter order is fixed.
package streetview

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/susu3304/geoguess/internal/apperr"
	"github.com/susu3304/geoguess/internal/geoscore"
)

// Endpoint is the imagery service the URLs point at.
const Endpoint = "https://maps.googleapis.com/maps/api/streetview"

const (
	imageSize = "800x600"
	fov       = "90"
	heading   = "0"
	pitch     = "0"
)

var (
	ErrMissingAPIKey        = errors.New("GOOGLE_MAPS_API_KEY is not configured")
	ErrMissingSigningSecret = errors.New("GOOGLE_MAPS_SIGNING_SECRET is not configured")
	ErrEmptyKey             = errors.New("signing secret decodes to an empty key")
)

// Signer holds the API key and decoded signing key. It is immutable after
// NewSigner and safe for concurrent use.
type Signer struct {
	apiKey string
	key    []byte
	err    error
}

// NewSigner validates the credentials once. A Signer built from bad
// credentials is still usable: every call returns the configuration or
// decoding error found here, so the service can run without imagery.
func NewSigner(apiKey, signingSecret string) *Signer {
	s := &Signer{apiKey: apiKey}
	switch {
	case apiKey == "":
		s.err = apperr.NewConfiguration("street view is not configured", ErrMissingAPIKey)
	case signingSecret == "":
		s.err = apperr.NewConfiguration("street view is not configured", ErrMissingSigningSecret)
	default:
		s.key, s.err = DecodeSecret(signingSecret)
	}
	return s
}

// Err reports the credential problem found by NewSigner, if any.
func (s *Signer) Err() error {
	return s.err
}

// ImageryURL returns the signed imagery URL for p.
func (s *Signer) ImageryURL(p geoscore.Point) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	raw := unsignedURL(p, s.apiKey)
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse imagery url: %w", err)
	}
	return raw + "&signature=" + signature(u, s.key), nil
}

// BuildSignedImageryURL is the one-shot form of NewSigner(...).ImageryURL(p).
func BuildSignedImageryURL(p geoscore.Point, apiKey, signingSecret string) (string, error) {
	return NewSigner(apiKey, signingSecret).ImageryURL(p)
}

// SignURL appends a signature parameter to fullURL.
func SignURL(fullURL, signingSecret string) (string, error) {
	if signingSecret == "" {
		return "", apperr.NewConfiguration("street view is not configured", ErrMissingSigningSecret)
	}
	key, err := DecodeSecret(signingSecret)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(fullURL)
	if err != nil {
		return "", fmt.Errorf("parse url to sign: %w", err)
	}
	return fullURL + "&signature=" + signature(u, key), nil
}

// DecodeSecret decodes a URL-safe base64 secret, padded or not.
func DecodeSecret(signingSecret string) ([]byte, error) {
	key, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(signingSecret, "="))
	if err != nil {
		return nil, apperr.NewDecoding("signing secret is not valid URL-safe base64", err)
	}
	if len(key) == 0 {
		return nil, apperr.NewDecoding("signing secret is not valid URL-safe base64", ErrEmptyKey)
	}
	return key, nil
}

func signature(u *url.URL, key []byte) string {
	mac := hmac.New(sha1.New, key)
	mac.Write([]byte(u.EscapedPath() + "?" + u.RawQuery))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func unsignedURL(p geoscore.Point, apiKey string) string {
	location := formatCoord(p.Lat) + "," + formatCoord(p.Lng)
	return Endpoint + "?" + encodeQuery([][2]string{
		{"size", imageSize},
		{"location", location},
		{"fov", fov},
		{"heading", heading},
		{"pitch", pitch},
		{"key", apiKey},
	})
}

// encodeQuery is url.Values.Encode without the key sort.
func encodeQuery(params [][2]string) string {
	var b strings.Builder
	for i, kv := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[1]))
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
