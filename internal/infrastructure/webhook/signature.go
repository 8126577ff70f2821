// Package webhook verifies signed webhook deliveries.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/url"
	"strings"
)

const (
	// SignatureHeader carries the hex HMAC-SHA256 of the raw body.
	SignatureHeader = "replicate-signature"
	// CallbackSignatureParam carries the hex HMAC-SHA256 of the other callback query values.
	CallbackSignatureParam = "sig"
)

var (
	ErrMissingSecret    = errors.New("webhook secret not configured")
	ErrMissingSignature = errors.New("signature header missing")
	ErrBadSignature     = errors.New("signature mismatch")
)

// Sign returns the hex HMAC-SHA256 of body under secret.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks header against the HMAC of body in constant time.
// An optional "sha256=" prefix on header is accepted.
func VerifySignature(body []byte, header, secret string) error {
	if secret == "" {
		return ErrMissingSecret
	}
	sig := strings.TrimSpace(header)
	sig = strings.TrimPrefix(sig, "sha256=")
	if sig == "" {
		return ErrMissingSignature
	}

	got, err := hex.DecodeString(strings.ToLower(sig))
	if err != nil {
		return ErrBadSignature
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return ErrBadSignature
	}
	return nil
}

// SignCallback encodes q with a signature parameter covering every other value.
// Values are signed in url.Values.Encode order, which sorts by key.
func SignCallback(q url.Values, secret string) string {
	values := withoutSignature(q)
	encoded := values.Encode()
	values.Set(CallbackSignatureParam, Sign([]byte(encoded), secret))
	return values.Encode()
}

// VerifyCallback checks the signature parameter of q against its other values.
func VerifyCallback(q url.Values, secret string) error {
	return VerifySignature([]byte(withoutSignature(q).Encode()), q.Get(CallbackSignatureParam), secret)
}

func withoutSignature(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, v := range q {
		if k != CallbackSignatureParam {
			out[k] = append([]string(nil), v...)
		}
	}
	return out
}
