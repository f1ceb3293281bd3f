package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
)

// HMACIPNVerifier implements ports.IPNVerifier for the provider's IPN scheme:
// HMAC-SHA512 over the JSON body re-serialized with sorted keys, hex-encoded.
// An empty secret disables verification; every webhook passes.
type HMACIPNVerifier struct {
	secret []byte
}

// NewHMACIPNVerifier creates a new IPN verifier.
func NewHMACIPNVerifier(secret string) *HMACIPNVerifier {
	return &HMACIPNVerifier{secret: []byte(secret)}
}

// Verify checks the webhook signature against the request body.
// Uses constant-time comparison to prevent timing attacks.
func (v *HMACIPNVerifier) Verify(body []byte, signature string) bool {
	if len(v.secret) == 0 {
		return true
	}
	if signature == "" {
		return false
	}

	// The provider signs the payload with its keys in sorted order, which is
	// exactly how encoding/json serializes a map.
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}
	sorted, err := json.Marshal(payload)
	if err != nil {
		return false
	}

	mac := hmac.New(sha512.New, v.secret)
	mac.Write(sorted)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
