package webhook

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"id":"p1","status":"succeeded"}`)
	good := Sign(body, "s3cret")

	assert.NoError(t, VerifySignature(body, good, "s3cret"))
	assert.NoError(t, VerifySignature(body, "sha256="+good, "s3cret"))

	assert.ErrorIs(t, VerifySignature(body, Sign(body, "other"), "s3cret"), ErrBadSignature)
	assert.ErrorIs(t, VerifySignature(body, "", "s3cret"), ErrMissingSignature)
	assert.ErrorIs(t, VerifySignature(body, good, ""), ErrMissingSecret)
	assert.ErrorIs(t, VerifySignature(body, "not-hex", "s3cret"), ErrBadSignature)
	assert.ErrorIs(t, VerifySignature(append(body, ' '), good, "s3cret"), ErrBadSignature)
}

func TestSignCallback(t *testing.T) {
	q := url.Values{}
	q.Set("requestId", "ab12cd34")
	q.Set("asset", "Main Theme")

	encoded := SignCallback(q, "s3cret")
	assert.Empty(t, q.Get(CallbackSignatureParam))

	signed, err := url.ParseQuery(encoded)
	assert.NoError(t, err)
	assert.Equal(t, "Main Theme", signed.Get("asset"))
	assert.NoError(t, VerifyCallback(signed, "s3cret"))

	tampered, _ := url.ParseQuery(encoded)
	tampered.Set("requestId", "ffffffff")
	assert.ErrorIs(t, VerifyCallback(tampered, "s3cret"), ErrBadSignature)

	assert.ErrorIs(t, VerifyCallback(q, "s3cret"), ErrMissingSignature)
	assert.ErrorIs(t, VerifyCallback(signed, "other"), ErrBadSignature)
}
