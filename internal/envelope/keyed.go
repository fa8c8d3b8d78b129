package envelope

import (
	"fmt"
	"strings"

	"github.com/sealbridge/envelope-go/internal/crypto"
)

// EncodeKeyed serializes a nonce, ciphertext and tag into the keyed wire
// format: base64(nonce) + ":" + base64(ciphertext || tag).
func EncodeKeyed(nonce, ciphertext, tag []byte) string {
	body := make([]byte, 0, len(ciphertext)+len(tag))
	body = append(body, ciphertext...)
	body = append(body, tag...)

	return crypto.ToBase64(nonce) + ":" + crypto.ToBase64(body)
}

// DecodeKeyed parses the keyed wire format back into its nonce, ciphertext
// and tag components. The string must contain exactly one ':' separator, the
// nonce must decode to 12 bytes and the body must be at least as long as the
// 16-byte tag.
func DecodeKeyed(s string) (nonce, ciphertext, tag []byte, err error) {
	if strings.Count(s, ":") != 1 {
		return nil, nil, nil, fmt.Errorf("%w: expected one ':' separator", ErrMalformed)
	}

	noncePart, bodyPart, _ := strings.Cut(s, ":")

	nonce, err = crypto.DecodeBase64(noncePart)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: decode nonce: %v", ErrMalformed, err)
	}

	if len(nonce) != crypto.NonceSize {
		return nil, nil, nil, fmt.Errorf("%w: nonce length %d, want %d", ErrMalformed, len(nonce), crypto.NonceSize)
	}

	body, err := crypto.DecodeBase64(bodyPart)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: decode ciphertext: %v", ErrMalformed, err)
	}

	if len(body) < crypto.TagSize {
		return nil, nil, nil, fmt.Errorf("%w: body length %d shorter than tag", ErrMalformed, len(body))
	}

	return nonce, body[:len(body)-crypto.TagSize], body[len(body)-crypto.TagSize:], nil
}
