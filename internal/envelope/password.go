package envelope

import (
	"encoding/binary"
	"fmt"

	"github.com/sealbridge/envelope-go/internal/crypto"
)

// EncodePassword serializes a salt, nonce, ciphertext and tag into the
// password wire format: a single base64 blob of
// u32-LE(saltLen) || salt || nonce || ciphertext || tag.
func EncodePassword(salt, nonce, ciphertext, tag []byte) string {
	buf := make([]byte, 0, 4+len(salt)+len(nonce)+len(ciphertext)+len(tag))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(salt)))
	buf = append(buf, salt...)
	buf = append(buf, nonce...)
	buf = append(buf, ciphertext...)
	buf = append(buf, tag...)

	return crypto.ToBase64(buf)
}

// DecodePassword parses the password wire format back into its salt, nonce,
// ciphertext and tag components. The declared salt length must be positive
// when reinterpreted as a signed 32-bit integer and the buffer must hold at
// least 4 + saltLen + 12 + 16 bytes.
func DecodePassword(s string) (salt, nonce, ciphertext, tag []byte, err error) {
	buf, err := crypto.DecodeBase64(s)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: decode blob: %v", ErrMalformed, err)
	}

	if len(buf) < 4 {
		return nil, nil, nil, nil, fmt.Errorf("%w: blob length %d shorter than salt length prefix", ErrMalformed, len(buf))
	}

	saltLen := int32(binary.LittleEndian.Uint32(buf[:4]))
	if saltLen <= 0 {
		return nil, nil, nil, nil, fmt.Errorf("%w: declared salt length %d", ErrMalformed, saltLen)
	}

	sl := int(saltLen)
	need := 4 + sl + crypto.NonceSize + crypto.TagSize
	if len(buf) < need {
		return nil, nil, nil, nil, fmt.Errorf("%w: blob length %d, need at least %d", ErrMalformed, len(buf), need)
	}

	salt = buf[4 : 4+sl]
	nonce = buf[4+sl : 4+sl+crypto.NonceSize]
	rest := buf[4+sl+crypto.NonceSize:]

	return salt, nonce, rest[:len(rest)-crypto.TagSize], rest[len(rest)-crypto.TagSize:], nil
}
