package sealbridge

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	var keys [][]byte
	for i := 0; i < 3; i++ {
		key, err := DeriveKey("passphrase", salt, 2000)
		if err != nil {
			t.Fatalf("DeriveKey() error = %v", err)
		}
		keys = append(keys, key)
	}

	if !bytes.Equal(keys[0], keys[1]) || !bytes.Equal(keys[1], keys[2]) {
		t.Error("identical inputs produced different keys")
	}
}

func TestDeriveKey_CachedKeyUsableWithKeyedEnvelope(t *testing.T) {
	salt, err := GenerateSalt(16)
	if err != nil {
		t.Fatal(err)
	}

	// Amortizing workflow: derive once, reuse across keyed operations
	key, err := DeriveKey("passphrase", salt, 10000)
	if err != nil {
		t.Fatal(err)
	}
	defer ZeroBytes(key)

	env, err := EncryptWithKey([]byte("cached key payload"), key)
	if err != nil {
		t.Fatal(err)
	}

	plaintext, err := DecryptWithKey(env, key)
	if err != nil {
		t.Fatal(err)
	}

	if string(plaintext) != "cached key payload" {
		t.Errorf("plaintext = %q", plaintext)
	}
}

func TestDeriveKey_Bounds(t *testing.T) {
	salt := []byte("0123456789abcdef")

	tests := []struct {
		name       string
		salt       []byte
		iterations int
		wantErr    error
	}{
		{"salt length 4", make([]byte, 4), 2000, ErrInvalidSalt},
		{"salt length 128", make([]byte, 128), 2000, ErrInvalidSalt},
		{"iterations 500", salt, 500, ErrInvalidIterations},
		{"iterations 200000", salt, 200000, ErrInvalidIterations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DeriveKey("pw", tt.salt, tt.iterations); !errors.Is(err, tt.wantErr) {
				t.Errorf("DeriveKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeriveKey_MissingArguments(t *testing.T) {
	if _, err := DeriveKey("", []byte("0123456789abcdef"), 2000); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty password error = %v, want ErrInvalidArgument", err)
	}
	if _, err := DeriveKey("pw", nil, 2000); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil salt error = %v, want ErrInvalidArgument", err)
	}
}

func TestGenerateSalt_Bounds(t *testing.T) {
	salt, err := GenerateSalt(16)
	if err != nil {
		t.Fatalf("GenerateSalt() error = %v", err)
	}
	if len(salt) != 16 {
		t.Errorf("salt length = %d, want 16", len(salt))
	}

	for _, size := range []int{0, 4, 128} {
		if _, err := GenerateSalt(size); !errors.Is(err, ErrInvalidSalt) {
			t.Errorf("GenerateSalt(%d) error = %v, want ErrInvalidSalt", size, err)
		}
	}
}

func TestZeroBytes(t *testing.T) {
	b := []byte{1, 2, 3}
	ZeroBytes(b)
	if b[0] != 0 || b[1] != 0 || b[2] != 0 {
		t.Error("buffer was not zeroed")
	}

	ZeroBytes(nil) // must not panic
}
