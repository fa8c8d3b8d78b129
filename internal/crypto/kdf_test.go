package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	var keys [][]byte
	for i := 0; i < 3; i++ {
		key, err := DeriveKey("correct horse battery staple", salt, 2000)
		if err != nil {
			t.Fatalf("DeriveKey() error = %v", err)
		}
		if len(key) != KeySize {
			t.Fatalf("key length = %d, want %d", len(key), KeySize)
		}
		keys = append(keys, key)
	}

	if !bytes.Equal(keys[0], keys[1]) || !bytes.Equal(keys[1], keys[2]) {
		t.Error("identical inputs produced different keys")
	}
}

func TestDeriveKey_InputSensitivity(t *testing.T) {
	salt := []byte("0123456789abcdef")

	base, err := DeriveKey("password", salt, 2000)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("different password", func(t *testing.T) {
		key, err := DeriveKey("Password", salt, 2000)
		if err != nil {
			t.Fatal(err)
		}
		if bytes.Equal(base, key) {
			t.Error("different passwords produced the same key")
		}
	})

	t.Run("different salt", func(t *testing.T) {
		key, err := DeriveKey("password", []byte("fedcba9876543210"), 2000)
		if err != nil {
			t.Fatal(err)
		}
		if bytes.Equal(base, key) {
			t.Error("different salts produced the same key")
		}
	})

	t.Run("different iterations", func(t *testing.T) {
		key, err := DeriveKey("password", salt, 5000)
		if err != nil {
			t.Fatal(err)
		}
		if bytes.Equal(base, key) {
			t.Error("different iteration counts produced the same key")
		}
	})
}

func TestDeriveKey_IterationBounds(t *testing.T) {
	salt := []byte("0123456789abcdef")

	tests := []struct {
		name       string
		iterations int
		wantErr    error
	}{
		{"below minimum", 500, ErrInvalidIterations},
		{"zero", 0, ErrInvalidIterations},
		{"negative", -1, ErrInvalidIterations},
		{"above maximum", 200000, ErrInvalidIterations},
		{"at minimum", MinIterations, nil},
		{"at maximum", MaxIterations, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveKey("password", salt, tt.iterations)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("DeriveKey() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DeriveKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeriveKey_SaltBounds(t *testing.T) {
	tests := []struct {
		name     string
		saltSize int
		wantErr  error
	}{
		{"too short", 4, ErrInvalidSaltSize},
		{"empty", 0, ErrInvalidSaltSize},
		{"too long", 128, ErrInvalidSaltSize},
		{"at minimum", MinSaltSize, nil},
		{"at maximum", MaxSaltSize, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveKey("password", make([]byte, tt.saltSize), 2000)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("DeriveKey() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DeriveKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateSalt(t *testing.T) {
	t.Run("default size", func(t *testing.T) {
		salt, err := GenerateSalt(DefaultSaltSize)
		if err != nil {
			t.Fatalf("GenerateSalt() error = %v", err)
		}
		if len(salt) != DefaultSaltSize {
			t.Errorf("salt length = %d, want %d", len(salt), DefaultSaltSize)
		}
	})

	t.Run("unique", func(t *testing.T) {
		a, err := GenerateSalt(DefaultSaltSize)
		if err != nil {
			t.Fatal(err)
		}
		b, err := GenerateSalt(DefaultSaltSize)
		if err != nil {
			t.Fatal(err)
		}
		if bytes.Equal(a, b) {
			t.Error("two generated salts are identical")
		}
	})

	t.Run("bounds", func(t *testing.T) {
		for _, size := range []int{0, 4, 65, 128} {
			if _, err := GenerateSalt(size); !errors.Is(err, ErrInvalidSaltSize) {
				t.Errorf("GenerateSalt(%d) error = %v, want ErrInvalidSaltSize", size, err)
			}
		}
	})
}
