package vault

import (
	"bytes"
	"errors"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{name: "empty plaintext", plaintext: []byte{}},
		{name: "short text", plaintext: []byte("hello")},
		{name: "json document", plaintext: []byte(`{"projects":[{"name":"p1"}],"version":1}`)},
		{name: "binary data", plaintext: []byte{0x00, 0xFF, 0x10, 0x80, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := Seal(tt.plaintext, "correct-horse")
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}
			got, err := Open(blob, "correct-horse")
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if !bytes.Equal(got, tt.plaintext) {
				t.Errorf("round trip mismatch: got %q, want %q", got, tt.plaintext)
			}
		})
	}
}

func TestOpenWrongPassword(t *testing.T) {
	blob, err := Seal([]byte("secret"), "correct-horse")
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	_, err = Open(blob, "wrong-password")
	if !errors.Is(err, ErrWrongPasswordOrCorrupt) {
		t.Errorf("Open() with wrong password error = %v, want ErrWrongPasswordOrCorrupt", err)
	}
}

func TestOpenTamperedBlob(t *testing.T) {
	blob, err := Seal([]byte("secret"), "pw")
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	// Flip a ciphertext bit. The error must be indistinguishable from a
	// wrong password.
	tampered := append([]byte{}, blob...)
	tampered[len(tampered)-1] ^= 0x01

	_, err = Open(tampered, "pw")
	if !errors.Is(err, ErrWrongPasswordOrCorrupt) {
		t.Errorf("Open() with tampered blob error = %v, want ErrWrongPasswordOrCorrupt", err)
	}
}

func TestOpenTruncatedBlob(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
	}{
		{name: "empty", blob: nil},
		{name: "header only", blob: make([]byte, 1+16+12)},
		{name: "one byte short of minimum", blob: make([]byte, 1+16+12+15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.blob, "pw")
			if !errors.Is(err, ErrWrongPasswordOrCorrupt) {
				t.Errorf("Open() error = %v, want ErrWrongPasswordOrCorrupt", err)
			}
		})
	}
}

func TestOpenNewerFormatVersion(t *testing.T) {
	blob, err := Seal([]byte("secret"), "pw")
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	blob[0] = FormatVersion + 1

	_, err = Open(blob, "pw")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Open() with newer format error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSealEmptyPassword(t *testing.T) {
	if _, err := Seal([]byte("secret"), ""); err == nil {
		t.Error("Seal() with empty password should fail")
	}
}

func TestSealProducesFreshSaltAndNonce(t *testing.T) {
	a, err := Seal([]byte("same"), "pw")
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	b, err := Seal([]byte("same"), "pw")
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("two seals of the same plaintext produced identical blobs")
	}
}
