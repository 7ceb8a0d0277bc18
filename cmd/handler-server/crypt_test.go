package handlerserver

import (
	"bytes"
	"testing"
)

func TestSealUnsealRoundTrip(t *testing.T) {
	slr, err := newSealer([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	plaintext := []byte("Hello World!\n")
	sealed, err := slr.seal(plaintext)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(sealed, plaintext) {
		t.Error("expected sealed bytes to hide the plaintext")
	}
	if len(sealed) != len(plaintext)+slr.overhead() {
		t.Errorf("expected sealed length %d, got %d", len(plaintext)+slr.overhead(), len(sealed))
	}

	unsealed, err := slr.unseal(sealed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(unsealed, plaintext) {
		t.Errorf("expected %q, got %q", plaintext, unsealed)
	}
}

func TestUnsealRejectsTampering(t *testing.T) {
	slr, err := newSealer([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	sealed, err := slr.seal([]byte("content"))
	if err != nil {
		t.Fatal(err)
	}
	sealed[len(sealed)-1] ^= 0xFF

	if _, err := slr.unseal(sealed); err == nil {
		t.Error("expected unseal failure for tampered content")
	}
}

func TestUnsealRejectsTruncation(t *testing.T) {
	slr, err := newSealer([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := slr.unseal([]byte("short")); err == nil {
		t.Error("expected unseal failure for truncated content")
	}
}

func TestSealersInteroperate(t *testing.T) {
	first, err := newSealer([]byte("shared secret"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := newSealer([]byte("shared secret"))
	if err != nil {
		t.Fatal(err)
	}

	sealed, err := first.seal([]byte("content"))
	if err != nil {
		t.Fatal(err)
	}
	unsealed, err := second.unseal(sealed)
	if err != nil {
		t.Fatal(err)
	}
	if string(unsealed) != "content" {
		t.Errorf("expected content, got %q", unsealed)
	}

	// A different secret derives a different key.
	other, err := newSealer([]byte("other secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := other.unseal(sealed); err == nil {
		t.Error("expected unseal failure under a different secret")
	}
}
