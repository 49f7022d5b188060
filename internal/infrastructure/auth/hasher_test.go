package auth

import "testing"

func TestMD5Hasher_KnownVector(t *testing.T) {
	h := MD5Hasher{}
	got, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	// Digest as produced by the legacy system for the same input.
	if want := "5ebe2294ecd0e0f08eab7690d2a6ee69"; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestMD5Hasher_Verify(t *testing.T) {
	h := MD5Hasher{}
	digest, _ := h.Hash("s3cret")

	if !h.Verify("s3cret", digest) {
		t.Fatalf("correct password must verify")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("wrong password must not verify")
	}
	if h.Verify("s3cret", "") {
		t.Fatalf("empty digest must not verify")
	}
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := BcryptHasher{}
	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !h.Verify("s3cret", digest) {
		t.Fatalf("correct password must verify")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestNewHasher_SchemeSelection(t *testing.T) {
	if _, ok := NewHasher(SchemeBcrypt).(BcryptHasher); !ok {
		t.Fatalf("bcrypt scheme must select BcryptHasher")
	}
	if _, ok := NewHasher(SchemeMD5).(MD5Hasher); !ok {
		t.Fatalf("md5 scheme must select MD5Hasher")
	}
	// Unknown schemes keep legacy digests verifiable.
	if _, ok := NewHasher("argon2").(MD5Hasher); !ok {
		t.Fatalf("unknown scheme must fall back to MD5Hasher")
	}
}
