package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw123" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword("pw123", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword("wrong", hash) {
		t.Fatal("expected mismatching password to fail")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	if CheckPassword("pw123", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash must report mismatch")
	}
	if CheckPassword("pw123", "") {
		t.Fatal("empty hash must report mismatch")
	}
}
