package credential

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("password123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash equals plaintext")
	}
	if !Verify("password123", hash) {
		t.Error("Verify with correct password = false, want true")
	}
	if Verify("wrongpassword", hash) {
		t.Error("Verify with wrong password = true, want false")
	}
}

func TestHashEmptyPassword(t *testing.T) {
	if _, err := Hash(""); err != ErrEmptyPassword {
		t.Errorf("Hash(\"\") error = %v, want ErrEmptyPassword", err)
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("samepassword")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := Hash("samepassword")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, want distinct salts")
	}
}

func TestVerifyEmptyInputs(t *testing.T) {
	hash, _ := Hash("something")
	if Verify("", hash) {
		t.Error("Verify with empty password = true, want false")
	}
	if Verify("something", "") {
		t.Error("Verify with empty digest = true, want false")
	}
	if Verify("something", "not-a-bcrypt-hash") {
		t.Error("Verify with malformed digest = true, want false")
	}
}
