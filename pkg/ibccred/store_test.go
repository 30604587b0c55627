package ibccred

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cred.json")
	const passphrase = "correct horse battery staple"
	const secret = "YmFzZTY0c2VjcmV0a2V5"

	if err := Save(path, passphrase, secret); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path, passphrase)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != secret {
		t.Errorf("Load = %q, want %q", got, secret)
	}
}

func TestLoadRejectsWrongPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cred.json")
	if err := Save(path, "right-passphrase", "top-secret"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := Load(path, "wrong-passphrase"); err == nil {
		t.Error("Load with wrong passphrase should fail, got nil error")
	}
}

func TestSaveOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cred.json")
	if err := Save(path, "pw", "first-secret"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Save(path, "pw", "second-secret"); err != nil {
		t.Fatalf("Save (overwrite): %v", err)
	}
	got, err := Load(path, "pw")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "second-secret" {
		t.Errorf("Load after overwrite = %q, want %q", got, "second-secret")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	if _, err := Load(path, "pw"); err == nil {
		t.Error("Load of a missing file should fail")
	}
}
