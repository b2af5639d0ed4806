package brands

import (
	"errors"
	"strings"
	"testing"

	"adbridge/internal/models"
)

func fakeEnv(vals map[string]string) func(string) string {
	return func(key string) string { return vals[key] }
}

func TestNewRegistryLoadsConfiguredBrands(t *testing.T) {
	env := fakeEnv(map[string]string{
		"DESA_META_AD_ACCOUNT_ID": "123",
		"DESA_META_ACCESS_TOKEN":  "tok",
		"DESA_DRIVE_FOLDER_ID":    "folder",
	})

	reg, err := NewRegistry([]string{"desa"}, env)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	p, err := reg.Lookup("desa")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if p.AdAccountID != "123" || p.AccessToken != "tok" || p.ArchivalFolderID != "folder" {
		t.Fatalf("unexpected profile %+v", p)
	}
}

func TestNewRegistryMissingKeyNamesBrandAndKey(t *testing.T) {
	env := fakeEnv(map[string]string{
		"DESA_META_AD_ACCOUNT_ID": "123",
		"DESA_META_ACCESS_TOKEN":  "tok",
		// DESA_DRIVE_FOLDER_ID intentionally absent
	})

	_, err := NewRegistry([]string{"desa"}, env)
	if err == nil {
		t.Fatal("expected error for missing folder id")
	}
	if !strings.Contains(err.Error(), "DESA_DRIVE_FOLDER_ID") {
		t.Fatalf("error does not name missing key: %v", err)
	}
}

func TestLookupUnknownBrand(t *testing.T) {
	reg := NewRegistryFromProfiles(map[string]*models.BrandProfile{
		"desa": {AdAccountID: "1", AccessToken: "t", ArchivalFolderID: "f"},
	})

	_, err := reg.Lookup("acme")
	if !errors.Is(err, ErrUnknownBrand) {
		t.Fatalf("expected ErrUnknownBrand, got %v", err)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	reg := NewRegistryFromProfiles(map[string]*models.BrandProfile{
		"desa": {AdAccountID: "1", AccessToken: "t", ArchivalFolderID: "f"},
	})

	if _, err := reg.Lookup("DESA"); err != nil {
		t.Fatalf("Lookup(DESA): %v", err)
	}
}
