// internal/brands/registry.go
package brands

import (
	"errors"
	"fmt"
	"strings"

	"adbridge/internal/models"
)

var ErrUnknownBrand = errors.New("unknown brand")

// Registry maps a brand id to its ad account, access token and archival folder.
// It is built once at startup and read-only afterwards.
type Registry struct {
	profiles map[string]*models.BrandProfile
}

// NewRegistry builds a registry from a lookup function (normally os.Getenv).
// Every configured brand needs <BRAND>_META_AD_ACCOUNT_ID,
// <BRAND>_META_ACCESS_TOKEN and <BRAND>_DRIVE_FOLDER_ID; a missing key is a
// startup error, not a per-request one.
func NewRegistry(brandIDs []string, getenv func(string) string) (*Registry, error) {
	profiles := make(map[string]*models.BrandProfile, len(brandIDs))

	for _, id := range brandIDs {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		key := strings.ToUpper(id)

		profile := &models.BrandProfile{
			AdAccountID:      getenv(key + "_META_AD_ACCOUNT_ID"),
			AccessToken:      getenv(key + "_META_ACCESS_TOKEN"),
			ArchivalFolderID: getenv(key + "_DRIVE_FOLDER_ID"),
		}
		if profile.AdAccountID == "" {
			return nil, fmt.Errorf("brand %q: missing %s_META_AD_ACCOUNT_ID", id, key)
		}
		if profile.AccessToken == "" {
			return nil, fmt.Errorf("brand %q: missing %s_META_ACCESS_TOKEN", id, key)
		}
		if profile.ArchivalFolderID == "" {
			return nil, fmt.Errorf("brand %q: missing %s_DRIVE_FOLDER_ID", id, key)
		}

		profiles[id] = profile
	}

	if len(profiles) == 0 {
		return nil, errors.New("no brands configured")
	}

	return &Registry{profiles: profiles}, nil
}

// NewRegistryFromProfiles builds a registry from already-resolved profiles.
// Used by tests to fabricate brands without touching the environment.
func NewRegistryFromProfiles(profiles map[string]*models.BrandProfile) *Registry {
	copied := make(map[string]*models.BrandProfile, len(profiles))
	for id, p := range profiles {
		copied[strings.ToLower(id)] = p
	}
	return &Registry{profiles: copied}
}

func (r *Registry) Lookup(brandID string) (*models.BrandProfile, error) {
	p, ok := r.profiles[strings.ToLower(strings.TrimSpace(brandID))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBrand, brandID)
	}
	return p, nil
}

// Brands returns the configured brand ids, for startup logging.
func (r *Registry) Brands() []string {
	out := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		out = append(out, id)
	}
	return out
}
