package domain

import "errors"

// SettingsID is the logical id of the one-and-only settings record.
const SettingsID = "default"

var ErrSettingsNotFound = errors.New("settings not found")

// SiteSettings is the singleton site-configuration record. Exactly one
// exists: the first write creates it, every later write updates it.
type SiteSettings struct {
	HeroTitle    string `json:"heroTitle" bson:"hero_title"`
	HeroSubtitle string `json:"heroSubtitle" bson:"hero_subtitle"`
	HeroImage    string `json:"heroImage" bson:"hero_image"`
}

// DefaultSettings returns the deterministic value set served while no
// settings record exists yet.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		HeroTitle:    "Experience the Thrill of the Drive",
		HeroSubtitle: "Join the most exclusive automotive community in the country.",
		HeroImage:    "https://picsum.photos/seed/hero/1920/1080",
	}
}
