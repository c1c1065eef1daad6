package model

// PreferenceSchemaVersion is version of Preference layout written by this build
const PreferenceSchemaVersion = 1

// DefaultProfile is profile used when none is configured
const DefaultProfile = "default"

// Preference keeps "remember me" choice together with remembered email,
// so both values are always written and read as a single record
type Preference struct {
	Profile    string `json:"profile" bson:"_id" msgpack:"profile"`
	Version    int    `json:"version" bson:"version" msgpack:"version"`
	RememberMe bool   `json:"rememberMe" bson:"rememberMe" msgpack:"rememberMe"`
	Email      string `json:"userEmail" bson:"userEmail" msgpack:"userEmail"`
}

// RememberedPreference builds preference for user who opted into persistent login
func RememberedPreference(profile, email string) *Preference {
	return &Preference{
		Profile:    profile,
		Version:    PreferenceSchemaVersion,
		RememberMe: true,
		Email:      email,
	}
}
