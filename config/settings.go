// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

// Settings carries the country table configuration.
type Settings struct {
	// Only, when non-empty, completely replaces the built-in table.
	// Override is ignored in this mode.
	Only map[string]string `config:"countries_only"`

	// Override layers partial changes over the built-in table. A nil
	// value suppresses the code entirely; a code absent from the
	// built-in table with a non-nil value adds a new entry. Since a
	// map holds a single value per code, a code can never be both
	// added and removed.
	Override map[string]*string `config:"countries_override"`
}

// Provider supplies Settings. Providers are consulted on every cache
// rebuild so runtime changes, most commonly in tests, are picked up
// after an invalidation.
type Provider interface {
	Settings() (Settings, error)
}

// ProviderFunc is a func variant of the Provider interface.
type ProviderFunc func() (Settings, error)

// Settings implements the Provider interface.
func (f ProviderFunc) Settings() (Settings, error) {
	return f()
}

type staticProvider struct {
	settings Settings
}

// Static returns a Provider which always supplies s.
func Static(s Settings) Provider {
	return staticProvider{settings: s}
}

// Settings implements the Provider interface.
func (p staticProvider) Settings() (Settings, error) {
	return p.settings, nil
}

type sourceProvider struct {
	srcs []Source
}

// FromSources returns a Provider which re-reads the given sources on
// every call. Sources backed by one-shot io.Readers can only be read
// once; prefer FromEnv or Map for providers that outlive a single
// rebuild.
func FromSources(srcs ...Source) Provider {
	return sourceProvider{srcs: srcs}
}

// Settings implements the Provider interface.
func (p sourceProvider) Settings() (Settings, error) {
	m, err := Read(p.srcs...)
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	err = m.Unmarshal(&s)
	if err != nil {
		return Settings{}, err
	}
	return s, nil
}
