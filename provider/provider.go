// Package provider manages the registry of built-in media source engines.
package provider

import (
	"github.com/spf13/viper"

	"github.com/utune-cli/utune/key"
	"github.com/utune-cli/utune/provider/ytdlp"
	"github.com/utune-cli/utune/source"
)

// Provider represents a source provider.
type Provider struct {
	ID   string
	Name string
	// External marks providers that delegate to an external resolver binary.
	External     bool
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:       ytdlp.ID,
			Name:     ytdlp.Name,
			External: true,
			CreateSource: func() (source.Source, error) {
				return ytdlp.New(), nil
			},
		},
	}
}

// Get finds a provider by name.
func Get(name string) (*Provider, bool) {
	for _, p := range Builtins() {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Default returns the provider selected by configuration.
func Default() (*Provider, bool) {
	return Get(viper.GetString(key.DefaultSource))
}
