// Package bound provides the bound companion registries that hold token
// presentation metadata, one per token registry, created by a Factory.
package bound

import (
	"strings"
	"sync"

	"tokenregistry/internal/registry"
	"tokenregistry/pkg/domain"
)

// Companion mirrors the existence of the tokens of one registry and serves
// their metadata URIs.
type Companion struct {
	mu       sync.RWMutex
	address  domain.Address
	registry domain.Address
	baseURI  string
	exists   map[domain.TokenID]struct{}
}

var _ registry.Companion = (*Companion)(nil)

func (c *Companion) Address() domain.Address  { return c.address }
func (c *Companion) Registry() domain.Address { return c.registry }

// TokenURI is baseURI/<registry>/<id>.
func (c *Companion) TokenURI(id domain.TokenID) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.exists[id]; !ok {
		return "", registry.ErrURINonexistent
	}
	return strings.TrimSuffix(c.baseURI, "/") + "/" + c.registry.String() + "/" + id.String(), nil
}

// Mirror records a mint or burn of the companion's registry.
func (c *Companion) Mirror(id domain.TokenID, exists bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if exists {
		c.exists[id] = struct{}{}
		return
	}
	delete(c.exists, id)
}

// Exists reports whether the companion has seen id minted and not burned.
func (c *Companion) Exists(id domain.TokenID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.exists[id]
	return ok
}

// Count is the number of mirrored tokens.
func (c *Companion) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.exists)
}

// Factory deploys at most one companion per registry.
type Factory struct {
	mu      sync.RWMutex
	address domain.Address
	baseURI string
	bounds  map[domain.Address]*Companion
}

var _ registry.Factory = (*Factory)(nil)

// NewFactory creates a factory whose companions serve URIs under baseURI.
func NewFactory(address domain.Address, baseURI string) *Factory {
	return &Factory{
		address: address,
		baseURI: baseURI,
		bounds:  make(map[domain.Address]*Companion),
	}
}

func (f *Factory) Address() domain.Address { return f.address }

// Deploy returns the companion of reg, creating it on first use.
func (f *Factory) Deploy(reg domain.Address) *Companion {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.bounds[reg]; ok {
		return c
	}
	c := &Companion{
		address:  domain.DeriveAddress(f.address[:], reg[:]),
		registry: reg,
		baseURI:  f.baseURI,
		exists:   make(map[domain.TokenID]struct{}),
	}
	f.bounds[reg] = c
	return c
}

// BoundOf returns the companion deployed for reg.
func (f *Factory) BoundOf(reg domain.Address) (registry.Companion, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.bounds[reg]
	if !ok {
		return nil, false
	}
	return c, true
}
