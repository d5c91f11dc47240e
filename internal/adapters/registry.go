package adapters

import (
	"fmt"
	"slices"
	"sync"

	"github.com/jpp0ca/OfflineMusicBridge/internal/domain"
	"github.com/jpp0ca/OfflineMusicBridge/internal/ports"
)

// SourceRegistry maps device tags to their DeviceSource implementations.
// It is safe for concurrent use.
type SourceRegistry struct {
	mu      sync.RWMutex
	sources map[domain.Device]ports.DeviceSource
}

// NewSourceRegistry creates an empty registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		sources: make(map[domain.Device]ports.DeviceSource),
	}
}

// Register adds a source to the registry, keyed by its Device().
func (r *SourceRegistry) Register(source ports.DeviceSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[source.Device()] = source
}

// Get returns the source for the given device, or an error if not found.
func (r *SourceRegistry) Get(device domain.Device) (ports.DeviceSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	source, ok := r.sources[device]
	if !ok {
		return nil, fmt.Errorf("unknown device source: %s", device)
	}
	return source, nil
}

// Available returns the registered devices in tag order.
func (r *SourceRegistry) Available() []domain.Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	devices := make([]domain.Device, 0, len(r.sources))
	for device := range r.sources {
		devices = append(devices, device)
	}
	slices.Sort(devices)
	return devices
}
