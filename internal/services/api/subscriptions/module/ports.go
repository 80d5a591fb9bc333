package module

import "newsletter/internal/services/api/subscriptions/domain"

// Ports is what the subscriptions module offers other modules
type Ports struct {
	Service domain.ServicePort
	Store   domain.StorePort
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
