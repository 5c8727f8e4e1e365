// Package workflowregistry maps object type names to the modules that own
// them. A module registers a Source for each approvable object type; the
// engine looks objects up and fires outcome callbacks through it, so the
// engine itself never imports a business module.
package workflowregistry

import (
	"sync"

	"github.com/pkg/errors"
)

// ObjectInfo is what the engine needs to know about an approvable object.
type ObjectInfo struct {
	// Title is a human description, used in notifications and logs.
	Title string
	// EmployeeID identifies the employee the approval chain is resolved
	// against. Empty when the object has no subject employee.
	EmployeeID string
}

// Source is implemented by a module that owns an approvable object type.
type Source interface {
	GetInfo(objectID string) (info ObjectInfo, err error)
	OnApproved(objectID string) error
	OnRejected(objectID string) error
}

var (
	mu      sync.RWMutex
	sources = map[string]Source{}
)

// Register binds a Source to an object type name. Modules call it from
// their init wiring; a duplicate registration replaces the previous one.
func Register(objectType string, src Source) {
	mu.Lock()
	defer mu.Unlock()
	sources[objectType] = src
}

func Get(objectType string) (Source, error) {
	mu.RLock()
	defer mu.RUnlock()
	src, exist := sources[objectType]
	if !exist {
		return nil, errors.Errorf("no source registered for object type %q", objectType)
	}
	return src, nil
}
