// Package seeders registers seed functions that populate a fresh database
// with baseline rows. Seeder files add themselves from init():
//
//	func init() { seeders.Register("catalog", SeedCatalog) }
//
// The CLI runs them in registration order via `shopapi seed`.
package seeders

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"shopapi/pkg/logger"
)

// SeederFunc populates one slice of baseline data. Implementations must be
// safe to re-run.
type SeederFunc func(db *gorm.DB) error

var (
	mu    sync.Mutex
	names []string
	funcs map[string]SeederFunc
)

// Register adds fn under name. Registration order is execution order; a
// duplicate name replaces the earlier function but keeps its slot.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()

	if funcs == nil {
		funcs = make(map[string]SeederFunc)
	}
	if _, exists := funcs[name]; !exists {
		names = append(names, name)
	}
	funcs[name] = fn
}

// RunAll executes every registered seeder in order, stopping at the first
// failure.
func RunAll(db *gorm.DB) error {
	mu.Lock()
	ordered := append([]string(nil), names...)
	byName := funcs
	mu.Unlock()

	if len(ordered) == 0 {
		logger.Info("no seeders registered")
		return nil
	}

	for _, name := range ordered {
		if err := byName[name](db); err != nil {
			return fmt.Errorf("seeder %q: %w", name, err)
		}
		logger.Info("seeded", "name", name)
	}
	return nil
}
