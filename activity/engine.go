package activity

import (
	"context"
	"sync"

	Logger "github.com/Luismorlan/yatube/utils/log"
)

// Engine runs every module in its own routine against the shared Bus.
// Module lifetime is bound to the context passed to Run.
type Engine struct {
	Modules []Module

	Bus *Bus
}

func NewEngine(ms []Module, bus *Bus) *Engine {
	return &Engine{
		Modules: ms,
		Bus:     bus,
	}
}

// Run executes all modules and blocks until every one of them returned,
// which happens once ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, m := range e.Modules {
		wg.Add(1)
		go func(m Module) {
			defer wg.Done()
			Logger.Log.Infof("start engine module %s", m.Name())
			RunModuleWithGracefulRestart(ctx, m)
			Logger.Log.Infof("Module %s finished execution.", m.Name())
		}(m)
	}

	// Block until all goroutine finished execution.
	wg.Wait()
}
