package utils

import (
	"github.com/Luismorlan/yatube/utils/flag"
	Logger "github.com/Luismorlan/yatube/utils/log"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

// StartProfiler starts the Datadog continuous profiler. Only production runs
// call it.
func StartProfiler() {
	if err := profiler.Start(
		profiler.WithService(flag.ServiceName),
		profiler.WithEnv(ddEnv()),
		profiler.WithProfileTypes(
			profiler.CPUProfile,
			profiler.HeapProfile,
		),
	); err != nil {
		Logger.Log.Error("cannot start profiler: ", err)
	}
}

// Stop profiler, OK to be closed multiple times
func CloseProfiler() {
	// Datadog profiler
	profiler.Stop()
}
