package utils

import (
	"github.com/Luismorlan/yatube/utils/dotenv"
	"github.com/Luismorlan/yatube/utils/flag"
	Logger "github.com/Luismorlan/yatube/utils/log"
	"github.com/sirupsen/logrus"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

func ddEnv() string {
	if dotenv.IsProdEnv() {
		return "production"
	}
	return "development"
}

// StartTracer starts the Datadog tracer, the gin middleware reports into it.
func StartTracer() {
	tracer.Start(
		tracer.WithService(flag.ServiceName),
		tracer.WithEnv(ddEnv()),
	)

	Logger.Log.WithFields(
		logrus.Fields{"service": flag.ServiceName, "is_development": flag.IsDevelopment},
	).Info("tracer initialized")
}

// Stop tracer, OK to be closed multiple times
func CloseTracer() {
	// Datadog tracer
	tracer.Stop()
}
