package modules

import (
	"context"

	"github.com/Luismorlan/yatube/activity"
	Logger "github.com/Luismorlan/yatube/utils/log"
)

// Counter is the part of the DogStatsD client the reporter needs.
type Counter interface {
	Incr(name string, tags []string, rate float64) error
}

type ReporterConfig struct {
	Name string
}

// Reporter's job is to listen to every activity topic and count events,
// sending to Datadog for monitoring purpose.
type Reporter struct {
	Config ReporterConfig

	Statsd Counter

	Bus *activity.Bus
}

func NewReporter(config ReporterConfig, statsd Counter, bus *activity.Bus) *Reporter {
	return &Reporter{
		Config: config,
		Statsd: statsd,
		Bus:    bus,
	}
}

// Report one event to datadog.
func ReportEvent(topic string, statsd Counter) {
	err := statsd.Incr(activity.DDOG_ACTIVITY_COUNTER, []string{"topic:" + topic}, 1)
	if err != nil {
		Logger.Log.Infoln("cannot report activity event", topic)
	}
}

func (r *Reporter) RunModule(ctx context.Context) error {
	return r.Bus.Consume(ctx, activity.AllTopics, func(topic string, event activity.Event) {
		ReportEvent(topic, r.Statsd)
	})
}

func (r *Reporter) Name() string {
	return r.Config.Name
}
