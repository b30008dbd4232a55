package modules

import (
	"context"

	"github.com/Luismorlan/yatube/activity"
	"github.com/Luismorlan/yatube/file_store"
	Logger "github.com/Luismorlan/yatube/utils/log"
	"github.com/sirupsen/logrus"
)

type ImageJanitorConfig struct {
	Name string
}

// ImageJanitor removes images that no post references anymore, after a post
// is deleted or its image replaced. Failures are logged and the object is
// left behind.
type ImageJanitor struct {
	Config ImageJanitorConfig

	Store file_store.ImageStore

	Bus *activity.Bus
}

func NewImageJanitor(config ImageJanitorConfig, store file_store.ImageStore, bus *activity.Bus) *ImageJanitor {
	return &ImageJanitor{
		Config: config,
		Store:  store,
		Bus:    bus,
	}
}

func (j *ImageJanitor) RunModule(ctx context.Context) error {
	topics := []string{activity.TOPIC_POST_DELETED, activity.TOPIC_POST_UPDATED}
	return j.Bus.Consume(ctx, topics, func(topic string, event activity.Event) {
		if event.StaleImageKey == "" {
			return
		}
		if err := j.Store.Delete(ctx, event.StaleImageKey); err != nil {
			Logger.Log.WithFields(logrus.Fields{
				"post_id": event.PostID,
				"key":     event.StaleImageKey,
			}).Error("cannot delete stale image: ", err)
		}
	})
}

func (j *ImageJanitor) Name() string {
	return j.Config.Name
}
