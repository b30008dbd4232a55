package cache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/Luismorlan/yatube/activity"
	Logger "github.com/Luismorlan/yatube/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const htmlContentType = "text/html; charset=utf-8"

// Bypass tells CachePage to skip a request, e.g. when a user is logged in
// and the page embeds their navigation.
type Bypass func(c *gin.Context) bool

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage serves GET requests from store for ttl, keyed by request uri.
// Only 200 responses are stored. Store failures degrade to rendering.
func CachePage(store Store, ttl time.Duration, bypass Bypass, publisher activity.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || ttl <= 0 || (bypass != nil && bypass(c)) {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		ctx := c.Request.Context()
		body, ok, err := store.Get(ctx, key)
		if err != nil {
			Logger.Log.WithFields(logrus.Fields{"uri": key}).Warn("page cache lookup failed: ", err)
		}
		if ok {
			publisher.Publish(activity.TOPIC_PAGE_CACHE_HIT, activity.Event{Uri: key})
			c.Data(http.StatusOK, htmlContentType, body)
			c.Abort()
			return
		}
		publisher.Publish(activity.TOPIC_PAGE_CACHE_MISS, activity.Event{Uri: key})

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder
		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}
		if err := store.Set(ctx, key, recorder.body.Bytes(), ttl); err != nil {
			Logger.Log.WithFields(logrus.Fields{"uri": key}).Warn("cannot store page: ", err)
		}
	}
}
