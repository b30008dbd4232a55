package activity

const (
	TOPIC_POST_CREATED    = "post.created"
	TOPIC_POST_UPDATED    = "post.updated"
	TOPIC_POST_DELETED    = "post.deleted"
	TOPIC_COMMENT_CREATED = "comment.created"
	TOPIC_FOLLOW_CREATED  = "follow.created"
	TOPIC_FOLLOW_DELETED  = "follow.deleted"
	TOPIC_PAGE_CACHE_HIT  = "page_cache.hit"
	TOPIC_PAGE_CACHE_MISS = "page_cache.miss"

	// Counter every event is reported under, tagged by topic.
	DDOG_ACTIVITY_COUNTER = "yatube.activity"
)

// AllTopics lists every topic published by the web server.
var AllTopics = []string{
	TOPIC_POST_CREATED,
	TOPIC_POST_UPDATED,
	TOPIC_POST_DELETED,
	TOPIC_COMMENT_CREATED,
	TOPIC_FOLLOW_CREATED,
	TOPIC_FOLLOW_DELETED,
	TOPIC_PAGE_CACHE_HIT,
	TOPIC_PAGE_CACHE_MISS,
}
