package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	ResourceUsers        = "users"
	ResourceAuth         = "auth"
	ResourceGuides       = "guides"
	ResourceTrails       = "trails"
	ResourceAvailability = "availability"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	RedisSessionKeyFormat          = "session:%s"
	RedisAvailabilityLockKeyFormat = "availability-lock:%s"
)

const (
	EventAvailabilityUpdated = "availability.updated"
	EventGuideDeleted        = "guide.deleted"
)
