package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingDataKey         = "data"
	LoggingSessionDataKey  = "session_data"
	LoggingQueryParamsKey  = "query_params"
	LoggingResponseKey     = "response"
	LoggingRequestKey      = "request"
	LoggingGuideIDKey      = "guide_id"
	LoggingTrailIDKey      = "trail_id"
	LoggingUserIDKey       = "user_id"
	LoggingFromKey         = "from"
	LoggingToKey           = "to"
	LoggingSpanCountKey    = "span_count"
	LoggingRangeCountKey   = "range_count"
	LoggingDayCountKey     = "day_count"
	LoggingResponseCount   = "response_count"
	LoggingRedisKey        = "redis_key"
	LoggingLockValueKey    = "lock_value"
	LoggingLockExpiryKey   = "lock_expiration"
	LoggingStoredValueKey  = "stored_value"
	LoggingExpectedValue   = "expected_value"
	LoggingEventKey        = "event"
	LoggingObjectNameKey   = "object_name"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
)
