package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":            "is required",
	"email":               "must be a valid email",
	"alphanum":            "must contain only alphanumeric characters",
	"min":                 "must be at least %s characters long",
	"max":                 "maximum at %s characters long",
	"eqfield":             "must match %s",
	"password":            "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":             "must be a number",
	"len":                 "must be %s characters long",
	"oneof":               "must be one of [%s]",
	"gt":                  "must be greater than %s",
	"gte":                 "must be greater than or equal to %s",
	"lt":                  "must be less than %s",
	"lte":                 "must be less than or equal to %s",
	"url":                 "must be a valid URL",
	"uuid":                "must be a valid UUID",
	"day_key":             "must be a calendar day formatted as YYYY-MM-DD",
	"availability_status": "must be either 'available' or 'not_available'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientInvalidImageFormat            = "image must be a jpg, jpeg, or png file"

	ErrClientInvalidDateFormat         = "date must be a valid calendar day formatted as YYYY-MM-DD"
	ErrClientInvalidDateRange          = "start date must not be after end date"
	ErrClientInvalidAvailabilityStatus = "status must be either 'available' or 'not_available'"
	ErrClientAvailabilityInputShape    = "exactly one of 'date', 'startDate'/'endDate', or 'dates' must be provided"
	ErrClientGuideNotFound             = "guide not found"
	ErrClientTrailNotFound             = "trail not found"
	ErrClientGuideBusy                 = "another availability update for this guide is in progress, please retry"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON          = "failed to marshal value to JSON"
	ErrDevCannotParseMultipartForm   = "failed to parse multipart form"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevURLParamIDValidationFailed = "url parameter '%s' validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "credentials do not match any user"
	ErrDevEmailAlreadyExists         = "email already exists in database"
	ErrDevUsernameAlreadyExists      = "username already exists in database"
	ErrDevAuthTokenMissing           = "authorization token missing from request"
	ErrDevAuthGenerateToken          = "failed to generate auth token"
	ErrDevAuthSigningMethod          = "unexpected JWT signing method"
	ErrDevAuthTokenInvalidOrExpired  = "auth token invalid or expired"
	ErrDevSessionNotFound            = "session not found in redis"

	ErrDevDayKeyFormat           = "day key does not match YYYY-MM-DD or is not a real calendar date"
	ErrDevDayRangeInverted       = "range start day is after range end day"
	ErrDevDayListEmpty           = "discrete day list is empty"
	ErrDevAvailabilityStatus     = "availability status outside allowed set"
	ErrDevAvailabilityInputShape = "availability write must carry exactly one input shape"
	ErrDevGuideNotExists         = "guide does not exist in database"
	ErrDevTrailNotExists         = "trail does not exist in database"
	ErrDevGuideLockNotAcquired   = "per-guide availability write lock not acquired"

	ErrDevDBFailedToFindDocument     = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument   = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "mongodb failed to update document"
	ErrDevDBFailedToUpsertDocument   = "mongodb failed to upsert document"
	ErrDevDBFailedToDeleteDocument   = "mongodb failed to delete document"
	ErrDevDBFailedToIterateDocuments = "mongodb failed to iterate documents"
	ErrDevDBFailedToCountDocuments   = "mongodb failed to count documents"
	ErrDevDBStringNotObjectID        = "string is not a valid mongodb object id"

	ErrDevRedisSet           = "redis failed to set key"
	ErrDevRedisGet           = "redis failed to get key '%s'"
	ErrDevRedisDelete        = "redis failed to delete key"
	ErrDevRedisSetNX         = "redis failed to set key with NX"
	ErrDevRedisUnlock        = "redis failed to release lock"
	ErrDevEventPublishFailed = "failed to publish event to message broker"
	ErrDevStorageUploadFile  = "failed to upload file to object storage"
)
