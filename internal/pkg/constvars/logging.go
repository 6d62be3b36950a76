package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingRedisKey          = "redis_key"
	LoggingDraftIDKey        = "draft_id"
	LoggingStepTypeKey       = "step_type"
	LoggingStepsKey          = "steps"
	LoggingRequestKeysKey    = "request_keys"
	LoggingResponseIDKey     = "response_id"
	LoggingTransportKey      = "transport"
	LoggingQueueNameKey      = "queue_name"
	LoggingBucketNameKey     = "bucket_name"
	LoggingObjectNameKey     = "object_name"
	LoggingURLKey            = "url"
	LoggingPayloadLengthKey  = "payload_length"
	LoggingCompleteKey       = "complete"
	LoggingNavigationPathKey = "path"

	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
