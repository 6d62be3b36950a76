package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s",
	"max":      "maximum at %s",
	"oneof":    "must be one of [%s]",
	"dive":     "is invalid",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientIncompleteRequest             = "please complete the contact, demand and summary steps before sending"
	ErrClientFailedToSendRequest           = "failed to send the request, please try again later"
	ErrClientDraftNotFound                 = "draft not found or already expired"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
	ErrClientRequestTooLarge               = "request body is too large"
	ErrClientDraftSubmitInProgress         = "this draft is already being submitted"
)

// Error messages for developers
const (
	ErrDevInvalidInput            = "invalid input"
	ErrDevValidationFailed        = "request validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON       = "cannot convert struct or other data types to JSON"
	ErrDevServerDeadlineExceeded  = "server deadline exceeded"
	ErrDevRateLimited             = "client exceeded the rate limit"
	ErrDevPartialRequest          = "partial request, missing steps: %s"
	ErrDevImpossibleState         = "impossible step navigation state: %s"
	ErrDevUnknownStepType         = "unknown step type %q"
	ErrDevUnknownDirection        = "unknown navigation direction %q"
	ErrDevTransportFailed         = "failed to send the request through %s transport"
	ErrDevCreateHTTPRequest       = "failed to create HTTP request"
	ErrDevSendHTTPRequest         = "failed to send HTTP request"
	ErrDevUnexpectedStatusCode    = "backend responded with status code %d"
	ErrDevDecodeResponse          = "failed to decode backend response"
	ErrDevDraftNotFound           = "draft %s not found in redis"
	ErrDevRedisGetData            = "failed to get data from redis"
	ErrDevRedisSetData            = "failed to set data to redis"
	ErrDevRedisDeleteData         = "failed to delete data from redis"
	ErrDevRedisUnlock             = "failed to release redis lock"
	ErrDevDraftLocked             = "draft %s is locked by another submission"
	ErrDevRabbitMQPublishMessage  = "failed to publish message to rabbitmq queue %s"
	ErrDevMinioFailedCreateObject = "failed to create object in minio bucket %s"
)
