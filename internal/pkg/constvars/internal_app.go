package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceSupplyRequests = "supply-requests"
	ResourceSteps          = "steps"
	ResourceDrafts         = "drafts"

	// Path of the backend endpoint that accepts supply requests, relative to the API base.
	BackendRequestsPath = "requests"
)

const (
	TransportDriverHTTP     = "http"
	TransportDriverRabbitMQ = "rabbitmq"
)

const (
	NavigationDirectionNext = "next"
	NavigationDirectionPrev = "prev"
)

const (
	URLParamDraftID = "draftID"
)

const (
	ArchiveObjectNameFormat = "%s.json"
)
