package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"necessitous-service/internal/app/contracts"
	"necessitous-service/internal/pkg/constvars"
	"necessitous-service/internal/pkg/dto/requests"
	"necessitous-service/internal/pkg/exceptions"
	"necessitous-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type httpSender struct {
	Client        *http.Client
	BaseUrl       string
	ParseResponse bool
	Log           *zap.Logger
}

// NewHTTPSender posts requests to the "requests" endpoint under apiBaseUrl.
// With parseResponse set the backend reply is decoded as a JSON string,
// otherwise the raw body is used as the identifier.
func NewHTTPSender(client *http.Client, apiBaseUrl string, parseResponse bool, logger *zap.Logger) (contracts.RequestSender, error) {
	endpoint, err := url.JoinPath(apiBaseUrl, constvars.BackendRequestsPath)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = &http.Client{}
	}

	return &httpSender{
		Client:        client,
		BaseUrl:       endpoint,
		ParseResponse: parseResponse,
		Log:           logger,
	}, nil
}

func (s *httpSender) Send(ctx context.Context, request requests.SupplyRequest) (string, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("httpSender.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, s.BaseUrl),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return "", s.fail(requestID, exceptions.ErrCannotMarshalJSON(err))
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", s.fail(requestID, exceptions.ErrCreateHTTPRequest(err))
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", s.fail(requestID, exceptions.ErrSendHTTPRequest(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", s.fail(requestID, exceptions.ErrDecodeResponse(err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", s.fail(requestID, exceptions.ErrUnexpectedStatusCode(fmt.Errorf("body: %s", body), resp.StatusCode))
	}

	responseID := strings.TrimSpace(string(body))
	if s.ParseResponse {
		err = json.Unmarshal(body, &responseID)
		if err != nil {
			return "", s.fail(requestID, exceptions.ErrDecodeResponse(err))
		}
	}

	s.Log.Info("httpSender.Send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, responseID),
		zap.Int(constvars.LoggingPayloadLengthKey, len(requestJSON)),
	)
	return responseID, nil
}

// fail logs the cause and hides it behind the generic transport error.
func (s *httpSender) fail(requestID string, cause error) error {
	s.Log.Error("httpSender.Send error sending supply request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, s.BaseUrl),
		zap.Error(cause),
	)
	return exceptions.ErrTransport(contracts.ErrTransport, constvars.TransportDriverHTTP)
}
