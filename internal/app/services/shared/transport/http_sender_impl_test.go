package transport

import (
	"context"
	"io"
	"necessitous-service/internal/app/contracts"
	"necessitous-service/internal/pkg/constvars"
	"necessitous-service/internal/pkg/dto/requests"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleRequest() requests.SupplyRequest {
	return requests.SupplyRequest{
		requests.KeyMedicalCentre:     requests.MedicalCentre{LegalName: "Clinic", City: "Gdansk", Email: "a@b.pl"},
		requests.KeyAdditionalComment: requests.Description{Description: "thanks"},
	}
}

func TestHTTPSender_Send(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Posts the exact payload and parses the identifier", func(t *testing.T) {
		var gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/requests", r.URL.Path)
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`"req-123"`))
		}))
		defer server.Close()

		sender, err := NewHTTPSender(server.Client(), server.URL+"/api/", true, logger)
		require.NoError(t, err)

		id, err := sender.Send(context.Background(), sampleRequest())
		require.NoError(t, err)
		assert.Equal(t, "req-123", id)
		assert.JSONEq(t, `{
			"medicalCentre": {"legalName":"Clinic","city":"Gdansk","street":"","buildingNumber":"","email":"a@b.pl","phoneNumber":""},
			"additionalComment": {"description":"thanks"}
		}`, gotBody)
	})

	t.Run("Raw body is the identifier when parsing is off", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("plain-id\n"))
		}))
		defer server.Close()

		sender, err := NewHTTPSender(server.Client(), server.URL, false, logger)
		require.NoError(t, err)

		id, err := sender.Send(context.Background(), sampleRequest())
		require.NoError(t, err)
		assert.Equal(t, "plain-id", id)
	})

	t.Run("Non-2xx responses become a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
		}))
		defer server.Close()

		sender, err := NewHTTPSender(server.Client(), server.URL, true, logger)
		require.NoError(t, err)

		id, err := sender.Send(context.Background(), sampleRequest())
		assert.ErrorIs(t, err, contracts.ErrTransport)
		assert.Empty(t, id)
	})

	t.Run("Unparseable response becomes a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		sender, err := NewHTTPSender(server.Client(), server.URL, true, logger)
		require.NoError(t, err)

		_, err = sender.Send(context.Background(), sampleRequest())
		assert.ErrorIs(t, err, contracts.ErrTransport)
	})

	t.Run("Network failure becomes a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		sender, err := NewHTTPSender(nil, url, true, logger)
		require.NoError(t, err)

		_, err = sender.Send(context.Background(), sampleRequest())
		assert.ErrorIs(t, err, contracts.ErrTransport)
	})

	t.Run("Cancelled context becomes a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`"late"`))
		}))
		defer server.Close()

		sender, err := NewHTTPSender(server.Client(), server.URL, true, logger)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = sender.Send(ctx, sampleRequest())
		assert.ErrorIs(t, err, contracts.ErrTransport)
	})
}
