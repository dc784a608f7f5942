package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formguard/formguard/transport"
)

func validPayload() transport.Payload {
	return transport.Payload{
		FullName: "Jane Doe",
		Address: transport.Address{
			Street: "421 Main St",
			City:   "Salt Lake City",
			State:  "UT",
			Zip:    "84101",
		},
		SSN:            "123-45-6789",
		PhoneNumber:    "801-555-1234",
		DOB:            "1990-01-15",
		DriversLicense: "D1234567",
	}
}

func TestSubmitSuccess(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var p transport.Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "123-45-6789", p.SSN)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(transport.Receipt{
			ID:          id,
			SubmittedAt: time.Now().UTC(),
			Status:      "received",
			FullName:    p.FullName,
		})
	}))
	defer srv.Close()

	tr := transport.NewHTTPTransport(srv.URL)
	receipt, err := tr.Submit(context.Background(), validPayload())
	require.NoError(t, err)
	assert.Equal(t, id, receipt.ID)
	assert.Equal(t, "received", receipt.Status)
	assert.Equal(t, "Jane Doe", receipt.FullName)
}

func TestSubmitStructuredError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(transport.StructuredError{
			Code:    "duplicate_ssn",
			Message: "this SSN is already on file",
			Fields:  []transport.FieldError{{Field: "ssn", Message: "this SSN is already on file"}},
		})
	}))
	defer srv.Close()

	tr := transport.NewHTTPTransport(srv.URL)
	receipt, err := tr.Submit(context.Background(), validPayload())
	require.Error(t, err)
	assert.Nil(t, receipt)

	serr, ok := transport.AsStructuredError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, serr.Status)
	assert.Equal(t, "duplicate_ssn", serr.Code)
	require.Len(t, serr.Fields, 1)
	assert.Equal(t, "ssn", serr.Fields[0].Field)
}

func TestSubmitUndecodableErrorBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	tr := transport.NewHTTPTransport(srv.URL)
	_, err := tr.Submit(context.Background(), validPayload())
	require.Error(t, err)

	serr, ok := transport.AsStructuredError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, serr.Status)
	assert.Equal(t, "unexpected_response", serr.Code)
	assert.Empty(t, serr.Fields)
}

func TestSubmitContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	tr := transport.NewHTTPTransport(srv.URL)
	_, err := tr.Submit(ctx, validPayload())
	require.Error(t, err)

	_, ok := transport.AsStructuredError(err)
	assert.False(t, ok, "network failures are not structured errors")
}
