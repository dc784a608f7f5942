package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/formguard/formguard/pkg/sanitizer"
	"github.com/formguard/formguard/pkg/validator"
	"github.com/formguard/formguard/schema"
	"github.com/formguard/formguard/transport"
)

// server is the mock intake backend: it re-validates submissions with the
// same schema the form uses and keeps an in-memory record of seen SSNs so
// the duplicate-submission failure path can be exercised end to end.
type server struct {
	log *slog.Logger

	mu      sync.Mutex
	seenSSN map[string]struct{}
}

func newServer(log *slog.Logger) *server {
	return &server{
		log:     log,
		seenSSN: make(map[string]struct{}),
	}
}

func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/v1/submissions", s.handleSubmit)
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var p transport.Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, transport.StructuredError{
			Code:    "invalid_payload",
			Message: "request body is not a valid submission payload",
		})
		return
	}

	// Consent is a client-side gate with no wire representation; satisfy
	// the schema's gate so the remaining field rules run server-side.
	values := schema.FormValues{
		FullName: p.FullName,
		Address: schema.Address{
			Street: p.Address.Street,
			City:   p.Address.City,
			State:  p.Address.State,
			Zip:    p.Address.Zip,
		},
		SSN:            p.SSN,
		PhoneNumber:    p.PhoneNumber,
		DOB:            p.DOB,
		DriversLicense: p.DriversLicense,
		Consent:        true,
	}

	out, err := schema.Parse(values)
	if err != nil {
		verrs := validator.ExtractValidationErrors(err)
		fields := make([]transport.FieldError, 0, len(verrs))
		for _, ve := range verrs {
			fields = append(fields, transport.FieldError{Field: ve.Field, Message: ve.Message})
		}
		writeJSON(w, http.StatusUnprocessableEntity, transport.StructuredError{
			Code:    "validation_failed",
			Message: "submission failed server-side validation",
			Fields:  fields,
		})
		return
	}

	ssn := out.SSN.String()
	s.mu.Lock()
	_, dup := s.seenSSN[ssn]
	if !dup {
		s.seenSSN[ssn] = struct{}{}
	}
	s.mu.Unlock()

	if dup {
		s.log.Info("duplicate submission rejected", slog.String("ssn", out.SSN.Masked()))
		writeJSON(w, http.StatusConflict, transport.StructuredError{
			Code:    "duplicate_ssn",
			Message: "this SSN is already on file",
			Fields: []transport.FieldError{
				{Field: schema.FieldSSN, Message: "this SSN is already on file"},
			},
		})
		return
	}

	receipt := transport.Receipt{
		ID:          uuid.New(),
		SubmittedAt: time.Now().UTC(),
		Status:      "received",
		FullName:    out.FullName,
	}

	s.log.Info("submission accepted",
		slog.String("id", receipt.ID.String()),
		slog.String("ssn", out.SSN.Masked()),
		slog.String("phone", sanitizer.MaskPhone(out.PhoneNumber)),
	)
	writeJSON(w, http.StatusCreated, receipt)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
