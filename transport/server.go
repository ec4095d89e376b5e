// Package transport exposes the string analysis service over HTTP.
package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/poiesic/strand"
	"github.com/poiesic/strand/core"
	"github.com/poiesic/strand/filter"
	"github.com/poiesic/strand/nlquery"
	"github.com/poiesic/strand/storage"
)

type Server struct {
	app     *fiber.App
	service *strand.Service
	logger  *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewServer(service *strand.Service, opts ...ServerOption) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:      "strand",
			ServerHeader: "Strand-Server",
		}),
		service: service,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Post("/strings", s.handleCreate)
	s.app.Get("/strings", s.handleList)

	// Registered before the value route so the path segment is not taken
	// for a stored value.
	s.app.Get("/strings/filter-by-natural-language", s.handleNaturalLanguage)

	s.app.Get("/strings/:value", s.handleGet)
	s.app.Delete("/strings/:value", s.handleDelete)
}

// Run blocks serving HTTP on the given address.
func (s *Server) Run(addr string) error {
	return s.app.Listen(addr)
}

// App returns the underlying fiber application, for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleCreate(ctx fiber.Ctx) error {
	// The value is typed any so a present-but-non-string value can be told
	// apart from a missing one.
	var body struct {
		Value any `json:"value"`
	}
	if err := ctx.Bind().Body(&body); err != nil {
		return renderDetail(ctx, fiber.StatusBadRequest, "Invalid JSON format in request body")
	}
	if body.Value == nil {
		return renderDetail(ctx, fiber.StatusBadRequest, "Invalid request body or missing 'value' field")
	}
	value, ok := body.Value.(string)
	if !ok {
		return renderDetail(ctx, fiber.StatusUnprocessableEntity, "Invalid data type for 'value' (must be string)")
	}

	record, err := s.service.CreateString(ctx, value)
	if err != nil {
		return s.renderError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(record)
}

func (s *Server) handleGet(ctx fiber.Ctx) error {
	record, err := s.service.GetString(ctx, pathValue(ctx))
	if err != nil {
		return s.renderError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(record)
}

func (s *Server) handleDelete(ctx fiber.Ctx) error {
	if err := s.service.DeleteString(ctx, pathValue(ctx)); err != nil {
		return s.renderError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleList(ctx fiber.Ctx) error {
	criteria, err := criteriaFromQuery(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	records, err := s.service.ListStrings(ctx, criteria)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":            records,
		"count":           len(records),
		"filters_applied": criteria.Applied(),
	})
}

func (s *Server) handleNaturalLanguage(ctx fiber.Ctx) error {
	query := ctx.Query("query")
	if query == "" {
		return renderDetail(ctx, fiber.StatusBadRequest, "Missing required query parameter 'query'")
	}

	records, interpretation, err := s.service.FilterByNaturalLanguage(ctx, query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":              records,
		"count":             len(records),
		"filters_applied":   interpretation.Criteria.Applied(),
		"interpreted_query": interpretation,
	})
}

// criteriaFromQuery builds filter criteria from the structured query
// parameters. Unset parameters impose no constraint.
func criteriaFromQuery(ctx fiber.Ctx) (filter.Criteria, error) {
	var criteria filter.Criteria

	if raw := ctx.Query("is_palindrome"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return criteria, fmt.Errorf("%w: is_palindrome must be a boolean, got %q", filter.ErrInvalidCriteria, raw)
		}
		criteria.IsPalindrome = &v
	}

	for _, param := range []struct {
		name string
		dst  **int
	}{
		{"min_length", &criteria.MinLength},
		{"max_length", &criteria.MaxLength},
		{"word_count", &criteria.WordCount},
	} {
		raw := ctx.Query(param.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, fmt.Errorf("%w: %s must be an integer, got %q", filter.ErrInvalidCriteria, param.name, raw)
		}
		*param.dst = &v
	}

	criteria.ContainsCharacter = ctx.Query("contains_character")

	return criteria, nil
}

// pathValue returns the :value segment with percent-encoding removed.
func pathValue(ctx fiber.Ctx) string {
	raw := ctx.Params("value")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func (s *Server) renderError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		return renderDetail(ctx, fiber.StatusConflict, "String already exists in the system")
	case errors.Is(err, storage.ErrNotFound):
		return renderDetail(ctx, fiber.StatusNotFound, "String does not exist in the system")
	case errors.Is(err, core.ErrInvalidInput):
		return renderDetail(ctx, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, filter.ErrInvalidCriteria),
		errors.Is(err, nlquery.ErrUnparsable),
		errors.Is(err, nlquery.ErrConflictingFilters):
		return renderDetail(ctx, fiber.StatusBadRequest, err.Error())
	default:
		s.logger.Error("request failed", "path", ctx.Path(), "error", err)
		return renderDetail(ctx, fiber.StatusInternalServerError, "Internal server error")
	}
}

func renderDetail(ctx fiber.Ctx, status int, detail string) error {
	return ctx.Status(status).JSON(fiber.Map{"detail": detail})
}
