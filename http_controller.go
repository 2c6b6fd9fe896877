package login

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
)

const (
	// SessionHeader carries the caller supplied URI naming the session
	// resource a request refers to.
	SessionHeader = "MU-SESSION-ID"

	// RewriteURLHeader carries the external URL of the request, used for
	// the links.self member of responses.
	RewriteURLHeader = "X-Rewrite-URL"

	// allowedGroupsHeader is reset on login and logout so the
	// authorization proxy downstream recomputes access for the caller.
	allowedGroupsHeader = "mu-auth-allowed-groups"

	jsonAPIContentType = "application/vnd.api+json"
)

// Controller exposes the session lifecycle over HTTP.
type Controller struct {
	verifier *Verifier
	sessions *SessionManager
	roles    *RoleResolver
	logger   *slog.Logger
}

// NewController returns a new Controller.
func NewController(verifier *Verifier, sessions *SessionManager, roles *RoleResolver) *Controller {
	return &Controller{
		verifier: verifier,
		sessions: sessions,
		roles:    roles,
		logger:   slog.Default(),
	}
}

// WithLogger sets the request logger.
func (ctl *Controller) WithLogger(logger *slog.Logger) *Controller {
	ctl.logger = logger
	return ctl
}

// RegisterRoutes mounts the session endpoints on the app.
func (ctl *Controller) RegisterRoutes(app *fiber.App) {
	app.Post("/sessions", ctl.CreateSession)
	app.Delete("/sessions/current", ctl.DeleteCurrentSession)
	app.Get("/sessions/current", ctl.ShowCurrentSession)
}

type sessionAttributes struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (a sessionAttributes) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Nickname, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

type sessionResource struct {
	Type       string            `json:"type"`
	ID         string            `json:"id,omitempty"`
	Attributes sessionAttributes `json:"attributes"`
}

// Validate will run validation rules
func (r sessionResource) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.In("sessions")),
		validation.Field(&r.Attributes),
	)
}

type createSessionPayload struct {
	Data sessionResource `json:"data"`
}

type linksObject struct {
	Self string `json:"self"`
}

type relatedLinks struct {
	Related string `json:"related"`
}

type resourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type accountRelationship struct {
	Links relatedLinks       `json:"links"`
	Data  resourceIdentifier `json:"data"`
}

type sessionRelationships struct {
	Account accountRelationship `json:"account"`
}

type sessionResponseData struct {
	Type          string               `json:"type"`
	ID            string               `json:"id"`
	Relationships sessionRelationships `json:"relationships"`
}

type sessionResponse struct {
	Links linksObject         `json:"links"`
	Data  sessionResponseData `json:"data"`
}

type errorObject struct {
	Title string `json:"title"`
}

type errorsPayload struct {
	Errors []errorObject `json:"errors"`
}

// CreateSession handles POST /sessions: it verifies the credentials in
// the JSON:API body and binds a new session to the identifier from the
// session header, replacing any previous session of the account.
func (ctl *Controller) CreateSession(c *fiber.Ctx) error {
	sessionURI := c.Get(SessionHeader)
	if sessionURI == "" {
		return ctl.clientError(c, fiber.StatusBadRequest, ErrMissingSessionHeader)
	}

	if !strings.Contains(c.Get(fiber.HeaderContentType), jsonAPIContentType) {
		return ctl.clientError(c, fiber.StatusBadRequest, ErrMalformedRequest)
	}

	payload := new(createSessionPayload)
	if err := json.Unmarshal(c.Body(), payload); err != nil {
		return ctl.clientError(c, fiber.StatusBadRequest, ErrMalformedRequest)
	}

	if payload.Data.ID != "" {
		return ctl.clientError(c, fiber.StatusForbidden, ErrIDNotAllowed)
	}

	if err := payload.Data.Validate(); err != nil {
		return ctl.clientError(c, fiber.StatusBadRequest, err)
	}

	ctx := c.UserContext()
	attrs := payload.Data.Attributes

	account, err := ctl.verifier.Verify(ctx, attrs.Nickname, attrs.Password)
	if err != nil {
		if errors.Is(err, ErrAuthenticationFailed) {
			loginsTotal.WithLabelValues(outcomeFailure).Inc()
			return ctl.clientError(c, fiber.StatusBadRequest, ErrAuthenticationFailed)
		}
		loginsTotal.WithLabelValues(outcomeError).Inc()
		return ctl.serverError(c, err)
	}

	roles, err := ctl.roles.RolesFor(ctx, account.URI)
	if err != nil {
		return ctl.serverError(c, err)
	}

	sessionID, err := ctl.sessions.Begin(ctx, account, sessionURI, roles)
	if err != nil {
		return ctl.serverError(c, err)
	}

	loginsTotal.WithLabelValues(outcomeSuccess).Inc()

	c.Set(allowedGroupsHeader, "CLEAR")
	rewrite := strings.TrimSuffix(c.Get(RewriteURLHeader), "/")

	return c.Status(fiber.StatusCreated).JSON(sessionResponse{
		Links: linksObject{Self: rewrite + "/current"},
		Data: sessionResponseData{
			Type:          "sessions",
			ID:            sessionID,
			Relationships: accountRelationships(account.UUID),
		},
	}, jsonAPIContentType)
}

// DeleteCurrentSession handles DELETE /sessions/current: it tears down
// every session of the account the session header resolves to.
func (ctl *Controller) DeleteCurrentSession(c *fiber.Ctx) error {
	sessionURI := c.Get(SessionHeader)
	if sessionURI == "" {
		return ctl.clientError(c, fiber.StatusBadRequest, ErrMissingSessionHeader)
	}

	ctx := c.UserContext()

	ref, err := ctl.sessions.Resolve(ctx, sessionURI)
	if err != nil {
		if errors.Is(err, ErrInvalidSession) {
			sessionLookupsTotal.WithLabelValues(outcomeFailure).Inc()
			return ctl.clientError(c, fiber.StatusBadRequest, ErrInvalidSession)
		}
		return ctl.serverError(c, err)
	}

	if err := ctl.sessions.End(ctx, ref.URI); err != nil {
		return ctl.serverError(c, err)
	}

	sessionLookupsTotal.WithLabelValues(outcomeSuccess).Inc()

	c.Set(allowedGroupsHeader, "CLEAR")
	return c.SendStatus(fiber.StatusNoContent)
}

// ShowCurrentSession handles GET /sessions/current: it echoes the session
// resource the session header resolves to, with its linked account.
func (ctl *Controller) ShowCurrentSession(c *fiber.Ctx) error {
	sessionURI := c.Get(SessionHeader)
	if sessionURI == "" {
		return ctl.clientError(c, fiber.StatusBadRequest, ErrMissingSessionHeader)
	}

	ref, err := ctl.sessions.Resolve(c.UserContext(), sessionURI)
	if err != nil {
		if errors.Is(err, ErrInvalidSession) {
			sessionLookupsTotal.WithLabelValues(outcomeFailure).Inc()
			return ctl.clientError(c, fiber.StatusBadRequest, ErrInvalidSession)
		}
		return ctl.serverError(c, err)
	}

	sessionLookupsTotal.WithLabelValues(outcomeSuccess).Inc()

	return c.Status(fiber.StatusOK).JSON(sessionResponse{
		Links: linksObject{Self: strings.TrimSuffix(c.Get(RewriteURLHeader), "/")},
		Data: sessionResponseData{
			Type:          "sessions",
			ID:            sessionURI,
			Relationships: accountRelationships(ref.UUID),
		},
	}, jsonAPIContentType)
}

func accountRelationships(accountUUID string) sessionRelationships {
	return sessionRelationships{
		Account: accountRelationship{
			Links: relatedLinks{Related: "/accounts/" + accountUUID},
			Data:  resourceIdentifier{Type: "accounts", ID: accountUUID},
		},
	}
}

func (ctl *Controller) clientError(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(errorsPayload{
		Errors: []errorObject{{Title: err.Error()}},
	}, jsonAPIContentType)
}

// serverError hides store failures behind a generic message; the request
// is terminal either way and no retry logic exists at this layer.
func (ctl *Controller) serverError(c *fiber.Ctx, err error) error {
	ctl.logger.Error("request failed", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(errorsPayload{
		Errors: []errorObject{{Title: "something went wrong"}},
	}, jsonAPIContentType)
}
