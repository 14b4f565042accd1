// Package http exposes the lifecycle engine over REST. Handlers translate
// between wire DTOs and application commands/queries; every business
// rejection comes back as a structured 422 body rather than a bare error
// string.
package http

import (
	"errors"
	"net/http"
	"time"

	"lifecycle/internal/core/application/usecases/commands"
	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/core/domain/workflow"
	"lifecycle/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler         commands.CreateParcelCommandHandler
	createShipmentHandler       commands.CreateShipmentCommandHandler
	changeParcelStatusHandler   commands.ChangeParcelStatusCommandHandler
	changeShipmentStatusHandler commands.ChangeShipmentStatusCommandHandler

	// Query handlers
	getOverdueParcelsHandler   queries.GetOverdueParcelsQueryHandler
	getOverdueShipmentsHandler queries.GetOverdueShipmentsQueryHandler

	// Catalog source
	validator *workflow.Validator
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	changeParcelStatusHandler commands.ChangeParcelStatusCommandHandler,
	changeShipmentStatusHandler commands.ChangeShipmentStatusCommandHandler,
	getOverdueParcelsHandler queries.GetOverdueParcelsQueryHandler,
	getOverdueShipmentsHandler queries.GetOverdueShipmentsQueryHandler,
	validator *workflow.Validator,
) *Server {
	return &Server{
		createParcelHandler:         createParcelHandler,
		createShipmentHandler:       createShipmentHandler,
		changeParcelStatusHandler:   changeParcelStatusHandler,
		changeShipmentStatusHandler: changeShipmentStatusHandler,
		getOverdueParcelsHandler:    getOverdueParcelsHandler,
		getOverdueShipmentsHandler:  getOverdueShipmentsHandler,
		validator:                   validator,
	}
}

// RegisterRoutes binds all API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/statuses/:kind", s.GetStatusCatalog)
	api.GET("/statuses/:kind/:status/transitions", s.GetValidTransitions)

	api.POST("/parcels", s.CreateParcel)
	api.POST("/parcels/:id/status", s.ChangeParcelStatus)
	api.GET("/parcels/overdue", s.GetOverdueParcels)

	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/:id/status", s.ChangeShipmentStatus)
	api.GET("/shipments/overdue", s.GetOverdueShipments)
}

// GetStatusCatalog handles GET /api/v1/statuses/:kind - the ordered status
// catalog for one entity kind.
func (s *Server) GetStatusCatalog(ctx echo.Context) error {
	kind := status.Kind(ctx.Param("kind"))
	if err := kind.Validate(); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown entity kind: " + ctx.Param("kind"),
		})
	}

	catalog := status.AllStatuses(kind)
	response := make([]StatusInfo, len(catalog))
	for i, info := range catalog {
		response[i] = StatusInfo{
			Value:       string(info.Value),
			Label:       info.Label,
			Color:       info.Color,
			Description: info.Description,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetValidTransitions handles GET /api/v1/statuses/:kind/:status/transitions -
// the legal destinations from a status, with the rule text per edge.
func (s *Server) GetValidTransitions(ctx echo.Context) error {
	kind := status.Kind(ctx.Param("kind"))
	if err := kind.Validate(); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown entity kind: " + ctx.Param("kind"),
		})
	}

	current := status.Value(ctx.Param("status"))
	if !status.IsKnown(kind, current) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Unknown status: " + ctx.Param("status"),
		})
	}

	graph := s.validator.Graph()
	next := graph.ValidNext(kind, current)
	response := make([]TransitionOption, len(next))
	for i, to := range next {
		rule, _ := graph.RuleFor(kind, current, to)
		response[i] = TransitionOption{To: string(to), Rule: rule}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateParcel handles POST /api/v1/parcels - registers an expected parcel.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body NewParcel
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	ownerID, err := kernel.UUIDFromBytes(body.OwnerID[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid owner id",
		})
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(parcelID, ownerID, body.TrackingNumber, time.Now())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel data: " + err.Error(),
		})
	}

	if handleErr := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to register parcel",
		})
	}

	return ctx.JSON(http.StatusCreated, Created{ID: parcelID.Bytes()})
}

// CreateShipment handles POST /api/v1/shipments - opens a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body NewShipment
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	ownerID, err := kernel.UUIDFromBytes(body.OwnerID[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid owner id",
		})
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, ownerID, body.Reference, time.Now())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment data: " + err.Error(),
		})
	}

	if handleErr := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to open shipment",
		})
	}

	return ctx.JSON(http.StatusCreated, Created{ID: shipmentID.Bytes()})
}

// ChangeParcelStatus handles POST /api/v1/parcels/:id/status.
func (s *Server) ChangeParcelStatus(ctx echo.Context) error {
	parcelID, body, actorRole, errResp := s.bindStatusChange(ctx)
	if errResp != nil {
		return errResp
	}

	cmd, err := commands.NewChangeParcelStatusCommand(
		parcelID,
		status.Value(body.NewStatus),
		actorRole,
		ctx.Request().Header.Get("X-Actor-Id"),
		body.Notes,
		time.Now(),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change request: " + err.Error(),
		})
	}

	result, err := s.changeParcelStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return statusChangeError(ctx, err)
	}

	return statusChangeResponse(ctx, body.NewStatus, result)
}

// ChangeShipmentStatus handles POST /api/v1/shipments/:id/status.
func (s *Server) ChangeShipmentStatus(ctx echo.Context) error {
	shipmentID, body, actorRole, errResp := s.bindStatusChange(ctx)
	if errResp != nil {
		return errResp
	}

	cmd, err := commands.NewChangeShipmentStatusCommand(
		shipmentID,
		status.Value(body.NewStatus),
		actorRole,
		ctx.Request().Header.Get("X-Actor-Id"),
		body.Notes,
		time.Now(),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change request: " + err.Error(),
		})
	}

	result, err := s.changeShipmentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return statusChangeError(ctx, err)
	}

	return statusChangeResponse(ctx, body.NewStatus, result)
}

// GetOverdueParcels handles GET /api/v1/parcels/overdue.
func (s *Server) GetOverdueParcels(ctx echo.Context) error {
	query, err := queries.NewGetOverdueParcelsQuery(time.Now())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build overdue query",
		})
	}

	overdue, err := s.getOverdueParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve overdue parcels",
		})
	}

	response := make([]OverdueEntity, len(overdue))
	for i, entry := range overdue {
		response[i] = OverdueEntity{
			ID:              entry.ID.Bytes(),
			OwnerID:         entry.OwnerID.Bytes(),
			Label:           entry.TrackingNumber,
			Status:          string(entry.Status),
			StatusChangedAt: entry.StatusChangedAt,
			ExpectedHours:   entry.Expected.Hours(),
			OverdueHours:    entry.OverdueBy.Hours(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOverdueShipments handles GET /api/v1/shipments/overdue.
func (s *Server) GetOverdueShipments(ctx echo.Context) error {
	query, err := queries.NewGetOverdueShipmentsQuery(time.Now())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build overdue query",
		})
	}

	overdue, err := s.getOverdueShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve overdue shipments",
		})
	}

	response := make([]OverdueEntity, len(overdue))
	for i, entry := range overdue {
		response[i] = OverdueEntity{
			ID:              entry.ID.Bytes(),
			OwnerID:         entry.OwnerID.Bytes(),
			Label:           entry.Reference,
			Status:          string(entry.Status),
			StatusChangedAt: entry.StatusChangedAt,
			ExpectedHours:   entry.Expected.Hours(),
			OverdueHours:    entry.OverdueBy.Hours(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// bindStatusChange extracts the common pieces of a status-change request:
// the entity ID from the path, the body, and the actor role header.
func (s *Server) bindStatusChange(ctx echo.Context) (kernel.UUID, ChangeStatus, status.Role, error) {
	var body ChangeStatus

	entityID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, body, "", ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid entity id",
		})
	}

	if bindErr := ctx.Bind(&body); bindErr != nil {
		return kernel.UUID{}, body, "", ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	actorRole := status.Role(ctx.Request().Header.Get("X-Actor-Role"))
	if roleErr := actorRole.Validate(); roleErr != nil {
		return kernel.UUID{}, body, "", ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown or missing X-Actor-Role header",
		})
	}

	return entityID, body, actorRole, nil
}

// statusChangeError maps infrastructure errors from the command handlers to
// HTTP statuses.
func statusChangeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Entity not found",
		})
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Concurrent status change, please retry",
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to change status",
		})
	}
}

// statusChangeResponse renders an applied change as 200 and a rejected one as
// a structured 422.
func statusChangeResponse(ctx echo.Context, newStatus string, result commands.ChangeStatusResult) error {
	if !result.Applied() {
		rejected := StatusRejected{
			Reason:  string(result.Validation.Reason),
			Message: result.Validation.Error,
		}
		for _, v := range result.Validation.ValidNext {
			rejected.ValidNext = append(rejected.ValidNext, string(v))
		}
		for _, v := range result.Validation.RequiredCurrent {
			rejected.RequiredCurrent = append(rejected.RequiredCurrent, string(v))
		}
		return ctx.JSON(http.StatusUnprocessableEntity, rejected)
	}

	return ctx.JSON(http.StatusOK, StatusChanged{
		NewStatus:       newStatus,
		Rule:            result.Validation.Rule,
		ActionsExecuted: result.Automation.Executed,
		ActionsFailed:   result.Automation.Failed,
		Notifications:   result.Automation.Notifications,
	})
}
