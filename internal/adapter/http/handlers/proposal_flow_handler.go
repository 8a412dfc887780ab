package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "propostas_xpto/internal/adapter/http/dto/request"
	response "propostas_xpto/internal/adapter/http/dto/response"
	"propostas_xpto/internal/usecase"
	"propostas_xpto/internal/usecase/interfaces"
	"propostas_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidFlowPayload = pkg.NewDomainErrorSimple("INVALID_FLOW_INPUT", "Invalid payload", http.StatusBadRequest)
	errMissingFlowToken   = pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
)

// ProposalFlowHandler exposes the public, token-addressed acceptance flow.
// Every route is keyed by the opaque token in the path; a blank token
// short-circuits before the use case (and therefore before any portal call).

type ProposalFlowHandler struct {
	usecase usecase.IProposalFlowUseCase
}

func NewProposalFlowHandler(uc usecase.IProposalFlowUseCase) *ProposalFlowHandler {
	return &ProposalFlowHandler{usecase: uc}
}

func flowToken(c *gin.Context) (string, bool) {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		c.JSON(errMissingFlowToken.HTTPStatus, errMissingFlowToken.ToHTTPError())
		return "", false
	}
	return token, true
}

// LoadProposal (re)loads the proposal and creates a fresh workflow session.
func (h *ProposalFlowHandler) LoadProposal(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	log.Printf("[proposal][handler] load start token=%s", token)

	snap, err := h.usecase.Load(c.Request.Context(), token)
	if err != nil {
		log.Printf("[proposal][handler] load failed token=%s err=%v", token, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func (h *ProposalFlowHandler) ToggleItem(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	var payload request.ToggleItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}
	h.respondSnapshot(c, token)(h.usecase.ToggleItem(token, payload.ServiceID))
}

func (h *ProposalFlowHandler) SetAllItems(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	var payload request.SetAllItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Included == nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}
	h.respondSnapshot(c, token)(h.usecase.SetAllItems(token, *payload.Included))
}

func (h *ProposalFlowHandler) SetItemNote(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	var payload request.ItemNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}
	h.respondSnapshot(c, token)(h.usecase.SetItemNote(token, payload.ServiceID, payload.Note))
}

func (h *ProposalFlowHandler) SetPayment(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}
	h.respondSnapshot(c, token)(h.usecase.SetPayment(token, payload.ToSelection()))
}

func (h *ProposalFlowHandler) GetQuote(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	quote, err := h.usecase.GetQuote(token)
	if err != nil {
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *ProposalFlowHandler) StartSelection(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	h.respondSnapshot(c, token)(h.usecase.StartSelection(token))
}

func (h *ProposalFlowHandler) StartSigning(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	h.respondSnapshot(c, token)(h.usecase.StartSigning(token))
}

func (h *ProposalFlowHandler) ReportSurface(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	var payload request.SurfaceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}
	h.respondSnapshot(c, token)(h.usecase.ReportSurface(token, payload.Width, payload.Height, payload.PixelRatio))
}

func (h *ProposalFlowHandler) ApplyStrokes(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	var payload request.StrokesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}
	h.respondSnapshot(c, token)(h.usecase.ApplyStrokes(token, payload.ToEvents()))
}

func (h *ProposalFlowHandler) ClearSignature(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	h.respondSnapshot(c, token)(h.usecase.ClearSignature(token))
}

// SubmitSelection commits the line-item selection and advances to signing.
func (h *ProposalFlowHandler) SubmitSelection(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	var payload request.ObservationsRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] submit-selection start token=%s", token)
	h.respondSnapshot(c, token)(h.usecase.SubmitSelection(c.Request.Context(), token, payload.Observations))
}

// SubmitSignature commits the signed acceptance payload.
func (h *ProposalFlowHandler) SubmitSignature(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	var payload request.SignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] sign start token=%s", token)
	h.respondSnapshot(c, token)(h.usecase.SubmitSignature(c.Request.Context(), token, payload.Contact(), payload.Observations))
}

func (h *ProposalFlowHandler) ConfirmAcceptance(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	var payload request.ObservationsRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] confirm start token=%s", token)
	h.respondSnapshot(c, token)(h.usecase.ConfirmAcceptance(c.Request.Context(), token, payload.Observations))
}

// RejectProposal commits a rejection with an optional free-text reason.
func (h *ProposalFlowHandler) RejectProposal(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	var payload request.RejectRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] reject start token=%s", token)
	h.respondSnapshot(c, token)(h.usecase.Reject(c.Request.Context(), token, payload.Reason))
}

// ListDecisions returns the audit trail of committed decisions for the
// session's proposal, newest last, each with a temporary signature URL when
// one was archived.
func (h *ProposalFlowHandler) ListDecisions(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	records, err := h.usecase.DecisionTrail(c.Request.Context(), token)
	if err != nil {
		log.Printf("[proposal][handler] decisions failed token=%s err=%v", token, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDecisionTrail(records))
}

func (h *ProposalFlowHandler) GetDecision(c *gin.Context) {
	token, ok := flowToken(c)
	if !ok {
		return
	}
	record, err := h.usecase.DecisionRecordByID(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDecisionRecord(record))
}

func (h *ProposalFlowHandler) respondSnapshot(c *gin.Context, token string) func(usecase.FlowSnapshot, error) {
	return func(snap usecase.FlowSnapshot, err error) {
		if err != nil {
			log.Printf("[proposal][handler] request failed token=%s err=%v", token, err)
			appErr := mapFlowError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromSnapshot(snap))
	}
}

// bindOptionalJSON accepts an empty body for endpoints whose payload is
// entirely optional.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(obj)
}

func mapFlowError(err error) *pkg.AppError {
	var validationErr *interfaces.ValidationError
	var transportErr *interfaces.TransportError

	switch {
	case errors.Is(err, usecase.ErrMissingToken), errors.Is(err, interfaces.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Proposal session not found; reload the proposal", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalExpired):
		return pkg.NewDomainErrorSimple("PROPOSAL_EXPIRED", "Proposal expired", http.StatusGone)
	case errors.Is(err, usecase.ErrProposalUnavailable):
		return pkg.NewDomainErrorSimple("PROPOSAL_UNAVAILABLE", "Proposal is not open for acceptance", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Action not allowed in the current step", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "A submission is already being processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoItemsSelected):
		return pkg.NewDomainErrorSimple("NO_ITEMS_SELECTED", "Select at least one service", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownItem):
		return pkg.NewDomainErrorSimple("UNKNOWN_ITEM", "Unknown line item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSignatureEmpty):
		return pkg.NewDomainErrorSimple("SIGNATURE_EMPTY", "Draw your signature before submitting", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContact):
		return pkg.NewDomainErrorSimple("INVALID_CONTACT", "Name and a valid email are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPayment):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT", "Invalid payment selection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReceiptNotFound):
		return pkg.NewDomainErrorSimple("RECEIPT_NOT_FOUND", "Decision receipt not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentsOutOfRange):
		return pkg.NewDomainErrorSimple("INSTALLMENTS_OUT_OF_RANGE", "Installment count is outside the allowed range for this proposal", http.StatusBadRequest)
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validationErr.Message, http.StatusBadRequest)
	case errors.As(err, &transportErr):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Could not reach the proposal service; try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
