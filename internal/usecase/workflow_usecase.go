package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"propostas_xpto/internal/domain/entities"
	"propostas_xpto/internal/signature"
	"propostas_xpto/internal/usecase/interfaces"
	"propostas_xpto/pkg"

	"github.com/google/uuid"
)

var (
	ErrMissingToken           = errors.New("missing proposal token")
	ErrSessionNotFound        = errors.New("proposal session not found")
	ErrProposalUnavailable    = errors.New("proposal unavailable for acceptance")
	ErrProposalExpired        = errors.New("proposal expired")
	ErrInvalidTransition      = errors.New("invalid workflow transition")
	ErrNoItemsSelected        = errors.New("no line items selected")
	ErrUnknownItem            = errors.New("unknown line item")
	ErrSignatureEmpty         = errors.New("signature has no ink")
	ErrInvalidContact         = errors.New("invalid contact fields")
	ErrInvalidPayment         = errors.New("invalid payment selection")
	ErrInstallmentsOutOfRange = errors.New("installments out of range")
	ErrSubmissionInFlight     = errors.New("submission already in flight")
	ErrReceiptNotFound        = errors.New("decision receipt not found")
)

// WorkflowState is one step of the public acceptance flow. Completed and
// rejected are terminal.
type WorkflowState string

const (
	StateView       WorkflowState = "view"
	StateSelecting  WorkflowState = "selecting"
	StateSigning    WorkflowState = "signing"
	StateConfirming WorkflowState = "confirming"
	StateCompleted  WorkflowState = "completed"
	StateRejected   WorkflowState = "rejected"
)

// Allowed forward transitions. Rejection is handled apart: it is reachable
// from every non-terminal state.
var flowTransitions = map[WorkflowState]map[WorkflowState]bool{
	StateView:       {StateSelecting: true, StateSigning: true},
	StateSelecting:  {StateSigning: true},
	StateSigning:    {StateConfirming: true, StateCompleted: true},
	StateConfirming: {StateCompleted: true},
	StateCompleted:  {},
	StateRejected:   {},
}

func (s WorkflowState) Terminal() bool {
	return s == StateCompleted || s == StateRejected
}

func canTransition(from, to WorkflowState) bool {
	return flowTransitions[from][to]
}

// ContactInfo is the signer identification captured on the signing step.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

func (c ContactInfo) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidContact
	}
	email := strings.TrimSpace(c.Email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidContact
	}
	return nil
}

// StrokeEvent is one gesture sample adapted from pointer or touch input.
type StrokeEvent struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

const (
	StrokeBegin  = "begin"
	StrokeExtend = "extend"
	StrokeEnd    = "end"
)

// FlowItem is a line item joined with its current ledger entry.
type FlowItem struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	UnitValue   float64 `json:"unit_value"`
	TotalValue  float64 `json:"total_value"`
	Included    bool    `json:"included"`
	Note        string  `json:"note"`
}

// FlowSnapshot is the full client-facing view of one workflow session.
type FlowSnapshot struct {
	SessionID       string                    `json:"session_id"`
	ProposalID      string                    `json:"proposal_id"`
	Kind            entities.ProposalKind     `json:"kind"`
	Status          entities.ProposalStatus   `json:"status"`
	State           WorkflowState             `json:"state"`
	ClientName      string                    `json:"client_name"`
	CompanyName     string                    `json:"company_name"`
	ExpiresAt       *time.Time                `json:"expires_at"`
	Expired         bool                      `json:"expired"`
	Available       bool                      `json:"available"`
	Items           []FlowItem                `json:"items"`
	AllSelected     bool                      `json:"all_selected"`
	SomeSelected    bool                      `json:"some_selected"`
	Payment         entities.PaymentSelection `json:"payment"`
	Methods         []entities.PaymentMethod  `json:"methods"`
	MaxInstallments int                       `json:"max_installments"`
	Quote           Quote                     `json:"quote"`
	HasInk          bool                      `json:"has_ink"`
	SurfaceReady    bool                      `json:"surface_ready"`
}

// DecisionRecord is one audit receipt joined with a temporary read URL for
// its archived signature, when one exists.
type DecisionRecord struct {
	Receipt      entities.DecisionReceipt
	SignatureURL string
}

// IProposalFlowUseCase drives the public proposal acceptance workflow.
//
// Load (re)creates the per-token session. Ledger, payment and signature
// operations are purely local; Submit*/Confirm*/Reject are the committing
// calls that reach the portal and replace the proposal wholesale on success.
type IProposalFlowUseCase interface {
	Load(ctx context.Context, token string) (FlowSnapshot, error)
	Snapshot(token string) (FlowSnapshot, error)
	ToggleItem(token, serviceID string) (FlowSnapshot, error)
	SetAllItems(token string, included bool) (FlowSnapshot, error)
	SetItemNote(token, serviceID, note string) (FlowSnapshot, error)
	SetPayment(token string, sel entities.PaymentSelection) (FlowSnapshot, error)
	GetQuote(token string) (Quote, error)
	StartSelection(token string) (FlowSnapshot, error)
	StartSigning(token string) (FlowSnapshot, error)
	ReportSurface(token string, width, height int, pixelRatio float64) (FlowSnapshot, error)
	ApplyStrokes(token string, events []StrokeEvent) (FlowSnapshot, error)
	ClearSignature(token string) (FlowSnapshot, error)
	SubmitSelection(ctx context.Context, token, observations string) (FlowSnapshot, error)
	SubmitSignature(ctx context.Context, token string, contact ContactInfo, observations string) (FlowSnapshot, error)
	ConfirmAcceptance(ctx context.Context, token, observations string) (FlowSnapshot, error)
	Reject(ctx context.Context, token, reason string) (FlowSnapshot, error)
	DecisionTrail(ctx context.Context, token string) ([]DecisionRecord, error)
	DecisionRecordByID(ctx context.Context, token, receiptID string) (DecisionRecord, error)
}

type flowSession struct {
	id           string
	token        string
	proposal     entities.Proposal
	state        WorkflowState
	expired      bool
	available    bool
	ledger       *SelectionLedger
	payment      entities.PaymentSelection
	pad          *signature.Pad
	surfaceW     int
	surfaceH     int
	surfaceRatio float64
	inFlight     bool
}

type ProposalFlowUseCase struct {
	gateway  interfaces.IProposalGateway
	receipts interfaces.IDecisionReceiptRepository
	archive  interfaces.ISignatureArchive
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*flowSession
}

var _ IProposalFlowUseCase = (*ProposalFlowUseCase)(nil)

func NewProposalFlowUseCase(gateway interfaces.IProposalGateway, receipts interfaces.IDecisionReceiptRepository, archive interfaces.ISignatureArchive) *ProposalFlowUseCase {
	return &ProposalFlowUseCase{
		gateway:  gateway,
		receipts: receipts,
		archive:  archive,
		now:      time.Now,
		sessions: make(map[string]*flowSession),
	}
}

// Load fetches the proposal by token and (re)creates its workflow session:
// fresh ledger with every item included, default payment selection, empty
// signature pad. The initial state derives from the fetched status; expiry
// is computed once here and blocks all forward transitions when elapsed.
func (u *ProposalFlowUseCase) Load(ctx context.Context, token string) (FlowSnapshot, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return FlowSnapshot{}, ErrMissingToken
	}
	if u.gateway == nil {
		return FlowSnapshot{}, errors.New("proposal gateway not configured")
	}

	log.Printf("[proposal][usecase] load start token=%s", token)
	p, err := u.gateway.FetchProposal(ctx, token)
	if err != nil {
		log.Printf("[proposal][usecase] load failed token=%s err=%v", token, err)
		return FlowSnapshot{}, err
	}

	now := u.now()
	s := &flowSession{
		id:       uuid.NewString(),
		token:    token,
		proposal: p,
		ledger:   NewSelectionLedger(p),
		payment:  entities.PaymentSelection{Type: entities.PaymentTypeImmediate}.Normalized(),
		pad:      signature.NewPad(),
		expired:  p.IsExpired(now),
	}
	switch p.Status {
	case entities.ProposalStatusAceita:
		s.state = StateCompleted
	case entities.ProposalStatusRejeitada:
		s.state = StateRejected
	default:
		s.state = StateView
	}
	s.available = p.Status == entities.ProposalStatusEnviada && !s.expired

	u.mu.Lock()
	u.sessions[token] = s
	snap := u.buildSnapshot(s)
	u.mu.Unlock()

	log.Printf("[proposal][usecase] load success token=%s proposal_id=%s status=%s state=%s expired=%t", token, p.ID, p.Status, s.state, s.expired)
	return snap, nil
}

func (u *ProposalFlowUseCase) Snapshot(token string) (FlowSnapshot, error) {
	return u.withSession(token, func(s *flowSession) error { return nil })
}

func (u *ProposalFlowUseCase) ToggleItem(token, serviceID string) (FlowSnapshot, error) {
	return u.withSession(token, func(s *flowSession) error {
		if err := editableGuard(s); err != nil {
			return err
		}
		if !s.ledger.Toggle(serviceID) {
			return ErrUnknownItem
		}
		return nil
	})
}

func (u *ProposalFlowUseCase) SetAllItems(token string, included bool) (FlowSnapshot, error) {
	return u.withSession(token, func(s *flowSession) error {
		if err := editableGuard(s); err != nil {
			return err
		}
		s.ledger.SetAll(included)
		return nil
	})
}

func (u *ProposalFlowUseCase) SetItemNote(token, serviceID, note string) (FlowSnapshot, error) {
	return u.withSession(token, func(s *flowSession) error {
		if err := editableGuard(s); err != nil {
			return err
		}
		if !s.ledger.SetNote(serviceID, note) {
			return ErrUnknownItem
		}
		return nil
	})
}

// SetPayment re-validates the whole selection on every change: the method
// must belong to the chosen type and the installment count must fit
// [1, proposal limit]. Out-of-range input is rejected, never clamped.
func (u *ProposalFlowUseCase) SetPayment(token string, sel entities.PaymentSelection) (FlowSnapshot, error) {
	return u.withSession(token, func(s *flowSession) error {
		if s.state.Terminal() {
			return ErrInvalidTransition
		}
		methods := entities.MethodsForType(sel.Type)
		if len(methods) == 0 {
			return ErrInvalidPayment
		}
		method, ok := entities.FindMethod(sel.Type, sel.Method)
		if !ok {
			if strings.TrimSpace(sel.Method) != "" {
				return ErrInvalidPayment
			}
			// A blank method normalizes to the first allowed one; the range
			// check must run against that effective method.
			method = methods[0]
		}
		if sel.Type == entities.PaymentTypeDeferred && method.Installable {
			limit := s.proposal.InstallmentLimit()
			if sel.Installments < entities.MinInstallments || sel.Installments > limit {
				return ErrInstallmentsOutOfRange
			}
		}
		s.payment = sel.Normalized()
		return nil
	})
}

func (u *ProposalFlowUseCase) GetQuote(token string) (Quote, error) {
	snap, err := u.Snapshot(token)
	if err != nil {
		return Quote{}, err
	}
	return snap.Quote, nil
}

// StartSelection enters line-item customization. Only the full proposal kind
// has this step.
func (u *ProposalFlowUseCase) StartSelection(token string) (FlowSnapshot, error) {
	return u.withSession(token, func(s *flowSession) error {
		if s.proposal.Kind != entities.ProposalKindFull {
			return ErrInvalidTransition
		}
		return u.forward(s, StateSelecting)
	})
}

// StartSigning enters the signature step and schedules surface
// initialization, which keeps retrying in the background until the client
// reports a laid-out surface or the bounded attempts run out.
func (u *ProposalFlowUseCase) StartSigning(token string) (FlowSnapshot, error) {
	return u.withSession(token, func(s *flowSession) error {
		if err := u.forward(s, StateSigning); err != nil {
			return err
		}
		u.schedulePadInit(s)
		return nil
	})
}

func (u *ProposalFlowUseCase) ReportSurface(token string, width, height int, pixelRatio float64) (FlowSnapshot, error) {
	return u.withSession(token, func(s *flowSession) error {
		if s.state.Terminal() {
			return ErrInvalidTransition
		}
		s.surfaceW = width
		s.surfaceH = height
		s.surfaceRatio = pixelRatio
		s.pad.TryInit(width, height, pixelRatio)
		return nil
	})
}

func (u *ProposalFlowUseCase) ApplyStrokes(token string, events []StrokeEvent) (FlowSnapshot, error) {
	return u.withSession(token, func(s *flowSession) error {
		if s.state != StateSigning {
			return ErrInvalidTransition
		}
		for _, ev := range events {
			pt := signature.Point{X: ev.X, Y: ev.Y}
			switch ev.Type {
			case StrokeBegin:
				s.pad.Begin(pt)
			case StrokeExtend:
				s.pad.Extend(pt)
			case StrokeEnd:
				s.pad.End()
			}
		}
		return nil
	})
}

func (u *ProposalFlowUseCase) ClearSignature(token string) (FlowSnapshot, error) {
	return u.withSession(token, func(s *flowSession) error {
		if s.state.Terminal() {
			return ErrInvalidTransition
		}
		s.pad.Clear()
		return nil
	})
}

// SubmitSelection commits the current ledger to the portal and advances
// selecting -> signing. Requires at least one included item.
func (u *ProposalFlowUseCase) SubmitSelection(ctx context.Context, token, observations string) (FlowSnapshot, error) {
	var sub interfaces.SelectionSubmission
	s, err := u.beginCommit(token, func(s *flowSession) error {
		if s.proposal.Kind != entities.ProposalKindFull || s.state != StateSelecting {
			return ErrInvalidTransition
		}
		if s.ledger.SelectedCount() == 0 {
			return ErrNoItemsSelected
		}
		sub = interfaces.SelectionSubmission{Items: s.ledger.Items(), Observations: observations}
		return nil
	})
	if err != nil {
		return u.snapshotOrZero(token, err)
	}

	return u.finishCommit(ctx, s, "submit-selection",
		func() error { return u.gateway.SubmitSelection(ctx, token, sub) },
		func(s *flowSession) {
			s.state = StateSigning
			u.schedulePadInit(s)
		})
}

// SubmitSignature commits the signed acceptance. The signature must have
// ink and the contact fields must be valid before any portal call happens.
// The full kind advances to confirming; the simple kind completes.
func (u *ProposalFlowUseCase) SubmitSignature(ctx context.Context, token string, contact ContactInfo, observations string) (FlowSnapshot, error) {
	var sub interfaces.SignatureSubmission
	var quote Quote
	var png []byte
	s, err := u.beginCommit(token, func(s *flowSession) error {
		if s.state != StateSigning {
			return ErrInvalidTransition
		}
		if !s.pad.HasInk() {
			return ErrSignatureEmpty
		}
		if err := contact.validate(); err != nil {
			return err
		}
		if s.proposal.Kind == entities.ProposalKindFull && s.ledger.SelectedCount() == 0 {
			return ErrNoItemsSelected
		}

		image, err := s.pad.ExportDataURL()
		if err != nil {
			return ErrSignatureEmpty
		}
		png, err = s.pad.ExportPNG()
		if err != nil {
			return ErrSignatureEmpty
		}

		quote = BuildQuote(s.proposal, s.ledger, s.payment)
		sub = interfaces.SignatureSubmission{
			Image:             image,
			Name:              strings.TrimSpace(contact.Name),
			Email:             strings.TrimSpace(contact.Email),
			Phone:             pkg.MaskPhone(contact.Phone),
			Document:          pkg.MaskDocument(contact.Document),
			Observations:      observations,
			FinalValue:        quote.FinalTotal,
			PaymentType:       string(s.payment.Type),
			PaymentMethod:     s.payment.Method,
			Installments:      s.payment.Installments,
			DiscountApplied:   quote.DiscountApplied,
			IsCounterProposal: quote.IsCounterProposal,
			Items:             s.ledger.Items(),
		}
		return nil
	})
	if err != nil {
		return u.snapshotOrZero(token, err)
	}

	return u.finishCommit(ctx, s, "submit-signature",
		func() error { return u.gateway.SubmitSignature(ctx, token, sub) },
		func(s *flowSession) {
			if s.proposal.Kind == entities.ProposalKindFull {
				s.state = StateConfirming
			} else {
				s.state = StateCompleted
			}
			decision := entities.DecisionAccepted
			if sub.IsCounterProposal {
				decision = entities.DecisionContraproposta
			}
			objectKey := u.archiveSignature(ctx, s.proposal.ID, png)
			u.recordReceipt(ctx, s, entities.DecisionReceipt{
				Decision:          decision,
				FinalValue:        sub.FinalValue,
				DiscountApplied:   sub.DiscountApplied,
				IsCounterProposal: sub.IsCounterProposal,
				PaymentType:       sub.PaymentType,
				PaymentMethod:     sub.PaymentMethod,
				Installments:      sub.Installments,
				SignatureObject:   objectKey,
			})
		})
}

// ConfirmAcceptance closes the full-kind flow after signing.
func (u *ProposalFlowUseCase) ConfirmAcceptance(ctx context.Context, token, observations string) (FlowSnapshot, error) {
	s, err := u.beginCommit(token, func(s *flowSession) error {
		if s.proposal.Kind != entities.ProposalKindFull || s.state != StateConfirming {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return u.snapshotOrZero(token, err)
	}

	return u.finishCommit(ctx, s, "confirm",
		func() error { return u.gateway.ConfirmAcceptance(ctx, token, observations) },
		func(s *flowSession) { s.state = StateCompleted })
}

// Reject commits a rejection with an optional free-text reason. It is
// reachable from every non-terminal state and is itself terminal: no
// forward transition is permitted afterwards.
func (u *ProposalFlowUseCase) Reject(ctx context.Context, token, reason string) (FlowSnapshot, error) {
	s, err := u.beginCommit(token, func(s *flowSession) error {
		if s.state.Terminal() {
			return ErrInvalidTransition
		}
		if s.proposal.Status != entities.ProposalStatusEnviada {
			return ErrProposalUnavailable
		}
		return nil
	})
	if err != nil {
		return u.snapshotOrZero(token, err)
	}

	return u.finishCommit(ctx, s, "reject",
		func() error { return u.gateway.SubmitRejection(ctx, token, reason) },
		func(s *flowSession) {
			s.state = StateRejected
			u.recordReceipt(ctx, s, entities.DecisionReceipt{
				Decision:        entities.DecisionRejected,
				RejectionReason: strings.TrimSpace(reason),
				PaymentType:     string(s.payment.Type),
				PaymentMethod:   s.payment.Method,
				Installments:    s.payment.Installments,
			})
		})
}

// DecisionTrail lists the audit receipts recorded for the session's proposal,
// each with a temporary read URL for its archived signature.
func (u *ProposalFlowUseCase) DecisionTrail(ctx context.Context, token string) ([]DecisionRecord, error) {
	proposalID, err := u.sessionProposalID(token)
	if err != nil {
		return nil, err
	}
	if u.receipts == nil {
		return []DecisionRecord{}, nil
	}
	receipts, err := u.receipts.ListByProposalID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	records := make([]DecisionRecord, 0, len(receipts))
	for _, r := range receipts {
		records = append(records, DecisionRecord{Receipt: r, SignatureURL: u.signatureURL(ctx, r.SignatureObject)})
	}
	return records, nil
}

// DecisionRecordByID fetches one receipt. The receipt must belong to the
// session's proposal; ids from other proposals read as not found so one
// public token cannot enumerate another proposal's receipts.
func (u *ProposalFlowUseCase) DecisionRecordByID(ctx context.Context, token, receiptID string) (DecisionRecord, error) {
	proposalID, err := u.sessionProposalID(token)
	if err != nil {
		return DecisionRecord{}, err
	}
	if u.receipts == nil || strings.TrimSpace(receiptID) == "" {
		return DecisionRecord{}, ErrReceiptNotFound
	}
	r, err := u.receipts.GetByID(ctx, receiptID)
	if err != nil {
		return DecisionRecord{}, err
	}
	if r.ID == "" || r.ProposalID != proposalID {
		return DecisionRecord{}, ErrReceiptNotFound
	}
	return DecisionRecord{Receipt: r, SignatureURL: u.signatureURL(ctx, r.SignatureObject)}, nil
}

func (u *ProposalFlowUseCase) sessionProposalID(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[token]
	if !ok {
		return "", ErrSessionNotFound
	}
	return s.proposal.ID, nil
}

func (u *ProposalFlowUseCase) signatureURL(ctx context.Context, key string) string {
	if u.archive == nil || key == "" {
		return ""
	}
	url, err := u.archive.PresignedURL(ctx, key)
	if err != nil {
		log.Printf("[proposal][usecase] signature url failed key=%s err=%v", key, err)
		return ""
	}
	return url
}

// forward applies a guarded forward transition: the proposal must still be
// "sent", unexpired and the step order must match the state machine.
func (u *ProposalFlowUseCase) forward(s *flowSession, to WorkflowState) error {
	if s.expired {
		return ErrProposalExpired
	}
	if !s.available {
		return ErrProposalUnavailable
	}
	if !canTransition(s.state, to) {
		return ErrInvalidTransition
	}
	s.state = to
	return nil
}

func editableGuard(s *flowSession) error {
	if s.state != StateView && s.state != StateSelecting {
		return ErrInvalidTransition
	}
	if s.expired {
		return ErrProposalExpired
	}
	if !s.available {
		return ErrProposalUnavailable
	}
	return nil
}

func (u *ProposalFlowUseCase) withSession(token string, fn func(*flowSession) error) (FlowSnapshot, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return FlowSnapshot{}, ErrMissingToken
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[token]
	if !ok {
		return FlowSnapshot{}, ErrSessionNotFound
	}
	if err := fn(s); err != nil {
		return FlowSnapshot{}, err
	}
	return u.buildSnapshot(s), nil
}

// beginCommit validates guards, captures the payload and raises the
// in-flight flag under the lock. A second committing call for the same
// session while one is outstanding fails fast with ErrSubmissionInFlight.
func (u *ProposalFlowUseCase) beginCommit(token string, prepare func(*flowSession) error) (*flowSession, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.inFlight {
		return nil, ErrSubmissionInFlight
	}
	if err := prepare(s); err != nil {
		return nil, err
	}
	s.inFlight = true
	return s, nil
}

// finishCommit runs the portal call outside the lock, then reloads the
// proposal and applies the transition. A failed call changes nothing, so
// the action can be retried from the pre-call state. A call that resolves
// after the session was replaced (the client navigated away and reloaded)
// is a no-op.
func (u *ProposalFlowUseCase) finishCommit(ctx context.Context, s *flowSession, op string, call func() error, apply func(*flowSession)) (FlowSnapshot, error) {
	defer func() {
		u.mu.Lock()
		s.inFlight = false
		u.mu.Unlock()
	}()

	if err := call(); err != nil {
		log.Printf("[proposal][usecase] %s failed token=%s err=%v", op, s.token, err)
		return u.snapshotOrZero(s.token, err)
	}

	refreshed, reloadErr := u.gateway.FetchProposal(ctx, s.token)

	u.mu.Lock()
	defer u.mu.Unlock()
	cur, ok := u.sessions[s.token]
	if !ok || cur.id != s.id {
		log.Printf("[proposal][usecase] %s resolved after session replaced token=%s", op, s.token)
		return u.buildSnapshotFor(cur), nil
	}
	if reloadErr != nil {
		// The commit itself succeeded; keep the transition but log the
		// stale proposal copy.
		log.Printf("[proposal][usecase] %s reload failed token=%s err=%v", op, s.token, reloadErr)
	} else {
		s.proposal = refreshed
		s.expired = refreshed.IsExpired(u.now())
		s.available = refreshed.Status == entities.ProposalStatusEnviada && !s.expired
	}
	apply(s)
	log.Printf("[proposal][usecase] %s success token=%s state=%s status=%s", op, s.token, s.state, s.proposal.Status)
	return u.buildSnapshot(s), nil
}

func (u *ProposalFlowUseCase) schedulePadInit(s *flowSession) {
	pad := s.pad
	go pad.EnsureReady(func() (int, int, float64) {
		u.mu.Lock()
		defer u.mu.Unlock()
		return s.surfaceW, s.surfaceH, s.surfaceRatio
	})
}

func (u *ProposalFlowUseCase) archiveSignature(ctx context.Context, proposalID string, png []byte) string {
	if u.archive == nil || len(png) == 0 {
		return ""
	}
	key, err := u.archive.Store(ctx, proposalID, png)
	if err != nil {
		// The portal already has the signed payload; archiving is audit only.
		log.Printf("[proposal][usecase] signature archive failed proposal_id=%s err=%v", proposalID, err)
		return ""
	}
	return key
}

func (u *ProposalFlowUseCase) recordReceipt(ctx context.Context, s *flowSession, r entities.DecisionReceipt) {
	if u.receipts == nil {
		return
	}
	r.ID = uuid.NewString()
	r.ProposalID = s.proposal.ID
	r.Token = s.token
	r.CreatedAt = u.now().UTC()
	if _, err := u.receipts.Create(ctx, r); err != nil {
		log.Printf("[proposal][usecase] receipt create failed proposal_id=%s decision=%s err=%v", r.ProposalID, r.Decision, err)
	}
}

func (u *ProposalFlowUseCase) snapshotOrZero(token string, err error) (FlowSnapshot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if s, ok := u.sessions[strings.TrimSpace(token)]; ok {
		return u.buildSnapshot(s), err
	}
	return FlowSnapshot{}, err
}

func (u *ProposalFlowUseCase) buildSnapshotFor(s *flowSession) FlowSnapshot {
	if s == nil {
		return FlowSnapshot{}
	}
	return u.buildSnapshot(s)
}

// buildSnapshot must run under u.mu.
func (u *ProposalFlowUseCase) buildSnapshot(s *flowSession) FlowSnapshot {
	items := make([]FlowItem, 0, len(s.proposal.Items))
	for _, it := range s.proposal.Items {
		items = append(items, FlowItem{
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Quantity:    it.Quantity,
			UnitValue:   it.ResolvedUnitValue(),
			TotalValue:  it.ResolvedTotal(),
			Included:    s.ledger.IsIncluded(it.ServiceID),
			Note:        s.ledger.Note(it.ServiceID),
		})
	}
	return FlowSnapshot{
		SessionID:       s.id,
		ProposalID:      s.proposal.ID,
		Kind:            s.proposal.Kind,
		Status:          s.proposal.Status,
		State:           s.state,
		ClientName:      s.proposal.ClientName,
		CompanyName:     s.proposal.CompanyName,
		ExpiresAt:       s.proposal.EffectiveExpiry(),
		Expired:         s.expired,
		Available:       s.available,
		Items:           items,
		AllSelected:     s.ledger.AllSelected(),
		SomeSelected:    s.ledger.SomeSelected(),
		Payment:         s.payment,
		Methods:         entities.MethodsForType(s.payment.Type),
		MaxInstallments: s.proposal.InstallmentLimit(),
		Quote:           BuildQuote(s.proposal, s.ledger, s.payment),
		HasInk:          s.pad.HasInk(),
		SurfaceReady:    s.pad.Ready(),
	}
}
