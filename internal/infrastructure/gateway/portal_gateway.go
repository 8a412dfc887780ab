package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"propostas_xpto/internal/domain/entities"
	"propostas_xpto/internal/usecase/interfaces"
)

var ErrMissingPortalBaseURL = errors.New("missing PORTAL_BASE_URL")

// PortalGateway is the HTTP client for the portal API that owns proposals.
// The portal itself is an external collaborator; this client only implements
// the token-keyed contract the acceptance flow depends on.
//
// Env:
//   - PORTAL_BASE_URL: portal API root
//   - PORTAL_GATEWAY_MOCK: 1/true/yes/on/mock enables the local mock
type PortalGateway struct {
	baseURL  string
	http     *http.Client
	mockMode bool
}

var _ interfaces.IProposalGateway = (*PortalGateway)(nil)

func NewPortalGateway(baseURL string) (*PortalGateway, error) {
	if isPortalGatewayMockEnabled() {
		log.Printf("[proposal][gateway] mock mode enabled")
		return &PortalGateway{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[proposal][gateway] missing PORTAL_BASE_URL")
		return nil, ErrMissingPortalBaseURL
	}

	return &PortalGateway{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (g *PortalGateway) FetchProposal(ctx context.Context, token string) (entities.Proposal, error) {
	if g.mockMode {
		return mockProposal(token), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.proposalURL(token, ""), nil)
	if err != nil {
		return entities.Proposal{}, &interfaces.TransportError{Err: err}
	}
	resp, err := g.http.Do(req)
	if err != nil {
		return entities.Proposal{}, &interfaces.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return entities.Proposal{}, err
	}

	var p entities.Proposal
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return entities.Proposal{}, &interfaces.TransportError{Err: err}
	}
	p.Token = token
	return p, nil
}

func (g *PortalGateway) SubmitSelection(ctx context.Context, token string, sub interfaces.SelectionSubmission) error {
	return g.post(ctx, token, "/selection", sub)
}

func (g *PortalGateway) SubmitSignature(ctx context.Context, token string, sub interfaces.SignatureSubmission) error {
	return g.post(ctx, token, "/signature", sub)
}

func (g *PortalGateway) ConfirmAcceptance(ctx context.Context, token string, observations string) error {
	return g.post(ctx, token, "/confirm", map[string]string{"observations": observations})
}

func (g *PortalGateway) SubmitRejection(ctx context.Context, token string, reason string) error {
	return g.post(ctx, token, "/reject", map[string]string{"reason": reason})
}

func (g *PortalGateway) post(ctx context.Context, token, suffix string, payload any) error {
	if g.mockMode {
		log.Printf("[proposal][gateway] mock accept token=%s op=%s", token, suffix)
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return &interfaces.TransportError{Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.proposalURL(token, suffix), bytes.NewReader(body))
	if err != nil {
		return &interfaces.TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		log.Printf("[proposal][gateway] call failed op=%s err=%v", suffix, err)
		return &interfaces.TransportError{Err: err}
	}
	defer resp.Body.Close()
	return classifyStatus(resp)
}

func (g *PortalGateway) proposalURL(token, suffix string) string {
	return g.baseURL + "/public/proposals/" + token + suffix
}

// classifyStatus maps portal responses onto the gateway error taxonomy:
// 404 means the token is unknown, 400/422 carry a recoverable validation
// message and anything else non-2xx is a transport failure.
func classifyStatus(resp *http.Response) error {
	if resp.StatusCode < 300 {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return interfaces.ErrProposalNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &interfaces.ValidationError{Message: readErrorMessage(resp.Body)}
	default:
		return &interfaces.TransportError{Err: fmt.Errorf("portal returned %d", resp.StatusCode)}
	}
}

func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return "invalid request"
	}
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		return "invalid request"
	}
	return msg
}

// mockProposal backs local development without a reachable portal.
func mockProposal(token string) entities.Proposal {
	now := time.Now().UTC()
	validUntil := now.Add(7 * 24 * time.Hour)
	return entities.Proposal{
		ID:              "mock-" + token,
		Token:           token,
		Kind:            entities.ProposalKindFull,
		Status:          entities.ProposalStatusEnviada,
		ClientName:      "Cliente Exemplo",
		CompanyName:     "Empresa Exemplo LTDA",
		TotalValue:      1000,
		ValidUntil:      &validUntil,
		MaxInstallments: 12,
		Items: []entities.ProposalLineItem{
			{ServiceID: "svc-1", ServiceName: "Consultoria", Quantity: 1, UnitValue: 500, TotalValue: 500},
			{ServiceID: "svc-2", ServiceName: "Recrutamento", Quantity: 1, UnitValue: 500, TotalValue: 500, RecruitmentPct: 10, HasRecruitmentPct: true},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func isPortalGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PORTAL_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
