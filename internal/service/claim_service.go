package service

import (
	"context"
	"errors"
	"time"

	"claimvista/internal/dto"
	"claimvista/internal/models"
	"claimvista/internal/store"

	"go.uber.org/zap"
)

var (
	ErrClaimNotFound       = errors.New("claim not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrActingPartyRequired = errors.New("acting party required")
	ErrUnknownHospital     = errors.New("unknown hospital")
	ErrUnknownAgent        = errors.New("unknown agent")
)

// ClaimService owns the claim workflow: submission, the dual-approval state
// machine, and the per-role projections. Authorization for mutations is
// enforced here, not in the transport layer.
type ClaimService struct {
	claims *store.ClaimStore
	refs   *store.ReferenceStore
	logger *zap.Logger
}

func NewClaimService(claims *store.ClaimStore, refs *store.ReferenceStore, logger *zap.Logger) *ClaimService {
	return &ClaimService{
		claims: claims,
		refs:   refs,
		logger: logger,
	}
}

// Submit creates a claim on behalf of the actor. Only user accounts submit
// claims; hospital and agent names are resolved server-side from reference
// data. New claims always start pending with both approvals unset.
func (s *ClaimService) Submit(ctx context.Context, actor models.User, req *dto.SubmitClaimRequest) (models.Claim, error) {
	if actor.Role != models.RoleUser {
		return models.Claim{}, ErrPermissionDenied
	}

	hospital, ok := s.refs.HospitalByID(req.HospitalID)
	if !ok {
		return models.Claim{}, ErrUnknownHospital
	}
	agent, ok := s.refs.AgentByID(req.AgentID)
	if !ok {
		return models.Claim{}, ErrUnknownAgent
	}

	now := time.Now()
	claim := models.Claim{
		UserID:           actor.ID,
		UserName:         actor.Name,
		HospitalID:       hospital.ID,
		HospitalName:     hospital.Name,
		AgentID:          agent.ID,
		AgentName:        agent.Name,
		Title:            req.Title,
		Description:      req.Description,
		Amount:           req.Amount,
		Status:           models.StatusPending,
		HospitalApproved: false,
		AgentApproved:    false,
		Documents:        req.Documents,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	stored := s.claims.Insert(claim)
	s.logger.Info("Claim submitted",
		zap.String("claim_id", stored.ID),
		zap.String("user_id", actor.ID),
		zap.Float64("amount", stored.Amount),
	)
	return stored, nil
}

// Decide records one party's verdict on a claim and recomputes its status.
//
// Hospitals and agents may only decide claims assigned to them and always act
// as their own party. Admins may act for either party but must name it via
// actingAs. Everyone else is denied.
func (s *ClaimService) Decide(ctx context.Context, actor models.User, claimID string, decision models.Decision, actingAs string) (models.Claim, error) {
	claim, ok := s.claims.GetByID(claimID)
	if !ok {
		return models.Claim{}, ErrClaimNotFound
	}

	var party models.Party
	switch actor.Role {
	case models.RoleHospital:
		if claim.HospitalID != actor.ID {
			return models.Claim{}, ErrPermissionDenied
		}
		party = models.PartyHospital
	case models.RoleAgent:
		if claim.AgentID != actor.ID {
			return models.Claim{}, ErrPermissionDenied
		}
		party = models.PartyAgent
	case models.RoleAdmin:
		parsed, err := models.ParseParty(actingAs)
		if err != nil {
			return models.Claim{}, ErrActingPartyRequired
		}
		party = parsed
	default:
		return models.Claim{}, ErrPermissionDenied
	}

	// Apply runs inside the store's write lock so concurrent decisions on the
	// same claim both land; assignment cannot change after submission, so the
	// permission checks above are safe on the snapshot.
	claim, ok = s.claims.Update(claimID, func(c *models.Claim) {
		c.Apply(party, decision, time.Now())
	})
	if !ok {
		// No delete operation exists, so the claim cannot vanish between
		// lookup and update; treat it as not found anyway.
		return models.Claim{}, ErrClaimNotFound
	}

	s.logger.Info("Claim decision recorded",
		zap.String("claim_id", claim.ID),
		zap.String("party", string(party)),
		zap.String("decision", string(decision)),
		zap.String("status", string(claim.Status)),
	)
	return claim, nil
}

// GetByID is a pure lookup; absence is signalled, never an error.
func (s *ClaimService) GetByID(ctx context.Context, id string) (models.Claim, bool) {
	return s.claims.GetByID(id)
}

// ClaimsFor returns the actor's view of the collection: users see their own
// claims, hospitals and agents see claims assigned to them, admins see
// everything, and an unrecognized role sees nothing. An optional status
// narrows the result.
func (s *ClaimService) ClaimsFor(ctx context.Context, actor models.User, status models.ClaimStatus) []models.Claim {
	all := s.claims.List()
	out := make([]models.Claim, 0, len(all))
	for _, c := range all {
		if !visibleTo(actor, c) {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out
}

func visibleTo(actor models.User, c models.Claim) bool {
	switch actor.Role {
	case models.RoleUser:
		return c.UserID == actor.ID
	case models.RoleHospital:
		return c.HospitalID == actor.ID
	case models.RoleAgent:
		return c.AgentID == actor.ID
	case models.RoleAdmin:
		return true
	default:
		return false
	}
}

// Stats builds the dashboard counters for the actor. Card titles and
// composition vary by role; all counters derive from the actor's claim
// projection except the admin total, which spans the whole collection.
func (s *ClaimService) Stats(ctx context.Context, actor models.User) *dto.DashboardStatsResponse {
	visible := s.ClaimsFor(ctx, actor, "")

	var pending, inReview, approved, rejected int
	for _, c := range visible {
		switch c.Status {
		case models.StatusPending:
			pending++
		case models.StatusInReview:
			inReview++
		case models.StatusApproved:
			approved++
		case models.StatusRejected:
			rejected++
		}
	}

	var cards []dto.StatCard
	switch actor.Role {
	case models.RoleAdmin:
		cards = []dto.StatCard{
			{Title: "Total Claims", Value: len(s.claims.List())},
			{Title: "Pending Review", Value: pending},
			{Title: "Approved", Value: approved},
			{Title: "Rejected", Value: rejected},
		}
	case models.RoleHospital, models.RoleAgent:
		cards = []dto.StatCard{
			{Title: "Assigned Claims", Value: len(visible)},
			{Title: "Pending Review", Value: pending},
			{Title: "Approved", Value: approved},
			{Title: "Rejected", Value: rejected},
		}
	default:
		cards = []dto.StatCard{
			{Title: "Total Claims", Value: len(visible)},
			{Title: "Pending", Value: pending + inReview},
			{Title: "Approved", Value: approved},
			{Title: "Rejected", Value: rejected},
		}
	}

	return &dto.DashboardStatsResponse{
		Role:  string(actor.Role),
		Cards: cards,
	}
}
