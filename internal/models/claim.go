package models

import (
	"fmt"
	"time"
)

// ClaimStatus is the aggregate workflow state of a claim.
type ClaimStatus string

const (
	StatusPending  ClaimStatus = "pending"
	StatusInReview ClaimStatus = "in-review"
	StatusApproved ClaimStatus = "approved"
	StatusRejected ClaimStatus = "rejected"
)

func ParseClaimStatus(s string) (ClaimStatus, error) {
	switch ClaimStatus(s) {
	case StatusPending, StatusInReview, StatusApproved, StatusRejected:
		return ClaimStatus(s), nil
	default:
		return "", fmt.Errorf("unknown claim status %q", s)
	}
}

// Decision is a single party's verdict on a claim.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionApproved, DecisionRejected:
		return Decision(s), nil
	default:
		return "", fmt.Errorf("unknown decision %q", s)
	}
}

// Party identifies which side of the dual approval a decision belongs to.
type Party string

const (
	PartyHospital Party = "hospital"
	PartyAgent    Party = "agent"
)

func ParseParty(s string) (Party, error) {
	switch Party(s) {
	case PartyHospital, PartyAgent:
		return Party(s), nil
	default:
		return "", fmt.Errorf("unknown party %q", s)
	}
}

// Claim is one submitted insurance claim. Both the hospital and the agent
// assigned to it must approve before the claim is approved overall.
type Claim struct {
	ID               string
	UserID           string
	UserName         string
	HospitalID       string
	HospitalName     string
	AgentID          string
	AgentName        string
	Title            string
	Description      string
	Amount           float64
	Status           ClaimStatus
	HospitalApproved bool
	AgentApproved    bool
	Documents        []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NextStatus recomputes the aggregate status after one party's decision has
// been recorded in the approval flags. Precedence: full approval wins, then
// the rejection just made, then in-review.
//
// Note the deliberate quirk inherited from the system this replaces: a
// rejection is only terminal while nobody acts again. If the hospital rejects
// and the agent later approves, the agent's call recomputes from
// flags (false, true) with decision=approved and lands on in-review,
// overwriting the earlier rejected status. See DESIGN.md before changing
// this.
func NextStatus(hospitalApproved, agentApproved bool, decision Decision) ClaimStatus {
	switch {
	case hospitalApproved && agentApproved:
		return StatusApproved
	case decision == DecisionRejected:
		return StatusRejected
	default:
		return StatusInReview
	}
}

// Apply records one party's decision on the claim and recomputes the
// aggregate status. The other party's flag and every non-workflow field are
// left untouched; UpdatedAt is bumped to now.
func (c *Claim) Apply(party Party, decision Decision, now time.Time) {
	switch party {
	case PartyHospital:
		c.HospitalApproved = decision == DecisionApproved
	case PartyAgent:
		c.AgentApproved = decision == DecisionApproved
	}
	c.Status = NextStatus(c.HospitalApproved, c.AgentApproved, decision)
	c.UpdatedAt = now
}
