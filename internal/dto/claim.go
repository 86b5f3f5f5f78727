package dto

import (
	"time"

	"claimvista/internal/models"
)

type SubmitClaimRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Amount      float64  `json:"amount" validate:"required,gt=0"`
	HospitalID  string   `json:"hospital_id" validate:"required"`
	AgentID     string   `json:"agent_id" validate:"required"`
	Documents   []string `json:"documents"`
}

// DecisionRequest records one party's verdict. ActingAs is only consulted for
// admins, who must name the party they are deciding for; hospital and agent
// accounts always act as themselves.
type DecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
	ActingAs string `json:"acting_as" validate:"omitempty,oneof=hospital agent"`
}

type ClaimResponse struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id"`
	UserName         string   `json:"user_name"`
	HospitalID       string   `json:"hospital_id"`
	HospitalName     string   `json:"hospital_name"`
	AgentID          string   `json:"agent_id"`
	AgentName        string   `json:"agent_name"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Amount           float64  `json:"amount"`
	Status           string   `json:"status"`
	HospitalApproved bool     `json:"hospital_approved"`
	AgentApproved    bool     `json:"agent_approved"`
	Documents        []string `json:"documents"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

func NewClaimResponse(c models.Claim) ClaimResponse {
	docs := c.Documents
	if docs == nil {
		docs = []string{}
	}
	return ClaimResponse{
		ID:               c.ID,
		UserID:           c.UserID,
		UserName:         c.UserName,
		HospitalID:       c.HospitalID,
		HospitalName:     c.HospitalName,
		AgentID:          c.AgentID,
		AgentName:        c.AgentName,
		Title:            c.Title,
		Description:      c.Description,
		Amount:           c.Amount,
		Status:           string(c.Status),
		HospitalApproved: c.HospitalApproved,
		AgentApproved:    c.AgentApproved,
		Documents:        docs,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        c.UpdatedAt.Format(time.RFC3339),
	}
}

func NewClaimResponses(claims []models.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, NewClaimResponse(c))
	}
	return out
}
