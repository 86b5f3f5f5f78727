package dto

import "claimvista/internal/models"

type HospitalResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type AgentResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

func NewHospitalResponses(hospitals []models.Hospital) []HospitalResponse {
	out := make([]HospitalResponse, 0, len(hospitals))
	for _, h := range hospitals {
		out = append(out, HospitalResponse{ID: h.ID, Name: h.Name, Address: h.Address, Phone: h.Phone})
	}
	return out
}

func NewAgentResponses(agents []models.Agent) []AgentResponse {
	out := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, AgentResponse{ID: a.ID, Name: a.Name, Company: a.Company, Phone: a.Phone})
	}
	return out
}
