package store

import "claimvista/internal/models"

// ReferenceStore exposes the static hospital and agent lists used to populate
// claim assignment. Read-only; there is no mutation surface.
type ReferenceStore struct {
	hospitals []models.Hospital
	agents    []models.Agent
}

func NewReferenceStore() *ReferenceStore {
	return &ReferenceStore{
		hospitals: []models.Hospital{
			{ID: "1", Name: "General Hospital", Address: "123 Main St", Phone: "555-1234"},
			{ID: "2", Name: "City Medical Center", Address: "456 Elm St", Phone: "555-5678"},
			{ID: "3", Name: "Community Health", Address: "789 Oak St", Phone: "555-9012"},
		},
		agents: []models.Agent{
			{ID: "1", Name: "Insurance Co", Company: "ABC Insurance", Phone: "555-3456"},
			{ID: "2", Name: "Health Protect", Company: "XYZ Insurance", Phone: "555-7890"},
			{ID: "3", Name: "Coverage Plus", Company: "DEF Insurance", Phone: "555-1234"},
		},
	}
}

func (s *ReferenceStore) Hospitals() []models.Hospital {
	out := make([]models.Hospital, len(s.hospitals))
	copy(out, s.hospitals)
	return out
}

func (s *ReferenceStore) Agents() []models.Agent {
	out := make([]models.Agent, len(s.agents))
	copy(out, s.agents)
	return out
}

func (s *ReferenceStore) HospitalByID(id string) (models.Hospital, bool) {
	for _, h := range s.hospitals {
		if h.ID == id {
			return h, true
		}
	}
	return models.Hospital{}, false
}

func (s *ReferenceStore) AgentByID(id string) (models.Agent, bool) {
	for _, a := range s.agents {
		if a.ID == id {
			return a, true
		}
	}
	return models.Agent{}, false
}
