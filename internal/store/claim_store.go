// Package store holds the in-memory state of the claims workflow. Claims are
// not persisted: the canonical collection lives here for the lifetime of the
// process, seeded with demo data, and is only ever mutated under the store's
// write lock. See DESIGN.md for why this is deliberate.
package store

import (
	"strconv"
	"sync"
	"time"

	"claimvista/internal/models"

	"go.uber.org/zap"
)

// ClaimStore owns the canonical claim collection. Readers get copies;
// mutations happen in place under the write lock, so a claim changes
// atomically or not at all.
type ClaimStore struct {
	mu     sync.RWMutex
	claims []models.Claim
	nextID int
	logger *zap.Logger
}

func NewClaimStore(logger *zap.Logger) *ClaimStore {
	seed := seedClaims()
	return &ClaimStore{
		claims: seed,
		nextID: len(seed) + 1,
		logger: logger,
	}
}

// Insert assigns the next id, appends the claim, and returns the stored
// value. IDs are monotonic; since no delete operation exists they can never
// collide.
func (s *ClaimStore) Insert(c models.Claim) models.Claim {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = strconv.Itoa(s.nextID)
	s.nextID++
	s.claims = append(s.claims, c)

	s.logger.Info("Claim stored",
		zap.String("claim_id", c.ID),
		zap.String("user_id", c.UserID),
	)
	return cloneClaim(c)
}

// Update runs fn against the stored claim under the write lock, so two
// concurrent mutations of the same claim cannot lose each other's changes.
// Returns the updated claim, or false when the id is absent.
func (s *ClaimStore) Update(id string, fn func(*models.Claim)) (models.Claim, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.claims {
		if s.claims[i].ID == id {
			fn(&s.claims[i])
			return cloneClaim(s.claims[i]), true
		}
	}
	return models.Claim{}, false
}

// GetByID is a pure lookup; a miss is reported via the bool, never an error.
func (s *ClaimStore) GetByID(id string) (models.Claim, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.claims {
		if c.ID == id {
			return cloneClaim(c), true
		}
	}
	return models.Claim{}, false
}

// List returns a copy of the whole collection in insertion order.
func (s *ClaimStore) List() []models.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Claim, 0, len(s.claims))
	for _, c := range s.claims {
		out = append(out, cloneClaim(c))
	}
	return out
}

func cloneClaim(c models.Claim) models.Claim {
	if c.Documents != nil {
		docs := make([]string, len(c.Documents))
		copy(docs, c.Documents)
		c.Documents = docs
	}
	return c
}

// seedClaims returns the demo claims every fresh process starts with.
func seedClaims() []models.Claim {
	return []models.Claim{
		{
			ID:               "1",
			UserID:           "4",
			UserName:         "Regular User",
			HospitalID:       "1",
			HospitalName:     "General Hospital",
			AgentID:          "1",
			AgentName:        "Insurance Co",
			Title:            "Emergency Room Visit",
			Description:      "Visited emergency room due to high fever and dehydration",
			Amount:           1500,
			Status:           models.StatusPending,
			HospitalApproved: false,
			AgentApproved:    false,
			Documents:        []string{"medical_report.pdf", "receipt.pdf"},
			CreatedAt:        time.Date(2025, 4, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt:        time.Date(2025, 4, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:               "2",
			UserID:           "4",
			UserName:         "Regular User",
			HospitalID:       "2",
			HospitalName:     "City Medical Center",
			AgentID:          "2",
			AgentName:        "Health Protect",
			Title:            "Annual Checkup",
			Description:      "Routine annual physical examination",
			Amount:           500,
			Status:           models.StatusApproved,
			HospitalApproved: true,
			AgentApproved:    true,
			Documents:        []string{"checkup_report.pdf"},
			CreatedAt:        time.Date(2025, 3, 20, 14, 15, 0, 0, time.UTC),
			UpdatedAt:        time.Date(2025, 3, 22, 9, 45, 0, 0, time.UTC),
		},
		{
			ID:               "3",
			UserID:           "4",
			UserName:         "Regular User",
			HospitalID:       "3",
			HospitalName:     "Community Health",
			AgentID:          "3",
			AgentName:        "Coverage Plus",
			Title:            "Dental Procedure",
			Description:      "Root canal treatment and crown",
			Amount:           1200,
			Status:           models.StatusRejected,
			HospitalApproved: true,
			AgentApproved:    false,
			Documents:        []string{"dental_report.pdf", "xray.pdf", "receipt.pdf"},
			CreatedAt:        time.Date(2025, 2, 10, 11, 20, 0, 0, time.UTC),
			UpdatedAt:        time.Date(2025, 2, 12, 16, 30, 0, 0, time.UTC),
		},
	}
}
