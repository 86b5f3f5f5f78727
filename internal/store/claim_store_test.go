package store

import (
	"sync"
	"testing"

	"claimvista/internal/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewClaimStore_SeedsDemoClaims(t *testing.T) {
	s := NewClaimStore(zap.NewNop())

	claims := s.List()
	require.Len(t, claims, 3)
	require.Equal(t, "1", claims[0].ID)
	require.Equal(t, models.StatusPending, claims[0].Status)
	require.Equal(t, models.StatusApproved, claims[1].Status)
	require.Equal(t, models.StatusRejected, claims[2].Status)
}

func TestInsert_AssignsMonotonicIDs(t *testing.T) {
	s := NewClaimStore(zap.NewNop())

	first := s.Insert(models.Claim{Title: "a"})
	second := s.Insert(models.Claim{Title: "b"})

	require.Equal(t, "4", first.ID)
	require.Equal(t, "5", second.ID)
	require.Len(t, s.List(), 5)
}

func TestUpdate_MutatesOnlyMatchingClaim(t *testing.T) {
	s := NewClaimStore(zap.NewNop())

	updated, ok := s.Update("1", func(c *models.Claim) {
		c.Status = models.StatusInReview
		c.HospitalApproved = true
	})
	require.True(t, ok)
	require.Equal(t, models.StatusInReview, updated.Status)
	require.True(t, updated.HospitalApproved)

	stored, ok := s.GetByID("1")
	require.True(t, ok)
	require.Equal(t, updated, stored)

	// Other claims are untouched.
	other, ok := s.GetByID("2")
	require.True(t, ok)
	require.Equal(t, models.StatusApproved, other.Status)
}

func TestUpdate_UnknownIDIsRejected(t *testing.T) {
	s := NewClaimStore(zap.NewNop())
	_, ok := s.Update("999", func(c *models.Claim) {
		c.Status = models.StatusApproved
	})
	require.False(t, ok)
	require.Len(t, s.List(), 3)
}

func TestUpdate_ConcurrentMutationsAllLand(t *testing.T) {
	s := NewClaimStore(zap.NewNop())

	const workers = 8
	const perWorker = 250

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				s.Update("1", func(c *models.Claim) {
					c.Amount++
				})
			}
		}()
	}
	wg.Wait()

	claim, ok := s.GetByID("1")
	require.True(t, ok)
	require.Equal(t, 1500.0+workers*perWorker, claim.Amount)
}

func TestGetByID_MissIsNotAnError(t *testing.T) {
	s := NewClaimStore(zap.NewNop())

	_, ok := s.GetByID("does-not-exist")
	require.False(t, ok)

	// Repeated lookups with no intervening mutation return equal results.
	a, ok := s.GetByID("1")
	require.True(t, ok)
	b, ok := s.GetByID("1")
	require.True(t, ok)
	require.Equal(t, a, b)
}

func TestReadsReturnCopies(t *testing.T) {
	s := NewClaimStore(zap.NewNop())

	claim, ok := s.GetByID("1")
	require.True(t, ok)
	require.NotEmpty(t, claim.Documents)

	// Mutating the returned value must not leak into the store.
	claim.Documents[0] = "tampered.pdf"
	claim.Status = models.StatusApproved

	fresh, ok := s.GetByID("1")
	require.True(t, ok)
	require.Equal(t, "medical_report.pdf", fresh.Documents[0])
	require.Equal(t, models.StatusPending, fresh.Status)

	listed := s.List()
	listed[0].Title = "tampered"
	require.Equal(t, "Emergency Room Visit", s.List()[0].Title)
}
