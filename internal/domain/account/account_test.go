package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_HasAcceptedMembership(t *testing.T) {
	now := time.Now()
	ownerID := uint(7)

	tests := []struct {
		name       string
		ownerID    *uint
		membership MembershipStatus
		want       bool
	}{
		{"accepted member", &ownerID, MembershipAccepted, true},
		{"pending member", &ownerID, MembershipPending, false},
		{"removed member", &ownerID, MembershipRemoved, false},
		{"no household", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct, err := ReconstructAccount(42, StatusActive, true, tt.ownerID, tt.membership, nil, now, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, acct.HasAcceptedMembership())
		})
	}
}

func TestAccount_IsActive(t *testing.T) {
	now := time.Now()

	for _, status := range []Status{StatusDeactivated, StatusSuspended} {
		acct, err := ReconstructAccount(42, status, true, nil, "", nil, now, now)
		require.NoError(t, err)
		assert.False(t, acct.IsActive())
	}

	acct, err := ReconstructAccount(42, StatusActive, true, nil, "", nil, now, now)
	require.NoError(t, err)
	assert.True(t, acct.IsActive())
}

func TestReconstructAccount_ValidatesMembershipOnlyWithinHousehold(t *testing.T) {
	now := time.Now()
	ownerID := uint(7)

	_, err := ReconstructAccount(42, StatusActive, true, &ownerID, "invited", nil, now, now)
	assert.Error(t, err)

	// without a household link the membership column is ignored
	_, err = ReconstructAccount(42, StatusActive, true, nil, "invited", nil, now, now)
	assert.NoError(t, err)
}
