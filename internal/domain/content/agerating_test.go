package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeRating_TotalOrder(t *testing.T) {
	ordered := []AgeRating{
		RatingAll, Rating3Plus, Rating7Plus, Rating10Plus,
		Rating13Plus, Rating16Plus, Rating18Plus, RatingMature,
	}

	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i].Rank() > ordered[i-1].Rank(),
			"%s should rank above %s", ordered[i], ordered[i-1])
	}
}

func TestAgeRating_Exceeds(t *testing.T) {
	tests := []struct {
		name    string
		rating  AgeRating
		ceiling AgeRating
		want    bool
	}{
		{"mature exceeds 13+", RatingMature, Rating13Plus, true},
		{"13+ does not exceed 13+", Rating13Plus, Rating13Plus, false},
		{"7+ does not exceed 13+", Rating7Plus, Rating13Plus, false},
		{"18+ exceeds 16+", Rating18Plus, Rating16Plus, true},
		{"all exceeds nothing", RatingAll, RatingAll, false},
		{"unknown rating ranks as all", AgeRating("pg-13"), RatingAll, false},
		{"3+ exceeds unknown ceiling", Rating3Plus, AgeRating(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rating.Exceeds(tt.ceiling))
		})
	}
}
