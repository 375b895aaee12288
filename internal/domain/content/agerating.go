package content

// AgeRating is a content maturity label with a fixed total order.
type AgeRating string

const (
	RatingAll    AgeRating = "all"
	Rating3Plus  AgeRating = "3+"
	Rating7Plus  AgeRating = "7+"
	Rating10Plus AgeRating = "10+"
	Rating13Plus AgeRating = "13+"
	Rating16Plus AgeRating = "16+"
	Rating18Plus AgeRating = "18+"
	RatingMature AgeRating = "mature"
)

// ratingOrder defines the total order over rating labels. An unknown or
// empty rating maps to 0, the same rank as "all".
var ratingOrder = map[AgeRating]int{
	RatingAll:    0,
	Rating3Plus:  1,
	Rating7Plus:  2,
	Rating10Plus: 3,
	Rating13Plus: 4,
	Rating16Plus: 5,
	Rating18Plus: 6,
	RatingMature: 7,
}

// IsValid checks if the rating is a known label
func (r AgeRating) IsValid() bool {
	_, ok := ratingOrder[r]
	return ok
}

// String returns the string representation
func (r AgeRating) String() string {
	return string(r)
}

// Rank returns the rating's position in the total order. Unknown and
// empty ratings rank lowest.
func (r AgeRating) Rank() int {
	return ratingOrder[r]
}

// Exceeds reports whether r is stricter content than the given ceiling,
// i.e. a profile capped at the ceiling must not watch it.
func (r AgeRating) Exceeds(ceiling AgeRating) bool {
	return r.Rank() > ceiling.Rank()
}
