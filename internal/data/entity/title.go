package entity

import (
	"github.com/google/uuid"
)

type Title struct {
	Base
	Name        string  `db:"name"`
	Year        int     `db:"year"`
	Description *string `db:"description"`
	// CategoryID is nullable: deleting a category detaches its titles
	// instead of cascading them.
	CategoryID *uuid.UUID `db:"category_id"`
	// Rating is never stored. It is the mean of the title's review
	// scores computed at query time, nil when there are no reviews.
	Rating *float64 `db:"rating"`
}
