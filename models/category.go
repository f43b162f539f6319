package models

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// Category is a node in the catalog tree. The tree is stored in a single
// self-referential table: a root category carries its own id in ParentID
// instead of a nullable foreign key.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	ParentID  uint      `gorm:"not null" json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsRoot reports whether the category is a tree root (parent is itself).
func (c *Category) IsRoot() bool {
	return c.ParentID == c.ID
}

// CategorySummary is the shape used when listing a category's children.
type CategorySummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CategoryDetail is a category together with its direct children and the
// number of products referencing it.
type CategoryDetail struct {
	Category
	Children      []CategorySummary `json:"children"`
	ProductsCount int64             `json:"products_count"`
}

// ParentRef is the parent a category request points at: either an existing
// category id or the token "none", meaning the category should become a
// root. The self-reference convention is applied at the storage boundary,
// not here.
type ParentRef struct {
	ID   uint
	None bool
}

// NoParent returns a ParentRef carrying the "none" token.
func NoParent() ParentRef {
	return ParentRef{None: true}
}

// ParentOf returns a ParentRef pointing at an existing category id.
func ParentOf(id uint) ParentRef {
	return ParentRef{ID: id}
}

// UnmarshalJSON accepts a numeric id, a numeric string, or "none".
func (p *ParentRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "none" {
			*p = ParentRef{None: true}
			return nil
		}
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return errors.New("parent must be a category id or \"none\"")
		}
		*p = ParentRef{ID: uint(n)}
		return nil
	}

	var n uint
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("parent must be a category id or \"none\"")
	}
	*p = ParentRef{ID: n}
	return nil
}

// MarshalJSON emits "none" for root references and the id otherwise.
func (p ParentRef) MarshalJSON() ([]byte, error) {
	if p.None {
		return json.Marshal("none")
	}
	return json.Marshal(p.ID)
}
