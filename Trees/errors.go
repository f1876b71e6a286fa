package Trees

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every *NotFoundError through errors.Is.
var ErrNotFound = errors.New("Trees: item not in tree")

// NotFoundError is returned by LinkedBST.Remove when the item isn't in the tree.
// The tree is left unchanged.
type NotFoundError struct {
	Item any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Trees: item %v not in tree", e.Item)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
