package person

import "context"

// Service defines the business operations of the Person registry.
type Service interface {
	// Search lists persons matching the optional filters.
	Search(ctx context.Context, filter SearchFilter) ([]PersonWithPartner, error)

	// Register creates a person, resolving the optional partner CNP first.
	Register(ctx context.Context, req *CreateRequest) error

	// Update replaces all fields of the person with the given id.
	Update(ctx context.Context, id int, req *UpdateRequest) error

	// Delete removes the person with the given id.
	Delete(ctx context.Context, id int) error
}
