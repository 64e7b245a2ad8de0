package service

import (
	"context"
	"errors"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

// resolveClientID maps a CLIENT session to its Client record by exact email
// match. Staff-managed portal accounts (User rows with the CLIENT role) are
// tied to a Client the same way, so the session email is the single source of
// ownership.
func resolveClientID(ctx context.Context, clients ports.ClientRepository, email string) (string, error) {
	client, err := clients.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return "", domain.ErrForbidden
		}
		return "", err
	}
	return client.ID, nil
}

// clientProjectIDs returns the project ids a CLIENT session may see.
func clientProjectIDs(ctx context.Context, clients ports.ClientRepository, projects ports.ProjectRepository, email string) ([]string, error) {
	clientID, err := resolveClientID(ctx, clients, email)
	if err != nil {
		return nil, err
	}
	ids, err := projects.IDsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	// An owned-but-empty scope must stay a non-nil filter, otherwise the
	// repository would treat it as "no restriction".
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
