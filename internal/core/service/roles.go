package service

import (
	"github.com/rs/zerolog"

	"github.com/crediya/auth-service/internal/core/domain"
)

// RoleStrategy maps one role identifier to the role names it grants.
type RoleStrategy interface {
	Supports(roleID int64) bool
	Roles() []string
}

type staticRoleStrategy struct {
	id    int64
	names []string
}

func (s staticRoleStrategy) Supports(roleID int64) bool { return roleID == s.id }
func (s staticRoleStrategy) Roles() []string            { return s.names }

// ClientRoleStrategy grants CLIENT for role id 1.
func ClientRoleStrategy() RoleStrategy {
	return staticRoleStrategy{id: domain.RoleIDClient, names: []string{domain.RoleClient}}
}

// AdvisorRoleStrategy grants ADVISOR for role id 2.
func AdvisorRoleStrategy() RoleStrategy {
	return staticRoleStrategy{id: domain.RoleIDAdvisor, names: []string{domain.RoleAdvisor}}
}

// AdminRoleStrategy grants ADMIN for role id 3.
func AdminRoleStrategy() RoleStrategy {
	return staticRoleStrategy{id: domain.RoleIDAdmin, names: []string{domain.RoleAdmin}}
}

// RoleRegistry resolves a role identifier to granted role names by walking
// an ordered list of strategies. The first strategy that supports the id
// wins; at most one strategy's roles are ever returned. An unmatched or
// absent id yields an empty set, never an error. Adding a new role means
// registering one more strategy, not touching the registry.
type RoleRegistry struct {
	strategies []RoleStrategy
	log        zerolog.Logger
}

func NewRoleRegistry(log zerolog.Logger, strategies ...RoleStrategy) *RoleRegistry {
	return &RoleRegistry{strategies: strategies, log: log}
}

// DefaultRoleRegistry returns a registry with the three built-in roles.
func DefaultRoleRegistry(log zerolog.Logger) *RoleRegistry {
	return NewRoleRegistry(log, ClientRoleStrategy(), AdvisorRoleStrategy(), AdminRoleStrategy())
}

// RolesFor implements ports.RoleResolver.
func (r *RoleRegistry) RolesFor(roleID *int64) []string {
	if roleID == nil {
		r.log.Debug().Msg("no role id on user, granting no roles")
		return nil
	}
	for _, s := range r.strategies {
		if s.Supports(*roleID) {
			return s.Roles()
		}
	}
	r.log.Debug().Int64("role_id", *roleID).Msg("unrecognized role id, granting no roles")
	return nil
}
