// Package access is the single source of truth for who may see or change
// what. Every repository operation and the file gateway consult Decide
// before touching storage; no handler re-derives these rules.
package access

import "arqzoy-backend/internal/models"

type Role int

const (
	RoleAnonymous Role = iota
	RoleOperator
	RoleTokenHolder
)

// Actor is one of the three access-control identities: the anonymous
// visitor, the authenticated operator, or the holder of a project's
// private-link token.
type Actor struct {
	Role  Role
	Token string
}

func Anonymous() Actor {
	return Actor{Role: RoleAnonymous}
}

func Operator() Actor {
	return Actor{Role: RoleOperator}
}

func TokenHolder(token string) Actor {
	return Actor{Role: RoleTokenHolder, Token: token}
}

type Operation int

const (
	OpRead Operation = iota
	OpWrite
	// OpDownload is the stricter read of a file's bytes: non-media
	// deliverables unlock only once the owning project is complete.
	OpDownload
)

type Kind int

const (
	KindClient Kind = iota
	KindProject
	KindFile
	KindPortfolioDesign
	KindPersonalProfile
)

// Record carries the attributes of a stored record that the decision table
// depends on. Fields irrelevant to a kind are left zero.
type Record struct {
	Kind Kind

	// Token is the owning project's private token (projects and files).
	Token string

	// Public is the visibility flag (projects and portfolio designs).
	Public bool

	// ProjectStatus is the owning project's workflow status (files).
	ProjectStatus string

	// FileCategory is the archivo category (files).
	FileCategory string
}

type Decision int

const (
	Deny Decision = iota
	Allow
	// AllowPublicSubset grants a read of the public fields only; the
	// private token must not appear in the rendered response.
	AllowPublicSubset
)

func (d Decision) Allowed() bool {
	return d != Deny
}

// Decide implements the access table. The operator may do anything; writes
// by anyone else are always denied; token possession substitutes for
// authentication, scoped to exactly one project.
func Decide(actor Actor, rec Record, op Operation) Decision {
	if actor.Role == RoleOperator {
		return Allow
	}
	if op == OpWrite {
		return Deny
	}

	switch rec.Kind {
	case KindClient:
		// Client records are only ever reachable through the owning
		// project's token path, never directly.
		return Deny

	case KindProject:
		if tokenMatches(actor, rec) {
			return Allow
		}
		if rec.Public {
			return AllowPublicSubset
		}
		return Deny

	case KindFile:
		if !tokenMatches(actor, rec) {
			return Deny
		}
		if op == OpDownload && !models.MediaCategory(rec.FileCategory) {
			if rec.ProjectStatus != models.ProjectStatusComplete {
				return Deny
			}
		}
		return Allow

	case KindPortfolioDesign:
		if rec.Public {
			return Allow
		}
		return Deny

	case KindPersonalProfile:
		return Allow
	}

	return Deny
}

func tokenMatches(actor Actor, rec Record) bool {
	return actor.Role == RoleTokenHolder && actor.Token != "" && actor.Token == rec.Token
}
