package repository

import (
	"database/sql"
	"fmt"

	"arqzoy-backend/internal/access"
	"arqzoy-backend/internal/models"
)

// GetProfile returns the singleton profile. Readable by anyone in full when
// it exists; NotFound otherwise.
func (r *Repository) GetProfile(actor access.Actor) (*models.PersonalProfile, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindPersonalProfile}, access.OpRead).Allowed() {
		return nil, fmt.Errorf("get profile: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	profile, err := r.db.GetProfile()
	if err != nil {
		return nil, classify(err, "get profile")
	}
	return profile, nil
}

func (r *Repository) UpsertProfile(actor access.Actor, req models.UpsertProfileRequest) (*models.PersonalProfile, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindPersonalProfile}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("upsert profile: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	profile := &models.PersonalProfile{
		ID:                   1,
		Bio:                  req.Bio,
		AnosExperiencia:      req.AnosExperiencia,
		ProyectosCompletados: req.ProyectosCompletados,
	}
	if req.FotoPerfil != "" {
		profile.FotoPerfil = sql.NullString{String: req.FotoPerfil, Valid: true}
	}

	upserted, err := r.db.UpsertProfile(profile)
	if err != nil {
		return nil, classify(err, "upsert profile")
	}
	return upserted, nil
}
