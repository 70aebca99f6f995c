package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"cupid_fragments/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// valJSON marshals v, storing NULL for empty slices.
func valJSON[T any](v []T) (any, error) {
	if len(v) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertProperty(ctx context.Context, p domain.Property) error {
	interests, err := valJSON(p.Interests)
	if err != nil {
		return fmt.Errorf("marshal interests: %w", err)
	}
	amen, err := valJSON(p.Amenities)
	if err != nil {
		return fmt.Errorf("marshal amenities: %w", err)
	}
	groups, err := valJSON(p.AmenityGroups)
	if err != nil {
		return fmt.Errorf("marshal amenity groups: %w", err)
	}
	var raw any
	if len(p.RawJSON) > 0 {
		raw = string(p.RawJSON)
	}

	_, err = r.db.ExecContext(ctx, upsertPropertySQL,
		p.ID,
		valStr(p.Name),
		valStr(p.Intro),
		valStr(p.Website),
		valStr(p.AvatarSrc),
		valStr(p.City),
		valStr(p.Country),
		interests,
		amen,
		groups,
		raw,
	)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, id int64, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, id, status, reason)
	return err
}

func (r *Repo) GetProperty(ctx context.Context, id int64) (domain.Property, error) {
	row := r.db.QueryRowContext(ctx, getPropertySQL, id)

	var p domain.Property
	var interests, amen, groups []byte
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Intro,
		&p.Website,
		&p.AvatarSrc,
		&p.City,
		&p.Country,
		&interests,
		&amen,
		&groups,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Property{}, domain.ErrNotFound
		}
		return domain.Property{}, err
	}

	// NULL columns scan as nil and leave the slices empty
	for _, c := range []struct {
		b   []byte
		dst any
	}{
		{interests, &p.Interests},
		{amen, &p.Amenities},
		{groups, &p.AmenityGroups},
	} {
		if len(c.b) == 0 {
			continue
		}
		if err := json.Unmarshal(c.b, c.dst); err != nil {
			return domain.Property{}, fmt.Errorf("decode property %d: %w", id, err)
		}
	}
	return p, nil
}
