package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"cupid_fragments/internal/adapters/observability"
	"cupid_fragments/internal/amenities"
	"cupid_fragments/internal/domain"
	"cupid_fragments/internal/profileheader"
	"cupid_fragments/internal/style"
	"cupid_fragments/internal/view"
	"cupid_fragments/internal/view/htmlrender"
)

type AmenitiesQuery struct {
	Columns  style.Columns
	ListType style.ListType
	QAHook   bool
}

type HeaderQuery struct {
	Alignment      style.Alignment
	InterestsLimit *int
}

// FragmentService renders stored properties into HTML fragments,
// read-through cached per variant.
type FragmentService struct {
	repo     domain.PropertyRepository
	cache    domain.Cache
	cacheTTL time.Duration
	list     *amenities.Renderer
	header   *profileheader.Composer
}

func NewFragmentService(r domain.PropertyRepository, c domain.Cache, ttl time.Duration,
	list *amenities.Renderer, header *profileheader.Composer) *FragmentService {
	return &FragmentService{repo: r, cache: c, cacheTTL: ttl, list: list, header: header}
}

// CachePrefix is the key prefix every cached fragment of a property lives under.
func CachePrefix(id int64) string { return fmt.Sprintf("frag:%d:", id) }

func (s *FragmentService) Amenities(ctx context.Context, id int64, q AmenitiesQuery) (domain.Fragment, error) {
	key := fmt.Sprintf("%samenities:%d:%s:%t", CachePrefix(id), q.Columns, q.ListType, q.QAHook)
	return s.cached(ctx, key, func() (domain.Fragment, error) {
		p, err := s.repo.GetProperty(ctx, id)
		if err != nil {
			return domain.Fragment{}, err
		}
		props := amenities.Props{Columns: q.Columns, ListType: q.ListType, QAHook: q.QAHook}
		if q.ListType == style.ListGrouped {
			props.Groups = groupsFrom(p.AmenityGroups)
		} else {
			props.Items = escapeAll(p.Amenities)
		}
		return s.RenderAmenities(props)
	})
}

func (s *FragmentService) Header(ctx context.Context, id int64, q HeaderQuery) (domain.Fragment, error) {
	limit := "all"
	if q.InterestsLimit != nil {
		limit = fmt.Sprint(*q.InterestsLimit)
	}
	key := fmt.Sprintf("%sheader:%s:%s", CachePrefix(id), q.Alignment, limit)
	return s.cached(ctx, key, func() (domain.Fragment, error) {
		p, err := s.repo.GetProperty(ctx, id)
		if err != nil {
			return domain.Fragment{}, err
		}
		return s.RenderHeader(profileheader.Profile{
			Name:           p.Name,
			Intro:          p.Intro,
			Website:        p.Website,
			AvatarSrc:      p.AvatarSrc,
			Location:       p.Location(),
			Interests:      p.Interests,
			InterestsLimit: q.InterestsLimit,
			Alignment:      q.Alignment,
		})
	})
}

// RenderAmenities renders caller-supplied props without touching storage.
func (s *FragmentService) RenderAmenities(p amenities.Props) (domain.Fragment, error) {
	return s.render("amenities", func() (*view.Node, error) { return s.list.Render(p) })
}

// RenderHeader renders a caller-supplied profile without touching storage.
func (s *FragmentService) RenderHeader(p profileheader.Profile) (domain.Fragment, error) {
	return s.render("header", func() (*view.Node, error) { return s.header.Compose(p) })
}

func (s *FragmentService) render(kind string, build func() (*view.Node, error)) (domain.Fragment, error) {
	start := time.Now()
	root, err := build()
	var out string
	if err == nil {
		out, err = htmlrender.String(root)
	}
	observability.ObserveRender(kind, time.Since(start), reason(err), err)
	if err != nil {
		return domain.Fragment{}, err
	}
	return domain.Fragment{HTML: out, ETag: etag(out)}, nil
}

func (s *FragmentService) cached(ctx context.Context, key string, load func() (domain.Fragment, error)) (domain.Fragment, error) {
	var f domain.Fragment
	if ok, err := s.cache.Get(ctx, key, &f); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("fragment cache read failed")
	} else if ok {
		return f, nil
	}

	f, err := load()
	if err != nil {
		return domain.Fragment{}, err
	}
	if err := s.cache.Set(ctx, key, f, int(s.cacheTTL.Seconds())); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("fragment cache write failed")
	}
	return f, nil
}

func reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, style.ErrInvalidVariant):
		return "invalid_variant"
	case errors.Is(err, amenities.ErrMixedItems):
		return "mixed_items"
	case errors.Is(err, profileheader.ErrNameRequired):
		return "name_required"
	default:
		return ""
	}
}

func etag(body string) string {
	sum := sha1.Sum([]byte(body))
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}

// escapeAll turns stored plain text into markup safe to insert verbatim.
func escapeAll(items []string) []view.Markup {
	out := make([]view.Markup, len(items))
	for i, it := range items {
		out[i] = view.Markup(html.EscapeString(it))
	}
	return out
}

func groupsFrom(gs []domain.AmenityGroup) []amenities.Group {
	out := make([]amenities.Group, len(gs))
	for i, g := range gs {
		out[i] = amenities.Group{Title: g.Title, Items: escapeAll(g.Items), Capitalize: g.Capitalize}
	}
	return out
}
