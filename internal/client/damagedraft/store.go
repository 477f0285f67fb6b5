// Package damagedraft holds damage markers client-side until they are saved
// in a batch. Markers start as local drafts and only become durable rows after
// a successful Save; a failed Save leaves every draft untouched so the caller
// can simply retry.
package damagedraft

import (
	"context"
	"errors"
	"log"
	"strings"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"github.com/google/uuid"
)

var (
	ErrMarkerNotFound = errors.New("marker not found")
	ErrNothingToSave  = errors.New("no unpersisted markers")
)

// BatchCreator persists a batch of drafts. The returned rows preserve
// submission order and echo each input's ClientRef.
type BatchCreator interface {
	CreateDamages(ctx context.Context, damages []usecase.DamageInput) ([]entities.InspectionDamage, error)
}

// Marker is one damage annotation held by the store. ID is a local draft id
// until the marker is persisted, then the server-assigned id.
type Marker struct {
	ID             string
	Zone           string
	CustomPosition string
	Position       *entities.Vec3
	Normal         *entities.Vec3
	DamageType     string
	Severity       string
	Notes          string
	PhotoURL       string
	IsPersisted    bool
}

// Describable reports whether the marker carries a usable location: either a
// recognized zone or a non-empty free-text position. The store itself never
// blocks non-describable markers; the calling workflow decides when to insist.
func (m Marker) Describable() bool {
	return strings.TrimSpace(m.Zone) != "" || strings.TrimSpace(m.CustomPosition) != ""
}

// MarkerPatch updates a subset of a draft's fields. Nil fields are left as-is.
type MarkerPatch struct {
	Zone           *string
	CustomPosition *string
	Position       *entities.Vec3
	Normal         *entities.Vec3
	DamageType     *string
	Severity       *string
	Notes          *string
	PhotoURL       *string
}

// Store is a single-writer draft collection for one inspection. It is meant
// to live on the UI side of the app; methods are not safe for concurrent use.
type Store struct {
	creator    BatchCreator
	markers    []Marker
	selectedID string
}

func NewStore(creator BatchCreator) *Store {
	return &Store{creator: creator}
}

// Add registers a new draft. A blank ID gets a generated draft id; the marker
// always enters as unpersisted regardless of the input flag.
func (s *Store) Add(m Marker) Marker {
	if strings.TrimSpace(m.ID) == "" {
		m.ID = "draft-" + uuid.NewString()
	}
	m.IsPersisted = false
	s.markers = append(s.markers, m)
	return m
}

func (s *Store) Update(id string, patch MarkerPatch) (Marker, error) {
	for i := range s.markers {
		if s.markers[i].ID != id {
			continue
		}
		m := &s.markers[i]
		if patch.Zone != nil {
			m.Zone = *patch.Zone
		}
		if patch.CustomPosition != nil {
			m.CustomPosition = *patch.CustomPosition
		}
		if patch.Position != nil {
			m.Position = patch.Position
		}
		if patch.Normal != nil {
			m.Normal = patch.Normal
		}
		if patch.DamageType != nil {
			m.DamageType = *patch.DamageType
		}
		if patch.Severity != nil {
			m.Severity = *patch.Severity
		}
		if patch.Notes != nil {
			m.Notes = *patch.Notes
		}
		if patch.PhotoURL != nil {
			m.PhotoURL = *patch.PhotoURL
		}
		return *m, nil
	}
	return Marker{}, ErrMarkerNotFound
}

func (s *Store) Remove(id string) error {
	for i := range s.markers {
		if s.markers[i].ID == id {
			s.markers = append(s.markers[:i], s.markers[i+1:]...)
			if s.selectedID == id {
				s.selectedID = ""
			}
			return nil
		}
	}
	return ErrMarkerNotFound
}

// SelectOne marks a single marker as selected; an empty id clears the
// selection.
func (s *Store) SelectOne(id string) error {
	if id == "" {
		s.selectedID = ""
		return nil
	}
	for i := range s.markers {
		if s.markers[i].ID == id {
			s.selectedID = id
			return nil
		}
	}
	return ErrMarkerNotFound
}

func (s *Store) Selected() (Marker, bool) {
	if s.selectedID == "" {
		return Marker{}, false
	}
	for i := range s.markers {
		if s.markers[i].ID == s.selectedID {
			return s.markers[i], true
		}
	}
	return Marker{}, false
}

// Hydrate resets the store to the given server rows, all persisted. Local
// drafts and the selection are dropped; call it on screen load, before edits.
func (s *Store) Hydrate(rows []entities.InspectionDamage) {
	s.markers = s.markers[:0]
	s.selectedID = ""
	for _, d := range rows {
		s.markers = append(s.markers, Marker{
			ID:             d.ID,
			Zone:           d.Zone,
			CustomPosition: d.CustomPosition,
			Position:       d.Position,
			Normal:         d.Normal,
			DamageType:     d.DamageType,
			Severity:       d.Severity,
			Notes:          d.Notes,
			PhotoURL:       d.PhotoURL,
			IsPersisted:    true,
		})
	}
}

// Clear drops all local state, e.g. on navigation away.
func (s *Store) Clear() {
	s.markers = nil
	s.selectedID = ""
}

// IsDirty reports whether any marker is still unpersisted.
func (s *Store) IsDirty() bool {
	for i := range s.markers {
		if !s.markers[i].IsPersisted {
			return true
		}
	}
	return false
}

// Markers returns a copy of all markers in insertion order.
func (s *Store) Markers() []Marker {
	out := make([]Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

// Save sends only the unpersisted subset to the batch endpoint. On success,
// exactly that subset flips to persisted, each draft adopting the server id
// matched by its echoed client_ref (submission index as fallback). On failure
// nothing flips, so a retry resends the same drafts.
func (s *Store) Save(ctx context.Context) error {
	drafts := make([]*Marker, 0)
	inputs := make([]usecase.DamageInput, 0)
	for i := range s.markers {
		m := &s.markers[i]
		if m.IsPersisted {
			continue
		}
		drafts = append(drafts, m)
		inputs = append(inputs, usecase.DamageInput{
			ClientRef:      m.ID,
			Zone:           m.Zone,
			CustomPosition: m.CustomPosition,
			Position:       m.Position,
			Normal:         m.Normal,
			DamageType:     m.DamageType,
			Severity:       m.Severity,
			Notes:          m.Notes,
			PhotoURL:       m.PhotoURL,
		})
	}
	if len(drafts) == 0 {
		return ErrNothingToSave
	}

	created, err := s.creator.CreateDamages(ctx, inputs)
	if err != nil {
		log.Printf("[damagedraft][store] save failed count=%d err=%v", len(drafts), err)
		return err
	}

	byRef := make(map[string]entities.InspectionDamage, len(created))
	for _, row := range created {
		if row.ClientRef != "" {
			byRef[row.ClientRef] = row
		}
	}
	for i, m := range drafts {
		row, ok := byRef[m.ID]
		if !ok && i < len(created) {
			row = created[i]
		}
		if row.ID == "" {
			continue
		}
		oldID := m.ID
		m.ID = row.ID
		m.IsPersisted = true
		if s.selectedID == oldID {
			s.selectedID = row.ID
		}
	}
	log.Printf("[damagedraft][store] save success count=%d", len(drafts))
	return nil
}
