// Package session owns the state of one editing session: the document model,
// the selected layout and colors, the completion tracker, and the persistence
// adapter. Every accepted mutation recomputes the derived views and autosaves
// the whole session under a reserved key.
package session

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/skills"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// Async operation names used for in-progress flags. At most one run of each
// operation is active at a time.
const (
	OpOptimize = "optimize"
	OpImport   = "import"
	OpExport   = "export"
)

// Session serializes all access to the document model and keeps the derived
// views in lockstep with it. Safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	model    *document.Model
	tracker  *scoring.Tracker
	template types.Template
	colors   types.ColorScheme
	store    storage.Store
	busy     map[string]bool

	now   func() time.Time
	newID func() string
}

// State is the full read view of a session: the document plus everything
// derived from it.
type State struct {
	Document          types.ResumeDocument     `json:"document"`
	Template          types.Template           `json:"template"`
	ColorScheme       types.ColorScheme        `json:"color_scheme"`
	Completion        map[scoring.Section]bool `json:"completion"`
	CompletionPercent float64                  `json:"completion_percent"`
	ATSScore          int                      `json:"ats_score"`
	ScoreMessage      string                   `json:"score_message"`
	Revision          uint64                   `json:"revision"`
}

// New creates a session over the given store with the all-empty default
// document, the first layout, and the default color scheme.
func New(store storage.Store) *Session {
	return &Session{
		model:    document.New(),
		tracker:  scoring.NewTracker(),
		template: types.TemplateCleanMinimalist,
		colors:   types.DefaultColorScheme(),
		store:    store,
		busy:     make(map[string]bool),
		now:      time.Now,
		newID:    func() string { return "resume-" + uuid.NewString() },
	}
}

// RestoreLast rehydrates the session from the reserved auto-save key. Reports
// whether a previous session was found; an absent key leaves the defaults in
// place.
func (s *Session) RestoreLast(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.store.Load(ctx, types.LastSessionKey)
	if err != nil {
		return false, fmt.Errorf("failed to restore last session: %w", err)
	}
	if snapshot == nil {
		return false, nil
	}
	s.applySnapshot(*snapshot)
	return true, nil
}

// State returns the current document and every derived view.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Document returns an independent copy of the current document.
func (s *Session) Document() types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Document()
}

// UpdatePersonalDetails replaces the personal details section.
func (s *Session) UpdatePersonalDetails(ctx context.Context, details types.PersonalDetails) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.SetPersonalDetails(details)
	return s.commitLocked(ctx, scoring.SectionPersonalDetails)
}

// UpdateSummary replaces the summary. Input beyond the hard cap is truncated
// by the model.
func (s *Session) UpdateSummary(ctx context.Context, summary string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.SetSummary(summary)
	return s.commitLocked(ctx, scoring.SectionSummary)
}

// UpdateExperience replaces the full experience list.
func (s *Session) UpdateExperience(ctx context.Context, entries []types.Experience) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.SetExperience(entries)
	return s.commitLocked(ctx, scoring.SectionExperience)
}

// UpdateEducation replaces the full education list.
func (s *Session) UpdateEducation(ctx context.Context, entries []types.Education) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.SetEducation(entries)
	return s.commitLocked(ctx, scoring.SectionEducation)
}

// UpdateSkills replaces the full skills list.
func (s *Session) UpdateSkills(ctx context.Context, list []types.Skill) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.SetSkills(list)
	return s.commitLocked(ctx, scoring.SectionSkills)
}

// UpdateProjects replaces the full projects list.
func (s *Session) UpdateProjects(ctx context.Context, projects []types.Project) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.SetProjects(projects)
	return s.commitLocked(ctx, scoring.SectionProjects)
}

// UpdateCertifications replaces the full certifications list.
func (s *Session) UpdateCertifications(ctx context.Context, certs []types.Certification) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.SetCertifications(certs)
	return s.commitLocked(ctx, scoring.SectionCertifications)
}

// UpdateActivities replaces the full activities list.
func (s *Session) UpdateActivities(ctx context.Context, activities []types.Activity) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.SetActivities(activities)
	return s.commitLocked(ctx, scoring.SectionActivities)
}

// AddSkill appends a skill under its auto-detected category. A name already
// present, compared case-insensitively, is rejected and reports false.
func (s *Session) AddSkill(ctx context.Context, name string) (types.Skill, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" || s.model.HasSkill(name) {
		return types.Skill{}, false
	}
	skill := types.Skill{Name: name, Category: skills.Categorize(name)}
	doc := s.model.Document()
	s.model.SetSkills(append(doc.Skills, skill))
	s.commitLocked(ctx, scoring.SectionSkills)
	return skill, true
}

// MoveEntry exchanges the entry at index with its neighbor in the requested
// direction within the named section's list. Boundary and out-of-range moves
// are no-ops; it reports whether the list changed.
func (s *Session) MoveEntry(ctx context.Context, section scoring.Section, index int, dir document.Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.model.Document()
	moved := false
	switch section {
	case scoring.SectionExperience:
		if moved = document.Move(doc.Experience, index, dir); moved {
			s.model.SetExperience(doc.Experience)
		}
	case scoring.SectionEducation:
		if moved = document.Move(doc.Education, index, dir); moved {
			s.model.SetEducation(doc.Education)
		}
	case scoring.SectionSkills:
		if moved = document.Move(doc.Skills, index, dir); moved {
			s.model.SetSkills(doc.Skills)
		}
	case scoring.SectionProjects:
		if moved = document.Move(doc.Projects, index, dir); moved {
			s.model.SetProjects(doc.Projects)
		}
	case scoring.SectionCertifications:
		if moved = document.Move(doc.Certifications, index, dir); moved {
			s.model.SetCertifications(doc.Certifications)
		}
	case scoring.SectionActivities:
		if moved = document.Move(doc.Activities, index, dir); moved {
			s.model.SetActivities(doc.Activities)
		}
	}
	if moved {
		s.commitLocked(ctx, section)
	}
	return moved
}

// RemoveEntry deletes the entry at index from the named section's list. An
// out-of-range index is a no-op; it reports whether the list changed.
func (s *Session) RemoveEntry(ctx context.Context, section scoring.Section, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.model.Document()
	removed := false
	switch section {
	case scoring.SectionExperience:
		if index >= 0 && index < len(doc.Experience) {
			s.model.SetExperience(document.RemoveAt(doc.Experience, index))
			removed = true
		}
	case scoring.SectionEducation:
		if index >= 0 && index < len(doc.Education) {
			s.model.SetEducation(document.RemoveAt(doc.Education, index))
			removed = true
		}
	case scoring.SectionSkills:
		if index >= 0 && index < len(doc.Skills) {
			s.model.SetSkills(document.RemoveAt(doc.Skills, index))
			removed = true
		}
	case scoring.SectionProjects:
		if index >= 0 && index < len(doc.Projects) {
			s.model.SetProjects(document.RemoveAt(doc.Projects, index))
			removed = true
		}
	case scoring.SectionCertifications:
		if index >= 0 && index < len(doc.Certifications) {
			s.model.SetCertifications(document.RemoveAt(doc.Certifications, index))
			removed = true
		}
	case scoring.SectionActivities:
		if index >= 0 && index < len(doc.Activities) {
			s.model.SetActivities(document.RemoveAt(doc.Activities, index))
			removed = true
		}
	}
	if removed {
		s.commitLocked(ctx, section)
	}
	return removed
}

// SetTemplate switches the active layout.
func (s *Session) SetTemplate(ctx context.Context, name types.Template) error {
	if !name.Valid() {
		return &rendering.UnknownLayoutError{Name: string(name)}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = name
	s.autosaveLocked(ctx)
	return nil
}

// SetColorScheme replaces the active color scheme.
func (s *Session) SetColorScheme(ctx context.Context, scheme types.ColorScheme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colors = scheme
	s.autosaveLocked(ctx)
}

// RenderHTML renders the current document through the active layout.
func (s *Session) RenderHTML() (string, error) {
	s.mu.Lock()
	doc := s.model.Document()
	name := s.template
	colors := s.colors
	s.mu.Unlock()

	layout, err := rendering.ForTemplate(name)
	if err != nil {
		return "", err
	}
	return layout.Render(doc, colors)
}

// Snapshot returns the current session as an unsaved snapshot value, e.g. for
// freezing behind a share link.
func (s *Session) Snapshot(name string) types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.snapshotLocked()
	snapshot.Name = name
	return snapshot
}

// SaveSnapshot persists the current session under a fresh id.
func (s *Session) SaveSnapshot(ctx context.Context, name string) (types.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshotLocked()
	snapshot.ID = s.newID()
	snapshot.Name = name
	if err := s.store.Save(ctx, snapshot.ID, snapshot); err != nil {
		return types.Snapshot{}, fmt.Errorf("failed to save snapshot: %w", err)
	}
	return snapshot, nil
}

// LoadSnapshot replaces the whole session state from a saved snapshot.
func (s *Session) LoadSnapshot(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.store.Load(ctx, id)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return &storage.NotFoundError{Key: id}
	}
	s.applySnapshot(*snapshot)
	s.autosaveLocked(ctx)
	return nil
}

// DeleteSnapshot removes a saved snapshot.
func (s *Session) DeleteSnapshot(ctx context.Context, id string) error {
	return s.store.Remove(ctx, id)
}

// ListSnapshots enumerates saved snapshots, newest first.
func (s *Session) ListSnapshots(ctx context.Context) ([]types.SnapshotInfo, error) {
	return s.store.ListAll(ctx)
}

// Reset discards the session back to the all-empty defaults.
func (s *Session) Reset(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.model = document.New()
	s.tracker.Reset()
	s.template = types.TemplateCleanMinimalist
	s.colors = types.DefaultColorScheme()
	s.autosaveLocked(ctx)
	return s.stateLocked()
}

// TryBegin claims the in-progress flag for an async operation. Reports false
// when a run of the same operation is already active.
func (s *Session) TryBegin(op string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[op] {
		return false
	}
	s.busy[op] = true
	return true
}

// End releases the in-progress flag for an async operation.
func (s *Session) End(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, op)
}

// InProgress reports whether an async operation is currently running.
func (s *Session) InProgress(op string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy[op]
}

func (s *Session) commitLocked(ctx context.Context, section scoring.Section) State {
	s.tracker.Mark(section, s.model.Document())
	s.autosaveLocked(ctx)
	return s.stateLocked()
}

// autosaveLocked persists the session under the reserved key. Failures are
// logged and otherwise ignored so editing never blocks on storage.
func (s *Session) autosaveLocked(ctx context.Context) {
	snapshot := s.snapshotLocked()
	snapshot.ID = types.LastSessionKey
	snapshot.Name = "Autosaved session"
	if err := s.store.Save(ctx, types.LastSessionKey, snapshot); err != nil {
		log.Printf("Autosave failed: %v", err)
	}
}

func (s *Session) snapshotLocked() types.Snapshot {
	return types.Snapshot{
		Date:        s.now(),
		Data:        s.model.Document(),
		Template:    s.template,
		ColorScheme: s.colors,
	}
}

func (s *Session) applySnapshot(snapshot types.Snapshot) {
	s.model.Replace(snapshot.Data)
	if snapshot.Template.Valid() {
		s.template = snapshot.Template
	}
	s.colors = snapshot.ColorScheme
	s.tracker.MarkAll(s.model.Document())
}

func (s *Session) stateLocked() State {
	doc := s.model.Document()
	score := scoring.ATSScore(doc)
	return State{
		Document:          doc,
		Template:          s.template,
		ColorScheme:       s.colors,
		Completion:        s.tracker.Status(),
		CompletionPercent: s.tracker.Percent(),
		ATSScore:          score,
		ScoreMessage:      scoring.ScoreMessage(score),
		Revision:          s.model.Revision(),
	}
}
