package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/imports"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/share"
	"github.com/jonathan/resume-builder/internal/skills"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// stateResponse is the session state plus advisory field violations.
type stateResponse struct {
	session.State
	Violations []validation.Violation `json:"violations"`
}

func (s *Server) stateResponse(state session.State) stateResponse {
	details := state.Document.PersonalDetails
	return stateResponse{
		State: state,
		Violations: validation.CheckDetails(validation.Details{
			Email:    details.Email,
			Website:  details.Website,
			LinkedIn: details.LinkedIn,
			GitHub:   details.GitHub,
		}),
	}
}

// handleGetResume returns the document and every derived view.
func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.stateResponse(s.session.State()))
}

// handleReplaceSection applies a whole-value replacement to one section.
func (s *Server) handleReplaceSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		state session.State
		err   error
	)

	switch scoring.Section(r.PathValue("section")) {
	case scoring.SectionPersonalDetails:
		var details types.PersonalDetails
		if err = json.NewDecoder(r.Body).Decode(&details); err == nil {
			state = s.session.UpdatePersonalDetails(ctx, details)
		}
	case scoring.SectionSummary:
		var req struct {
			Summary string `json:"summary"`
		}
		if err = json.NewDecoder(r.Body).Decode(&req); err == nil {
			state = s.session.UpdateSummary(ctx, req.Summary)
		}
	case scoring.SectionExperience:
		var entries []types.Experience
		if err = json.NewDecoder(r.Body).Decode(&entries); err == nil {
			state = s.session.UpdateExperience(ctx, entries)
		}
	case scoring.SectionEducation:
		var entries []types.Education
		if err = json.NewDecoder(r.Body).Decode(&entries); err == nil {
			state = s.session.UpdateEducation(ctx, entries)
		}
	case scoring.SectionSkills:
		var list []types.Skill
		if err = json.NewDecoder(r.Body).Decode(&list); err == nil {
			state = s.session.UpdateSkills(ctx, list)
		}
	case scoring.SectionProjects:
		var projects []types.Project
		if err = json.NewDecoder(r.Body).Decode(&projects); err == nil {
			state = s.session.UpdateProjects(ctx, projects)
		}
	case scoring.SectionCertifications:
		var certs []types.Certification
		if err = json.NewDecoder(r.Body).Decode(&certs); err == nil {
			state = s.session.UpdateCertifications(ctx, certs)
		}
	case scoring.SectionActivities:
		var activities []types.Activity
		if err = json.NewDecoder(r.Body).Decode(&activities); err == nil {
			state = s.session.UpdateActivities(ctx, activities)
		}
	default:
		s.errorResponse(w, http.StatusNotFound, "unknown section: "+r.PathValue("section"))
		return
	}

	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.stateResponse(state))
}

// handleAddSkill appends one skill, auto-categorized unless an explicit valid
// category is given. Duplicate names are rejected.
func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string              `json:"name"`
		Category types.SkillCategory `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "skill name is required")
		return
	}

	ctx := r.Context()
	if req.Category.Valid() {
		doc := s.session.Document()
		if skills.Contains(doc.Skills, req.Name) {
			s.errorResponse(w, http.StatusConflict, "skill already exists: "+req.Name)
			return
		}
		state := s.session.UpdateSkills(ctx, append(doc.Skills, types.Skill{
			Name:     req.Name,
			Category: req.Category,
		}))
		s.jsonResponse(w, http.StatusCreated, s.stateResponse(state))
		return
	}

	if _, added := s.session.AddSkill(ctx, req.Name); !added {
		s.errorResponse(w, http.StatusConflict, "skill already exists: "+req.Name)
		return
	}
	s.jsonResponse(w, http.StatusCreated, s.stateResponse(s.session.State()))
}

// handleAppendEntry appends one entry to a list section. Skills take the
// dedicated add-skill route with dedupe and auto-categorization.
func (s *Server) handleAppendEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	doc := s.session.Document()

	var (
		state session.State
		err   error
	)
	switch section := scoring.Section(r.PathValue("section")); section {
	case scoring.SectionExperience:
		var entry types.Experience
		if err = json.NewDecoder(r.Body).Decode(&entry); err == nil {
			state = s.session.UpdateExperience(ctx, append(doc.Experience, entry))
		}
	case scoring.SectionEducation:
		var entry types.Education
		if err = json.NewDecoder(r.Body).Decode(&entry); err == nil {
			state = s.session.UpdateEducation(ctx, append(doc.Education, entry))
		}
	case scoring.SectionProjects:
		var entry types.Project
		if err = json.NewDecoder(r.Body).Decode(&entry); err == nil {
			state = s.session.UpdateProjects(ctx, append(doc.Projects, entry))
		}
	case scoring.SectionCertifications:
		var entry types.Certification
		if err = json.NewDecoder(r.Body).Decode(&entry); err == nil {
			state = s.session.UpdateCertifications(ctx, append(doc.Certifications, entry))
		}
	case scoring.SectionActivities:
		var entry types.Activity
		if err = json.NewDecoder(r.Body).Decode(&entry); err == nil {
			state = s.session.UpdateActivities(ctx, append(doc.Activities, entry))
		}
	default:
		s.errorResponse(w, http.StatusNotFound, "unknown list section: "+r.PathValue("section"))
		return
	}

	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, s.stateResponse(state))
}

// handleRemoveEntry deletes one entry from a list section.
func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	section, index, ok := s.listTarget(w, r)
	if !ok {
		return
	}

	removed := s.session.RemoveEntry(r.Context(), section, index)
	s.jsonResponse(w, http.StatusOK, struct {
		Removed bool `json:"removed"`
		stateResponse
	}{removed, s.stateResponse(s.session.State())})
}

// handleMoveEntry reorders one entry within a list section. Boundary moves
// are no-ops, not errors.
func (s *Server) handleMoveEntry(w http.ResponseWriter, r *http.Request) {
	section, index, ok := s.listTarget(w, r)
	if !ok {
		return
	}

	var req struct {
		Direction document.Direction `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !req.Direction.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "direction must be \"up\" or \"down\"")
		return
	}

	moved := s.session.MoveEntry(r.Context(), section, index, req.Direction)
	s.jsonResponse(w, http.StatusOK, struct {
		Moved bool `json:"moved"`
		stateResponse
	}{moved, s.stateResponse(s.session.State())})
}

// listSections names the sections addressable by index.
var listSections = map[scoring.Section]bool{
	scoring.SectionExperience:     true,
	scoring.SectionEducation:      true,
	scoring.SectionSkills:         true,
	scoring.SectionProjects:       true,
	scoring.SectionCertifications: true,
	scoring.SectionActivities:     true,
}

func (s *Server) listTarget(w http.ResponseWriter, r *http.Request) (scoring.Section, int, bool) {
	section := scoring.Section(r.PathValue("section"))
	if !listSections[section] {
		s.errorResponse(w, http.StatusNotFound, "unknown list section: "+r.PathValue("section"))
		return "", 0, false
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid index: "+r.PathValue("index"))
		return "", 0, false
	}
	return section, index, true
}

// handleScore returns the ATS score and its message band.
func (s *Server) handleScore(w http.ResponseWriter, _ *http.Request) {
	doc := s.session.Document()
	score := scoring.ATSScore(doc)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"score":   score,
		"message": scoring.ScoreMessage(score),
	})
}

// handleCompletion returns the per-section completion flags and percentage.
func (s *Server) handleCompletion(w http.ResponseWriter, _ *http.Request) {
	state := s.session.State()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"sections": state.Completion,
		"percent":  state.CompletionPercent,
	})
}

// handleSetTemplate switches the active layout.
func (s *Server) handleSetTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Template types.Template `json:"template"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.session.SetTemplate(r.Context(), req.Template); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.stateResponse(s.session.State()))
}

// handleSetColors replaces the active color scheme.
func (s *Server) handleSetColors(w http.ResponseWriter, r *http.Request) {
	var scheme types.ColorScheme
	if err := json.NewDecoder(r.Body).Decode(&scheme); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	s.session.SetColorScheme(r.Context(), scheme)
	s.jsonResponse(w, http.StatusOK, s.stateResponse(s.session.State()))
}

// handlePreview renders the current document as HTML, through the active
// layout or the one named by the template query parameter.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var (
		html string
		err  error
	)
	if name := r.URL.Query().Get("template"); name != "" {
		var layout rendering.Layout
		layout, err = rendering.ForTemplate(types.Template(name))
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		state := s.session.State()
		html, err = layout.Render(state.Document, state.ColorScheme)
	} else {
		html, err = s.session.RenderHTML()
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// handlePreviewLabels returns the section headings each layout renders for
// the current document. All layouts must surface the same set.
func (s *Server) handlePreviewLabels(w http.ResponseWriter, _ *http.Request) {
	state := s.session.State()

	labels := make(map[types.Template][]string, len(types.Templates))
	for _, layout := range rendering.All() {
		html, err := layout.Render(state.Document, state.ColorScheme)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		names, err := rendering.SectionLabels(html)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		labels[layout.Name()] = names
	}
	s.jsonResponse(w, http.StatusOK, labels)
}

// handleExportPDF renders the active layout and prints it to an A4 PDF.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if !s.session.TryBegin(session.OpExport) {
		s.errorResponse(w, http.StatusConflict, "an export is already in progress")
		return
	}
	defer s.session.End(session.OpExport)

	html, err := s.session.RenderHTML()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	pdf, err := export.PDF(r.Context(), html)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	name := export.FileName(s.session.Document().PersonalDetails.Name)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(pdf)
}

// handleOptimize rewrites one text field through the optimizer and returns
// the suggestion without mutating the document.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if !s.session.TryBegin(session.OpOptimize) {
		s.errorResponse(w, http.StatusConflict, "an optimization is already in progress")
		return
	}
	defer s.session.End(session.OpOptimize)

	ctx := r.Context()
	doc := s.session.Document()

	var (
		optimized string
		err       error
	)
	switch target := r.PathValue("target"); target {
	case "summary":
		optimized, err = s.optimizer.OptimizeSummary(ctx, doc.Summary)
	case "experience":
		var req struct {
			Index int `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if req.Index < 0 || req.Index >= len(doc.Experience) {
			s.errorResponse(w, http.StatusNotFound, "experience index out of range")
			return
		}
		entry := doc.Experience[req.Index]
		optimized, err = s.optimizer.OptimizeExperience(ctx, entry.Description, entry.Position, entry.Company)
	case "project":
		var req struct {
			Index int `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if req.Index < 0 || req.Index >= len(doc.Projects) {
			s.errorResponse(w, http.StatusNotFound, "project index out of range")
			return
		}
		entry := doc.Projects[req.Index]
		optimized, err = s.optimizer.OptimizeProject(ctx, entry.Description, entry.Title, entry.Technologies)
	default:
		s.errorResponse(w, http.StatusNotFound, "unknown optimize target: "+target)
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"optimized": optimized})
}

// handleSuggestSkills proposes skills complementing the current list.
func (s *Server) handleSuggestSkills(w http.ResponseWriter, r *http.Request) {
	doc := s.session.Document()
	names := make([]string, len(doc.Skills))
	for i, skill := range doc.Skills {
		names[i] = skill.Name
	}

	suggestions, err := s.optimizer.SuggestSkills(r.Context(), names)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

// handleImportGitHub imports the user's repositories as project entries,
// merged into the existing list by title.
func (s *Server) handleImportGitHub(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Username == "" {
		req.Username = s.githubUser
	}
	if req.Username == "" {
		s.errorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	if !s.session.TryBegin(session.OpImport) {
		s.errorResponse(w, http.StatusConflict, "an import is already in progress")
		return
	}
	defer s.session.End(session.OpImport)

	ctx := r.Context()
	fetched, err := s.github.FetchProjects(ctx, req.Username)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	existing := s.session.Document().Projects
	merged := imports.Merge(existing, fetched)
	state := s.session.UpdateProjects(ctx, merged)

	s.jsonResponse(w, http.StatusOK, struct {
		Imported int `json:"imported"`
		stateResponse
	}{len(merged) - len(existing), s.stateResponse(state)})
}

// handleCreateShare freezes the current document behind a share link.
func (s *Server) handleCreateShare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		req.Name = "Shared Resume"
	}

	link, err := s.shares.Create(r.Context(), s.session.Snapshot(req.Name))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, link)
}

// handleResolveShare renders the frozen copy behind a share token.
func (s *Server) handleResolveShare(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.shares.Resolve(r.Context(), r.PathValue("token"))
	if err != nil {
		var invalid *share.InvalidTokenError
		if errors.As(err, &invalid) {
			s.errorResponse(w, http.StatusGone, "share link expired or invalid")
			return
		}
		s.storageError(w, err)
		return
	}

	layout, err := rendering.ForTemplate(snapshot.Template)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	html, err := layout.Render(snapshot.Data, snapshot.ColorScheme)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// handleListSnapshots enumerates saved snapshots, newest first.
func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	infos, err := s.session.ListSnapshots(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if infos == nil {
		infos = []types.SnapshotInfo{}
	}
	s.jsonResponse(w, http.StatusOK, infos)
}

// handleSaveSnapshot persists the current session under a fresh id.
func (s *Server) handleSaveSnapshot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		req.Name = "Untitled Resume"
	}

	snapshot, err := s.session.SaveSnapshot(r.Context(), req.Name)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, types.SnapshotInfo{
		ID:   snapshot.ID,
		Name: snapshot.Name,
		Date: snapshot.Date,
	})
}

// handleGetSnapshot returns one saved snapshot in full.
func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	snapshot, err := s.store.Load(r.Context(), id)
	if err != nil {
		s.storageError(w, err)
		return
	}
	if snapshot == nil {
		s.errorResponse(w, http.StatusNotFound, "snapshot not found: "+id)
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}

// handleDeleteSnapshot removes one saved snapshot.
func (s *Server) handleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := s.session.DeleteSnapshot(r.Context(), r.PathValue("id")); err != nil {
		s.storageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleLoadSnapshot replaces the session state from a saved snapshot.
func (s *Server) handleLoadSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := s.session.LoadSnapshot(r.Context(), r.PathValue("id")); err != nil {
		s.storageError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.stateResponse(s.session.State()))
}

// storageError maps store errors onto HTTP statuses.
func (s *Server) storageError(w http.ResponseWriter, err error) {
	var notFound *storage.NotFoundError
	var invalid *storage.InvalidSnapshotError
	switch {
	case errors.As(err, &notFound):
		s.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.As(err, &invalid):
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
