package types

import "time"

// LastSessionKey is the reserved storage key holding the auto-saved editing
// session. Listings of saved resumes must exclude it.
const LastSessionKey = "last-resume"

// ShareKeyPrefix marks storage keys holding frozen copies behind share links.
// Listings of saved resumes must exclude them.
const ShareKeyPrefix = "share-"

// Snapshot is a persisted, named copy of a complete document together with the
// layout and color choices it was edited under.
type Snapshot struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Date        time.Time      `json:"date"`
	Data        ResumeDocument `json:"data"`
	Template    Template       `json:"template"`
	ColorScheme ColorScheme    `json:"color_scheme"`
}

// SnapshotInfo is a lightweight view of a snapshot for listing.
type SnapshotInfo struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// Clone returns an independent deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Data = s.Data.Clone()
	return out
}
