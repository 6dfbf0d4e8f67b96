package memos

import (
	"strings"
	"time"
)

// NamePrefix is the canonical prefix of a memo's opaque id.
const NamePrefix = "memos/"

// Memo is one remote note record as returned by the API.
// Name is globally unique and stable across syncs; it is the basis for
// idempotent local identification.
type Memo struct {
	Name       string     `json:"name"`
	UID        string     `json:"uid"`
	Content    string     `json:"content"`
	Visibility string     `json:"visibility"`
	Pinned     bool       `json:"pinned"`
	CreateTime string     `json:"createTime"`
	UpdateTime string     `json:"updateTime"`
	Resources  []Resource `json:"resources"`
	Tags       []string   `json:"tags"`
}

// ShortID returns the memo name without the "memos/" prefix.
func (m *Memo) ShortID() string {
	return strings.TrimPrefix(m.Name, NamePrefix)
}

// CreatedAt parses the creation timestamp. The zero time is returned
// for an unparseable value; timestamps are used as given, without
// timezone adjustment.
func (m *Memo) CreatedAt() time.Time {
	t, _ := time.Parse(time.RFC3339, m.CreateTime)
	return t
}

// UpdatedAt parses the update timestamp, falling back to CreatedAt.
func (m *Memo) UpdatedAt() time.Time {
	t, err := time.Parse(time.RFC3339, m.UpdateTime)
	if err != nil {
		return m.CreatedAt()
	}
	return t
}

// Resource is a binary attachment owned by its parent memo.
type Resource struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	Type     string `json:"type"`
	// Size arrives as a string of digits in the wire format.
	Size string `json:"size"`
}

// ShortID returns the final path segment of the resource's opaque id.
func (r *Resource) ShortID() string {
	if i := strings.LastIndex(r.Name, "/"); i >= 0 {
		return r.Name[i+1:]
	}
	return r.Name
}

// MemoPage is one page of the list response.
type MemoPage struct {
	Memos         []Memo `json:"memos"`
	NextPageToken string `json:"nextPageToken"`
}
