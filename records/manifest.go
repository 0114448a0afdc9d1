package records

import (
	"encoding/json"

	"github.com/aviary-tools/aviary/codec"
)

// Manifest is the archive's table of contents (data/manifest.js). Unlike
// the other members it holds a single object rather than a record list.
type Manifest struct {
	UserInfo    UserInfo        `json:"userInfo"`
	ArchiveInfo ArchiveInfo     `json:"archiveInfo"`
	ReadmeInfo  ReadmeInfo      `json:"readmeInfo"`
	DataTypes   json.RawMessage `json:"dataTypes"`
}

// UserInfo identifies the archive owner.
type UserInfo struct {
	AccountID   string `json:"accountId"`
	UserName    string `json:"userName"`
	DisplayName string `json:"displayName"`
}

// ArchiveInfo describes the export itself. Both sizes are number-like
// strings in the source text.
type ArchiveInfo struct {
	SizeBytes        codec.NumberString `json:"sizeBytes"`
	GenerationDate   codec.Timestamp    `json:"generationDate"`
	IsPartialArchive bool               `json:"isPartialArchive"`
	MaxPartSizeBytes codec.NumberString `json:"maxPartSizeBytes"`
}

// ReadmeInfo points at the bundled readme.
type ReadmeInfo struct {
	FileName  string `json:"fileName"`
	Directory string `json:"directory"`
	Name      string `json:"name"`
}
