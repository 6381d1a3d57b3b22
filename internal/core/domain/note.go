package domain

import (
	"encoding/json"
	"fmt"
)

// NoteStatus marks whether a note is live or archived.
type NoteStatus string

const (
	NoteActive   NoteStatus = "ACTIVE"
	NoteArchived NoteStatus = "ARCHIVED"
)

// BlockType tags the content variant of a note block.
type BlockType string

const (
	BlockText      BlockType = "TEXT"
	BlockChecklist BlockType = "CHECKLIST"
	BlockTable     BlockType = "TABLE"
)

// BlockContent is the tagged union of block payloads. Exactly one concrete
// type exists per BlockType; consumers switch exhaustively.
type BlockContent interface {
	blockContent()
}

// TextContent is the payload of a TEXT block.
type TextContent struct {
	Text string `json:"text"`
}

// ChecklistItem is one entry of a CHECKLIST block.
type ChecklistItem struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// ChecklistContent is the payload of a CHECKLIST block.
type ChecklistContent struct {
	Items []ChecklistItem `json:"items"`
}

// TableContent is the payload of a TABLE block.
type TableContent struct {
	Rows [][]string `json:"rows"`
}

func (TextContent) blockContent()      {}
func (ChecklistContent) blockContent() {}
func (TableContent) blockContent()     {}

// NoteBlock is one ordered content block of a note. Position is the 0-based
// order index and is significant.
type NoteBlock struct {
	BlockID  string       `json:"blockID"`
	NoteID   string       `json:"noteID"`
	Type     BlockType    `json:"type"`
	Content  BlockContent `json:"content"`
	Position int          `json:"order"`
}

// Note is a block-structured document with free-form tags.
type Note struct {
	NoteID  string     `json:"noteID"`
	OwnerID string     `json:"ownerID"`
	Title   string     `json:"title"`
	Tags    []string   `json:"tags"`
	Status  NoteStatus `json:"status"`
	AuditFields
	Blocks []NoteBlock `json:"blocks"`
}

// ParseBlockContent decodes raw JSON into the content variant for the given
// block type. Unknown types are rejected rather than passed through.
func ParseBlockContent(blockType BlockType, raw json.RawMessage) (BlockContent, error) {
	switch blockType {
	case BlockText:
		var c TextContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid TEXT block content: %w", err)
		}
		return c, nil
	case BlockChecklist:
		var c ChecklistContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid CHECKLIST block content: %w", err)
		}
		return c, nil
	case BlockTable:
		var c TableContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid TABLE block content: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown block type %q", blockType)
	}
}

// MarshalBlockContent encodes a content variant for jsonb storage.
func MarshalBlockContent(content BlockContent) ([]byte, error) {
	if content == nil {
		return nil, fmt.Errorf("block content must not be nil")
	}
	return json.Marshal(content)
}
