package api

// ArchiveResp summarises one stored archive.
type ArchiveResp struct {
	ID         string `json:"id"`
	Object     string `json:"object"`
	CreatedAt  int64  `json:"created_at"`
	EntryCount int    `json:"entry_count"`
}

// EntryResp describes one embedded file without its payload.
type EntryResp struct {
	Name    string `json:"name"`
	Ext     string `json:"ext"`
	Size    int    `json:"size"`
	Textual bool   `json:"textual"`
}

// EntryListResp wraps the entry listing of an archive.
type EntryListResp struct {
	Object string      `json:"object"`
	Data   []EntryResp `json:"data"`
}

// DeleteResp acknowledges an archive deletion.
type DeleteResp struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// ResponseError is the error envelope payload.
type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
