// Package api exposes DOCU archives over a small REST surface: upload an
// archive, list its entries and fetch their contents.
package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/docuar/pkg/docu"
)

// maxArchiveBytes caps uploaded archive bodies.
const maxArchiveBytes = 64 << 20 // 64 MiB

type Server struct {
	store *ArchiveStore
	clock func() time.Time
}

func NewServer(store *ArchiveStore) *Server {
	if store == nil {
		store = NewArchiveStore()
	}
	return &Server{
		store: store,
		clock: time.Now,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/archives", s.handleCreateArchive)
	e.GET("/v1/archives/:id", s.handleGetArchive)
	e.DELETE("/v1/archives/:id", s.handleDeleteArchive)
	e.GET("/v1/archives/:id/entries", s.handleListEntries)
	e.GET("/v1/archives/:id/entries/:name", s.handleGetEntry)
}

func (s *Server) handleCreateArchive(c *echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxArchiveBytes+1))
	if err != nil {
		return writeBadRequest(c, "read request body: "+err.Error())
	}
	if len(body) > maxArchiveBytes {
		return writeError(c, http.StatusRequestEntityTooLarge, "invalid_request_error", "archive exceeds size limit")
	}

	records, err := docu.Scan(body)
	if err != nil {
		switch {
		case errors.Is(err, docu.ErrEmptyArchive):
			return writeBadRequest(c, "empty archive body")
		case errors.Is(err, docu.ErrNotArchive), errors.Is(err, docu.ErrCorruptArchive):
			return writeBadRequest(c, err.Error())
		default:
			return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
		}
	}

	rec := s.store.Create(records, s.clock())
	return writeJSON(c, http.StatusOK, archiveResp(rec))
}

func (s *Server) handleGetArchive(c *echo.Context) error {
	rec, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "archive not found")
	}
	return writeJSON(c, http.StatusOK, archiveResp(rec))
}

func (s *Server) handleDeleteArchive(c *echo.Context) error {
	id := c.Param("id")
	if !s.store.Delete(id) {
		return writeNotFound(c, "archive not found")
	}
	return writeJSON(c, http.StatusOK, DeleteResp{
		ID:      id,
		Object:  "archive",
		Deleted: true,
	})
}

func (s *Server) handleListEntries(c *echo.Context) error {
	rec, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "archive not found")
	}
	entries := make([]EntryResp, 0, len(rec.Records))
	for _, r := range rec.Records {
		entries = append(entries, EntryResp{
			Name:    r.Name,
			Ext:     r.Ext,
			Size:    r.Size(),
			Textual: r.Textual(),
		})
	}
	return writeJSON(c, http.StatusOK, EntryListResp{Object: "list", Data: entries})
}

func (s *Server) handleGetEntry(c *echo.Context) error {
	rec, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "archive not found")
	}
	name := c.Param("name")
	for _, r := range rec.Records {
		if r.Name != name {
			continue
		}
		contentType := echo.MIMEOctetStream
		if r.Textual() {
			contentType = echo.MIMETextPlainCharsetUTF8
		}
		return c.Blob(http.StatusOK, contentType, r.Data)
	}
	return writeNotFound(c, "entry not found")
}

func archiveResp(rec *archiveRecord) ArchiveResp {
	return ArchiveResp{
		ID:         rec.ID,
		Object:     "archive",
		CreatedAt:  rec.Created.Unix(),
		EntryCount: len(rec.Records),
	}
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeNotFound(c *echo.Context, msg string) error {
	return writeError(c, http.StatusNotFound, "not_found_error", msg)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return writeJSON(c, status, map[string]any{
		"error": ResponseError{
			Message: msg,
			Type:    errType,
		},
	})
}

func writeJSON(c *echo.Context, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(status, echo.MIMEApplicationJSON, b)
}
