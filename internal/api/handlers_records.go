package api

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	defaultRecordLimit = 500
	maxRecordLimit     = 5000
)

// handleRecords lists raw records in stream order, optionally filtered by
// ?tag=, paged with ?offset= and ?limit=.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	offset, err := queryInt(q.Get("offset"), 0)
	if err != nil || offset < 0 {
		jsonError(w, "offset must be a non-negative integer", http.StatusBadRequest)
		return
	}
	limit, err := queryInt(q.Get("limit"), defaultRecordLimit)
	if err != nil || limit < 0 || limit > maxRecordLimit {
		jsonError(w, fmt.Sprintf("limit must be between 0 and %d", maxRecordLimit), http.StatusBadRequest)
		return
	}

	tag := q.Get("tag")
	page, total := sess.Data.Records(tag, offset, limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"tag":     tag,
		"total":   total,
		"offset":  offset,
		"records": page,
	})
}

func queryInt(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
