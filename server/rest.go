package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"feedwatch/pkg/domain"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listFeedsHandler returns all feeds, or active ones only with ?active=true
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	feeds, err := s.db.GetFeeds(r.Context(), activeOnly)
	if err != nil {
		lgr.Printf("[ERROR] failed to get feeds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"feeds": feeds, "count": len(feeds)})
}

// createFeedRequest is the body of POST /feeds
type createFeedRequest struct {
	URL     string          `json:"url"`
	GitHub  *domain.RepoRef `json:"github,omitempty"`
	Contact *domain.Contact `json:"contact,omitempty"`
}

// createFeedHandler registers a new feed for monitoring
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if req.URL == "" {
		renderError(w, r, fmt.Errorf("url is required"), http.StatusBadRequest)
		return
	}
	if u, err := url.Parse(req.URL); err != nil || u.Scheme == "" || u.Host == "" {
		renderError(w, r, fmt.Errorf("invalid feed URL"), http.StatusBadRequest)
		return
	}

	if existing, err := s.db.GetFeedByURL(ctx, req.URL); err == nil && existing != nil {
		renderError(w, r, fmt.Errorf("feed already registered"), http.StatusConflict)
		return
	}

	feed := domain.NewFeedSource(req.URL)
	feed.GitHubRepo = req.GitHub
	feed.Contact = req.Contact

	if err := s.db.CreateFeed(ctx, &feed); err != nil {
		lgr.Printf("[ERROR] failed to create feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	lgr.Printf("[INFO] registered feed %s", feed.URL)
	renderJSON(w, r, http.StatusCreated, feed)
}

// getFeedHandler returns a single feed by ID
func (s *Server) getFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := feedID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	feed, err := s.db.GetFeed(r.Context(), id)
	if err != nil {
		renderError(w, r, fmt.Errorf("feed not found"), http.StatusNotFound)
		return
	}

	renderJSON(w, r, http.StatusOK, feed)
}

// feedHealthHandler returns recent health checks for a feed, newest first
func (s *Server) feedHealthHandler(w http.ResponseWriter, r *http.Request) {
	id, err := feedID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	checks, err := s.db.GetRecentHealth(r.Context(), id, limitParam(r, 20))
	if err != nil {
		lgr.Printf("[ERROR] failed to get health checks: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"feed_id": id, "checks": checks})
}

// feedOutreachHandler returns the outreach audit log for a feed, newest first
func (s *Server) feedOutreachHandler(w http.ResponseWriter, r *http.Request) {
	id, err := feedID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	recs, err := s.db.GetOutreachByFeed(r.Context(), id, limitParam(r, 50))
	if err != nil {
		lgr.Printf("[ERROR] failed to get outreach history: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"feed_id": id, "outreach": recs})
}

// checkFeedHandler triggers a full check-and-notify pass for one feed
func (s *Server) checkFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := feedID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.scheduler.CheckFeedNow(r.Context(), id); err != nil {
		lgr.Printf("[ERROR] on-demand check failed for feed %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"feed_id": id, "status": "checked"})
}

// optOutRequest is the body of POST /feeds/{id}/optout
type optOutRequest struct {
	Reason string `json:"reason"`
}

// optOutHandler records an owner's request to stop monitoring and outreach
func (s *Server) optOutHandler(w http.ResponseWriter, r *http.Request) {
	id, err := feedID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req optOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Reason == "" {
		req.Reason = "owner request"
	}

	if err := s.db.SetOptOut(r.Context(), id, req.Reason); err != nil {
		lgr.Printf("[ERROR] failed to record opt-out for feed %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	lgr.Printf("[INFO] feed %d opted out: %s", id, req.Reason)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"feed_id": id, "opted_out": true})
}

func feedID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid feed ID")
	}
	return id, nil
}

func limitParam(r *http.Request, def int) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			return n
		}
	}
	return def
}
