package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/awpl-blog/blogsite/internal/blog"
	"github.com/awpl-blog/blogsite/internal/consent"
	"github.com/awpl-blog/blogsite/internal/render"
	"github.com/awpl-blog/blogsite/internal/share"
	"github.com/awpl-blog/blogsite/internal/site"
	"github.com/awpl-blog/blogsite/internal/views"
)

func (s *Server) engine(target render.Target) *blog.Engine {
	return blog.New(s.catalog, target, s.counter, s.cfg.Listings)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"posts":  s.catalog.Len(),
	})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	regions := render.AllRegions()
	eng := s.engine(regions)
	eng.Initialize()

	query := r.URL.Query().Get("q")
	eng.Search(query)

	showConsent := false
	if s.consent != nil {
		choice, err := s.consent.Current(r.Context())
		if err != nil {
			log.Printf("home: %v", err)
		}
		showConsent = err == nil && choice == ""
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.renderer.WriteHome(w, site.HomePage{
		Regions:       regions,
		Query:         query,
		SearchAction:  "/",
		ConsentAction: "/api/consent",
		ShowConsent:   showConsent,
	})
	if err != nil {
		log.Printf("home: rendering: %v", err)
	}
}

func handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(site.Stylesheet()))
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	slug, ok := strings.CutSuffix(file, ".html")
	if !ok {
		http.NotFound(w, r)
		return
	}
	post, found := s.catalog.Lookup(slug)
	if !found {
		http.NotFound(w, r)
		return
	}

	count := post.Views
	if s.counter != nil {
		n, err := s.engine(render.NewRegions()).RecordPageView(r.Context(), views.PageID(r.URL.Path))
		if err != nil {
			log.Printf("post %s: %v", slug, err)
		} else {
			count = n
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.WritePost(w, site.PostPage{Post: post, Views: count, BasePath: "../"}); err != nil {
		log.Printf("post %s: rendering: %v", slug, err)
	}
}

// listingSize reads ?n=, falling back to def when absent.
func listingSize(r *http.Request, def int) (int, error) {
	v := r.URL.Query().Get("n")
	if v == "" {
		if def <= 0 {
			def = blog.DefaultListingSize
		}
		return def, nil
	}
	return strconv.Atoi(v)
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	n, err := listingSize(r, s.cfg.Listings.LatestCount)
	if err != nil {
		http.Error(w, "invalid n", http.StatusBadRequest)
		return
	}
	writeHTML(w, s.engine(render.NewRegions(render.RegionLatest)).RenderLatest(n))
}

func (s *Server) handlePopular(w http.ResponseWriter, r *http.Request) {
	n, err := listingSize(r, s.cfg.Listings.PopularCount)
	if err != nil {
		http.Error(w, "invalid n", http.StatusBadRequest)
		return
	}
	writeHTML(w, s.engine(render.NewRegions(render.RegionPopular)).RenderPopular(n))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	regions := render.NewRegions(render.RegionSearch)
	out := s.engine(regions).Search(r.URL.Query().Get("q"))

	w.Header().Set("X-Search-Status", out.Status.String())
	markup, written := regions.Get(render.RegionSearch)
	if !written {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeHTML(w, string(markup))
}

type viewsResponse struct {
	Page  string `json:"page"`
	Views int    `json:"views"`
}

func (s *Server) viewsPage(w http.ResponseWriter, r *http.Request) (string, bool) {
	if s.counter == nil {
		http.Error(w, "view counting disabled", http.StatusServiceUnavailable)
		return "", false
	}
	page := views.PageID("/" + chi.URLParam(r, "*"))
	if page == "" {
		http.Error(w, "missing page", http.StatusBadRequest)
		return "", false
	}
	return page, true
}

func (s *Server) handleRecordView(w http.ResponseWriter, r *http.Request) {
	page, ok := s.viewsPage(w, r)
	if !ok {
		return
	}
	n, err := s.engine(render.NewRegions()).RecordPageView(r.Context(), page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, viewsResponse{Page: page, Views: n})
}

func (s *Server) handleGetViews(w http.ResponseWriter, r *http.Request) {
	page, ok := s.viewsPage(w, r)
	if !ok {
		return
	}
	n, err := s.counter.Current(r.Context(), page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, viewsResponse{Page: page, Views: n})
}

type consentBody struct {
	Choice consent.Choice `json:"choice"`
}

func (s *Server) handleGetConsent(w http.ResponseWriter, r *http.Request) {
	if s.consent == nil {
		http.Error(w, "consent disabled", http.StatusServiceUnavailable)
		return
	}
	choice, err := s.consent.Current(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, consentBody{Choice: choice})
}

func (s *Server) handleRecordConsent(w http.ResponseWriter, r *http.Request) {
	if s.consent == nil {
		http.Error(w, "consent disabled", http.StatusServiceUnavailable)
		return
	}
	// The banner posts a form; API clients send JSON.
	isJSON := strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")

	var body consentBody
	if isJSON {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		body.Choice = consent.Choice(r.PostFormValue("choice"))
	}

	if err := s.consent.Record(r.Context(), body.Choice); err != nil {
		if errors.Is(err, consent.ErrInvalidChoice) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if !isJSON {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

type consentHistory struct {
	Counts map[consent.Choice]int `json:"counts"`
	Recent []consent.Decision     `json:"recent"`
}

func (s *Server) handleConsentHistory(w http.ResponseWriter, r *http.Request) {
	if s.consent == nil || s.consent.History() == nil {
		http.Error(w, "consent log disabled", http.StatusServiceUnavailable)
		return
	}
	h := s.consent.History()

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	counts, err := h.Counts(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	recent, err := h.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, consentHistory{Counts: counts, Recent: recent})
}

func handleShare(w http.ResponseWriter, r *http.Request) {
	platform, err := share.ParsePlatform(chi.URLParam(r, "platform"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	q := r.URL.Query()
	pageURL := q.Get("url")
	if pageURL == "" {
		http.Error(w, "missing url", http.StatusBadRequest)
		return
	}
	target, err := share.URL(platform, q.Get("title"), pageURL)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func writeHTML(w http.ResponseWriter, markup string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(markup))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
