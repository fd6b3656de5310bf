package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slyt3/fyyur/internal/infra/flash"
	"github.com/slyt3/fyyur/internal/modules/serializer"
	"github.com/slyt3/fyyur/internal/modules/service"
)

var errOwnerMissing = errors.New("does not exist")

type ShowHandler struct {
	svc     service.ShowService
	venues  service.VenueService
	artists service.ArtistService
	home    *HomeHandler
}

func NewShowHandler(s service.ShowService, v service.VenueService, a service.ArtistService, home *HomeHandler) *ShowHandler {
	return &ShowHandler{svc: s, venues: v, artists: a, home: home}
}

// ListShows godoc
//
//	@Summary		List shows
//	@Description	Every show with its venue and artist, ordered by start time
//	@Tags			show
//	@Produce		json,html
//	@Success		200	{object}	serializer.Response{data=[]service.ShowView}
//	@Router			/shows [get]
func (h *ShowHandler) ListShows(c *gin.Context) {
	shows, err := h.svc.List(c.Request.Context())
	if err != nil {
		failed(c, "An error occurred. Shows could not be loaded.", err, "/")
		return
	}
	render(c, http.StatusOK, "shows/index.html", "Shows", shows)
}

type ShowSearchPage struct {
	SearchTerm string             `json:"search_term"`
	Count      int                `json:"count"`
	Data       []service.ShowView `json:"data"`
}

// SearchShows godoc
//
//	@Summary		Search shows
//	@Description	Case-insensitive partial match on the venue name or the artist name of a show
//	@Tags			show
//	@Accept			x-www-form-urlencoded
//	@Produce		json,html
//	@Param			search_term	formData	string	false	"Search term"
//	@Success		200	{object}	serializer.Response{data=handler.ShowSearchPage}
//	@Router			/shows/search [post]
func (h *ShowHandler) SearchShows(c *gin.Context) {
	req := SearchForm{}
	if err := c.ShouldBind(&req); err != nil {
		badSearch(c, err, "/shows")
		return
	}

	shows, err := h.svc.Search(c.Request.Context(), req.SearchTerm)
	if err != nil {
		failed(c, "An error occurred. Search could not be completed.", err, "/shows")
		return
	}
	render(c, http.StatusOK, "shows/search.html", "Show search", ShowSearchPage{
		SearchTerm: req.SearchTerm,
		Count:      len(shows),
		Data:       shows,
	})
}

// GetShow godoc
//
//	@Summary		Show detail
//	@Tags			show
//	@Produce		json,html
//	@Param			id	path	string	true	"Show ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=service.ShowView}
//	@Failure		404	{object}	serializer.Response
//	@Router			/shows/{id} [get]
func (h *ShowHandler) GetShow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, "Show", c.Param("id"), "/shows")
		return
	}
	v, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			notFound(c, "Show", c.Param("id"), "/shows")
			return
		}
		failed(c, "An error occurred. Show could not be loaded.", err, "/shows")
		return
	}
	render(c, http.StatusOK, "shows/show.html", "Show", v)
}

// ShowFormOptions lists what the venue and artist selects offer.
type ShowFormOptions struct {
	Venues  []service.VenueArea     `json:"venues"`
	Artists []service.ArtistSummary `json:"artists"`
}

func (h *ShowHandler) options(c *gin.Context) *ShowFormOptions {
	opts := &ShowFormOptions{}
	areas, err := h.venues.ListByArea(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
	}
	opts.Venues = areas
	artists, err := h.artists.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
	}
	opts.Artists = artists
	return opts
}

// NewShowForm renders an empty show form.
func (h *ShowHandler) NewShowForm(c *gin.Context) {
	var opts *ShowFormOptions
	if !wantsJSON(c) {
		opts = h.options(c)
	}
	renderForm(c, http.StatusOK, "shows/new.html", "New show", &ShowForm{}, opts, nil)
}

// CreateShow godoc
//
//	@Summary		Create show
//	@Description	Lists a show of an existing artist at an existing venue. An empty start_time means now.
//	@Tags			show
//	@Accept			x-www-form-urlencoded,json
//	@Produce		json,html
//	@Param			payload	body		handler.ShowForm	true	"Show"
//	@Success		201		{object}	serializer.Response{data=model.Show}
//	@Failure		400		{object}	serializer.Response
//	@Failure		404		{object}	serializer.Response
//	@Router			/shows/create [post]
func (h *ShowHandler) CreateShow(c *gin.Context) {
	req := ShowForm{}
	if err := c.ShouldBind(&req); err != nil {
		h.rejectForm(c, &req, err)
		return
	}
	sh, err := req.toModel()
	if err != nil {
		h.rejectForm(c, &req, err)
		return
	}

	if err := h.svc.Create(c.Request.Context(), sh); err != nil {
		if owner := service.MissingOwner(err); owner != "" {
			h.rejectForm(c, &req, fmt.Errorf("%s %w", owner, errOwnerMissing))
			return
		}
		_ = c.Error(err)
		msg := "An error occurred. Show could not be added!"
		if wantsJSON(c) {
			c.JSON(http.StatusInternalServerError, serializer.DBErr(msg, err))
			return
		}
		addFlash(c, flash.Danger, msg)
		h.home.renderHome(c, http.StatusOK)
		return
	}

	msg := "Show was successfully listed!"
	if wantsJSON(c) {
		c.JSON(http.StatusCreated, serializer.Response{Data: sh, Msg: msg})
		return
	}
	addFlash(c, flash.Success, msg)
	h.home.renderHome(c, http.StatusOK)
}

// rejectForm answers a show that cannot be created as submitted. A missing
// venue or artist is a 404 for JSON clients.
func (h *ShowHandler) rejectForm(c *gin.Context, req *ShowForm, err error) {
	if wantsJSON(c) {
		status := http.StatusBadRequest
		if errors.Is(err, errOwnerMissing) {
			status = http.StatusNotFound
		}
		c.JSON(status, serializer.Err(status, "show could not be added", err))
		return
	}
	renderForm(c, http.StatusBadRequest, "shows/new.html", "New show", req, h.options(c), err)
}

// DeleteShow godoc
//
//	@Summary		Delete show
//	@Tags			show
//	@Produce		json,html
//	@Param			id	path	string	true	"Show ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/shows/{id} [delete]
func (h *ShowHandler) DeleteShow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, "Show", c.Param("id"), "/shows")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			notFound(c, "Show", id.String(), "/shows")
			return
		}
		failed(c, "An error occurred. Show could not be deleted!", err, "/shows")
		return
	}
	done(c, http.StatusOK, "Show was successfully deleted!", nil, "/shows")
}
