package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slyt3/fyyur/internal/modules/model"
	"github.com/slyt3/fyyur/internal/modules/serializer"
	"github.com/slyt3/fyyur/internal/modules/service"
)

const recentLimit = 10

type HomeHandler struct {
	venues  service.VenueService
	artists service.ArtistService
	media   service.MediaService
}

func NewHomeHandler(v service.VenueService, a service.ArtistService, m service.MediaService) *HomeHandler {
	return &HomeHandler{venues: v, artists: a, media: m}
}

type HomeData struct {
	RecentVenues  []model.Venue  `json:"recent_venues"`
	RecentArtists []model.Artist `json:"recent_artists"`
}

// Home godoc
//
//	@Summary		Home page
//	@Description	Recently listed venues and artists
//	@Tags			home
//	@Produce		json,html
//	@Success		200	{object}	serializer.Response{data=handler.HomeData}
//	@Router			/ [get]
func (h *HomeHandler) Home(c *gin.Context) {
	h.renderHome(c, http.StatusOK)
}

// renderHome is also the page shown after a create.
func (h *HomeHandler) renderHome(c *gin.Context, status int) {
	out := HomeData{RecentVenues: []model.Venue{}, RecentArtists: []model.Artist{}}

	venues, err := h.venues.Recent(c.Request.Context(), recentLimit)
	if err != nil {
		_ = c.Error(err)
	} else {
		out.RecentVenues = venues
	}
	artists, err := h.artists.Recent(c.Request.Context(), recentLimit)
	if err != nil {
		_ = c.Error(err)
	} else {
		out.RecentArtists = artists
	}

	render(c, status, "pages/home.html", "Home", out)
}

// Media godoc
//
//	@Summary		Uploaded image
//	@Description	Redirect to a short-lived download URL for an uploaded image
//	@Tags			media
//	@Param			key	path	string	true	"Object key"
//	@Success		302
//	@Failure		404	{object}	serializer.Response
//	@Router			/media/{key} [get]
func (h *HomeHandler) Media(c *gin.Context) {
	url, err := h.media.URL(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrMediaDisabled) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("image not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "storage error", err))
		return
	}
	c.Redirect(http.StatusFound, url)
}

// NotFound renders the 404 page for unmatched routes.
func NotFound(c *gin.Context) {
	if wantsJSON(c) {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("route not found", nil))
		return
	}
	c.HTML(http.StatusNotFound, "errors/404.html", page(c, "Not Found", nil, nil))
}

// ServerError renders the 500 page after a recovered panic.
func ServerError(c *gin.Context, recovered any) {
	if wantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "internal server error", nil))
		return
	}
	c.HTML(http.StatusInternalServerError, "errors/500.html", page(c, "Server Error", nil, nil))
	c.Abort()
}
