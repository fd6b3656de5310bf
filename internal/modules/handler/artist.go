package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slyt3/fyyur/internal/infra/flash"
	"github.com/slyt3/fyyur/internal/modules/model"
	"github.com/slyt3/fyyur/internal/modules/serializer"
	"github.com/slyt3/fyyur/internal/modules/service"
)

type ArtistHandler struct {
	svc   service.ArtistService
	media service.MediaService
	home  *HomeHandler
}

func NewArtistHandler(s service.ArtistService, m service.MediaService, home *HomeHandler) *ArtistHandler {
	return &ArtistHandler{svc: s, media: m, home: home}
}

// ListArtists godoc
//
//	@Summary		List artists
//	@Description	Every artist ordered by name
//	@Tags			artist
//	@Produce		json,html
//	@Success		200	{object}	serializer.Response{data=[]service.ArtistSummary}
//	@Router			/artists [get]
func (h *ArtistHandler) ListArtists(c *gin.Context) {
	artists, err := h.svc.List(c.Request.Context())
	if err != nil {
		failed(c, "An error occurred. Artists could not be loaded.", err, "/")
		return
	}
	render(c, http.StatusOK, "artists/index.html", "Artists", artists)
}

// SearchArtists godoc
//
//	@Summary		Search artists
//	@Description	Case-insensitive partial match on artist name
//	@Tags			artist
//	@Accept			x-www-form-urlencoded
//	@Produce		json,html
//	@Param			search_term	formData	string	false	"Search term"
//	@Success		200	{object}	serializer.Response{data=handler.SearchPage}
//	@Router			/artists/search [post]
func (h *ArtistHandler) SearchArtists(c *gin.Context) {
	req := SearchForm{}
	if err := c.ShouldBind(&req); err != nil {
		badSearch(c, err, "/artists")
		return
	}

	res, err := h.svc.Search(c.Request.Context(), req.SearchTerm)
	if err != nil {
		failed(c, "An error occurred. Search could not be completed.", err, "/artists")
		return
	}
	render(c, http.StatusOK, "artists/search.html", "Artist search", SearchPage{SearchTerm: req.SearchTerm, SearchResult: res})
}

// GetArtist godoc
//
//	@Summary		Artist detail
//	@Description	An artist with its past and upcoming shows
//	@Tags			artist
//	@Produce		json,html
//	@Param			id	path	string	true	"Artist ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=service.ArtistDetail}
//	@Failure		404	{object}	serializer.Response
//	@Router			/artists/{id} [get]
func (h *ArtistHandler) GetArtist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, "Artist", c.Param("id"), "/artists")
		return
	}

	d, err := h.svc.Detail(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			notFound(c, "Artist", c.Param("id"), "/artists")
			return
		}
		failed(c, "An error occurred. Artist could not be loaded.", err, "/artists")
		return
	}
	render(c, http.StatusOK, "artists/show.html", d.Name, d)
}

// NewArtistForm renders an empty artist form.
func (h *ArtistHandler) NewArtistForm(c *gin.Context) {
	renderForm(c, http.StatusOK, "artists/new.html", "New artist", &ArtistForm{}, nil, nil)
}

// CreateArtist godoc
//
//	@Summary		Create artist
//	@Tags			artist
//	@Accept			x-www-form-urlencoded,multipart/form-data,json
//	@Produce		json,html
//	@Param			payload		body		handler.ArtistForm	true	"Artist"
//	@Param			image_file	formData	file				false	"Image uploaded to object storage"
//	@Success		201	{object}	serializer.Response{data=model.Artist}
//	@Failure		400	{object}	serializer.Response
//	@Router			/artists/create [post]
func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	req := ArtistForm{}
	if err := c.ShouldBind(&req); err != nil {
		renderForm(c, http.StatusBadRequest, "artists/new.html", "New artist", &req, nil, err)
		return
	}
	v, err := req.toModel()
	if err != nil {
		renderForm(c, http.StatusBadRequest, "artists/new.html", "New artist", &req, nil, err)
		return
	}
	v.ImageLink = uploadedImage(c, h.media, v.ImageLink)

	if err := h.svc.Create(c.Request.Context(), v); err != nil {
		_ = c.Error(err)
		msg := fmt.Sprintf("An error occurred. Artist %s could not be added!", req.Name)
		if wantsJSON(c) {
			c.JSON(http.StatusInternalServerError, serializer.DBErr(msg, err))
			return
		}
		addFlash(c, flash.Danger, msg)
		h.home.renderHome(c, http.StatusOK)
		return
	}

	msg := fmt.Sprintf("Artist %s was successfully added!", v.Name)
	if wantsJSON(c) {
		c.JSON(http.StatusCreated, serializer.Response{Data: v, Msg: msg})
		return
	}
	addFlash(c, flash.Success, msg)
	h.home.renderHome(c, http.StatusOK)
}

// EditArtistForm renders the artist form filled with the stored record.
func (h *ArtistHandler) EditArtistForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, "Artist", c.Param("id"), "/artists")
		return
	}
	v, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			notFound(c, "Artist", c.Param("id"), "/artists")
			return
		}
		failed(c, "An error occurred. Artist could not be loaded.", err, "/artists")
		return
	}
	form, err := artistFormFrom(v)
	if err != nil {
		failed(c, "An error occurred. Artist could not be loaded.", err, "/artists")
		return
	}
	renderForm(c, http.StatusOK, "artists/edit.html", "Edit artist", form, v, nil)
}

// UpdateArtist godoc
//
//	@Summary		Update artist
//	@Description	Overwrites every field of the artist
//	@Tags			artist
//	@Accept			x-www-form-urlencoded,multipart/form-data,json
//	@Produce		json,html
//	@Param			id			path		string				true	"Artist ID"	Format(uuid)
//	@Param			payload		body		handler.ArtistForm	true	"Artist"
//	@Param			image_file	formData	file				false	"Image uploaded to object storage"
//	@Success		200	{object}	serializer.Response{data=model.Artist}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/artists/{id}/edit [post]
func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, "Artist", c.Param("id"), "/artists")
		return
	}
	detail := "/artists/" + id.String()

	req := ArtistForm{}
	if err := c.ShouldBind(&req); err != nil {
		renderForm(c, http.StatusBadRequest, "artists/edit.html", "Edit artist", &req, &model.Artist{ID: id}, err)
		return
	}
	v, err := req.toModel()
	if err != nil {
		renderForm(c, http.StatusBadRequest, "artists/edit.html", "Edit artist", &req, &model.Artist{ID: id}, err)
		return
	}
	v.ID = id
	v.ImageLink = uploadedImage(c, h.media, v.ImageLink)

	if err := h.svc.Update(c.Request.Context(), v); err != nil {
		if isNotFound(err) {
			notFound(c, "Artist", id.String(), "/artists")
			return
		}
		failed(c, fmt.Sprintf("An error occurred. Artist %s could not be updated!", req.Name), err, detail)
		return
	}
	done(c, http.StatusOK, fmt.Sprintf("Artist %s was successfully updated!", v.Name), v, detail)
}

// DeleteArtist godoc
//
//	@Summary		Delete artist
//	@Description	Deletes the artist and every show it plays
//	@Tags			artist
//	@Produce		json,html
//	@Param			id	path	string	true	"Artist ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/artists/{id} [delete]
func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, "Artist", c.Param("id"), "/artists")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			notFound(c, "Artist", id.String(), "/artists")
			return
		}
		failed(c, fmt.Sprintf("An error occurred. Artist %s could not be deleted!", id), err, "/")
		return
	}
	done(c, http.StatusOK, fmt.Sprintf("Artist %s was successfully deleted!", id), nil, "/")
}
