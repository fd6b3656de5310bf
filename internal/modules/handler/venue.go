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

type VenueHandler struct {
	svc   service.VenueService
	media service.MediaService
	home  *HomeHandler
}

func NewVenueHandler(s service.VenueService, m service.MediaService, home *HomeHandler) *VenueHandler {
	return &VenueHandler{svc: s, media: m, home: home}
}

// ListVenues godoc
//
//	@Summary		List venues
//	@Description	Venues grouped by city and state, each with its number of upcoming shows
//	@Tags			venue
//	@Produce		json,html
//	@Success		200	{object}	serializer.Response{data=[]service.VenueArea}
//	@Router			/venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	areas, err := h.svc.ListByArea(c.Request.Context())
	if err != nil {
		failed(c, "An error occurred. Venues could not be loaded.", err, "/")
		return
	}
	render(c, http.StatusOK, "venues/index.html", "Venues", areas)
}

type SearchPage struct {
	SearchTerm string `json:"search_term"`
	*service.SearchResult
}

// SearchVenues godoc
//
//	@Summary		Search venues
//	@Description	Case-insensitive partial match on venue name or on the name of an artist playing there
//	@Tags			venue
//	@Accept			x-www-form-urlencoded
//	@Produce		json,html
//	@Param			search_term	formData	string	false	"Search term"
//	@Success		200	{object}	serializer.Response{data=handler.SearchPage}
//	@Router			/venues/search [post]
func (h *VenueHandler) SearchVenues(c *gin.Context) {
	req := SearchForm{}
	if err := c.ShouldBind(&req); err != nil {
		badSearch(c, err, "/venues")
		return
	}

	res, err := h.svc.Search(c.Request.Context(), req.SearchTerm)
	if err != nil {
		failed(c, "An error occurred. Search could not be completed.", err, "/venues")
		return
	}
	render(c, http.StatusOK, "venues/search.html", "Venue search", SearchPage{SearchTerm: req.SearchTerm, SearchResult: res})
}

// GetVenue godoc
//
//	@Summary		Venue detail
//	@Description	A venue with its past and upcoming shows
//	@Tags			venue
//	@Produce		json,html
//	@Param			id	path	string	true	"Venue ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=service.VenueDetail}
//	@Failure		404	{object}	serializer.Response
//	@Router			/venues/{id} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, "Venue", c.Param("id"), "/venues")
		return
	}

	d, err := h.svc.Detail(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			notFound(c, "Venue", c.Param("id"), "/venues")
			return
		}
		failed(c, "An error occurred. Venue could not be loaded.", err, "/venues")
		return
	}
	render(c, http.StatusOK, "venues/show.html", d.Name, d)
}

// NewVenueForm renders an empty venue form.
func (h *VenueHandler) NewVenueForm(c *gin.Context) {
	renderForm(c, http.StatusOK, "venues/new.html", "New venue", &VenueForm{}, nil, nil)
}

// CreateVenue godoc
//
//	@Summary		Create venue
//	@Tags			venue
//	@Accept			x-www-form-urlencoded,multipart/form-data,json
//	@Produce		json,html
//	@Param			payload		body		handler.VenueForm	true	"Venue"
//	@Param			image_file	formData	file				false	"Image uploaded to object storage"
//	@Success		201	{object}	serializer.Response{data=model.Venue}
//	@Failure		400	{object}	serializer.Response
//	@Router			/venues/create [post]
func (h *VenueHandler) CreateVenue(c *gin.Context) {
	req := VenueForm{}
	if err := c.ShouldBind(&req); err != nil {
		renderForm(c, http.StatusBadRequest, "venues/new.html", "New venue", &req, nil, err)
		return
	}
	v, err := req.toModel()
	if err != nil {
		renderForm(c, http.StatusBadRequest, "venues/new.html", "New venue", &req, nil, err)
		return
	}
	v.ImageLink = uploadedImage(c, h.media, v.ImageLink)

	if err := h.svc.Create(c.Request.Context(), v); err != nil {
		_ = c.Error(err)
		msg := fmt.Sprintf("An error occurred. Venue %s could not be added!", req.Name)
		if wantsJSON(c) {
			c.JSON(http.StatusInternalServerError, serializer.DBErr(msg, err))
			return
		}
		addFlash(c, flash.Danger, msg)
		h.home.renderHome(c, http.StatusOK)
		return
	}

	msg := fmt.Sprintf("Venue %s was successfully added!", v.Name)
	if wantsJSON(c) {
		c.JSON(http.StatusCreated, serializer.Response{Data: v, Msg: msg})
		return
	}
	addFlash(c, flash.Success, msg)
	h.home.renderHome(c, http.StatusOK)
}

// EditVenueForm renders the venue form filled with the stored record.
func (h *VenueHandler) EditVenueForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, "Venue", c.Param("id"), "/venues")
		return
	}
	v, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			notFound(c, "Venue", c.Param("id"), "/venues")
			return
		}
		failed(c, "An error occurred. Venue could not be loaded.", err, "/venues")
		return
	}
	form, err := venueFormFrom(v)
	if err != nil {
		failed(c, "An error occurred. Venue could not be loaded.", err, "/venues")
		return
	}
	renderForm(c, http.StatusOK, "venues/edit.html", "Edit venue", form, v, nil)
}

// UpdateVenue godoc
//
//	@Summary		Update venue
//	@Description	Overwrites every field of the venue
//	@Tags			venue
//	@Accept			x-www-form-urlencoded,multipart/form-data,json
//	@Produce		json,html
//	@Param			id			path		string				true	"Venue ID"	Format(uuid)
//	@Param			payload		body		handler.VenueForm	true	"Venue"
//	@Param			image_file	formData	file				false	"Image uploaded to object storage"
//	@Success		200	{object}	serializer.Response{data=model.Venue}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/venues/{id}/edit [post]
func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, "Venue", c.Param("id"), "/venues")
		return
	}
	detail := "/venues/" + id.String()

	req := VenueForm{}
	if err := c.ShouldBind(&req); err != nil {
		renderForm(c, http.StatusBadRequest, "venues/edit.html", "Edit venue", &req, &model.Venue{ID: id}, err)
		return
	}
	v, err := req.toModel()
	if err != nil {
		renderForm(c, http.StatusBadRequest, "venues/edit.html", "Edit venue", &req, &model.Venue{ID: id}, err)
		return
	}
	v.ID = id
	v.ImageLink = uploadedImage(c, h.media, v.ImageLink)

	if err := h.svc.Update(c.Request.Context(), v); err != nil {
		if isNotFound(err) {
			notFound(c, "Venue", id.String(), "/venues")
			return
		}
		failed(c, fmt.Sprintf("An error occurred. Venue %s could not be updated!", req.Name), err, detail)
		return
	}
	done(c, http.StatusOK, fmt.Sprintf("Venue %s was successfully updated!", v.Name), v, detail)
}

// DeleteVenue godoc
//
//	@Summary		Delete venue
//	@Description	Deletes the venue and every show at it
//	@Tags			venue
//	@Produce		json,html
//	@Param			id	path	string	true	"Venue ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/venues/{id} [delete]
func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, "Venue", c.Param("id"), "/venues")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			notFound(c, "Venue", id.String(), "/venues")
			return
		}
		failed(c, fmt.Sprintf("An error occurred. Venue %s could not be deleted!", id), err, "/")
		return
	}
	done(c, http.StatusOK, fmt.Sprintf("Venue %s was successfully deleted!", id), nil, "/")
}
