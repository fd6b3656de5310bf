package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/slyt3/fyyur/internal/infra/flash"
	"github.com/slyt3/fyyur/internal/modules/serializer"
	"github.com/slyt3/fyyur/internal/modules/service"
)

// pendingKey holds notices added in a request that has no flash bag.
const pendingKey = "flash.pending"

// wantsJSON reports whether the client prefers the JSON envelope over HTML.
func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func addFlash(c *gin.Context, level flash.Level, text string) {
	if v, ok := c.Get(flash.ContextKey); ok {
		if bag, ok := v.(*flash.Bag); ok {
			err := bag.Add(c.Request.Context(), level, text)
			if err == nil {
				return
			}
			_ = c.Error(err)
		}
	}
	pending, _ := c.Get(pendingKey)
	msgs, _ := pending.([]flash.Message)
	c.Set(pendingKey, append(msgs, flash.Message{Level: level, Text: text}))
}

func takeFlashes(c *gin.Context) []flash.Message {
	var out []flash.Message
	if v, ok := c.Get(flash.ContextKey); ok {
		if bag, ok := v.(*flash.Bag); ok {
			msgs, err := bag.Take(c.Request.Context())
			if err != nil {
				_ = c.Error(err)
			}
			out = append(out, msgs...)
		}
	}
	if pending, ok := c.Get(pendingKey); ok {
		msgs, _ := pending.([]flash.Message)
		out = append(out, msgs...)
		c.Set(pendingKey, []flash.Message(nil))
	}
	return out
}

// page is the data every template receives.
func page(c *gin.Context, title string, data any, extra gin.H) gin.H {
	h := gin.H{
		"Title":   title,
		"Data":    data,
		"Flashes": takeFlashes(c),
		"States":  StateCodes(),
	}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

// render answers with the JSON envelope or with the named template.
func render(c *gin.Context, status int, tmpl, title string, data any) {
	if wantsJSON(c) {
		c.JSON(status, serializer.Response{Data: data})
		return
	}
	c.HTML(status, tmpl, page(c, title, data, nil))
}

// renderForm shows a form again, optionally with the error that rejected it.
func renderForm(c *gin.Context, status int, tmpl, title string, form any, data any, formErr error) {
	if wantsJSON(c) {
		if formErr != nil {
			c.JSON(status, serializer.ParamErr("", formErr))
			return
		}
		c.JSON(status, serializer.Response{Data: form})
		return
	}
	extra := gin.H{"Form": form}
	if formErr != nil {
		extra["FormError"] = formErr.Error()
	}
	c.HTML(status, tmpl, page(c, title, data, extra))
}

// done reports a successful command: JSON gets the payload, HTML gets a
// notice and a redirect.
func done(c *gin.Context, status int, msg string, data any, location string) {
	if wantsJSON(c) {
		c.JSON(status, serializer.Response{Data: data, Msg: msg})
		return
	}
	addFlash(c, flash.Success, msg)
	c.Redirect(http.StatusSeeOther, location)
}

// notFound answers a lookup of a missing record.
func notFound(c *gin.Context, entity string, id string, listPath string) {
	msg := fmt.Sprintf("No data with %s id = %s could be found!", entity, id)
	if wantsJSON(c) {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(msg, nil))
		return
	}
	addFlash(c, flash.Danger, msg)
	c.Redirect(http.StatusSeeOther, listPath)
}

// badSearch answers a search form that failed binding.
func badSearch(c *gin.Context, err error, listPath string) {
	if wantsJSON(c) {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	addFlash(c, flash.Danger, "Invalid search: "+err.Error())
	c.Redirect(http.StatusSeeOther, listPath)
}

// failed answers a persistence failure; the cause goes to the request log only.
func failed(c *gin.Context, msg string, err error, location string) {
	_ = c.Error(err)
	if wantsJSON(c) {
		c.JSON(http.StatusInternalServerError, serializer.DBErr(msg, err))
		return
	}
	addFlash(c, flash.Danger, msg)
	c.Redirect(http.StatusSeeOther, location)
}

// pathID parses the :id route parameter. A malformed id cannot exist, so
// callers treat the error like a missing record.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	return id, err == nil
}

func isNotFound(err error) bool {
	return errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrEmptyID)
}

// uploadedImage stores an optional image_file part and returns the link to
// save, or current when nothing was uploaded or the upload failed.
func uploadedImage(c *gin.Context, media service.MediaService, current string) string {
	if media == nil || !media.Enabled() {
		return current
	}
	fh, err := c.FormFile("image_file")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			_ = c.Error(err)
		}
		return current
	}
	link, err := media.Upload(c.Request.Context(), fh)
	if err != nil {
		_ = c.Error(fmt.Errorf("image upload: %w", err))
		return current
	}
	return link
}
