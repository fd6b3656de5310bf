package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/slyt3/fyyur/docs"
	"github.com/slyt3/fyyur/internal/config"
	"github.com/slyt3/fyyur/internal/infra/flash"
	"github.com/slyt3/fyyur/internal/middleware"
	"github.com/slyt3/fyyur/internal/modules/handler"
	"github.com/slyt3/fyyur/internal/modules/serializer"
	"github.com/slyt3/fyyur/internal/web"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config        *config.Config
	Log           *zap.Logger
	FlashStore    flash.Store
	HomeHandler   *handler.HomeHandler
	VenueHandler  *handler.VenueHandler
	ArtistHandler *handler.ArtistHandler
	ShowHandler   *handler.ShowHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	handler.RegisterValidators()

	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())

	// Add OpenTelemetry middleware if enabled (using configuration system)
	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		// Add trace ID to response header
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))
	r.Use(gin.CustomRecoveryWithWriter(zap.NewStdLog(d.Log).Writer(), handler.ServerError))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/media/*key", d.HomeHandler.Media)

	r.NoRoute(handler.NotFound)

	pages := r.Group("")
	{
		pages.Use(middleware.FlashSession(d.Config, d.FlashStore))

		pages.GET("/", d.HomeHandler.Home)

		venues := pages.Group("/venues")
		{
			venues.GET("", d.VenueHandler.ListVenues)
			venues.POST("/search", d.VenueHandler.SearchVenues)
			venues.GET("/create", d.VenueHandler.NewVenueForm)
			venues.POST("/create", d.VenueHandler.CreateVenue)
			venues.GET("/:id", d.VenueHandler.GetVenue)
			venues.DELETE("/:id", d.VenueHandler.DeleteVenue)
			venues.POST("/:id/delete", d.VenueHandler.DeleteVenue)
			venues.GET("/:id/edit", d.VenueHandler.EditVenueForm)
			venues.POST("/:id/edit", d.VenueHandler.UpdateVenue)
		}

		artists := pages.Group("/artists")
		{
			artists.GET("", d.ArtistHandler.ListArtists)
			artists.POST("/search", d.ArtistHandler.SearchArtists)
			artists.GET("/create", d.ArtistHandler.NewArtistForm)
			artists.POST("/create", d.ArtistHandler.CreateArtist)
			artists.GET("/:id", d.ArtistHandler.GetArtist)
			artists.DELETE("/:id", d.ArtistHandler.DeleteArtist)
			artists.POST("/:id/delete", d.ArtistHandler.DeleteArtist)
			artists.GET("/:id/edit", d.ArtistHandler.EditArtistForm)
			artists.POST("/:id/edit", d.ArtistHandler.UpdateArtist)
		}

		shows := pages.Group("/shows")
		{
			shows.GET("", d.ShowHandler.ListShows)
			shows.POST("/search", d.ShowHandler.SearchShows)
			shows.GET("/create", d.ShowHandler.NewShowForm)
			shows.POST("/create", d.ShowHandler.CreateShow)
			shows.GET("/:id", d.ShowHandler.GetShow)
			shows.DELETE("/:id", d.ShowHandler.DeleteShow)
			shows.POST("/:id/delete", d.ShowHandler.DeleteShow)
		}
	}
	return r
}
