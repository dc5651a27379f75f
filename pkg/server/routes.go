package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c9s/currentprice/pkg/chart"
)

func (s *Server) newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowMethods:     []string{"GET"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/chart.png", s.chartHandler(chart.FormatPNG))
	r.GET("/chart.svg", s.chartHandler(chart.FormatSVG))

	r.GET("/api/indicator", func(c *gin.Context) {
		st, err := s.status()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if st == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "indicator is not drawn"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"indicator": st})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

func (s *Server) chartHandler(format chart.Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := s.render(format)
		if err != nil {
			log.WithError(err).Errorf("unable to render the %s chart", format)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Data(http.StatusOK, format.ContentType(), data)
	}
}
