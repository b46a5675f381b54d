package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/RafaelRangel0/Similar-Doctors/internal/domain/doctor"
	"github.com/gin-gonic/gin"
)

// HealthResult is the payload of GET /api/health.
type HealthResult struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
	Mode   string `json:"mode"`
	Data   string `json:"data"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResult{
		Status: "ok",
		Uptime: time.Since(s.started).Round(time.Second).String(),
		Mode:   s.opts.Mode,
		Data:   s.source.Path(),
	})
}

// handleDoctors returns the data file as is. A missing or malformed file
// is a plain 500; the cause goes to the access log only.
func (s *Server) handleDoctors(c *gin.Context) {
	data, err := s.source.Load(c.Request.Context())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (s *Server) handleSearch(c *gin.Context) {
	criteria := doctor.Criteria{
		Query:     c.Query("q"),
		Specialty: c.Query("specialty"),
		Area:      c.Query("area"),
	}
	if v := c.Query("min_rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_rating"})
			return
		}
		criteria.MinRating = rating
	}

	records, ok := s.loadRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doctor.SortByLastName(doctor.Filter(records, criteria)))
}

func (s *Server) handleFacets(c *gin.Context) {
	records, ok := s.loadRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doctor.CollectFacets(records))
}

func (s *Server) handleDoctor(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	records, ok := s.loadRecords(c)
	if !ok {
		return
	}
	target, ok := findOr404(c, records, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, target)
}

func (s *Server) handleSimilar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	limit := doctor.DefaultSimilarLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	records, ok := s.loadRecords(c)
	if !ok {
		return
	}
	target, ok := findOr404(c, records, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doctor.Similar(records, target, limit))
}

// loadRecords loads and decodes the doctor list, answering 500 on failure.
func (s *Server) loadRecords(c *gin.Context) ([]doctor.Record, bool) {
	data, err := s.source.Load(c.Request.Context())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return nil, false
	}
	records, err := doctor.Decode(data)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, fmt.Errorf("%s: %w", s.source.Path(), err))
		return nil, false
	}
	return records, true
}

func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor id"})
		return 0, false
	}
	return id, true
}

func findOr404(c *gin.Context, records []doctor.Record, id int) (doctor.Record, bool) {
	r, err := doctor.Find(records, id)
	if errors.Is(err, doctor.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": doctor.ErrNotFound.Error()})
		return doctor.Record{}, false
	}
	return r, err == nil
}
