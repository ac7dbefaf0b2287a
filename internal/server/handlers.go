package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cloud-ru/mortgage-calculator-go/internal/calculations"
	"github.com/cloud-ru/mortgage-calculator-go/internal/export"
	"github.com/cloud-ru/mortgage-calculator-go/internal/metrics"
	"github.com/cloud-ru/mortgage-calculator-go/internal/tools"
)

// синонимы параметров строки запроса
var queryAliases = map[string][]string{
	"principal":           {"principal"},
	"annual_rate_percent": {"annual_rate_percent", "rate"},
	"term_years":          {"term_years", "years"},
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": s.registry.Names()})
}

func (s *Server) callTool(c *gin.Context) {
	var params map[string]interface{}
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.registry.Call(c.Request.Context(), c.Param("name"), params)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) schedule(c *gin.Context) {
	params, err := paramsFromQuery(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	if view := c.Query("view"); view != "" {
		params["view"] = view
	}

	result, err := s.registry.Call(c.Request.Context(), tools.AmortizationScheduleTool, params)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) scheduleCSV(c *gin.Context) {
	s.download(c, "csv", "text/csv", func(r *calculations.Result) (string, func(io.Writer) error) {
		return export.ScheduleFilename(r.Terms, "csv"), func(w io.Writer) error {
			return export.WriteScheduleCSV(w, r.Schedule)
		}
	})
}

func (s *Server) summaryCSV(c *gin.Context) {
	s.download(c, "summary_csv", "text/csv", func(r *calculations.Result) (string, func(io.Writer) error) {
		return export.SummaryFilename(r.Terms), func(w io.Writer) error {
			return export.WriteSummaryCSV(w, r.Summary)
		}
	})
}

func (s *Server) schedulePDF(c *gin.Context) {
	s.download(c, "pdf", "application/pdf", func(r *calculations.Result) (string, func(io.Writer) error) {
		return export.ScheduleFilename(r.Terms, "pdf"), func(w io.Writer) error {
			return export.WriteSchedulePDF(w, r)
		}
	})
}

func (s *Server) chartPNG(c *gin.Context) {
	s.download(c, "png", "image/png", func(r *calculations.Result) (string, func(io.Writer) error) {
		return export.ScheduleFilename(r.Terms, "png"), func(w io.Writer) error {
			return s.renderer.Render(r.Schedule, w)
		}
	})
}

type writerFactory func(r *calculations.Result) (filename string, write func(io.Writer) error)

// download пересчитывает график и отдает файл; тело собирается в буфер,
// чтобы ошибка не оставила клиенту половину файла
func (s *Server) download(c *gin.Context, format, contentType string, factory writerFactory) {
	params, err := paramsFromQuery(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	out, err := s.registry.Call(c.Request.Context(), tools.AmortizationScheduleTool, params)
	if err != nil {
		s.fail(c, err)
		return
	}
	result := out.(*calculations.Result)

	filename, write := factory(result)
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		s.fail(c, err)
		return
	}

	metrics.Exports.WithLabelValues(format).Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, calculations.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, tools.ErrUnknownTool):
		status = http.StatusNotFound
	case errors.Is(err, calculations.ErrNumeric):
		status = http.StatusUnprocessableEntity
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}

func paramsFromQuery(c *gin.Context) (map[string]interface{}, error) {
	params := make(map[string]interface{}, len(queryAliases))
	for key, aliases := range queryAliases {
		for _, alias := range aliases {
			raw, ok := c.GetQuery(alias)
			if !ok {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid parameter: %s", calculations.ErrInvalidInput, alias)
			}
			params[key] = v
			break
		}
	}
	return params, nil
}
