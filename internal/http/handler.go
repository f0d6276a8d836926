// Package http exposes the equation library and calculator over a JSON API.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/physcalc/internal/calculator"
	"github.com/san-kum/physcalc/internal/catalog"
	"github.com/san-kum/physcalc/internal/library"
	"github.com/san-kum/physcalc/internal/physics"
	"github.com/san-kum/physcalc/internal/units"
)

type Handler struct {
	lib  *library.Library
	calc *calculator.Calculator
}

func NewHandler(lib *library.Library, calc *calculator.Calculator) *Handler {
	return &Handler{lib: lib, calc: calc}
}

// ChapterSummary is one entry of GET /v1/chapters.
type ChapterSummary struct {
	Number      int    `json:"number"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Equations   int    `json:"equations"`
	Solvable    int    `json:"solvable"`
}

type VariableResponse struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Param       string `json:"param,omitempty"`
}

type EquationResponse struct {
	Name      string             `json:"name"`
	Formula   string             `json:"formula"`
	Notes     string             `json:"notes,omitempty"`
	Solver    string             `json:"solver,omitempty"`
	Variables []VariableResponse `json:"variables,omitempty"`
}

type DefinitionResponse struct {
	Term    string `json:"term"`
	Meaning string `json:"meaning"`
}

type ChapterResponse struct {
	ChapterSummary
	EquationList []EquationResponse   `json:"equation_list"`
	Definitions  []DefinitionResponse `json:"definitions"`
}

// SolveRequest is the body of POST /v1/solve. A null or missing input is
// the symbol to solve for.
type SolveRequest struct {
	Chapter  string              `json:"chapter" binding:"required"`
	Equation string              `json:"equation" binding:"required"`
	Inputs   map[string]*float64 `json:"inputs" binding:"required"`
}

type SolveResponse struct {
	Chapter  int     `json:"chapter"`
	Equation string  `json:"equation"`
	Symbol   string  `json:"symbol"`
	Param    string  `json:"param"`
	Value    float64 `json:"value"`
}

func summarize(c *catalog.Chapter) ChapterSummary {
	return ChapterSummary{
		Number:      c.Number,
		Slug:        c.Slug,
		Title:       c.Title,
		Description: c.Description,
		Equations:   len(c.Equations),
		Solvable:    len(c.Solvable()),
	}
}

// ListChapters handles GET /v1/chapters.
func (h *Handler) ListChapters(c *gin.Context) {
	chapters := h.lib.Chapters()
	response := make([]ChapterSummary, len(chapters))
	for i, ch := range chapters {
		response[i] = summarize(ch)
	}

	c.JSON(http.StatusOK, gin.H{
		"chapters": response,
		"count":    len(response),
	})
}

// GetChapter handles GET /v1/chapters/:chapter.
func (h *Handler) GetChapter(c *gin.Context) {
	ch, err := h.lib.Chapter(c.Param("chapter"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	response := ChapterResponse{
		ChapterSummary: summarize(ch),
		EquationList:   make([]EquationResponse, len(ch.Equations)),
		Definitions:    make([]DefinitionResponse, len(ch.Definitions)),
	}
	for i := range ch.Equations {
		eq := &ch.Equations[i]
		er := EquationResponse{Name: eq.Name, Formula: eq.Formula, Notes: eq.Notes}
		if eq.Solvable() {
			er.Solver = eq.Solver.ID
		}
		for _, v := range eq.Variables {
			vr := VariableResponse{Symbol: v.Symbol, Description: v.Description}
			if eq.Solvable() {
				vr.Param, _ = ch.Param(eq, v.Symbol)
			}
			er.Variables = append(er.Variables, vr)
		}
		response.EquationList[i] = er
	}
	for i, d := range ch.Definitions {
		response.Definitions[i] = DefinitionResponse{Term: d.Term, Meaning: d.Meaning}
	}

	c.JSON(http.StatusOK, response)
}

// errorKind names catalog and solver failures for clients.
func errorKind(err error) string {
	if k := physics.Kind(err); k != "" {
		return k
	}
	switch {
	case errors.Is(err, catalog.ErrBlankCount):
		return "blank_count"
	case errors.Is(err, catalog.ErrUnmappedSymbol):
		return "unmapped_symbol"
	case errors.Is(err, catalog.ErrNotSolvable):
		return "not_solvable"
	}
	return ""
}

// Solve handles POST /v1/solve.
func (h *Handler) Solve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	res, err := h.calc.Solve(c.Request.Context(), req.Chapter, req.Equation, req.Inputs)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrUnknownChapter), errors.Is(err, catalog.ErrUnknownEquation):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errorKind(err) != "":
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": errorKind(err)})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, SolveResponse{
		Chapter:  res.Chapter.Number,
		Equation: res.Equation.Name,
		Symbol:   res.Symbol,
		Param:    res.Param,
		Value:    res.Value,
	})
}

// Convert handles GET /v1/convert.
func (h *Handler) Convert(c *gin.Context) {
	quantity := c.Query("quantity")
	from := c.Query("from")
	to := c.Query("to")
	if quantity == "" || from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity, from and to are required"})
		return
	}

	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid value: %v", err)})
		return
	}

	result, err := units.Convert(quantity, value, from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quantity": quantity,
		"value":    value,
		"from":     from,
		"to":       to,
		"result":   result,
	})
}

// ListUnits handles GET /v1/units.
func (h *Handler) ListUnits(c *gin.Context) {
	response := make(map[string][]string)
	for _, q := range units.Quantities() {
		response[q.Name] = q.Units()
	}
	c.JSON(http.StatusOK, gin.H{"quantities": response})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
