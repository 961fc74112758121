package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderlist/api-go/services"
)

type StandardResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Meta       interface{}     `json:"meta,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
}

func newPaginationMeta(page, pageSize int, total int64) *PaginationMeta {
	return &PaginationMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  (total + int64(pageSize) - 1) / int64(pageSize),
	}
}

// respondError maps a service error onto the HTTP response. Internal failures
// keep their detail in the server log only.
func respondError(c *gin.Context, err error) {
	status := services.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": services.PublicMessage(err)})
}
