package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaginationMeta is rendered under "optional" in list responses.
type PaginationMeta struct {
	TotalRow  int64 `json:"total_row"`
	TotalPage int   `json:"total_page"`
	Current   int   `json:"current"`
	PageSize  int   `json:"page_size"`
}

// NewPaginationMeta computes the envelope from the pre-filter total and
// the take/skip window. take must be positive.
func NewPaginationMeta(total int64, take, skip int) PaginationMeta {
	totalPage := 0
	current := 1
	if take > 0 {
		// pembulatan ke atas tanpa penjumlahan, aman untuk take besar
		tp := total / int64(take)
		if total%int64(take) != 0 {
			tp++
		}
		totalPage = int(tp)
		current = skip/take + 1
	}

	return PaginationMeta{
		TotalRow:  total,
		TotalPage: totalPage,
		Current:   current,
		PageSize:  take,
	}
}

type ListEnvelope struct {
	Data     any            `json:"data"`
	Total    int64          `json:"total"`
	Optional PaginationMeta `json:"optional"`
}

type FailureEnvelope struct {
	Code  int    `json:"code"`
	Data  any    `json:"data"`
	Info  string `json:"info"`
	Error any    `json:"error"`
}

func List(c *gin.Context, data any, meta PaginationMeta) {
	c.JSON(http.StatusOK, ListEnvelope{
		Data:     data,
		Total:    meta.TotalRow,
		Optional: meta,
	})
}

// Failure always answers 400; the service does not distinguish failure
// kinds by status code.
func Failure(c *gin.Context, info string, data any, errPayload any) {
	c.JSON(http.StatusBadRequest, FailureEnvelope{
		Code:  http.StatusBadRequest,
		Data:  data,
		Info:  info,
		Error: errPayload,
	})
}
