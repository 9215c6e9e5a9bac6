package conn

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/tobsdb/rowset/internal/driver"
	"github.com/tobsdb/rowset/internal/resultset"
)

// Response is the JSON envelope every request is answered with.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func NewErrorResponse(status int, err string) Response {
	return Response{Message: err, Status: status}
}

func NewResponse(status int, message string, data any) Response {
	return Response{Data: data, Message: message, Status: status}
}

// QueryRequest runs one SQL statement and reshapes its result.
type QueryRequest struct {
	// "fetch" | "all" | "single" | "assoc" | "pairs"
	Action string `json:"action"`
	SQL    string `json:"sql"`
	// assoc descriptor, e.g. "active,#,id"
	Descriptor string `json:"descriptor,omitempty"`
	// pairs key/value columns
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`

	WithTables bool `json:"withTables,omitempty"`
}

// Queryer is the slice of the database the handler needs.
type Queryer interface {
	Query(query string, args ...any) (*driver.MemoryResult, error)
}

func HandleRequest(db Queryer, raw []byte) Response {
	var req QueryRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return NewErrorResponse(http.StatusBadRequest, err.Error())
	}
	if req.SQL == "" {
		return NewErrorResponse(http.StatusBadRequest, "sql is required")
	}

	res, err := db.Query(req.SQL)
	if err != nil {
		return NewErrorResponse(http.StatusBadRequest, err.Error())
	}
	rs := resultset.New(res)
	defer rs.Free()
	rs.WithTables(req.WithTables)

	var data any
	switch req.Action {
	case "fetch":
		data, err = rs.Fetch()
	case "all":
		data, err = rs.FetchAll()
	case "single":
		data, err = rs.FetchSingle()
	case "assoc":
		data, err = rs.FetchAssoc(req.Descriptor)
	case "pairs":
		data, err = rs.FetchPairs(req.Key, req.Value)
	default:
		return NewErrorResponse(http.StatusNotFound,
			fmt.Sprintf("Unknown action %q", req.Action))
	}
	if err != nil {
		return NewErrorResponse(errorStatus(err), err.Error())
	}

	count, err := rs.RowCount()
	if err != nil {
		return NewErrorResponse(errorStatus(err), err.Error())
	}
	return NewResponse(http.StatusOK, fmt.Sprintf("%d rows", count), data)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, driver.ErrReleased), errors.Is(err, driver.ErrSeekFailed):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
