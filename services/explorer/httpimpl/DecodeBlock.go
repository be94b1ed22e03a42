package httpimpl

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/josephnicholas/VerusCoin/errors"
	"github.com/josephnicholas/VerusCoin/model"
	"github.com/josephnicholas/VerusCoin/tracing"
)

// DecodeBlock creates an HTTP handler that decodes a raw block.
//
// Request body: the raw block as a hex string.
//
// HTTP Response:
//
//	200 OK: JSON projection of the block header and every transaction in it.
//
// Error Responses:
//   - 400 Bad Request: empty body, invalid hex or unparseable block
func (h *HTTP) DecodeBlock() func(c echo.Context) error {
	return func(c echo.Context) error {
		_, _, deferFn := tracing.StartTracing(c.Request().Context(), "DecodeBlock_http",
			tracing.WithParentStat(ExplorerStat),
			tracing.WithLogMessage(h.logger, "[Explorer_http] DecodeBlock for %s", c.Request().RemoteAddr),
		)

		defer deferFn()

		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.NewInvalidArgumentError("error reading request body", err).Error())
		}

		blockHex := strings.TrimSpace(string(body))
		if blockHex == "" {
			return echo.NewHTTPError(http.StatusBadRequest, errors.NewInvalidArgumentError("empty request body").Error())
		}

		block, err := model.NewBlockFromString(blockHex)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.NewProcessingError("error parsing block", err).Error())
		}

		prometheusExplorerHTTPDecodeBlock.WithLabelValues("OK", "200").Inc()

		return c.JSONPretty(http.StatusOK, model.BlockToJSON(block), "  ")
	}
}
