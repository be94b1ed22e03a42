package httpimpl

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/libsv/go-bt/v2"

	"github.com/josephnicholas/VerusCoin/errors"
	"github.com/josephnicholas/VerusCoin/model"
	"github.com/josephnicholas/VerusCoin/tracing"
)

// DecodeTx creates an HTTP handler that decodes a raw transaction.
//
// Request body: the raw transaction as a hex string.
//
// HTTP Response:
//
//	200 OK: JSON projection of the transaction, including the typed
//	records embedded in its output scripts.
//
// Error Responses:
//   - 400 Bad Request: empty body, invalid hex or unparseable transaction
//   - 413 Request Entity Too Large: body exceeds the transaction size policy
func (h *HTTP) DecodeTx() func(c echo.Context) error {
	return func(c echo.Context) error {
		_, _, deferFn := tracing.StartTracing(c.Request().Context(), "DecodeTx_http",
			tracing.WithParentStat(ExplorerStat),
			tracing.WithLogMessage(h.logger, "[Explorer_http] DecodeTx for %s", c.Request().RemoteAddr),
		)

		defer deferFn()

		body, err := io.ReadAll(io.LimitReader(c.Request().Body, int64(h.settings.Policy.MaxTxSizePolicy)*2+1))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.NewInvalidArgumentError("error reading request body", err).Error())
		}

		txHex := strings.TrimSpace(string(body))
		if txHex == "" {
			return echo.NewHTTPError(http.StatusBadRequest, errors.NewInvalidArgumentError("empty request body").Error())
		}

		if len(txHex) > h.settings.Policy.MaxTxSizePolicy*2 {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, errors.NewInvalidArgumentError("transaction exceeds size policy").Error())
		}

		tx, err := bt.NewTxFromString(txHex)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.NewTxInvalidError("error parsing transaction", err).Error())
		}

		prometheusExplorerHTTPDecodeTx.WithLabelValues("OK", "200").Inc()

		return c.JSONPretty(http.StatusOK, model.TxToJSON(tx, nil), "  ")
	}
}
