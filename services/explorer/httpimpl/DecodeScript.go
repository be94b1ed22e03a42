package httpimpl

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/josephnicholas/VerusCoin/errors"
	"github.com/josephnicholas/VerusCoin/model"
	"github.com/josephnicholas/VerusCoin/script"
	"github.com/josephnicholas/VerusCoin/tracing"
)

// DecodeScript creates an HTTP handler that decodes an output script.
//
// Request body: the output script as a hex string.
//
// HTTP Response:
//
//	200 OK: JSON projection of the script: its type, any typed record
//	embedded in a pay-to-condition output, its destinations, assembly and
//	hex renderings.
//
// Query Parameters:
//   - asm: set to "false" or "0" to omit the assembly rendering
//   - hex: set to "false" or "0" to omit the hex rendering
//
// Error Responses:
//   - 400 Bad Request: empty body or invalid hex
func (h *HTTP) DecodeScript() func(c echo.Context) error {
	return func(c echo.Context) error {
		_, _, deferFn := tracing.StartTracing(c.Request().Context(), "DecodeScript_http",
			tracing.WithParentStat(ExplorerStat),
			tracing.WithLogMessage(h.logger, "[Explorer_http] DecodeScript for %s", c.Request().RemoteAddr),
		)

		defer deferFn()

		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.NewInvalidArgumentError("error reading request body", err).Error())
		}

		scriptHex := strings.TrimSpace(string(body))
		if scriptHex == "" {
			return echo.NewHTTPError(http.StatusBadRequest, errors.NewInvalidArgumentError("empty request body").Error())
		}

		s, err := script.NewFromHex(scriptHex)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.NewScriptInvalidError("error parsing script", err).Error())
		}

		includeAsm := queryFlag(c, "asm")
		includeHex := queryFlag(c, "hex")

		prometheusExplorerHTTPDecodeScript.WithLabelValues("OK", "200").Inc()

		return c.JSONPretty(http.StatusOK, model.ScriptPubKeyToJSON(s, includeHex, includeAsm), "  ")
	}
}

// queryFlag reads a boolean query parameter that defaults to true when absent
// or unparseable.
func queryFlag(c echo.Context, name string) bool {
	switch strings.ToLower(c.QueryParam(name)) {
	case "false", "0":
		return false
	default:
		return true
	}
}
